package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Obaraten64/TravelPlanningRestService/internal/domain"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func serviceRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"s.id", "s.name", "s.city_id", "c.name"})
}

func TestGetAll(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT s.id, s.name, s.city_id, c.name FROM services s").
		WillReturnRows(serviceRows().
			AddRow(1, "Museum tour", 2, "Berlin").
			AddRow(2, "Opera", 9, "Vienna"))

	services, err := repo.GetAll(context.Background())
	require.NoError(t, err)

	require.Len(t, services, 2)
	assert.Equal(t, "Museum tour", services[0].Name)
	assert.Equal(t, "Vienna", services[1].CityName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAll_EmptyCatalogReturnsEmptySlice(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT s.id, s.name, s.city_id, c.name FROM services s").
		WillReturnRows(serviceRows())

	services, err := repo.GetAll(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, services)
	assert.Empty(t, services)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByCityID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT s.id, s.name, s.city_id, c.name FROM services s").
		WithArgs(int64(2)).
		WillReturnRows(serviceRows().AddRow(1, "Museum tour", 2, "Berlin"))

	services, err := repo.GetByCityID(context.Background(), 2)
	require.NoError(t, err)

	require.Len(t, services, 1)
	assert.Equal(t, int64(2), services[0].CityID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByName(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT s.id, s.name, s.city_id, c.name FROM services s").
		WithArgs("Museum tour").
		WillReturnRows(serviceRows().AddRow(1, "Museum tour", 2, "Berlin"))

	svc, err := repo.GetByName(context.Background(), "Museum tour")
	require.NoError(t, err)

	assert.Equal(t, int64(1), svc.ID)
	assert.Equal(t, "Berlin", svc.CityName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByName_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT s.id, s.name, s.city_id, c.name FROM services s").
		WithArgs("Ghost tour").
		WillReturnRows(serviceRows())

	_, err := repo.GetByName(context.Background(), "Ghost tour")
	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("INSERT INTO services").
		WithArgs("Museum tour", int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	svc, err := repo.Create(context.Background(), &domain.Service{
		Name:     "Museum tour",
		CityID:   2,
		CityName: "Berlin",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), svc.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UniqueViolation(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("INSERT INTO services").
		WithArgs("Museum tour", int64(2)).
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create(context.Background(), &domain.Service{Name: "Museum tour", CityID: 2})
	assert.ErrorIs(t, err, ErrServiceAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
