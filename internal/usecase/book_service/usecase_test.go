package book_service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Obaraten64/TravelPlanningRestService/internal/domain"
	serviceRepo "github.com/Obaraten64/TravelPlanningRestService/internal/infra/storage/service"
	tripRepo "github.com/Obaraten64/TravelPlanningRestService/internal/infra/storage/trip"
)

type fakeTripRepo struct {
	trip     *domain.Trip
	appended []int64
}

func (f *fakeTripRepo) GetByUserID(_ context.Context, userID int64) (*domain.Trip, error) {
	if f.trip == nil || f.trip.UserID != userID {
		return nil, tripRepo.ErrTripNotFound
	}
	// Репозиторий каждый раз возвращает свежую копию
	cp := *f.trip
	cp.Services = append([]domain.Service(nil), f.trip.Services...)
	if cp.Services == nil {
		cp.Services = make([]domain.Service, 0)
	}
	return &cp, nil
}

func (f *fakeTripRepo) AppendService(_ context.Context, tripID, serviceID int64) error {
	f.appended = append(f.appended, serviceID)
	svc := domain.Service{ID: serviceID}
	f.trip.Services = append(f.trip.Services, svc)
	return nil
}

type fakeServiceRepo struct {
	services map[string]*domain.Service
}

func (f *fakeServiceRepo) GetByName(_ context.Context, name string) (*domain.Service, error) {
	svc, ok := f.services[name]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return svc, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func plannedTrip(userID int64) *domain.Trip {
	return &domain.Trip{
		ID:          10,
		UserID:      userID,
		Departure:   domain.City{ID: 1, Name: "Kiev"},
		Destination: domain.City{ID: 2, Name: "Berlin"},
		TravelTime:  time.Date(2024, 12, 12, 12, 12, 12, 0, time.UTC),
		Services:    make([]domain.Service, 0),
	}
}

func TestExecute_BooksService(t *testing.T) {
	trips := &fakeTripRepo{trip: plannedTrip(1)}
	services := &fakeServiceRepo{services: map[string]*domain.Service{
		"Museum tour": {ID: 5, Name: "Museum tour", CityID: 2, CityName: "Berlin"},
	}}
	uc := NewUseCase(trips, services, fakeTxManager{}, nopLogger{})

	trip, err := uc.Execute(context.Background(), &Request{UserID: 1, ServiceName: "Museum tour"})
	require.NoError(t, err)

	require.Len(t, trip.Services, 1)
	assert.Equal(t, "Museum tour", trip.Services[0].Name)
	assert.Equal(t, []int64{5}, trips.appended)
}

func TestExecute_DoubleBookingAppendsTwice(t *testing.T) {
	trips := &fakeTripRepo{trip: plannedTrip(1)}
	services := &fakeServiceRepo{services: map[string]*domain.Service{
		"Museum tour": {ID: 5, Name: "Museum tour", CityID: 2, CityName: "Berlin"},
	}}
	uc := NewUseCase(trips, services, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 1, ServiceName: "Museum tour"})
	require.NoError(t, err)

	trip, err := uc.Execute(context.Background(), &Request{UserID: 1, ServiceName: "Museum tour"})
	require.NoError(t, err)

	assert.Len(t, trip.Services, 2)
	assert.Equal(t, []int64{5, 5}, trips.appended)
}

func TestExecute_NoPlannedTrip(t *testing.T) {
	trips := &fakeTripRepo{}
	services := &fakeServiceRepo{services: map[string]*domain.Service{
		"Museum tour": {ID: 5, Name: "Museum tour"},
	}}
	uc := NewUseCase(trips, services, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 1, ServiceName: "Museum tour"})
	assert.ErrorIs(t, err, ErrNoActiveTrip)
}

func TestExecute_UnknownService(t *testing.T) {
	trips := &fakeTripRepo{trip: plannedTrip(1)}
	services := &fakeServiceRepo{services: map[string]*domain.Service{}}
	uc := NewUseCase(trips, services, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 1, ServiceName: "Ghost tour"})
	assert.ErrorIs(t, err, ErrUnknownService)
	assert.Empty(t, trips.appended)
}

func TestExecute_ServiceFromAnotherCityIsStillBooked(t *testing.T) {
	// Совпадение города услуги с городом назначения не проверяется
	trips := &fakeTripRepo{trip: plannedTrip(1)}
	services := &fakeServiceRepo{services: map[string]*domain.Service{
		"Opera": {ID: 7, Name: "Opera", CityID: 9, CityName: "Vienna"},
	}}
	uc := NewUseCase(trips, services, fakeTxManager{}, nopLogger{})

	trip, err := uc.Execute(context.Background(), &Request{UserID: 1, ServiceName: "Opera"})
	require.NoError(t, err)

	require.Len(t, trip.Services, 1)
	assert.Equal(t, "Vienna", trip.Services[0].CityName)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeTripRepo{}, &fakeServiceRepo{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 0, ServiceName: "Museum tour"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{UserID: 1, ServiceName: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
