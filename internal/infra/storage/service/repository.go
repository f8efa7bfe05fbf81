package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Obaraten64/TravelPlanningRestService/internal/domain"
	"github.com/Obaraten64/TravelPlanningRestService/pkg/psqlbuilder"
	"github.com/Obaraten64/TravelPlanningRestService/pkg/txmanager"
)

// serviceColumns колонки каталога услуг вместе с именем города
var serviceColumns = []string{"s.id", "s.name", "s.city_id", "c.name"}

// Repository репозиторий каталога услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAll получает все услуги каталога
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Service, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := r.selectServices().
		OrderBy("s.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanServices(rows)
}

// GetByCityID получает все услуги в указанном городе
func (r *Repository) GetByCityID(ctx context.Context, cityID int64) ([]*domain.Service, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := r.selectServices().
		Where(squirrel.Eq{"s.city_id": cityID}).
		OrderBy("s.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCityID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCityID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanServices(rows)
}

// GetByName получает первую услугу с указанным именем независимо от города.
// Используется бронированием, которое получает только имя услуги.
func (r *Repository) GetByName(ctx context.Context, name string) (*domain.Service, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := r.selectServices().
		Where(squirrel.Eq{"s.name": name}).
		OrderBy("s.id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByName - build select query: %v", ErrBuildQuery, err)
	}

	var svc domain.Service
	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&svc.ID, &svc.Name, &svc.CityID, &svc.CityName)
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByName - scan service: %v", ErrScanRow, err)
	}

	return &svc, nil
}

// GetByNameAndCity получает услугу по паре (имя, город).
// Используется для проверки дубликатов перед вставкой.
func (r *Repository) GetByNameAndCity(ctx context.Context, name string, cityID int64) (*domain.Service, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := r.selectServices().
		Where(squirrel.Eq{"s.name": name, "s.city_id": cityID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByNameAndCity - build select query: %v", ErrBuildQuery, err)
	}

	var svc domain.Service
	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&svc.ID, &svc.Name, &svc.CityID, &svc.CityName)
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByNameAndCity - scan service: %v", ErrScanRow, err)
	}

	return &svc, nil
}

// Create создает новую услугу
func (r *Repository) Create(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("services").
		Columns("name", "city_id").
		Values(svc.Name, svc.CityID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&svc.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrServiceAlreadyExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return svc, nil
}

// selectServices базовый SELECT каталога с JOIN на города
func (r *Repository) selectServices() squirrel.SelectBuilder {
	return psqlbuilder.Select(serviceColumns...).
		From("services s").
		Join("cities c ON c.id = s.city_id")
}

// scanServices сканирует результаты запроса в слайс услуг
func (r *Repository) scanServices(rows *sql.Rows) ([]*domain.Service, error) {
	services := make([]*domain.Service, 0)

	for rows.Next() {
		var svc domain.Service
		if err := rows.Scan(&svc.ID, &svc.Name, &svc.CityID, &svc.CityName); err != nil {
			return nil, fmt.Errorf("%w: scanServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, &svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// isUniqueViolation проверяет, что ошибка - нарушение уникального ограничения PostgreSQL
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
