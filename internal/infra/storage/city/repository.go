package city

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

// Repository репозиторий справочника городов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория городов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByName получает город по имени (точное совпадение, с учетом регистра)
func (r *Repository) GetByName(ctx context.Context, name string) (*domain.City, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").
		From("cities").
		Where(squirrel.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByName - build select query: %v", ErrBuildQuery, err)
	}

	var city domain.City
	err = executor.QueryRowContext(ctx, query, args...).Scan(&city.ID, &city.Name)
	if err == sql.ErrNoRows {
		return nil, ErrCityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByName - scan city: %v", ErrScanRow, err)
	}

	return &city, nil
}

// Create создает новый город
func (r *Repository) Create(ctx context.Context, name string) (*domain.City, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("cities").
		Columns("name").
		Values(name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	city := domain.City{Name: name}
	err = executor.QueryRowContext(ctx, query, args...).Scan(&city.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrCityAlreadyExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return &city, nil
}

// GetOrCreate получает город по имени, создавая его при отсутствии.
// При гонке двух создателей проигравший перечитывает существующую запись.
func (r *Repository) GetOrCreate(ctx context.Context, name string) (*domain.City, error) {
	city, err := r.GetByName(ctx, name)
	if err == nil {
		return city, nil
	}
	if !errors.Is(err, ErrCityNotFound) {
		return nil, err
	}

	city, err = r.Create(ctx, name)
	if errors.Is(err, ErrCityAlreadyExists) {
		return r.GetByName(ctx, name)
	}
	return city, err
}

// isUniqueViolation проверяет, что ошибка - нарушение уникального ограничения PostgreSQL
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
