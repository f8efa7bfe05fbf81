package trip

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

// tripColumns колонки поездки вместе с городами отправления и назначения
var tripColumns = []string{
	"t.id",
	"t.user_id",
	"dep.id",
	"dep.name",
	"dst.id",
	"dst.name",
	"t.travel_time",
}

// Repository репозиторий реестра поездок
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория поездок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByUserID получает поездку пользователя.
// У пользователя может быть не больше одной поездки.
func (r *Repository) GetByUserID(ctx context.Context, userID int64) (*domain.Trip, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := r.selectTrips().
		Where(squirrel.Eq{"t.user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	var trip domain.Trip
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&trip.ID,
		&trip.UserID,
		&trip.Departure.ID,
		&trip.Departure.Name,
		&trip.Destination.ID,
		&trip.Destination.Name,
		&trip.TravelTime,
	)
	if err == sql.ErrNoRows {
		return nil, ErrTripNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - scan trip: %v", ErrScanRow, err)
	}

	if err := r.loadServices(ctx, []*domain.Trip{&trip}); err != nil {
		return nil, err
	}

	return &trip, nil
}

// GetAll получает все поездки реестра (без пагинации, для административного списка)
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Trip, error) {
	query, args, err := r.selectTrips().
		OrderBy("t.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryTrips(ctx, "GetAll", query, args)
}

// GetAllByDepartureName получает все поездки с указанным городом отправления.
// Поиск идет по имени города: несуществующее имя просто не находит поездок.
func (r *Repository) GetAllByDepartureName(ctx context.Context, cityName string) ([]*domain.Trip, error) {
	query, args, err := r.selectTrips().
		Where(squirrel.Eq{"dep.name": cityName}).
		OrderBy("t.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllByDepartureName - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryTrips(ctx, "GetAllByDepartureName", query, args)
}

// GetAllByDestinationName получает все поездки с указанным городом назначения
func (r *Repository) GetAllByDestinationName(ctx context.Context, cityName string) ([]*domain.Trip, error) {
	query, args, err := r.selectTrips().
		Where(squirrel.Eq{"dst.name": cityName}).
		OrderBy("t.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllByDestinationName - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryTrips(ctx, "GetAllByDestinationName", query, args)
}

// Create создает поездку с пустым списком услуг.
// Уникальный индекс trips.user_id закрывает гонку двух одновременных созданий:
// проигравшая транзакция получает ErrTripAlreadyExists.
func (r *Repository) Create(ctx context.Context, trip *domain.Trip) (*domain.Trip, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("trips").
		Columns("user_id", "departure_city_id", "destination_city_id", "travel_time").
		Values(trip.UserID, trip.Departure.ID, trip.Destination.ID, trip.TravelTime).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&trip.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrTripAlreadyExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	trip.Services = make([]domain.Service, 0)
	return trip, nil
}

// AppendService добавляет услугу в список бронирований поездки.
// Дубликаты не отсеиваются: повторное бронирование добавляет услугу еще раз.
func (r *Repository) AppendService(ctx context.Context, tripID, serviceID int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("trip_services").
		Columns("trip_id", "service_id").
		Values(tripID, serviceID).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: AppendService - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AppendService - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// Delete удаляет поездку. Записи trip_services удаляются каскадно.
func (r *Repository) Delete(ctx context.Context, tripID int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("trips").
		Where(squirrel.Eq{"id": tripID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrTripNotFound
	}

	return nil
}

// DeleteByIDs удаляет поездки по списку идентификаторов и возвращает число удаленных
func (r *Repository) DeleteByIDs(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("trips").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByIDs - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByIDs - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByIDs - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// selectTrips базовый SELECT поездок с JOIN на города
func (r *Repository) selectTrips() squirrel.SelectBuilder {
	return psqlbuilder.Select(tripColumns...).
		From("trips t").
		Join("cities dep ON dep.id = t.departure_city_id").
		Join("cities dst ON dst.id = t.destination_city_id")
}

// queryTrips выполняет запрос списка поездок и догружает их услуги
func (r *Repository) queryTrips(ctx context.Context, op, query string, args []interface{}) ([]*domain.Trip, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	trips, err := r.scanTrips(rows)
	if err != nil {
		return nil, err
	}

	if err := r.loadServices(ctx, trips); err != nil {
		return nil, err
	}

	return trips, nil
}

// scanTrips сканирует результаты запроса в слайс поездок
func (r *Repository) scanTrips(rows *sql.Rows) ([]*domain.Trip, error) {
	trips := make([]*domain.Trip, 0)

	for rows.Next() {
		var trip domain.Trip
		err := rows.Scan(
			&trip.ID,
			&trip.UserID,
			&trip.Departure.ID,
			&trip.Departure.Name,
			&trip.Destination.ID,
			&trip.Destination.Name,
			&trip.TravelTime,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanTrips - scan row: %v", ErrScanRow, err)
		}
		trips = append(trips, &trip)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanTrips - rows error: %v", ErrScanRow, err)
	}

	return trips, nil
}

// loadServices догружает забронированные услуги для набора поездок одним запросом.
// Порядок услуг внутри поездки - порядок бронирования (trip_services.id).
func (r *Repository) loadServices(ctx context.Context, trips []*domain.Trip) error {
	if len(trips) == 0 {
		return nil
	}

	executor := txmanager.GetExecutor(ctx, r.db)

	byID := make(map[int64]*domain.Trip, len(trips))
	ids := make([]int64, 0, len(trips))
	for _, t := range trips {
		t.Services = make([]domain.Service, 0)
		byID[t.ID] = t
		ids = append(ids, t.ID)
	}

	query, args, err := psqlbuilder.Select("ts.trip_id", "s.id", "s.name", "s.city_id", "c.name").
		From("trip_services ts").
		Join("services s ON s.id = ts.service_id").
		Join("cities c ON c.id = s.city_id").
		Where(squirrel.Eq{"ts.trip_id": ids}).
		OrderBy("ts.id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var tripID int64
		var svc domain.Service
		if err := rows.Scan(&tripID, &svc.ID, &svc.Name, &svc.CityID, &svc.CityName); err != nil {
			return fmt.Errorf("%w: loadServices - scan row: %v", ErrScanRow, err)
		}
		if t, ok := byID[tripID]; ok {
			t.Services = append(t.Services, svc)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadServices - rows error: %v", ErrScanRow, err)
	}

	return nil
}

// isUniqueViolation проверяет, что ошибка - нарушение уникального ограничения PostgreSQL
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
