package delete_trips

import (
	"context"
	"fmt"

	"github.com/Obaraten64/TravelPlanningRestService/internal/domain"
)

// UseCase use case административного массового удаления поездок
type UseCase struct {
	tripRepo  TripRepository
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(tripRepo TripRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		tripRepo:  tripRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute удаляет все поездки, отправляющиеся из req.Departure или
// прибывающие в req.Destination, и возвращает снимок удаленных поездок.
// Результат - объединение двух выборок по идентификатору поездки:
// поездка, попавшая в обе, удаляется и учитывается один раз.
func (uc *UseCase) Execute(ctx context.Context, req *Request) ([]*domain.Trip, error) {
	uc.logger.Info("DeleteTrips: departure=%q, destination=%q", req.Departure, req.Destination)

	var deleted []*domain.Trip
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		byDeparture, err := uc.tripRepo.GetAllByDepartureName(txCtx, req.Departure)
		if err != nil {
			return fmt.Errorf("%w: failed to get trips by departure: %v", ErrInternal, err)
		}

		byDestination, err := uc.tripRepo.GetAllByDestinationName(txCtx, req.Destination)
		if err != nil {
			return fmt.Errorf("%w: failed to get trips by destination: %v", ErrInternal, err)
		}

		deleted = unionByID(byDeparture, byDestination)
		if len(deleted) == 0 {
			return nil
		}

		ids := make([]int64, 0, len(deleted))
		for _, t := range deleted {
			ids = append(ids, t.ID)
		}

		if _, err := uc.tripRepo.DeleteByIDs(txCtx, ids); err != nil {
			return fmt.Errorf("%w: failed to delete trips: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		uc.logger.Error("DeleteTrips: failed (departure=%q, destination=%q): %v",
			req.Departure, req.Destination, err)
		return nil, err
	}

	uc.logger.Info("DeleteTrips: deleted %d trips", len(deleted))
	return deleted, nil
}

// unionByID объединяет две выборки поездок, отбрасывая дубликаты по идентификатору
func unionByID(lists ...[]*domain.Trip) []*domain.Trip {
	seen := make(map[int64]struct{})
	union := make([]*domain.Trip, 0)

	for _, list := range lists {
		for _, t := range list {
			if _, ok := seen[t.ID]; ok {
				continue
			}
			seen[t.ID] = struct{}{}
			union = append(union, t)
		}
	}

	return union
}
