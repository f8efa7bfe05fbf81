package trips

import (
	"context"
	"errors"
	"fmt"

	"github.com/Obaraten64/TravelPlanningRestService/internal/domain"
	tripRepo "github.com/Obaraten64/TravelPlanningRestService/internal/infra/storage/trip"
)

// Service сервис реестра поездок: административный список и завершение поездки
type Service struct {
	tripRepo  TripRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса поездок
func NewService(tripRepo TripRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		tripRepo:  tripRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// ListAll возвращает все поездки реестра. Административная операция,
// без пагинации и фильтрации.
func (s *Service) ListAll(ctx context.Context) ([]*domain.Trip, error) {
	trips, err := s.tripRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: fetched %d trips", len(trips))
	return trips, nil
}

// Complete завершает поездку пользователя, удаляя ее из реестра.
// Отсутствие поездки - ожидаемый исход, а не ошибка: возвращается false.
func (s *Service) Complete(ctx context.Context, userID int64) (bool, error) {
	s.logger.Info("Complete: completing trip for user=%d", userID)

	completed := false
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		trip, err := s.tripRepo.GetByUserID(txCtx, userID)
		if err != nil {
			if errors.Is(err, tripRepo.ErrTripNotFound) {
				return nil
			}
			return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
		}

		if err := s.tripRepo.Delete(txCtx, trip.ID); err != nil {
			return fmt.Errorf("%w: Complete - failed to delete trip: %v", ErrInternal, err)
		}

		completed = true
		return nil
	})
	if err != nil {
		s.logger.Error("Complete: failed for user=%d: %v", userID, err)
		return false, err
	}

	if completed {
		s.logger.Info("Complete: trip completed for user=%d", userID)
	} else {
		s.logger.Info("Complete: user=%d has no trip to complete", userID)
	}
	return completed, nil
}
