package book_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Obaraten64/TravelPlanningRestService/internal/domain"
	serviceRepo "github.com/Obaraten64/TravelPlanningRestService/internal/infra/storage/service"
	tripRepo "github.com/Obaraten64/TravelPlanningRestService/internal/infra/storage/trip"
)

// UseCase use case бронирования услуги на поездку
type UseCase struct {
	tripRepo    TripRepository
	serviceRepo ServiceRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tripRepo TripRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		tripRepo:    tripRepo,
		serviceRepo: serviceRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute бронирует услугу на поездку пользователя и возвращает обновленную поездку.
// Услуга ищется по имени во всем каталоге: совпадение города услуги с городом
// назначения поездки не проверяется. Повторное бронирование той же услуги
// добавляет ее в список еще раз.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Trip, error) {
	uc.logger.Info("BookService: user=%d, service=%q", req.UserID, req.ServiceName)

	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.ServiceName == "" {
		return nil, fmt.Errorf("%w: service name is required", ErrInvalidInput)
	}

	var result *domain.Trip
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		trip, err := uc.tripRepo.GetByUserID(txCtx, req.UserID)
		if err != nil {
			if errors.Is(err, tripRepo.ErrTripNotFound) {
				return ErrNoActiveTrip
			}
			return fmt.Errorf("%w: failed to get trip: %v", ErrInternal, err)
		}

		svc, err := uc.serviceRepo.GetByName(txCtx, req.ServiceName)
		if err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				return ErrUnknownService
			}
			return fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}

		if err := uc.tripRepo.AppendService(txCtx, trip.ID, svc.ID); err != nil {
			return fmt.Errorf("%w: failed to append service: %v", ErrInternal, err)
		}

		trip.Services = append(trip.Services, *svc)
		result = trip
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNoActiveTrip):
			uc.logger.Warn("BookService: user=%d has no planned trip", req.UserID)
		case errors.Is(err, ErrUnknownService):
			uc.logger.Warn("BookService: service %q not found", req.ServiceName)
		default:
			uc.logger.Error("BookService: failed for user=%d: %v", req.UserID, err)
		}
		return nil, err
	}

	uc.logger.Info("BookService: service %q booked on trip id=%d, total services=%d",
		req.ServiceName, result.ID, len(result.Services))
	return result, nil
}
