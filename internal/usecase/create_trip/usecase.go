package create_trip

import (
	"context"
	"errors"
	"fmt"

	"github.com/Obaraten64/TravelPlanningRestService/internal/domain"
	cityRepo "github.com/Obaraten64/TravelPlanningRestService/internal/infra/storage/city"
	tripRepo "github.com/Obaraten64/TravelPlanningRestService/internal/infra/storage/trip"
)

// UseCase use case создания поездки
type UseCase struct {
	tripRepo  TripRepository
	cityRepo  CityRepository
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tripRepo TripRepository,
	cityRepo CityRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		tripRepo:  tripRepo,
		cityRepo:  cityRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute создает поездку пользователя.
// Города отправления и назначения обязаны существовать в справочнике,
// при их отсутствии операция отклоняется (города здесь не создаются).
// Проверка "у пользователя уже есть поездка" подстрахована уникальным
// индексом trips.user_id: гонка двух одновременных созданий разрешается
// на уровне БД, проигравший получает ErrTripAlreadyExists.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Trip, error) {
	uc.logger.Info("CreateTrip: user=%d, departure=%q, destination=%q, time=%s",
		req.UserID, req.Departure, req.Destination, req.TravelTime.Format(domain.TravelTimeFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateTrip: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Trip
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		_, err := uc.tripRepo.GetByUserID(txCtx, req.UserID)
		if err == nil {
			return ErrTripAlreadyExists
		}
		if !errors.Is(err, tripRepo.ErrTripNotFound) {
			return fmt.Errorf("%w: failed to check existing trip: %v", ErrInternal, err)
		}

		departure, err := uc.cityRepo.GetByName(txCtx, req.Departure)
		if err != nil {
			if errors.Is(err, cityRepo.ErrCityNotFound) {
				return ErrUnknownCity
			}
			return fmt.Errorf("%w: failed to resolve departure city: %v", ErrInternal, err)
		}

		destination, err := uc.cityRepo.GetByName(txCtx, req.Destination)
		if err != nil {
			if errors.Is(err, cityRepo.ErrCityNotFound) {
				return ErrUnknownCity
			}
			return fmt.Errorf("%w: failed to resolve destination city: %v", ErrInternal, err)
		}

		result, err = uc.tripRepo.Create(txCtx, &domain.Trip{
			UserID:      req.UserID,
			Departure:   *departure,
			Destination: *destination,
			TravelTime:  req.TravelTime,
		})
		if err != nil {
			if errors.Is(err, tripRepo.ErrTripAlreadyExists) {
				return ErrTripAlreadyExists
			}
			return fmt.Errorf("%w: failed to create trip: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrTripAlreadyExists):
			uc.logger.Warn("CreateTrip: user=%d already has a trip", req.UserID)
		case errors.Is(err, ErrUnknownCity):
			uc.logger.Warn("CreateTrip: unknown city for user=%d (departure=%q, destination=%q)",
				req.UserID, req.Departure, req.Destination)
		default:
			uc.logger.Error("CreateTrip: failed for user=%d: %v", req.UserID, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateTrip: successfully created trip id=%d for user=%d", result.ID, req.UserID)
	return result, nil
}
