package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/Obaraten64/TravelPlanningRestService/internal/domain"
	serviceRepo "github.com/Obaraten64/TravelPlanningRestService/internal/infra/storage/service"
	tripRepo "github.com/Obaraten64/TravelPlanningRestService/internal/infra/storage/trip"
)

// Service сервис каталога услуг
type Service struct {
	serviceRepo ServiceRepository
	cityRepo    CityRepository
	tripRepo    TripRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	serviceRepo ServiceRepository,
	cityRepo CityRepository,
	tripRepo TripRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		cityRepo:    cityRepo,
		tripRepo:    tripRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// ListForUser возвращает услуги, доступные пользователю.
// Если у пользователя есть поездка с городом назначения - услуги этого города,
// иначе весь каталог. Пустой результат считается ошибкой ErrNoServices.
func (s *Service) ListForUser(ctx context.Context, userID int64) ([]*domain.Service, error) {
	trip, err := s.tripRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, tripRepo.ErrTripNotFound) {
		s.logger.Error("ListForUser: failed to get trip for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: ListForUser - failed to get trip: %v", ErrInternal, err)
	}

	var services []*domain.Service
	if trip != nil && trip.HasDestination() {
		services, err = s.serviceRepo.GetByCityID(ctx, trip.Destination.ID)
	} else {
		services, err = s.serviceRepo.GetAll(ctx)
	}
	if err != nil {
		s.logger.Error("ListForUser: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: ListForUser - repository error: %v", ErrInternal, err)
	}

	if len(services) == 0 {
		s.logger.Warn("ListForUser: no services available for user=%d", userID)
		return nil, ErrNoServices
	}

	s.logger.Info("ListForUser: fetched %d services for user=%d", len(services), userID)
	return services, nil
}

// Add добавляет услугу в каталог. Город создается при первом упоминании.
// Пара (имя, город) уникальна: дубликат отклоняется с ErrServiceAlreadyExists.
func (s *Service) Add(ctx context.Context, name, cityName string) (*domain.Service, error) {
	s.logger.Info("Add: adding service name=%q city=%q", name, cityName)

	var created *domain.Service
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		city, err := s.cityRepo.GetOrCreate(txCtx, cityName)
		if err != nil {
			return fmt.Errorf("%w: Add - failed to resolve city: %v", ErrInternal, err)
		}

		_, err = s.serviceRepo.GetByNameAndCity(txCtx, name, city.ID)
		if err == nil {
			return ErrServiceAlreadyExists
		}
		if !errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return fmt.Errorf("%w: Add - duplicate check failed: %v", ErrInternal, err)
		}

		created, err = s.serviceRepo.Create(txCtx, &domain.Service{
			Name:     name,
			CityID:   city.ID,
			CityName: city.Name,
		})
		if err != nil {
			// Уникальный индекс закрывает гонку двух одновременных добавлений
			if errors.Is(err, serviceRepo.ErrServiceAlreadyExists) {
				return ErrServiceAlreadyExists
			}
			return fmt.Errorf("%w: Add - failed to create service: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrServiceAlreadyExists) {
			s.logger.Warn("Add: service name=%q city=%q already exists", name, cityName)
		} else {
			s.logger.Error("Add: failed to add service name=%q city=%q: %v", name, cityName, err)
		}
		return nil, err
	}

	s.logger.Info("Add: service id=%d added", created.ID)
	return created, nil
}
