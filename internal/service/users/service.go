package users

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/Obaraten64/TravelPlanningRestService/internal/domain"
	userRepo "github.com/Obaraten64/TravelPlanningRestService/internal/infra/storage/user"
)

// Service сервис учетных записей: регистрация и проверка учетных данных
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register регистрирует нового пользователя.
// Роль принимается без учета регистра ("traveler" и "TRAVELER" эквивалентны).
func (s *Service) Register(ctx context.Context, email, password, roleName string) (*domain.User, error) {
	s.logger.Info("Register: registering user email=%s", email)

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		s.logger.Warn("Register: user email=%s already exists", email)
		return nil, ErrUserAlreadyExists
	} else if !errors.Is(err, userRepo.ErrUserNotFound) {
		s.logger.Error("Register: failed to check email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Register - failed to check email: %v", ErrInternal, err)
	}

	role, ok := domain.ParseRole(roleName)
	if !ok {
		s.logger.Warn("Register: wrong role %q for email=%s", roleName, email)
		return nil, ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%w: Register - failed to hash password: %v", ErrInternal, err)
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		// Уникальный индекс на email закрывает гонку двух одновременных регистраций
		if errors.Is(err, userRepo.ErrUserAlreadyExists) {
			return nil, ErrUserAlreadyExists
		}
		s.logger.Error("Register: failed to create user email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Register - failed to create user: %v", ErrInternal, err)
	}

	s.logger.Info("Register: user id=%d registered with role=%s", user.ID, user.Role)
	return user, nil
}

// Authenticate проверяет учетные данные и возвращает пользователя
func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Authenticate: unknown email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Authenticate: failed to get user email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Authenticate - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Authenticate: wrong password for email=%s", email)
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("Authenticate: user id=%d authenticated", user.ID)
	return user, nil
}
