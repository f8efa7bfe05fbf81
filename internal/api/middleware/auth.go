package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Obaraten64/TravelPlanningRestService/internal/api/handlers"
	"github.com/Obaraten64/TravelPlanningRestService/internal/domain"
	"github.com/Obaraten64/TravelPlanningRestService/pkg/token"
)

type userKey struct{}

// TokenParser интерфейс проверки access-токенов
type TokenParser interface {
	Parse(tokenString string) (*token.Claims, error)
}

// Auth middleware аутентификации по Bearer токену.
// Кладет пользователя из claims в контекст запроса.
func Auth(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				handlers.RespondError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			claims, err := parser.Parse(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				handlers.RespondError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			role, ok := domain.ParseRole(claims.Role)
			if !ok {
				handlers.RespondError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			user := &domain.User{
				ID:    claims.UserID,
				Email: claims.Email,
				Role:  role,
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey{}, user)))
		})
	}
}

// UserFromContext возвращает аутентифицированного пользователя из контекста
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey{}).(*domain.User)
	return user, ok
}
