package middleware

import (
	"net/http"

	"github.com/Obaraten64/TravelPlanningRestService/internal/api/handlers"
	"github.com/Obaraten64/TravelPlanningRestService/internal/domain"
)

// RequireRole middleware ролевого контроля доступа.
// Пропускает только пользователей с одной из перечисленных ролей.
// Ожидает, что Auth уже положил пользователя в контекст.
func RequireRole(allowed ...domain.Role) func(http.Handler) http.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				handlers.RespondError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			if _, ok := allowedSet[user.Role]; !ok {
				handlers.RespondError(w, http.StatusForbidden, "forbidden")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
