package middleware

import (
	"context"
	"net/http"

	"github.com/barberlink/BL-BookingService/internal/api/handlers"
)

type contextKey string

// UserIDKey ключ контекста с ID аутентифицированного пользователя
const UserIDKey contextKey = "userID"

// HeaderUserID заголовок с ID пользователя, проставляется API-шлюзом
const HeaderUserID = "X-User-ID"

// Auth проверяет наличие заголовка X-User-ID и кладет его значение в контекст
// Проверка подписи выполняется на шлюзе, сервис доверяет заголовку
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(HeaderUserID)
		if userID == "" {
			handlers.RespondUnauthorized(w, "missing "+HeaderUserID+" header")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext извлекает ID пользователя, положенный Auth middleware
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}
