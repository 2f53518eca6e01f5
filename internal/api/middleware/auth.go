package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-HallBooking/internal/domain"
)

type contextKey string

const adminSessionKey contextKey = "admin_session"

// AdminAuth извлекает bearer токен из Authorization в domain.AdminSession.
// Токен не проверяется: решение о доступе принимает сервис бронирований
func AdminAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := domain.NewAdminSession(bearerToken(r.Header.Get("Authorization")))
		ctx := context.WithValue(r.Context(), adminSessionKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminSessionFromContext возвращает сессию, извлеченную AdminAuth; без нее - пустая сессия
func AdminSessionFromContext(ctx context.Context) domain.AdminSession {
	session, _ := ctx.Value(adminSessionKey).(domain.AdminSession)
	return session
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
