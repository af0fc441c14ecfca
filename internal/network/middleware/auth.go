package middleware

import (
	"errors"
	"net/http"

	"github.com/denmor86/ya-exchange/internal/helpers"
	"github.com/denmor86/ya-exchange/internal/logger"
	"github.com/denmor86/ya-exchange/internal/network/handlers"
	"github.com/go-chi/jwtauth/v5"
)

// Cookie, в которой токен хранили прежние версии клиента
const LegacyCookieName = "jwt_token"

// Verifier - ищет токен в заголовке Authorization, затем в cookie сессии
func Verifier(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return jwtauth.Verify(ja,
		jwtauth.TokenFromHeader,
		tokenFromCookie(handlers.SessionCookieName),
		tokenFromCookie(LegacyCookieName),
	)
}

func tokenFromCookie(name string) func(r *http.Request) string {
	return func(r *http.Request) string {
		cookie, err := r.Cookie(name)
		if err != nil {
			return ""
		}
		return cookie.Value
	}
}

// Authenticator - пропускает запрос только с действительным токеном
func Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, _, err := jwtauth.FromContext(r.Context())
		if err != nil {
			switch {
			case errors.Is(err, jwtauth.ErrNoTokenFound):
				handlers.WriteError(w, http.StatusUnauthorized, "Authorization header missing or invalid")
			case errors.Is(err, jwtauth.ErrExpired):
				handlers.WriteError(w, http.StatusUnauthorized, "Token expired")
			default:
				logger.Warn("Token verification failed", "error", err)
				handlers.WriteError(w, http.StatusUnauthorized, handlers.MessageInvalidToken)
			}
			return
		}
		if token == nil {
			handlers.WriteError(w, http.StatusUnauthorized, handlers.MessageInvalidToken)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin - доступ только для роли admin
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := helpers.GetSession(r.Context())
		if err != nil {
			handlers.WriteError(w, http.StatusUnauthorized, handlers.MessageInvalidToken)
			return
		}
		if !session.IsAdmin() {
			logger.Warn("Admin access denied", "user", session.UserID)
			handlers.WriteError(w, http.StatusForbidden, "Unauthorized access")
			return
		}
		next.ServeHTTP(w, r)
	})
}
