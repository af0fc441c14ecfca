package helpers

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/ya-exchange/internal/logger"
	"github.com/denmor86/ya-exchange/internal/models"
	"github.com/go-chi/jwtauth/v5"
)

var ErrInvalidSession = errors.New("invalid session claims")

// GetSession - извлекает данные сессии из контекста JWT токена
func GetSession(ctx context.Context) (models.Session, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return models.Session{}, err
	}

	userID, ok := claimInt64(claims["userId"])
	if !ok {
		logger.Warn("Undefined user id from token")
		return models.Session{}, fmt.Errorf("%w: userId", ErrInvalidSession)
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if role == "" {
		role = models.RoleUser
	}
	return models.Session{UserID: userID, Email: email, Role: role}, nil
}

// числовые claims после разбора JSON приходят как float64
func claimInt64(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	default:
		return 0, false
	}
}
