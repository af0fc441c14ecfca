package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/denmor86/ya-exchange/internal/config"
	"github.com/denmor86/ya-exchange/internal/logger"
	"github.com/denmor86/ya-exchange/internal/models"
	"github.com/denmor86/ya-exchange/internal/storage"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"golang.org/x/crypto/bcrypt"
)

type Identity struct {
	JWTAuth *jwtauth.JWTAuth
	Storage storage.UsersStorage
	Config  config.ServerConfig
	NewID   func() int64
}

const (
	TokenSecretAlgo     = "HS256"
	TokenExpirationTime = 7 * 24 * time.Hour
	MinPasswordLength   = 8

	// допустимое расхождение часов при проверке exp/iat
	tokenAcceptableSkew = 5 * time.Second
	// попыток подобрать свободный идентификатор пользователя
	maxIDAttempts = 3
)

// Создание сервиса
func NewIdentity(cfg config.ServerConfig, storage storage.UsersStorage) IdentityService {
	tokenAuth := jwtauth.New(TokenSecretAlgo, []byte(cfg.JWTSecret), nil, jwt.WithAcceptableSkew(tokenAcceptableSkew))
	return &Identity{JWTAuth: tokenAuth, Storage: storage, Config: cfg, NewID: NewUserID}
}

// NewUserID - время в миллисекундах со случайным сдвигом в пределах ±1000
func NewUserID() int64 {
	return time.Now().UnixMilli() + rand.Int63n(2001) - 1000
}

// RegisterUser - регистрация нового пользователя
func (i *Identity) RegisterUser(ctx context.Context, user models.UserRequest) error {
	email := strings.TrimSpace(user.Email)
	if email == "" || user.Password == "" {
		return ErrEmptyCredentials
	}
	if len(user.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	logger.Info("Register user", "email", email)

	existing, err := i.Storage.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, storage.ErrUserNotFound) {
		return fmt.Errorf("failed to check user: %w", err)
	}
	if existing != nil {
		logger.Warn("User already exist", "email", email)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Error generating password hash", "error", err)
		return err
	}

	role := models.RoleUser
	if i.Config.IsAdminEmail(email) {
		role = models.RoleAdmin
	}

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		err = i.Storage.AddUser(ctx, models.UserData{
			ID:           i.NewID(),
			Email:        email,
			PasswordHash: string(hashedPassword),
			Role:         role,
			CreatedAt:    time.Now().UTC(),
		})
		switch {
		case err == nil:
			return nil
		case errors.Is(err, storage.ErrIDTaken):
			logger.Warn("User id collision, retrying", "attempt", attempt+1)
			continue
		case errors.Is(err, storage.ErrAlreadyExists):
			return ErrUserAlreadyExists
		default:
			logger.Error("Error registering user", "email", email, "error", err)
			return err
		}
	}
	return fmt.Errorf("failed to allocate user id: %w", err)
}

// AuthenticateUser - проверка email и пароля
func (i *Identity) AuthenticateUser(ctx context.Context, user models.UserRequest) (*models.UserData, error) {
	email := strings.TrimSpace(user.Email)
	if email == "" || user.Password == "" {
		return nil, ErrEmptyCredentials
	}

	stored, err := i.Storage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			logger.Warn("Unknown user", "email", email)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(user.Password)); err != nil {
		logger.Warn("Invalid password", "email", email)
		return nil, ErrInvalidCredentials
	}

	logger.Info("User authenticated", "email", email)
	return stored, nil
}

// GenerateJWT - токен сессии сроком на 7 дней
func (i *Identity) GenerateJWT(user *models.UserData) (string, error) {
	claims := map[string]interface{}{
		"userId": user.ID,
		"email":  user.Email,
	}
	if user.Role == models.RoleAdmin {
		claims["role"] = models.RoleAdmin
	}
	jwtauth.SetIssuedNow(claims)
	jwtauth.SetExpiry(claims, time.Now().Add(TokenExpirationTime))

	_, tokenString, err := i.JWTAuth.Encode(claims)
	return tokenString, err
}

// GetTokenAuth - JWTAuth для middleware проверки токена
func (i *Identity) GetTokenAuth() *jwtauth.JWTAuth {
	return i.JWTAuth
}

// GetUser - пользователь текущей сессии
func (i *Identity) GetUser(ctx context.Context, session models.Session) (*models.UserData, error) {
	user, err := i.Storage.GetUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// UpdateAddress - смена адреса выплат
func (i *Identity) UpdateAddress(ctx context.Context, session models.Session, address string) (*models.UserData, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, ErrAddressRequired
	}
	user, err := i.Storage.UpdateUserAddress(ctx, session.UserID, address)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update address: %w", err)
	}
	logger.Info("Address updated", "user", session.UserID)
	return user, nil
}
