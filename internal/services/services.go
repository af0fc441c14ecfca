package services

import (
	"context"
	"errors"

	"github.com/denmor86/ya-exchange/internal/models"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=services.go -destination=mocks/services_mock.go -package=mocks

type IdentityService interface {
	RegisterUser(ctx context.Context, user models.UserRequest) error
	AuthenticateUser(ctx context.Context, user models.UserRequest) (*models.UserData, error)
	GenerateJWT(user *models.UserData) (string, error)
	GetTokenAuth() *jwtauth.JWTAuth
	GetUser(ctx context.Context, session models.Session) (*models.UserData, error)
	UpdateAddress(ctx context.Context, session models.Session, address string) (*models.UserData, error)
}

type ExchangeService interface {
	CreateExchange(ctx context.Context, session models.Session, request models.CreateExchangeRequest) (*models.ExchangeData, error)
	GetUserExchanges(ctx context.Context, session models.Session, page models.PageRequest) (*models.ExchangePage, error)
	GetExchangeRequests(ctx context.Context, status string, page models.PageRequest) (*models.ExchangePage, error)
	UpdateExchangeStatus(ctx context.Context, request models.UpdateExchangeStatusRequest) (*models.ExchangeData, error)
}

type SettingsService interface {
	GetCourse(ctx context.Context) (decimal.Decimal, error)
	SetCourse(ctx context.Context, course float64) (decimal.Decimal, error)
}

type MarketService interface {
	GetPrices(ctx context.Context) (*models.Prices, error)
	RefreshPrices(ctx context.Context) (*models.Prices, error)
	GetWalletBalance(ctx context.Context, address string) (*models.WalletBalance, error)
}

var (
	ErrEmptyCredentials   = errors.New("email and password are required")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrAddressRequired    = errors.New("address is required")

	ErrInvalidTokenAmount   = errors.New("invalid token amount")
	ErrInvalidUsdtAmount    = errors.New("invalid usdt amount")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrExchangeNotFound     = errors.New("transaction not found")
	ErrInvalidTransactionID = errors.New("invalid transaction id")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrInvalidTransition    = errors.New("invalid status transition")

	ErrInvalidCourse = errors.New("invalid course")
)
