package storage

import (
	"context"
	"errors"

	"github.com/denmor86/ya-exchange/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=storage.go -destination=mocks/storage_mock.go -package=mocks

type UsersStorage interface {
	AddUser(ctx context.Context, user models.UserData) error
	GetUserByID(ctx context.Context, id int64) (*models.UserData, error)
	GetUserByEmail(ctx context.Context, email string) (*models.UserData, error)
	UpdateUserAddress(ctx context.Context, id int64, address string) (*models.UserData, error)
}

type ExchangeStorage interface {
	CreateExchange(ctx context.Context, userID int64, exchange models.ExchangeData) (*models.ExchangeData, error)
	GetExchanges(ctx context.Context, filter models.ExchangeFilter) ([]models.ExchangeData, int64, error)
	UpdateExchangeStatus(ctx context.Context, id uuid.UUID, status models.ExchangeStatus) (*models.ExchangeData, error)
}

type SettingsStorage interface {
	GetCourse(ctx context.Context) (decimal.Decimal, error)
	SetCourse(ctx context.Context, course decimal.Decimal) error
}

// IStorage - полный набор хранилищ сервиса
type IStorage interface {
	UsersStorage
	ExchangeStorage
	SettingsStorage
}

type Storage struct {
	UsersStorage
	ExchangeStorage
	SettingsStorage
}

// Создание хранилища
func NewStorage(db *Database) *Storage {
	return &Storage{
		UsersStorage:    NewUsersStorage(db),
		ExchangeStorage: NewExchangeStorage(db),
		SettingsStorage: NewSettingsStorage(db),
	}
}

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrExchangeNotFound = errors.New("exchange request not found")

	ErrAlreadyExists       = errors.New("already exists")
	ErrIDTaken             = errors.New("user id already taken")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidTransition   = errors.New("invalid status transition")
)
