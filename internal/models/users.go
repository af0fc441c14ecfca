package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Роли пользователей
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserRequest - модель для регистрации и аутентификации пользователя, приходит извне
type UserRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AddressRequest - запрос на смену адреса выплат
type AddressRequest struct {
	Address string `json:"address" validate:"required"`
}

// UserData - модель пользователя из хранищища
type UserData struct {
	ID           int64
	Email        string
	PasswordHash string
	Address      *string
	Balance      decimal.Decimal
	Role         string
	CreatedAt    time.Time
}

// UserResponse - данные пользователя для выдачи (без пароля)
type UserResponse struct {
	ID        int64   `json:"id"`
	Email     string  `json:"email"`
	Address   *string `json:"address"`
	Balance   float64 `json:"balance"`
	CreatedAt string  `json:"createdAt"`
}

// Session - данные сессии, извлечённые из токена
type Session struct {
	UserID int64
	Email  string
	Role   string
}

// IsAdmin - есть ли у сессии права администратора
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// NewUserResponse - преобразование пользователя хранилища в ответ
func NewUserResponse(user *UserData) UserResponse {
	balance, _ := user.Balance.Float64()
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Address:   user.Address,
		Balance:   balance,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}
