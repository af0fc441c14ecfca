package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExchangeStatus - статус заявки на обмен
type ExchangeStatus string

// Статусы заявок
const (
	ExchangeStatusPending   ExchangeStatus = "pending"
	ExchangeStatusCompleted ExchangeStatus = "completed"
)

// Valid - допустимо ли значение статуса
func (s ExchangeStatus) Valid() bool {
	return s == ExchangeStatusPending || s == ExchangeStatusCompleted
}

// CreateExchangeRequest - запрос на создание заявки обмена токенов на USDT
type CreateExchangeRequest struct {
	TokenAmount float64 `json:"tokenAmount" validate:"gt=0"`
	UsdtAmount  float64 `json:"usdtAmount" validate:"gt=0"`
	Address     string  `json:"address" validate:"required"`
}

// UpdateExchangeStatusRequest - запрос администратора на смену статуса
type UpdateExchangeStatusRequest struct {
	TransactionID string `json:"transactionId" validate:"required,uuid"`
	Status        string `json:"status" validate:"required,oneof=pending completed"`
}

// ExchangeData - заявка на обмен из хранилища
type ExchangeData struct {
	ID          uuid.UUID
	UserEmail   string
	TokenAmount decimal.Decimal
	UsdtAmount  decimal.Decimal
	Address     string
	Status      ExchangeStatus
	CreatedAt   time.Time
}

// ExchangeFilter - условия выборки заявок
type ExchangeFilter struct {
	UserEmail string
	Status    ExchangeStatus
	Offset    int
	Limit     int
}

// ExchangeResponse - заявка для выдачи
type ExchangeResponse struct {
	ID          string  `json:"id"`
	UserEmail   string  `json:"userEmail"`
	TokenAmount float64 `json:"tokenAmount"`
	UsdtAmount  float64 `json:"usdtAmount"`
	Address     string  `json:"address"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
}

// PageRequest - запрошенная страница выдачи
type PageRequest struct {
	Page  int
	Limit int
}

// Pagination - конверт постраничной выдачи
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

// ExchangePage - страница заявок
type ExchangePage struct {
	Transactions []ExchangeData
	Pagination   Pagination
}

// ExchangeListResponse - ответ со страницей заявок
type ExchangeListResponse struct {
	Transactions []ExchangeResponse `json:"transactions"`
	Pagination   Pagination         `json:"pagination"`
}

// ExchangeResultResponse - ответ на создание заявки или смену статуса
type ExchangeResultResponse struct {
	Success     bool             `json:"success"`
	Message     string           `json:"message"`
	Transaction ExchangeResponse `json:"transaction"`
}

// NewExchangeResponse - преобразование заявки хранилища в ответ
func NewExchangeResponse(exchange ExchangeData) ExchangeResponse {
	tokenAmount, _ := exchange.TokenAmount.Float64()
	usdtAmount, _ := exchange.UsdtAmount.Float64()
	return ExchangeResponse{
		ID:          exchange.ID.String(),
		UserEmail:   exchange.UserEmail,
		TokenAmount: tokenAmount,
		UsdtAmount:  usdtAmount,
		Address:     exchange.Address,
		Status:      string(exchange.Status),
		CreatedAt:   exchange.CreatedAt.Format(time.RFC3339),
	}
}

// NewExchangeListResponse - преобразование страницы заявок в ответ
func NewExchangeListResponse(page *ExchangePage) ExchangeListResponse {
	response := ExchangeListResponse{
		Transactions: make([]ExchangeResponse, 0, len(page.Transactions)),
		Pagination:   page.Pagination,
	}
	for _, exchange := range page.Transactions {
		response.Transactions = append(response.Transactions, NewExchangeResponse(exchange))
	}
	return response
}
