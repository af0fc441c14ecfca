package handlers

import (
	"errors"
	"net/http"

	"github.com/denmor86/ya-exchange/internal/logger"
	"github.com/denmor86/ya-exchange/internal/models"
	"github.com/denmor86/ya-exchange/internal/services"
	"github.com/denmor86/ya-exchange/internal/validators"
)

// Размер страницы по умолчанию
const (
	TransactionsPageLimit = 5
	ExchangesPageLimit    = 10
)

var (
	createExchangeMessages = validators.Messages{
		"tokenAmount": "Invalid token amount",
		"usdtAmount":  "Invalid USDT amount",
		"address":     "USDT address is required",
	}
	updateStatusMessages = validators.Messages{
		"transactionId": "Invalid transaction ID",
		"status":        "Invalid status",
	}
)

// CreateExchangeHandler - заявка на обмен токенов на USDT
func CreateExchangeHandler(e services.ExchangeService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := currentSession(w, r)
		if !ok {
			return
		}
		var request models.CreateExchangeRequest
		if !decodeRequest(w, r, &request, createExchangeMessages) {
			return
		}

		exchange, err := e.CreateExchange(r.Context(), session, request)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidTokenAmount):
				WriteError(w, http.StatusBadRequest, "Invalid token amount")
			case errors.Is(err, services.ErrInvalidUsdtAmount):
				WriteError(w, http.StatusBadRequest, "Invalid USDT amount")
			case errors.Is(err, services.ErrAddressRequired):
				WriteError(w, http.StatusBadRequest, "USDT address is required")
			case errors.Is(err, services.ErrUserNotFound):
				WriteError(w, http.StatusNotFound, MessageUserNotFound)
			case errors.Is(err, services.ErrInsufficientBalance):
				WriteError(w, http.StatusBadRequest, "Insufficient balance")
			default:
				logger.Error("Failed to create exchange", "error", err)
				WriteError(w, http.StatusInternalServerError, MessageServerError)
			}
			return
		}

		WriteJSON(w, http.StatusOK, models.ExchangeResultResponse{
			Success:     true,
			Message:     "Exchange request created successfully",
			Transaction: models.NewExchangeResponse(*exchange),
		})
	})
}

// GetUserExchangesHandler - заявки текущего пользователя постранично
func GetUserExchangesHandler(e services.ExchangeService, defaultLimit int) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := currentSession(w, r)
		if !ok {
			return
		}

		page, err := e.GetUserExchanges(r.Context(), session, parsePage(r, defaultLimit))
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				WriteError(w, http.StatusNotFound, MessageUserNotFound)
				return
			}
			logger.Error("Failed to get user exchanges", "error", err)
			WriteError(w, http.StatusInternalServerError, MessageServerError)
			return
		}
		WriteJSON(w, http.StatusOK, models.NewExchangeListResponse(page))
	})
}

// GetExchangeRequestsHandler - все заявки для администратора
func GetExchangeRequestsHandler(e services.ExchangeService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := r.URL.Query().Get("status")

		page, err := e.GetExchangeRequests(r.Context(), status, parsePage(r, ExchangesPageLimit))
		if err != nil {
			if errors.Is(err, services.ErrInvalidStatus) {
				WriteError(w, http.StatusBadRequest, "Invalid status")
				return
			}
			logger.Error("Failed to get exchange requests", "error", err)
			WriteError(w, http.StatusInternalServerError, MessageServerError)
			return
		}
		WriteJSON(w, http.StatusOK, models.NewExchangeListResponse(page))
	})
}

// UpdateExchangeStatusHandler - смена статуса заявки администратором
func UpdateExchangeStatusHandler(e services.ExchangeService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request models.UpdateExchangeStatusRequest
		if !decodeRequest(w, r, &request, updateStatusMessages) {
			return
		}

		exchange, err := e.UpdateExchangeStatus(r.Context(), request)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidTransactionID):
				WriteError(w, http.StatusBadRequest, "Invalid transaction ID")
			case errors.Is(err, services.ErrInvalidStatus):
				WriteError(w, http.StatusBadRequest, "Invalid status")
			case errors.Is(err, services.ErrExchangeNotFound):
				WriteError(w, http.StatusNotFound, "Transaction not found")
			case errors.Is(err, services.ErrInvalidTransition):
				WriteError(w, http.StatusConflict, "Invalid status transition")
			default:
				logger.Error("Failed to update exchange status", "error", err)
				WriteError(w, http.StatusInternalServerError, MessageServerError)
			}
			return
		}

		WriteJSON(w, http.StatusOK, models.ExchangeResultResponse{
			Success:     true,
			Message:     "Transaction status updated successfully",
			Transaction: models.NewExchangeResponse(*exchange),
		})
	})
}
