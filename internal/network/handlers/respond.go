package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/denmor86/ya-exchange/internal/logger"
	"github.com/denmor86/ya-exchange/internal/models"
	"github.com/denmor86/ya-exchange/internal/validators"
	"github.com/goccy/go-json"
)

// Сообщения об ошибках, общие для обработчиков
const (
	MessageInvalidRequest = "Invalid request format"
	MessageServerError    = "Server error"
	MessageUserNotFound   = "User not found"
	MessageInvalidToken   = "Invalid token"
)

// WriteJSON - ответ с JSON телом
func WriteJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode JSON response", "error", err)
	}
}

// WriteError - ответ с ошибкой в формате {statusCode, statusMessage}
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, models.ErrorResponse{StatusCode: status, StatusMessage: message})
}

// decodeRequest - разбор тела запроса и проверка по тегам validate.
// При ошибке ответ уже записан
func decodeRequest(w http.ResponseWriter, r *http.Request, request interface{}, messages validators.Messages) bool {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(request); err != nil {
		logger.Warn("Failed to decode request", "uri", r.RequestURI, "error", err)
		WriteError(w, http.StatusBadRequest, MessageInvalidRequest)
		return false
	}
	if err := validators.Struct(request, messages); err != nil {
		var validationErr *validators.ValidationError
		if errors.As(err, &validationErr) {
			WriteError(w, http.StatusBadRequest, validationErr.Message)
		} else {
			logger.Error("Failed to validate request", "error", err)
			WriteError(w, http.StatusBadRequest, MessageInvalidRequest)
		}
		return false
	}
	return true
}

// parsePage - page и limit из query. Отсутствующие, нечисловые и меньше 1 заменяются значениями по умолчанию
func parsePage(r *http.Request, defaultLimit int) models.PageRequest {
	return models.PageRequest{
		Page:  queryInt(r, "page", 1),
		Limit: queryInt(r, "limit", defaultLimit),
	}
}

func queryInt(r *http.Request, key string, fallback int) int {
	value, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
