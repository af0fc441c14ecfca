package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/denmor86/ya-exchange/internal/client"
	"github.com/denmor86/ya-exchange/internal/logger"
	"github.com/denmor86/ya-exchange/internal/services"
)

// GetPricesHandler - рыночные цены монет
func GetPricesHandler(m services.MarketService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		prices, err := m.GetPrices(r.Context())
		if err != nil {
			writeMarketError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, prices)
	})
}

// GetWalletBalanceHandler - балансы кошелька выплат текущего пользователя
func GetWalletBalanceHandler(i services.IdentityService, m services.MarketService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r, i, MessageUserNotFound)
		if !ok {
			return
		}
		if user.Address == nil || *user.Address == "" {
			WriteError(w, http.StatusBadRequest, "Address is not set")
			return
		}

		balance, err := m.GetWalletBalance(r.Context(), *user.Address)
		if err != nil {
			writeMarketError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, balance)
	})
}

func writeMarketError(w http.ResponseWriter, err error) {
	var rateErr *client.RateLimitError
	if errors.As(err, &rateErr) {
		seconds := int(math.Ceil(rateErr.RetryAfter.Seconds()))
		w.Header().Set("Retry-After", strconv.Itoa(seconds))
		WriteError(w, http.StatusTooManyRequests, "Too many requests")
		return
	}
	logger.Error("Market data unavailable", "error", err)
	WriteError(w, http.StatusServiceUnavailable, "Market data unavailable")
}
