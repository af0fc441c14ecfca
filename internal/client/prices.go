package client

import (
	"context"
	"net/url"
	"strings"

	"github.com/denmor86/ya-exchange/internal/models"
)

// Идентификаторы монет в API цен
var PriceCoins = []string{"bitcoin", "ethereum", "binancecoin", "solana"}

// PriceClient - клиент CoinGecko-совместимого API simple/price
type PriceClient struct {
	*Client
}

func NewPriceClient(baseURL string, client HTTPClient, limiter *RateLimiter) *PriceClient {
	return &PriceClient{Client: NewClient(baseURL, client, limiter)}
}

func (c *PriceClient) GetPrices(ctx context.Context) (*models.Prices, error) {
	query := url.Values{}
	query.Set("ids", strings.Join(PriceCoins, ","))
	query.Set("vs_currencies", "usd")

	var result map[string]map[string]float64
	if err := c.getJSON(ctx, "/api/v3/simple/price", query, &result); err != nil {
		return nil, err
	}

	usd := func(coin string) float64 {
		return result[coin]["usd"]
	}
	return &models.Prices{
		Bitcoin:     usd("bitcoin"),
		Ethereum:    usd("ethereum"),
		Binancecoin: usd("binancecoin"),
		Solana:      usd("solana"),
	}, nil
}
