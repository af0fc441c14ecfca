package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/denmor86/ya-exchange/internal/models"
	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=client.go -destination=mocks/client_mock.go -package=mocks

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// PricesService - источник рыночных цен
type PricesService interface {
	GetPrices(ctx context.Context) (*models.Prices, error)
}

// BalanceService - источник балансов кошельков
type BalanceService interface {
	GetBNBBalance(ctx context.Context, address string) (decimal.Decimal, error)
	GetTokenBalance(ctx context.Context, contract string, address string) (decimal.Decimal, error)
}

// Client - базовый клиент внешнего JSON API
type Client struct {
	baseURL    string
	httpClient HTTPClient
	limiter    *RateLimiter
}

func NewClient(baseURL string, client HTTPClient, limiter *RateLimiter) *Client {
	if limiter == nil {
		limiter = NewRateLimiter(0, 1)
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: client,
		limiter:    limiter,
	}
}

// getJSON - GET запрос с декодированием ответа в result
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.handleErrorResponse(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return nil
}

func (c *Client) handleErrorResponse(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		rateErr := NewRateLimitError(resp.Header)
		c.limiter.BlockFor(rateErr.RetryAfter)
		return rateErr
	default:
		return fmt.Errorf("%w: status %d", ErrServiceUnavailable, resp.StatusCode)
	}
}
