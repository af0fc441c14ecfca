package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"
)

// Контракт USDT (BEP-20) в сети BSC
const USDTContract = "0x55d398326f99059fF775485246999027B3197955"

// Количество знаков после запятой у BNB и USDT (BEP-20)
const tokenDecimals = 18

type bscScanResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Result  string `json:"result"`
}

// BscScanClient - клиент BscScan-совместимого API балансов
type BscScanClient struct {
	*Client
	apiKey string
}

func NewBscScanClient(baseURL string, apiKey string, client HTTPClient, limiter *RateLimiter) *BscScanClient {
	return &BscScanClient{Client: NewClient(baseURL, client, limiter), apiKey: apiKey}
}

func (c *BscScanClient) GetBNBBalance(ctx context.Context, address string) (decimal.Decimal, error) {
	query := url.Values{}
	query.Set("module", "account")
	query.Set("action", "balance")
	query.Set("address", address)
	return c.balance(ctx, query)
}

func (c *BscScanClient) GetTokenBalance(ctx context.Context, contract string, address string) (decimal.Decimal, error) {
	query := url.Values{}
	query.Set("module", "account")
	query.Set("action", "tokenbalance")
	query.Set("contractaddress", contract)
	query.Set("address", address)
	return c.balance(ctx, query)
}

// balance - значение в wei переводится в целые единицы
func (c *BscScanClient) balance(ctx context.Context, query url.Values) (decimal.Decimal, error) {
	query.Set("tag", "latest")
	if c.apiKey != "" {
		query.Set("apikey", c.apiKey)
	}

	var result bscScanResponse
	if err := c.getJSON(ctx, "/api", query, &result); err != nil {
		return decimal.Zero, err
	}
	if result.Status != "1" {
		return decimal.Zero, fmt.Errorf("%w: %s (%s)", ErrBadResponse, result.Message, result.Result)
	}
	wei, err := decimal.NewFromString(result.Result)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return wei.Shift(-tokenDecimals), nil
}
