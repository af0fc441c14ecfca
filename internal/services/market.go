package services

import (
	"context"
	"strings"
	"time"

	"github.com/denmor86/ya-exchange/internal/cache"
	"github.com/denmor86/ya-exchange/internal/client"
	"github.com/denmor86/ya-exchange/internal/logger"
	"github.com/denmor86/ya-exchange/internal/models"
)

const (
	pricesCacheKey       = "market:prices"
	walletCacheKeyPrefix = "market:wallet:"
)

type Market struct {
	Prices   client.PricesService
	Balances client.BalanceService
	Cache    cache.Cache
	TTL      time.Duration
}

// Создание сервиса рыночных данных
func NewMarket(prices client.PricesService, balances client.BalanceService, cache cache.Cache, ttl time.Duration) MarketService {
	return &Market{Prices: prices, Balances: balances, Cache: cache, TTL: ttl}
}

// GetPrices - цены из кэша, при промахе запрос во внешний сервис
func (m *Market) GetPrices(ctx context.Context) (*models.Prices, error) {
	var prices models.Prices
	if m.fromCache(ctx, pricesCacheKey, &prices) {
		return &prices, nil
	}
	return m.RefreshPrices(ctx)
}

// RefreshPrices - запрос цен в обход кэша с обновлением кэша
func (m *Market) RefreshPrices(ctx context.Context) (*models.Prices, error) {
	prices, err := m.Prices.GetPrices(ctx)
	if err != nil {
		return nil, err
	}
	m.toCache(ctx, pricesCacheKey, prices)
	return prices, nil
}

// GetWalletBalance - балансы BNB и USDT кошелька
func (m *Market) GetWalletBalance(ctx context.Context, address string) (*models.WalletBalance, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, ErrAddressRequired
	}
	key := walletCacheKeyPrefix + strings.ToLower(address)

	var balance models.WalletBalance
	if m.fromCache(ctx, key, &balance) {
		return &balance, nil
	}

	bnb, err := m.Balances.GetBNBBalance(ctx, address)
	if err != nil {
		return nil, err
	}
	usdt, err := m.Balances.GetTokenBalance(ctx, client.USDTContract, address)
	if err != nil {
		return nil, err
	}

	balance = models.WalletBalance{Address: address, BNB: bnb.InexactFloat64(), USDT: usdt.InexactFloat64()}
	m.toCache(ctx, key, balance)
	return &balance, nil
}

// fromCache - ошибки кэша не мешают запросу, только логируются
func (m *Market) fromCache(ctx context.Context, key string, dest interface{}) bool {
	found, err := m.Cache.Get(ctx, key, dest)
	if err != nil {
		logger.Warn("Cache read failed", "key", key, "error", err)
		return false
	}
	return found
}

func (m *Market) toCache(ctx context.Context, key string, value interface{}) {
	if err := m.Cache.Set(ctx, key, value, m.TTL); err != nil {
		logger.Warn("Cache write failed", "key", key, "error", err)
	}
}
