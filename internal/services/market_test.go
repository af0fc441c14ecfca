package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/denmor86/ya-exchange/internal/cache"
	"github.com/denmor86/ya-exchange/internal/client"
	"github.com/denmor86/ya-exchange/internal/client/mocks"
	"github.com/denmor86/ya-exchange/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestMarket_GetPrices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockPrices := mocks.NewMockPricesService(ctrl)

	now := time.Now()
	memory := cache.NewMemoryCache(func() time.Time { return now })
	service := NewMarket(mockPrices, nil, memory, time.Minute)
	expected := &models.Prices{Bitcoin: 65000, Ethereum: 3200, Binancecoin: 580, Solana: 150}

	// второй вызов в пределах ttl обслуживается из кэша
	mockPrices.EXPECT().GetPrices(gomock.Any()).Return(expected, nil).Times(1)
	for i := 0; i < 2; i++ {
		prices, err := service.GetPrices(context.Background())
		if err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}
		if diff := cmp.Diff(expected, prices); diff != "" {
			t.Errorf("prices mismatch:\n %s", diff)
		}
	}

	now = now.Add(time.Minute)
	mockPrices.EXPECT().GetPrices(gomock.Any()).Return(nil, client.ErrServiceUnavailable)
	if _, err := service.GetPrices(context.Background()); !errors.Is(err, client.ErrServiceUnavailable) {
		t.Errorf("Expected '%v' after cache expiry, got: '%v'", client.ErrServiceUnavailable, err)
	}
}

func TestMarket_GetWalletBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockBalances := mocks.NewMockBalanceService(ctrl)

	service := NewMarket(nil, mockBalances, cache.NewMemoryCache(time.Now), time.Minute)

	mockBalances.EXPECT().GetBNBBalance(gomock.Any(), "0xAbC").Return(decimal.RequireFromString("1.5"), nil).Times(1)
	mockBalances.EXPECT().GetTokenBalance(gomock.Any(), client.USDTContract, "0xAbC").Return(decimal.NewFromInt(25), nil).Times(1)

	expected := &models.WalletBalance{Address: "0xAbC", BNB: 1.5, USDT: 25}
	for i := 0; i < 2; i++ {
		balance, err := service.GetWalletBalance(context.Background(), "0xAbC")
		if err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}
		if diff := cmp.Diff(expected, balance); diff != "" {
			t.Errorf("balance mismatch:\n %s", diff)
		}
	}

	if _, err := service.GetWalletBalance(context.Background(), ""); !errors.Is(err, ErrAddressRequired) {
		t.Errorf("Expected '%v', got: '%v'", ErrAddressRequired, err)
	}
}
