package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/denmor86/ya-exchange/internal/cache"
	"github.com/denmor86/ya-exchange/internal/client"
	"github.com/denmor86/ya-exchange/internal/config"
	"github.com/denmor86/ya-exchange/internal/logger"
	"github.com/denmor86/ya-exchange/internal/network/router"
	"github.com/denmor86/ya-exchange/internal/services"
	"github.com/denmor86/ya-exchange/internal/storage"
	"github.com/denmor86/ya-exchange/internal/worker"
	"go.uber.org/multierr"
)

const (
	initTimeout     = 30 * time.Second
	shutdownTimeout = 5 * time.Second

	// бесплатные тарифы: CoinGecko ~30 запросов в минуту, BscScan 5 в секунду
	pricesPerSecond  = 0.5
	balancePerSecond = 5
)

func Run(cfg config.Config) (err error) {
	if err := cfg.Validate(); err != nil {
		return err
	}

	db, err := storage.NewDatabase(cfg.Server.DatabaseDSN)
	if err != nil {
		return err
	}
	initCtx, initCancel := context.WithTimeout(context.Background(), initTimeout)
	defer initCancel()
	if err := db.Initialize(initCtx); err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	store := storage.NewStorage(db)

	marketCache := cache.NewCache(cfg.Market.RedisAddr)
	defer func() {
		err = multierr.Combine(err, marketCache.Close(), db.Close())
	}()

	httpClient := &http.Client{Timeout: cfg.Market.RequestTimeout}
	prices := client.NewPriceClient(cfg.Market.PriceAPIAddr, httpClient, client.NewRateLimiter(pricesPerSecond, 5))
	balances := client.NewBscScanClient(cfg.Market.BscScanAPIAddr, cfg.Market.BscScanAPIKey, httpClient, client.NewRateLimiter(balancePerSecond, 5))

	identity := services.NewIdentity(cfg.Server, store)
	exchange := services.NewExchange(store, cfg.Server.MaxPageLimit)
	settings := services.NewSettings(store)
	market := services.NewMarket(prices, balances, marketCache, cfg.Market.CacheTTL)

	r := router.NewRouter(cfg.Server, identity, exchange, settings, market)
	server := &http.Server{
		Addr:    cfg.Server.ListenAddr,
		Handler: r.HandleRouter(),
	}

	// фоновое обновление кэша цен
	priceWorker := worker.NewPriceWorker(market, cfg.Market.PollInterval)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	priceWorker.Start(ctx)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "address", cfg.Server.ListenAddr, "redis", cfg.Market.RedisAddr != "")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	var listenErr error
	select {
	case <-stop:
		logger.Info("Shutdown server")
	case listenErr = <-serverErr:
		logger.Error("error listen server", "error", listenErr)
	}
	priceWorker.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutdown server", "error", err)
		listenErr = multierr.Append(listenErr, err)
	}
	logger.Info("Server stopped")
	return listenErr
}
