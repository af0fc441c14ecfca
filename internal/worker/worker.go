package worker

import (
	"context"
	"sync"
	"time"

	"github.com/denmor86/ya-exchange/internal/logger"
	"github.com/denmor86/ya-exchange/internal/services"
	"github.com/sony/gobreaker"
)

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "market-prices",
		Timeout: 30 * time.Second, // через 30 сек пробуем подключиться
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// 5 неудачных обновлений подряд
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	})
}

// PriceWorker - фоновое обновление кэша рыночных цен
type PriceWorker struct {
	Market       services.MarketService
	Breaker      *gobreaker.CircuitBreaker
	WaitGroup    sync.WaitGroup
	QuitChan     chan struct{}
	PollInterval time.Duration
}

// NewPriceWorker - конструктор воркера обновления цен
func NewPriceWorker(market services.MarketService, pollInterval time.Duration) *PriceWorker {
	return &PriceWorker{
		Market:       market,
		Breaker:      InitCircuitBreaker(),
		QuitChan:     make(chan struct{}),
		PollInterval: pollInterval,
	}
}

// Start - запускает воркер в фоне
func (w *PriceWorker) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - корректно останавливает воркер
func (w *PriceWorker) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

// Run - основной цикл, первое обновление сразу после старта
func (w *PriceWorker) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	w.RefreshPrices(ctx)
	for {
		select {
		case <-w.QuitChan:
			logger.Info("PriceWorker signal stop")
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.RefreshPrices(ctx)
		}
	}
}

// RefreshPrices - одно обновление кэша через circuit breaker
func (w *PriceWorker) RefreshPrices(ctx context.Context) {
	if w.Breaker.State() == gobreaker.StateOpen {
		logger.Warn("Price service unavailable. Waiting...", "breaker", w.Breaker.Name())
		return
	}

	_, err := w.Breaker.Execute(func() (interface{}, error) {
		return w.Market.RefreshPrices(ctx)
	})
	if err != nil {
		logger.Error("Error refreshing prices", "error", err)
	}
}
