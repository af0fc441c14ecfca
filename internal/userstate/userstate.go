// Package userstate - клиентское состояние пользователя: баланс, адрес кошелька
// и пауза между заявками на обмен. Библиотека для Go-клиентов API, сервер её не использует.
package userstate

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/denmor86/ya-exchange/internal/eventbus"
	"github.com/denmor86/ya-exchange/internal/logger"
	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// События состояния пользователя
const (
	EventUserDataUpdated      = "user-data-updated"
	EventWalletBalanceUpdated = "wallet-balance-updated"
	EventExchangeRecorded     = "exchange-recorded"
)

const (
	// ключ хранилища с временем последнего обмена, мс
	LastExchangeTimeKey = "last_exchange_time"
	// пауза между обменами
	ExchangeCooldown = 60 * time.Second
)

// Clock - источник текущего времени
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// UserData - снимок данных пользователя в событии user-data-updated
type UserData struct {
	Balance decimal.Decimal `json:"balance"`
	Email   string          `json:"email"`
}

// ExchangeRecord - событие exchange-recorded
type ExchangeRecord struct {
	Timestamp int64 `json:"timestamp"`
}

// UserDataUpdate - частичное обновление, nil поля не меняются
type UserDataUpdate struct {
	Balance *decimal.Decimal
	Email   *string
}

// CooldownStatus - результат проверки паузы между обменами
type CooldownStatus struct {
	Allowed          bool `json:"allowed"`
	RemainingSeconds int  `json:"remainingSeconds"`
}

// State - баланс и пауза между обменами на стороне клиента
type State struct {
	mu    sync.RWMutex
	clock Clock
	store KeyValueStore
	bus   *eventbus.Bus

	tokenBalance     decimal.Decimal
	walletBalance    decimal.Decimal
	email            string
	lastExchangeTime int64
}

// New - состояние с временем последнего обмена из хранилища (0, если его нет)
func New(clock Clock, store KeyValueStore, bus *eventbus.Bus) *State {
	s := &State{clock: clock, store: store, bus: bus}
	s.lastExchangeTime = s.loadLastExchangeTime()
	return s
}

func (s *State) loadLastExchangeTime() int64 {
	raw, ok, err := s.store.Get(LastExchangeTimeKey)
	if err != nil {
		logger.Warn("Failed to read last exchange time", "error", err)
		return 0
	}
	if !ok {
		return 0
	}
	var value int64
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		logger.Warn("Failed to parse last exchange time", "value", raw, "error", err)
		return 0
	}
	return value
}

func (s *State) TokenBalance() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokenBalance
}

func (s *State) WalletBalance() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.walletBalance
}

func (s *State) Email() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.email
}

// LastExchangeTime - время последнего обмена в мс, 0 - обменов не было
func (s *State) LastExchangeTime() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastExchangeTime
}

// UpdateUserData - применяет изменившиеся поля и при изменениях рассылает полный снимок
func (s *State) UpdateUserData(update UserDataUpdate) {
	s.mu.Lock()
	updated := false
	if update.Balance != nil && !s.tokenBalance.Equal(*update.Balance) {
		s.tokenBalance = *update.Balance
		updated = true
	}
	if update.Email != nil && s.email != *update.Email {
		s.email = *update.Email
		updated = true
	}
	snapshot := UserData{Balance: s.tokenBalance, Email: s.email}
	s.mu.Unlock()

	if updated {
		s.bus.Emit(EventUserDataUpdated, snapshot)
	}
}

func (s *State) SetWalletBalance(balance decimal.Decimal) {
	s.mu.Lock()
	changed := !s.walletBalance.Equal(balance)
	s.walletBalance = balance
	s.mu.Unlock()

	if changed {
		s.bus.Emit(EventWalletBalanceUpdated, balance)
	}
}

// RecordExchange - фиксирует обмен текущим временем. Ошибка сохранения не отменяет событие
func (s *State) RecordExchange() error {
	now := s.clock.Now().UnixMilli()

	s.mu.Lock()
	s.lastExchangeTime = now
	s.mu.Unlock()

	err := s.store.Set(LastExchangeTimeKey, strconv.FormatInt(now, 10))
	if err != nil {
		logger.Error("Failed to persist last exchange time", "error", err)
		err = fmt.Errorf("failed to persist last exchange time: %w", err)
	}

	s.bus.Emit(EventExchangeRecorded, ExchangeRecord{Timestamp: now})
	return err
}

// CanExchange - разрешён ли обмен и сколько секунд осталось (с округлением вверх)
func (s *State) CanExchange() CooldownStatus {
	last := s.LastExchangeTime()
	if last == 0 {
		return CooldownStatus{Allowed: true}
	}

	cooldownMs := ExchangeCooldown.Milliseconds()
	elapsedMs := s.clock.Now().UnixMilli() - last
	if elapsedMs >= cooldownMs {
		return CooldownStatus{Allowed: true}
	}

	remainingMs := cooldownMs - elapsedMs
	return CooldownStatus{
		Allowed:          false,
		RemainingSeconds: int((remainingMs + 999) / 1000),
	}
}

func (s *State) OnUserDataUpdated(callback func(UserData)) func() {
	return s.bus.On(EventUserDataUpdated, func(payload interface{}) {
		callback(payload.(UserData))
	})
}

func (s *State) OnWalletBalanceUpdated(callback func(decimal.Decimal)) func() {
	return s.bus.On(EventWalletBalanceUpdated, func(payload interface{}) {
		callback(payload.(decimal.Decimal))
	})
}

func (s *State) OnExchangeRecorded(callback func(ExchangeRecord)) func() {
	return s.bus.On(EventExchangeRecorded, func(payload interface{}) {
		callback(payload.(ExchangeRecord))
	})
}
