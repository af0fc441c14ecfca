package userstate

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/denmor86/ya-exchange/internal/eventbus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

type failingStore struct {
	*MemoryStore
}

func (failingStore) Set(string, string) error {
	return errors.New("disk full")
}

func newTestState(t *testing.T) (*State, *fakeClock, *MemoryStore) {
	t.Helper()
	clock := &fakeClock{now: time.UnixMilli(1700000000000)}
	store := NewMemoryStore()
	return New(clock, store, eventbus.New()), clock, store
}

func TestCanExchange(t *testing.T) {
	testCases := []struct {
		TestName       string
		LastExchange   int64
		Elapsed        time.Duration
		ExpectedStatus CooldownStatus
	}{
		{TestName: "Never exchanged #1", LastExchange: 0, ExpectedStatus: CooldownStatus{Allowed: true}},
		{TestName: "Exactly cooldown #2", LastExchange: 1, Elapsed: 60 * time.Second, ExpectedStatus: CooldownStatus{Allowed: true}},
		{TestName: "After cooldown #3", LastExchange: 1, Elapsed: 5 * time.Minute, ExpectedStatus: CooldownStatus{Allowed: true}},
		{TestName: "Right after #4", LastExchange: 1, Elapsed: 0, ExpectedStatus: CooldownStatus{Allowed: false, RemainingSeconds: 60}},
		{TestName: "Rounded up #5", LastExchange: 1, Elapsed: 1500 * time.Millisecond, ExpectedStatus: CooldownStatus{Allowed: false, RemainingSeconds: 59}},
		{TestName: "Last millisecond #6", LastExchange: 1, Elapsed: 59999 * time.Millisecond, ExpectedStatus: CooldownStatus{Allowed: false, RemainingSeconds: 1}},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			clock := &fakeClock{}
			store := NewMemoryStore()
			if tc.LastExchange != 0 {
				last := time.UnixMilli(1700000000000)
				require.NoError(t, store.Set(LastExchangeTimeKey, "1700000000000"))
				clock.now = last.Add(tc.Elapsed)
			}

			state := New(clock, store, eventbus.New())
			assert.Equal(t, tc.ExpectedStatus, state.CanExchange())
		})
	}
}

func TestRecordExchange(t *testing.T) {
	state, clock, store := newTestState(t)

	var records []ExchangeRecord
	state.OnExchangeRecorded(func(record ExchangeRecord) {
		records = append(records, record)
	})

	require.NoError(t, state.RecordExchange())
	assert.Equal(t, CooldownStatus{Allowed: false, RemainingSeconds: 60}, state.CanExchange())
	assert.Equal(t, []ExchangeRecord{{Timestamp: 1700000000000}}, records)

	persisted, ok, err := store.Get(LastExchangeTimeKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "1700000000000", persisted)

	// новое состояние поднимает время обмена из хранилища
	restored := New(clock, store, eventbus.New())
	assert.Equal(t, int64(1700000000000), restored.LastExchangeTime())

	clock.now = clock.now.Add(time.Minute)
	assert.True(t, state.CanExchange().Allowed)
}

func TestRecordExchange_PersistError(t *testing.T) {
	clock := &fakeClock{now: time.UnixMilli(1700000000000)}
	state := New(clock, failingStore{NewMemoryStore()}, eventbus.New())

	emitted := false
	state.OnExchangeRecorded(func(ExchangeRecord) { emitted = true })

	assert.Error(t, state.RecordExchange())
	assert.True(t, emitted)
	assert.False(t, state.CanExchange().Allowed)
}

func TestNew_CorruptedValue(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set(LastExchangeTimeKey, "not a number"))

	state := New(&fakeClock{}, store, eventbus.New())
	assert.Equal(t, int64(0), state.LastExchangeTime())
	assert.True(t, state.CanExchange().Allowed)
}

func TestUpdateUserData(t *testing.T) {
	state, _, _ := newTestState(t)

	var events []UserData
	unsubscribe := state.OnUserDataUpdated(func(data UserData) {
		events = append(events, data)
	})

	email := "mda@mail.ru"
	balance := decimal.NewFromInt(100)
	state.UpdateUserData(UserDataUpdate{Balance: &balance, Email: &email})
	require.Len(t, events, 1)

	// то же значение не порождает событие
	same := decimal.RequireFromString("100.00")
	state.UpdateUserData(UserDataUpdate{Balance: &same})
	require.Len(t, events, 1)

	changed := decimal.NewFromInt(101)
	state.UpdateUserData(UserDataUpdate{Balance: &changed})
	require.Len(t, events, 2)
	assert.True(t, events[1].Balance.Equal(changed))
	assert.Equal(t, email, events[1].Email)

	assert.True(t, state.TokenBalance().Equal(changed))
	assert.Equal(t, email, state.Email())

	unsubscribe()
	other := decimal.NewFromInt(5)
	state.UpdateUserData(UserDataUpdate{Balance: &other})
	assert.Len(t, events, 2)
}

func TestSetWalletBalance(t *testing.T) {
	state, _, _ := newTestState(t)

	var balances []decimal.Decimal
	state.OnWalletBalanceUpdated(func(balance decimal.Decimal) {
		balances = append(balances, balance)
	})

	state.SetWalletBalance(decimal.RequireFromString("1.5"))
	state.SetWalletBalance(decimal.RequireFromString("1.50"))
	require.Len(t, balances, 1)
	assert.True(t, state.WalletBalance().Equal(decimal.RequireFromString("1.5")))
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store := NewFileStore(path)

	_, ok, err := store.Get(LastExchangeTimeKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(LastExchangeTimeKey, "1700000000000"))
	require.NoError(t, store.Set("theme", "dark"))

	reopened := NewFileStore(path)
	value, ok, err := reopened.Get(LastExchangeTimeKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1700000000000", value)

	state := New(&fakeClock{now: time.UnixMilli(1700000030000)}, reopened, eventbus.New())
	assert.Equal(t, CooldownStatus{Allowed: false, RemainingSeconds: 30}, state.CanExchange())
}
