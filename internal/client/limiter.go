package client

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter - ограничитель исходящих запросов с блокировкой по Retry-After
type RateLimiter struct {
	limiter *rate.Limiter
	limit   rate.Limit
	mu      sync.Mutex
	blocked time.Time
}

// NewRateLimiter - perSecond <= 0 означает отсутствие ограничения
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(limit, burst),
		limit:   limit,
	}
}

// Wait - ожидание разрешения на запрос. Во время блокировки сразу возвращает ошибку
func (rl *RateLimiter) Wait(ctx context.Context) error {
	rl.mu.Lock()
	blocked := rl.blocked
	rl.mu.Unlock()

	if wait := time.Until(blocked); wait > 0 {
		return &RateLimitError{RetryAfter: wait}
	}
	return rl.limiter.Wait(ctx)
}

// BlockFor - запрет запросов на duration, затем исходный лимит
func (rl *RateLimiter) BlockFor(duration time.Duration) {
	rl.mu.Lock()
	rl.blocked = time.Now().Add(duration)
	rl.limiter.SetLimit(0)
	rl.mu.Unlock()

	time.AfterFunc(duration, func() {
		rl.mu.Lock()
		rl.limiter.SetLimit(rl.limit)
		rl.mu.Unlock()
	})
}

func ParseRetryAfter(headers http.Header) time.Duration {
	retryAfter := headers.Get("Retry-After")
	if retryAfter == "" {
		return time.Minute
	}

	if seconds, err := strconv.Atoi(retryAfter); err == nil {
		return time.Duration(seconds) * time.Second
	}

	if t, err := http.ParseTime(retryAfter); err == nil {
		return time.Until(t)
	}

	return time.Minute
}
