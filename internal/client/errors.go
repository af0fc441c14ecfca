package client

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	ErrServiceUnavailable = errors.New("market service unavailable")
	ErrBadResponse        = errors.New("unexpected market service response")
)

// RateLimitError - внешний сервис ответил 429
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry after %s", e.RetryAfter)
}

func NewRateLimitError(headers http.Header) *RateLimitError {
	return &RateLimitError{
		RetryAfter: ParseRetryAfter(headers),
	}
}
