package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/denmor86/ya-exchange/internal/client/mocks"
	"github.com/denmor86/ya-exchange/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newResponse(status int, body string, headers http.Header) *http.Response {
	if headers == nil {
		headers = http.Header{}
	}
	return &http.Response{
		StatusCode: status,
		Header:     headers,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestPriceClient_GetPrices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockHTTP := mocks.NewMockHTTPClient(ctrl)

	testCases := []struct {
		TestName       string
		SetupMocks     func()
		ExpectedPrices *models.Prices
		ExpectedError  error
	}{
		{
			TestName: "Success #1",
			SetupMocks: func() {
				mockHTTP.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
					if req.URL.Path != "/api/v3/simple/price" {
						t.Errorf("Unexpected path: '%s'", req.URL.Path)
					}
					if ids := req.URL.Query().Get("ids"); ids != "bitcoin,ethereum,binancecoin,solana" {
						t.Errorf("Unexpected ids: '%s'", ids)
					}
					return newResponse(http.StatusOK, `{"bitcoin":{"usd":65000.5},"ethereum":{"usd":3200},"binancecoin":{"usd":580},"solana":{"usd":150.25}}`, nil), nil
				})
			},
			ExpectedPrices: &models.Prices{Bitcoin: 65000.5, Ethereum: 3200, Binancecoin: 580, Solana: 150.25},
		},
		{
			TestName: "Service error #2",
			SetupMocks: func() {
				mockHTTP.EXPECT().Do(gomock.Any()).Return(newResponse(http.StatusBadGateway, "", nil), nil)
			},
			ExpectedError: ErrServiceUnavailable,
		},
		{
			TestName: "Transport error #3",
			SetupMocks: func() {
				mockHTTP.EXPECT().Do(gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			ExpectedError: ErrServiceUnavailable,
		},
		{
			TestName: "Broken body #4",
			SetupMocks: func() {
				mockHTTP.EXPECT().Do(gomock.Any()).Return(newResponse(http.StatusOK, `{"bitcoin":`, nil), nil)
			},
			ExpectedError: ErrBadResponse,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()
			client := NewPriceClient("http://prices", mockHTTP, nil)

			prices, err := client.GetPrices(context.Background())
			if tc.ExpectedError != nil {
				if !errors.Is(err, tc.ExpectedError) {
					t.Fatalf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got: '%v'", err)
			}
			if diff := cmp.Diff(tc.ExpectedPrices, prices); diff != "" {
				t.Errorf("prices mismatch:\n %s", diff)
			}
		})
	}
}

func TestPriceClient_RateLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockHTTP := mocks.NewMockHTTPClient(ctrl)

	headers := http.Header{}
	headers.Set("Retry-After", "30")
	mockHTTP.EXPECT().Do(gomock.Any()).Return(newResponse(http.StatusTooManyRequests, "", headers), nil).Times(1)

	client := NewPriceClient("http://prices", mockHTTP, NewRateLimiter(0, 1))

	_, err := client.GetPrices(context.Background())
	var rateErr *RateLimitError
	if !errors.As(err, &rateErr) {
		t.Fatalf("Expected RateLimitError, got: '%v'", err)
	}
	if rateErr.RetryAfter != 30*time.Second {
		t.Errorf("Expected retry after 30s, got: %v", rateErr.RetryAfter)
	}

	// повторный запрос не доходит до сервиса
	_, err = client.GetPrices(context.Background())
	if !errors.As(err, &rateErr) {
		t.Fatalf("Expected RateLimitError while blocked, got: '%v'", err)
	}
}

func TestBscScanClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockHTTP := mocks.NewMockHTTPClient(ctrl)

	client := NewBscScanClient("http://bscscan", "key", mockHTTP, nil)

	t.Run("BNB balance #1", func(t *testing.T) {
		mockHTTP.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
			query := req.URL.Query()
			if query.Get("action") != "balance" || query.Get("address") != "0xabc" || query.Get("apikey") != "key" {
				t.Errorf("Unexpected query: '%s'", req.URL.RawQuery)
			}
			return newResponse(http.StatusOK, `{"status":"1","message":"OK","result":"1500000000000000000"}`, nil), nil
		})

		balance, err := client.GetBNBBalance(context.Background(), "0xabc")
		if err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}
		if !balance.Equal(decimal.RequireFromString("1.5")) {
			t.Errorf("Expected 1.5, got: %s", balance)
		}
	})

	t.Run("Token balance #2", func(t *testing.T) {
		mockHTTP.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
			if contract := req.URL.Query().Get("contractaddress"); contract != USDTContract {
				t.Errorf("Unexpected contract: '%s'", contract)
			}
			return newResponse(http.StatusOK, `{"status":"1","message":"OK","result":"25000000000000000000"}`, nil), nil
		})

		balance, err := client.GetTokenBalance(context.Background(), USDTContract, "0xabc")
		if err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}
		if !balance.Equal(decimal.NewFromInt(25)) {
			t.Errorf("Expected 25, got: %s", balance)
		}
	})

	t.Run("Error status #3", func(t *testing.T) {
		mockHTTP.EXPECT().Do(gomock.Any()).Return(newResponse(http.StatusOK, `{"status":"0","message":"NOTOK","result":"Invalid address format"}`, nil), nil)

		_, err := client.GetBNBBalance(context.Background(), "bad")
		if !errors.Is(err, ErrBadResponse) {
			t.Errorf("Expected '%v', got: '%v'", ErrBadResponse, err)
		}
	})
}

func TestParseRetryAfter(t *testing.T) {
	testCases := []struct {
		TestName string
		Value    string
		Expected time.Duration
	}{
		{TestName: "Seconds #1", Value: "120", Expected: 2 * time.Minute},
		{TestName: "Empty #2", Value: "", Expected: time.Minute},
		{TestName: "Garbage #3", Value: "soon", Expected: time.Minute},
	}
	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			headers := http.Header{}
			if tc.Value != "" {
				headers.Set("Retry-After", tc.Value)
			}
			if got := ParseRetryAfter(headers); got != tc.Expected {
				t.Errorf("Expected %v, got: %v", tc.Expected, got)
			}
		})
	}
}
