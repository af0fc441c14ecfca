package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/denmor86/ya-exchange/internal/logger"
	"github.com/denmor86/ya-exchange/internal/models"
	"github.com/denmor86/ya-exchange/internal/storage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const amountScale = 8

// maxAmount - первое значение, не помещающееся в NUMERIC(30, 8)
var maxAmount = decimal.New(1, 30-amountScale)

type Exchange struct {
	Storage      storage.IStorage
	MaxPageLimit int
}

// Создание сервиса. maxPageLimit <= 0 - без ограничения размера страницы
func NewExchange(storage storage.IStorage, maxPageLimit int) ExchangeService {
	return &Exchange{Storage: storage, MaxPageLimit: maxPageLimit}
}

// CreateExchange - списывает токены и создаёт заявку в статусе pending
func (s *Exchange) CreateExchange(ctx context.Context, session models.Session, request models.CreateExchangeRequest) (*models.ExchangeData, error) {
	tokenAmount, ok := normalizeAmount(request.TokenAmount)
	if !ok {
		return nil, ErrInvalidTokenAmount
	}
	usdtAmount, ok := normalizeAmount(request.UsdtAmount)
	if !ok {
		return nil, ErrInvalidUsdtAmount
	}
	address := strings.TrimSpace(request.Address)
	if address == "" {
		return nil, ErrAddressRequired
	}

	user, err := s.Storage.GetUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user.Balance.LessThan(tokenAmount) {
		logger.Warn("Insufficient balance", "user", user.ID, "balance", user.Balance, "amount", tokenAmount)
		return nil, ErrInsufficientBalance
	}

	exchange, err := s.Storage.CreateExchange(ctx, user.ID, models.ExchangeData{
		ID:          uuid.New(),
		UserEmail:   user.Email,
		TokenAmount: tokenAmount,
		UsdtAmount:  usdtAmount,
		Address:     address,
		Status:      models.ExchangeStatusPending,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInsufficientBalance):
			// баланс успели потратить параллельным запросом
			return nil, ErrInsufficientBalance
		case errors.Is(err, storage.ErrUserNotFound):
			return nil, ErrUserNotFound
		default:
			return nil, fmt.Errorf("failed to create exchange: %w", err)
		}
	}

	logger.Info("Exchange request created", "id", exchange.ID, "user", user.ID, "tokens", tokenAmount)
	return exchange, nil
}

// GetUserExchanges - заявки текущего пользователя по email из токена, новые первыми.
// Пустой email в фильтре означает выборку всех заявок, поэтому такая сессия отклоняется
func (s *Exchange) GetUserExchanges(ctx context.Context, session models.Session, page models.PageRequest) (*models.ExchangePage, error) {
	email := strings.TrimSpace(session.Email)
	if email == "" {
		return nil, ErrUserNotFound
	}
	return s.getPage(ctx, models.ExchangeFilter{UserEmail: email}, page)
}

// GetExchangeRequests - все заявки с необязательным фильтром по статусу
func (s *Exchange) GetExchangeRequests(ctx context.Context, status string, page models.PageRequest) (*models.ExchangePage, error) {
	filter := models.ExchangeFilter{Status: models.ExchangeStatus(status)}
	if status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	return s.getPage(ctx, filter, page)
}

// UpdateExchangeStatus - смена статуса заявки администратором
func (s *Exchange) UpdateExchangeStatus(ctx context.Context, request models.UpdateExchangeStatusRequest) (*models.ExchangeData, error) {
	id, err := uuid.Parse(request.TransactionID)
	if err != nil {
		return nil, ErrInvalidTransactionID
	}
	status := models.ExchangeStatus(request.Status)
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	exchange, err := s.Storage.UpdateExchangeStatus(ctx, id, status)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrExchangeNotFound):
			return nil, ErrExchangeNotFound
		case errors.Is(err, storage.ErrInvalidTransition):
			return nil, ErrInvalidTransition
		default:
			return nil, fmt.Errorf("failed to update exchange status: %w", err)
		}
	}
	logger.Info("Exchange status updated", "id", id, "status", status)
	return exchange, nil
}

func (s *Exchange) getPage(ctx context.Context, filter models.ExchangeFilter, page models.PageRequest) (*models.ExchangePage, error) {
	page = s.normalizePage(page)
	filter.Limit = page.Limit
	filter.Offset = pageOffset(page)

	exchanges, total, err := s.Storage.GetExchanges(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get exchanges: %w", err)
	}
	return &models.ExchangePage{
		Transactions: exchanges,
		Pagination: models.Pagination{
			Total: total,
			Page:  page.Page,
			Limit: page.Limit,
			Pages: PageCount(total, page.Limit),
		},
	}, nil
}

func (s *Exchange) normalizePage(page models.PageRequest) models.PageRequest {
	if page.Page < 1 {
		page.Page = 1
	}
	if page.Limit < 1 {
		page.Limit = 1
	}
	if s.MaxPageLimit > 0 && page.Limit > s.MaxPageLimit {
		page.Limit = s.MaxPageLimit
	}
	return page
}

// pageOffset - смещение страницы, при переполнении int упирается в math.MaxInt
func pageOffset(page models.PageRequest) int {
	if page.Page-1 > math.MaxInt/page.Limit {
		return math.MaxInt
	}
	return (page.Page - 1) * page.Limit
}

// normalizeAmount - сумма в точности колонок хранилища (NUMERIC(30, 8)).
// Суммы, которые после округления равны нулю или не помещаются в колонку, недопустимы
func normalizeAmount(value float64) (decimal.Decimal, bool) {
	amount := decimal.NewFromFloat(value).Round(amountScale)
	if !amount.IsPositive() || amount.GreaterThanOrEqual(maxAmount) {
		return decimal.Zero, false
	}
	return amount, true
}

// PageCount - ceil(total/limit)
func PageCount(total int64, limit int) int {
	if limit < 1 || total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
