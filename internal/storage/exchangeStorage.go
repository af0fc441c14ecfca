package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/ya-exchange/internal/logger"
	"github.com/denmor86/ya-exchange/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	// списание только при достаточном балансе, иначе строка не обновится
	DebitUserBalance = `UPDATE USERS 
						SET balance = balance - $1
						WHERE id = $2 AND balance >= $1
						RETURNING email;`
	CheckUserExists = `SELECT EXISTS(SELECT 1 FROM USERS WHERE id = $1);`
	InsertExchange  = `INSERT INTO EXCHANGE_REQUESTS (id, user_email, token_amount, usdt_amount, address, status, created_at)
						VALUES ($1, $2, $3, $4, $5, $6, $7)
						RETURNING created_at;`
	CountExchanges = `SELECT COUNT(*) FROM EXCHANGE_REQUESTS
						WHERE ($1 = '' OR user_email = $1) AND ($2 = '' OR status = $2);`
	GetExchanges = `SELECT id, user_email, token_amount, usdt_amount, address, status, created_at
						FROM EXCHANGE_REQUESTS
						WHERE ($1 = '' OR user_email = $1) AND ($2 = '' OR status = $2)
						ORDER BY created_at DESC, id DESC
						LIMIT $3 OFFSET $4;`
	// статус меняется только вперёд (pending -> completed) либо остаётся прежним
	UpdateExchangeStatus = `UPDATE EXCHANGE_REQUESTS
						SET status = $2::text
						WHERE id = $1 AND (status = $2::text OR (status = 'pending' AND $2::text = 'completed'))
						RETURNING id, user_email, token_amount, usdt_amount, address, status, created_at;`
	CheckExchangeExists = `SELECT EXISTS(SELECT 1 FROM EXCHANGE_REQUESTS WHERE id = $1);`
)

type ExchangeDatabase struct {
	DB *Database
}

// Создание хранилища
func NewExchangeStorage(db *Database) ExchangeStorage {
	return &ExchangeDatabase{DB: db}
}

// CreateExchange - списание токенов с баланса и создание заявки в одной транзакции
func (s *ExchangeDatabase) CreateExchange(ctx context.Context, userID int64, exchange models.ExchangeData) (*models.ExchangeData, error) {
	// Начинаем транзакцию
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("CreateExchange. Rollback failed", "error", rbErr)
			}
		}
	}()

	// 1. Уменьшаем баланс пользователя
	err = tx.QueryRow(ctx, DebitUserBalance, exchange.TokenAmount, userID).Scan(&exchange.UserEmail)
	if errors.Is(err, pgx.ErrNoRows) {
		var exists bool
		if err = tx.QueryRow(ctx, CheckUserExists, userID).Scan(&exists); err != nil {
			return nil, fmt.Errorf("check user: %w", err)
		}
		err = ErrInsufficientBalance
		if !exists {
			err = ErrUserNotFound
		}
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("update balance: %w", err)
	}

	// 2. Добавляем заявку
	err = tx.QueryRow(
		ctx,
		InsertExchange,
		exchange.ID,
		exchange.UserEmail,
		exchange.TokenAmount,
		exchange.UsdtAmount,
		exchange.Address,
		string(exchange.Status),
		exchange.CreatedAt,
	).Scan(&exchange.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert exchange: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit failed: %w", err)
	}
	return &exchange, nil
}

// GetExchanges - страница заявок по фильтру и общее количество подходящих заявок
func (s *ExchangeDatabase) GetExchanges(ctx context.Context, filter models.ExchangeFilter) ([]models.ExchangeData, int64, error) {
	var total int64
	err := s.DB.Pool.QueryRow(ctx, CountExchanges, filter.UserEmail, string(filter.Status)).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count exchanges: %w", err)
	}

	rows, err := s.DB.Pool.Query(ctx, GetExchanges, filter.UserEmail, string(filter.Status), filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get exchanges: %w", err)
	}
	defer rows.Close()

	exchanges := make([]models.ExchangeData, 0, pageCapacity(filter.Limit, total))
	for rows.Next() {
		exchange, err := scanExchange(rows)
		if err != nil {
			return nil, 0, err
		}
		exchanges = append(exchanges, *exchange)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read exchanges: %w", err)
	}
	return exchanges, total, nil
}

// UpdateExchangeStatus - смена статуса заявки с проверкой перехода
func (s *ExchangeDatabase) UpdateExchangeStatus(ctx context.Context, id uuid.UUID, status models.ExchangeStatus) (*models.ExchangeData, error) {
	exchange, err := scanExchange(s.DB.Pool.QueryRow(ctx, UpdateExchangeStatus, id, string(status)))
	if err == nil {
		return exchange, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	// строка не обновилась: либо заявки нет, либо переход запрещён
	var exists bool
	if err := s.DB.Pool.QueryRow(ctx, CheckExchangeExists, id).Scan(&exists); err != nil {
		return nil, fmt.Errorf("check exchange: %w", err)
	}
	if !exists {
		return nil, ErrExchangeNotFound
	}
	return nil, ErrInvalidTransition
}

// pageCapacity - ёмкость под страницу: не больше строк, чем реально подходит под фильтр
func pageCapacity(limit int, total int64) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	if total < int64(limit) {
		return int(total)
	}
	return limit
}

func scanExchange(row pgx.Row) (*models.ExchangeData, error) {
	var (
		exchange models.ExchangeData
		status   string
	)
	err := row.Scan(
		&exchange.ID,
		&exchange.UserEmail,
		&exchange.TokenAmount,
		&exchange.UsdtAmount,
		&exchange.Address,
		&status,
		&exchange.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed scan exchange data: %w", err)
	}
	exchange.Status = models.ExchangeStatus(status)
	return &exchange, nil
}
