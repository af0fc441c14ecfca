package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/ya-exchange/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	InsertUser = `INSERT INTO USERS (id, email, password_hash, role) 
						VALUES ($1, $2, $3, $4) 
						ON CONFLICT (email) DO NOTHING
						RETURNING id;`
	GetUserByID       = `SELECT id, email, password_hash, address, balance, role, created_at FROM USERS WHERE id=$1;`
	GetUserByEmail    = `SELECT id, email, password_hash, address, balance, role, created_at FROM USERS WHERE email=$1;`
	UpdateUserAddress = `UPDATE USERS SET address = $1 WHERE id = $2
						RETURNING id, email, password_hash, address, balance, role, created_at;`
)

type UserDatabase struct {
	DB *Database
}

// Создание хранилища
func NewUsersStorage(db *Database) UsersStorage {
	return &UserDatabase{DB: db}
}

// AddUser - добавление пользователя. Email уникален, id генерирует вызывающий
func (s *UserDatabase) AddUser(ctx context.Context, user models.UserData) error {
	var id int64
	err := s.DB.Pool.QueryRow(ctx, InsertUser, user.ID, user.Email, user.PasswordHash, user.Role).Scan(&id)

	// Успешное добавление
	if err == nil {
		return nil
	}

	// ON CONFLICT (email) DO NOTHING не возвращает строк
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrAlreadyExists
	}

	// Нарушение уникальности по первичному ключу - занят id
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == "users_email_key" {
			return ErrAlreadyExists
		}
		return ErrIDTaken
	}

	// Все остальные ошибки
	return fmt.Errorf("failed to add user: %w", err)
}

func (s *UserDatabase) GetUserByID(ctx context.Context, id int64) (*models.UserData, error) {
	return scanUser(s.DB.Pool.QueryRow(ctx, GetUserByID, id))
}

func (s *UserDatabase) GetUserByEmail(ctx context.Context, email string) (*models.UserData, error) {
	return scanUser(s.DB.Pool.QueryRow(ctx, GetUserByEmail, email))
}

// UpdateUserAddress - смена адреса выплат, возвращает обновлённого пользователя
func (s *UserDatabase) UpdateUserAddress(ctx context.Context, id int64, address string) (*models.UserData, error) {
	return scanUser(s.DB.Pool.QueryRow(ctx, UpdateUserAddress, address, id))
}

func scanUser(row pgx.Row) (*models.UserData, error) {
	var user models.UserData
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Address,
		&user.Balance,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}
