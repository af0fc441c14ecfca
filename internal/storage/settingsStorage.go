package storage

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	// настройки - единственная строка, создаётся при первом чтении
	EnsureSettings = `INSERT INTO SETTINGS (id, course) VALUES (1, 1) ON CONFLICT (id) DO NOTHING;`
	GetCourse      = `SELECT course FROM SETTINGS WHERE id = 1;`
	SetCourse      = `INSERT INTO SETTINGS (id, course) VALUES (1, $1)
						ON CONFLICT (id) DO UPDATE SET course = EXCLUDED.course;`
)

type SettingsDatabase struct {
	DB *Database
}

// Создание хранилища
func NewSettingsStorage(db *Database) SettingsStorage {
	return &SettingsDatabase{DB: db}
}

func (s *SettingsDatabase) GetCourse(ctx context.Context) (decimal.Decimal, error) {
	if _, err := s.DB.Pool.Exec(ctx, EnsureSettings); err != nil {
		return decimal.Zero, fmt.Errorf("failed to create settings: %w", err)
	}
	var course decimal.Decimal
	if err := s.DB.Pool.QueryRow(ctx, GetCourse).Scan(&course); err != nil {
		return decimal.Zero, fmt.Errorf("failed to get course: %w", err)
	}
	return course, nil
}

func (s *SettingsDatabase) SetCourse(ctx context.Context, course decimal.Decimal) error {
	if _, err := s.DB.Pool.Exec(ctx, SetCourse, course); err != nil {
		return fmt.Errorf("failed to set course: %w", err)
	}
	return nil
}
