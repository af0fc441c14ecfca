package services

import (
	"context"
	"fmt"

	"github.com/denmor86/ya-exchange/internal/logger"
	"github.com/denmor86/ya-exchange/internal/storage"
	"github.com/shopspring/decimal"
)

type Settings struct {
	Storage storage.SettingsStorage
}

// Создание сервиса
func NewSettings(storage storage.SettingsStorage) SettingsService {
	return &Settings{Storage: storage}
}

// GetCourse - текущий курс, при первом чтении создаётся значение по умолчанию
func (s *Settings) GetCourse(ctx context.Context) (decimal.Decimal, error) {
	course, err := s.Storage.GetCourse(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get course: %w", err)
	}
	return course, nil
}

func (s *Settings) SetCourse(ctx context.Context, course float64) (decimal.Decimal, error) {
	value := decimal.NewFromFloat(course)
	if !value.IsPositive() {
		return decimal.Zero, ErrInvalidCourse
	}
	if err := s.Storage.SetCourse(ctx, value); err != nil {
		return decimal.Zero, fmt.Errorf("failed to set course: %w", err)
	}
	logger.Info("Course updated", "course", value)
	return value, nil
}
