package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/compasshq/erp-api/internal/domain/entity"
	"github.com/compasshq/erp-api/internal/domain/repository"
)

// SettingsService handles settings-related business logic
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
	}
}

// GetSettings retrieves user settings, creating defaults if not exists
func (s *SettingsService) GetSettings(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	settings, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// If no settings exist, create default settings
	if settings == nil {
		settings = &entity.UserSettings{
			UserID:             userID,
			Language:           "en",
			Timezone:           "UTC",
			Currency:           "USD",
			DateFormat:         "YYYY-MM-DD",
			EmailNotifications: true,
			InvoiceReminders:   true,
			PaymentAlerts:      true,
			Theme:              "light",
		}
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

// UpdateSettingsInput represents the input for updating settings
type UpdateSettingsInput struct {
	UserID             uuid.UUID
	Language           string
	Timezone           string
	Currency           string
	DateFormat         string
	EmailNotifications bool
	InvoiceReminders   bool
	PaymentAlerts      bool
	Theme              string
}

// UpdateSettings updates user settings
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.UserSettings, error) {
	settings, err := s.settingsRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	// If no settings exist, create new
	if settings == nil {
		settings = &entity.UserSettings{
			UserID: input.UserID,
		}
	}

	settings.Language = input.Language
	settings.Timezone = input.Timezone
	settings.Currency = input.Currency
	settings.DateFormat = input.DateFormat
	settings.EmailNotifications = input.EmailNotifications
	settings.InvoiceReminders = input.InvoiceReminders
	settings.PaymentAlerts = input.PaymentAlerts
	settings.Theme = input.Theme

	if settings.ID == uuid.Nil {
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	} else {
		if err := s.settingsRepo.Update(ctx, settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}
