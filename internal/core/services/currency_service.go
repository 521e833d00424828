package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/SscSPs/currency_exchange_app/internal/validation"
	"github.com/google/uuid"
)

type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
	validator    *validation.Validator
}

// NewCurrencyService creates a new currency service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade, validator *validation.Validator) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo, validator: validator}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	req.Normalize()
	if err := s.validator.ValidateCurrency(req.Code, req.Name, req.Sign); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	currency := domain.Currency{
		ID:       uuid.NewString(),
		Code:     req.Code,
		FullName: req.Name,
		Sign:     req.Sign,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	saved, err := s.currencyRepo.SaveCurrency(ctx, currency)
	if err != nil {
		s.LogError(ctx, err, "Failed to save currency", slog.String("code", req.Code))
		return nil, fmt.Errorf("failed to create currency in service: %w", err)
	}

	s.LogInfo(ctx, "Currency created", slog.String("code", saved.Code), slog.String("id", saved.ID))
	return saved, nil
}

func (s *currencyService) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	code = dto.NormalizeCode(code)
	if err := s.validator.ValidateCurrencyCode(code); err != nil {
		return nil, err
	}

	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	return currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

func (s *currencyService) DeleteCurrency(ctx context.Context, code string) error {
	currency, err := s.GetCurrencyByCode(ctx, code)
	if err != nil {
		return err
	}

	if err := s.currencyRepo.DeleteCurrency(ctx, currency.ID); err != nil {
		s.LogError(ctx, err, "Failed to delete currency", slog.String("code", currency.Code))
		return fmt.Errorf("failed to delete currency in service: %w", err)
	}

	s.LogInfo(ctx, "Currency deleted", slog.String("code", currency.Code))
	return nil
}
