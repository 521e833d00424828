package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/SscSPs/currency_exchange_app/internal/validation"
	"github.com/google/uuid"
)

// exchangeRateService manages stored exchange rates. Synthesized rates never
// reach it: every rate it reads or writes is a stored row.
type exchangeRateService struct {
	BaseService
	rateRepo  portsrepo.ExchangeRateRepositoryFacade
	validator *validation.Validator
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, validator *validation.Validator) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{rateRepo: rateRepo, validator: validator}
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

// CreateExchangeRate handles the creation of a new exchange rate.
func (s *exchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error) {
	req.Normalize()
	rate, err := s.validator.ValidateExchangeRate(req.BaseCurrencyCode, req.TargetCurrencyCode, req.Rate)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	newRate := domain.ExchangeRate{
		ID:             uuid.NewString(),
		BaseCurrency:   domain.Currency{Code: req.BaseCurrencyCode},
		TargetCurrency: domain.Currency{Code: req.TargetCurrencyCode},
		Rate:           rate,
		Origin:         domain.OriginPersisted,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	saved, err := s.rateRepo.SaveExchangeRate(ctx, newRate)
	if err != nil {
		s.LogError(ctx, err, "Failed to save exchange rate",
			slog.String("base", req.BaseCurrencyCode),
			slog.String("target", req.TargetCurrencyCode))
		return nil, fmt.Errorf("failed to create exchange rate in service: %w", err)
	}

	s.LogInfo(ctx, "Exchange rate created", slog.String("pair", saved.Pair().String()), slog.String("id", saved.ID))
	return saved, nil
}

// GetExchangeRate retrieves the stored rate of a pair such as "USDEUR".
func (s *exchangeRateService) GetExchangeRate(ctx context.Context, pair string) (*domain.ExchangeRate, error) {
	p, err := s.parsePair(pair)
	if err != nil {
		return nil, err
	}

	rate, err := s.rateRepo.FindExchangeRateByCodes(ctx, p.Base, p.Target)
	if err != nil {
		return nil, fmt.Errorf("failed to get exchange rate in service: %w", err)
	}
	return rate, nil
}

func (s *exchangeRateService) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.ListExchangeRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates in service: %w", err)
	}
	if rates == nil {
		return []domain.ExchangeRate{}, nil
	}
	return rates, nil
}

func (s *exchangeRateService) UpdateExchangeRate(ctx context.Context, pair string, req dto.UpdateExchangeRateRequest) (*domain.ExchangeRate, error) {
	p, err := s.parsePair(pair)
	if err != nil {
		return nil, err
	}
	rate, err := s.validator.ValidateRateUpdate(req.Rate)
	if err != nil {
		return nil, err
	}

	existing, err := s.storedRate(ctx, p)
	if err != nil {
		return nil, err
	}

	updated, err := s.rateRepo.UpdateExchangeRate(ctx, existing.ID, rate)
	if err != nil {
		s.LogError(ctx, err, "Failed to update exchange rate", slog.String("pair", p.String()))
		return nil, fmt.Errorf("failed to update exchange rate in service: %w", err)
	}

	s.LogInfo(ctx, "Exchange rate updated", slog.String("pair", p.String()), slog.String("rate", rate.String()))
	return updated, nil
}

func (s *exchangeRateService) DeleteExchangeRate(ctx context.Context, pair string) error {
	p, err := s.parsePair(pair)
	if err != nil {
		return err
	}

	existing, err := s.storedRate(ctx, p)
	if err != nil {
		return err
	}

	if err := s.rateRepo.DeleteExchangeRate(ctx, existing.ID); err != nil {
		s.LogError(ctx, err, "Failed to delete exchange rate", slog.String("pair", p.String()))
		return fmt.Errorf("failed to delete exchange rate in service: %w", err)
	}

	s.LogInfo(ctx, "Exchange rate deleted", slog.String("pair", p.String()))
	return nil
}

// storedRate loads the row of a pair and refuses anything that is not a stored row.
func (s *exchangeRateService) storedRate(ctx context.Context, p domain.CurrencyPair) (*domain.ExchangeRate, error) {
	existing, err := s.rateRepo.FindExchangeRateByCodes(ctx, p.Base, p.Target)
	if err != nil {
		return nil, fmt.Errorf("failed to get exchange rate in service: %w", err)
	}
	if !existing.IsPersisted() {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("Invalid parameter - exchange rate '%s' - '%s' is derived and cannot be modified", p.Base, p.Target))
	}
	return existing, nil
}

func (s *exchangeRateService) parsePair(pair string) (domain.CurrencyPair, error) {
	if dto.NormalizeCode(pair) == "" {
		return domain.CurrencyPair{}, apperrors.NewValidationError("Missing parameter - currency pair")
	}
	p, err := domain.ParseCurrencyPair(pair)
	if err != nil {
		return domain.CurrencyPair{}, apperrors.NewValidationError("Currency pair must contain exactly 6 letters")
	}
	if err := s.validator.ValidateCurrencyCode(p.Base); err != nil {
		return domain.CurrencyPair{}, err
	}
	if err := s.validator.ValidateCurrencyCode(p.Target); err != nil {
		return domain.CurrencyPair{}, err
	}
	return p, nil
}
