package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
)

// rateStrategy returns (nil, nil) when it does not apply to the pair.
type rateStrategy struct {
	name    string
	resolve func(ctx context.Context, baseCode, targetCode string) (*domain.ExchangeRate, error)
}

// rateResolver tries direct, inverse and USD cross rates in that order.
// Each lookup is an independent read.
type rateResolver struct {
	BaseService
	rateRepo   portsrepo.ExchangeRateReader
	strategies []rateStrategy
}

// NewRateResolver creates a resolver reading stored rates from rateRepo.
func NewRateResolver(rateRepo portsrepo.ExchangeRateReader) portssvc.RateResolver {
	r := &rateResolver{rateRepo: rateRepo}
	r.strategies = []rateStrategy{
		{name: "direct", resolve: r.direct},
		{name: "inverse", resolve: r.inverse},
		{name: "cross", resolve: r.cross},
	}
	return r
}

var _ portssvc.RateResolver = (*rateResolver)(nil)

func (r *rateResolver) ResolveRate(ctx context.Context, baseCode, targetCode string) (*domain.ExchangeRate, error) {
	for _, s := range r.strategies {
		rate, err := s.resolve(ctx, baseCode, targetCode)
		if err != nil {
			return nil, fmt.Errorf("%s rate lookup for %s%s: %w", s.name, baseCode, targetCode, err)
		}
		if rate != nil {
			r.LogDebug(ctx, "Exchange rate resolved",
				slog.String("strategy", s.name),
				slog.String("base", baseCode),
				slog.String("target", targetCode),
				slog.String("rate", rate.Rate.String()))
			return rate, nil
		}
	}
	return nil, &apperrors.RouteNotFoundError{BaseCode: baseCode, TargetCode: targetCode}
}

func (r *rateResolver) direct(ctx context.Context, baseCode, targetCode string) (*domain.ExchangeRate, error) {
	return r.find(ctx, baseCode, targetCode)
}

func (r *rateResolver) inverse(ctx context.Context, baseCode, targetCode string) (*domain.ExchangeRate, error) {
	stored, err := r.find(ctx, targetCode, baseCode)
	if err != nil || stored == nil {
		return nil, err
	}
	return domain.NewSyntheticRate(
		stored.TargetCurrency,
		stored.BaseCurrency,
		domain.InverseRate(stored.Rate),
		domain.OriginInverse,
	), nil
}

func (r *rateResolver) cross(ctx context.Context, baseCode, targetCode string) (*domain.ExchangeRate, error) {
	pivotToBase, err := r.find(ctx, domain.PivotCurrencyCode, baseCode)
	if err != nil || pivotToBase == nil {
		return nil, err
	}
	pivotToTarget, err := r.find(ctx, domain.PivotCurrencyCode, targetCode)
	if err != nil || pivotToTarget == nil {
		return nil, err
	}
	return domain.NewSyntheticRate(
		pivotToBase.TargetCurrency,
		pivotToTarget.TargetCurrency,
		domain.CrossRate(pivotToBase.Rate, pivotToTarget.Rate),
		domain.OriginCross,
	), nil
}

// find reads the stored row for exactly (base, target). A missing row and a
// row whose rate is not strictly positive both yield (nil, nil).
func (r *rateResolver) find(ctx context.Context, baseCode, targetCode string) (*domain.ExchangeRate, error) {
	rate, err := r.rateRepo.FindExchangeRateByCodes(ctx, baseCode, targetCode)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !rate.Rate.IsPositive() {
		r.GetLogger(ctx).Warn("Ignoring stored exchange rate that is not positive",
			slog.String("base", baseCode),
			slog.String("target", targetCode),
			slog.String("rate", rate.Rate.String()))
		return nil, nil
	}
	return rate, nil
}
