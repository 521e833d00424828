package services

import (
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/validation"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, validator *validation.Validator) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(repos.CurrencyRepo, validator)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo, validator)

	// The conversion service only needs read access to stored rates
	container.Resolver = NewRateResolver(repos.ExchangeRateRepo)
	container.Exchange = NewExchangeService(container.Resolver, validator)

	return container
}
