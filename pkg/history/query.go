// Package history provides paginated read access to providers and their fetched raw data
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/umputun/fetchsched/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Store is the read side of provider storage used by history queries
type Store interface {
	FindProvider(ctx context.Context, id int64) (*domain.Provider, error)
	ListProvidersPage(ctx context.Context, limit, offset int) ([]domain.Provider, int, error)
	QueryRawDataRange(ctx context.Context, providerID int64, begin, end time.Time, limit, offset int) ([]domain.RawData, int, error)
}

// Query runs history reads over a store
type Query struct {
	store Store
}

// NewQuery makes a history query over store
func NewQuery(store Store) *Query {
	return &Query{store: store}
}

// ListProviders returns one page of providers ordered by id.
// TotalItems is the count of all providers regardless of the window.
func (q *Query) ListProviders(ctx context.Context, page, size int) (domain.PaginationResult[domain.Provider], error) {
	if err := domain.ValidatePage(page, size); err != nil {
		return domain.PaginationResult[domain.Provider]{}, err
	}

	providers, total, err := q.store.ListProvidersPage(ctx, size, domain.Offset(page, size))
	if err != nil {
		return domain.PaginationResult[domain.Provider]{}, fmt.Errorf("list providers: %w", err)
	}
	return domain.NewPaginationResult(providers, total, page, size), nil
}

// GetProviderHistory returns the provider with one page of its raw data fetched within [begin, end],
// both ends inclusive, ordered by fetch time. Returns domain.ErrNotFound for unknown provider.
func (q *Query) GetProviderHistory(ctx context.Context, providerID int64, begin, end time.Time, page, size int) (domain.ProviderWithData, error) {
	if err := domain.ValidatePage(page, size); err != nil {
		return domain.ProviderWithData{}, err
	}
	if begin.After(end) {
		return domain.ProviderWithData{}, fmt.Errorf("%w: begin %s is after end %s", domain.ErrInvalidArgument,
			begin.Format(time.RFC3339), end.Format(time.RFC3339))
	}

	provider, err := q.store.FindProvider(ctx, providerID)
	if err != nil {
		return domain.ProviderWithData{}, fmt.Errorf("get provider %d: %w", providerID, err)
	}

	records, total, err := q.store.QueryRawDataRange(ctx, providerID, begin, end, size, domain.Offset(page, size))
	if err != nil {
		return domain.ProviderWithData{}, fmt.Errorf("query raw data of provider %d: %w", providerID, err)
	}

	return domain.ProviderWithData{
		Provider: *provider,
		Data:     domain.NewPaginationResult(records, total, page, size),
	}, nil
}
