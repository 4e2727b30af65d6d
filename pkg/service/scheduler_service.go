package service

import (
	"context"
	"fmt"
	"time"

	"github.com/umputun/fetchsched/pkg/domain"
	"github.com/umputun/fetchsched/pkg/repository"
	"github.com/umputun/fetchsched/pkg/scheduler"
)

// RepositoryStore provides unified access to repositories for the scheduler, history queries and
// provider management. It is the only place where the storage layout meets consumer interfaces.
type RepositoryStore struct {
	repos *repository.Repositories
}

// NewRepositoryStore creates a new store over repositories
func NewRepositoryStore(repos *repository.Repositories) *RepositoryStore {
	return &RepositoryStore{repos: repos}
}

// Provider management methods

func (s *RepositoryStore) CreateProvider(ctx context.Context, in domain.ProviderInput) (*domain.Provider, error) {
	return s.repos.Provider.CreateProvider(ctx, in)
}

func (s *RepositoryStore) UpdateProvider(ctx context.Context, id int64, in domain.ProviderInput) (*domain.Provider, error) {
	return s.repos.Provider.UpdateProvider(ctx, id, in)
}

// DeleteProvider removes a provider with its raw data in one transaction
func (s *RepositoryStore) DeleteProvider(ctx context.Context, id int64) error {
	return s.repos.InTransaction(ctx, func(tx *repository.TxRepositories) error {
		return tx.Provider.DeleteProvider(ctx, id)
	})
}

func (s *RepositoryStore) FindProvider(ctx context.Context, id int64) (*domain.Provider, error) {
	return s.repos.Provider.GetProvider(ctx, id)
}

func (s *RepositoryStore) ListActiveProviders(ctx context.Context) ([]domain.Provider, error) {
	return s.repos.Provider.GetActiveProviders(ctx)
}

// History methods

// ListProvidersPage returns a window of providers ordered by id and the count of all providers
func (s *RepositoryStore) ListProvidersPage(ctx context.Context, limit, offset int) ([]domain.Provider, int, error) {
	total, err := s.repos.Provider.CountProviders(ctx)
	if err != nil {
		return nil, 0, err
	}
	if offset >= total {
		return []domain.Provider{}, total, nil
	}
	providers, err := s.repos.Provider.GetProviders(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return providers, total, nil
}

// QueryRawDataRange returns a window of raw data records within [begin, end] and the count of all matching records
func (s *RepositoryStore) QueryRawDataRange(ctx context.Context, providerID int64, begin, end time.Time, limit, offset int) ([]domain.RawData, int, error) {
	total, err := s.repos.RawData.CountRawDataRange(ctx, providerID, begin, end)
	if err != nil {
		return nil, 0, err
	}
	if offset >= total {
		return []domain.RawData{}, total, nil
	}
	records, err := s.repos.RawData.GetRawDataRange(ctx, providerID, begin, end, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// Fetch cycle methods

// InTransaction runs fn with a transactional view used by a single fetch cycle
func (s *RepositoryStore) InTransaction(ctx context.Context, fn func(tx scheduler.StoreTx) error) error {
	err := s.repos.InTransaction(ctx, func(tx *repository.TxRepositories) error {
		return fn(&txStore{tx: tx})
	})
	if err != nil {
		return fmt.Errorf("fetch transaction: %w", err)
	}
	return nil
}

// Ping checks storage availability
func (s *RepositoryStore) Ping(ctx context.Context) error {
	return s.repos.Ping(ctx)
}

// txStore adapts transaction-bound repositories to scheduler.StoreTx
type txStore struct {
	tx *repository.TxRepositories
}

func (t *txStore) FindProvider(ctx context.Context, id int64) (*domain.Provider, error) {
	return t.tx.Provider.GetProvider(ctx, id)
}

func (t *txStore) AppendRawData(ctx context.Context, providerID int64, fetchTime time.Time, body string) error {
	return t.tx.RawData.AppendRawData(ctx, providerID, fetchTime, body)
}

func (t *txStore) UpdateLastFetch(ctx context.Context, providerID int64, at time.Time) error {
	return t.tx.Provider.UpdateLastFetch(ctx, providerID, at)
}
