// Package service combines provider storage with scheduling, so that every provider change
// is reflected in the set of running fetch jobs.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/fetchsched/pkg/domain"
	"github.com/umputun/fetchsched/pkg/scheduler"
)

//go:generate moq -out mocks/provider_store.go -pkg mocks -skip-ensure -fmt goimports . ProviderStore
//go:generate moq -out mocks/job_scheduler.go -pkg mocks -skip-ensure -fmt goimports . JobScheduler

// ProviderStore is the provider persistence used by the service
type ProviderStore interface {
	CreateProvider(ctx context.Context, in domain.ProviderInput) (*domain.Provider, error)
	UpdateProvider(ctx context.Context, id int64, in domain.ProviderInput) (*domain.Provider, error)
	DeleteProvider(ctx context.Context, id int64) error
	FindProvider(ctx context.Context, id int64) (*domain.Provider, error)
}

// JobScheduler manages recurring fetch jobs
type JobScheduler interface {
	ScheduleProviderTask(p domain.Provider) error
	StopProviderTask(providerID int64)
	FetchNow(ctx context.Context, providerID int64, url string) (scheduler.FetchResult, error)
}

// ProviderService manages providers and keeps their fetch jobs in sync.
// A store change and the matching job change of one provider happen under the provider's lock,
// so concurrent changes of the same provider apply to storage and jobs in the same order.
type ProviderService struct {
	store     ProviderStore
	scheduler JobScheduler
	locks     providerLocks
}

// NewProviderService creates a new provider service
func NewProviderService(store ProviderStore, sched JobScheduler) *ProviderService {
	return &ProviderService{store: store, scheduler: sched, locks: providerLocks{locks: make(map[int64]*providerLock)}}
}

// AddProvider validates and persists a new provider and schedules it if active.
// The result reports whether a fetch job was created.
func (s *ProviderService) AddProvider(ctx context.Context, in domain.ProviderInput) (domain.ScheduledProvider, error) {
	if err := in.Validate(); err != nil {
		return domain.ScheduledProvider{}, err
	}

	p, err := s.store.CreateProvider(ctx, in)
	if err != nil {
		return domain.ScheduledProvider{}, fmt.Errorf("add provider: %w", err)
	}
	lgr.Printf("[INFO] added provider %d (%s), active: %v", p.ID, p.Name, p.IsActive)

	if !p.IsActive {
		return domain.ScheduledProvider{Provider: *p}, nil
	}

	unlock := s.locks.lock(p.ID)
	defer unlock()

	// the id is visible once created, the provider could be changed or deleted before the lock was taken
	current, err := s.store.FindProvider(ctx, p.ID)
	if errors.Is(err, domain.ErrNotFound) {
		lgr.Printf("[INFO] provider %d deleted right after creation, not scheduled", p.ID)
		return domain.ScheduledProvider{Provider: *p}, nil
	}
	if err != nil {
		lgr.Printf("[WARN] provider %d saved but not scheduled: %v", p.ID, err)
		return domain.ScheduledProvider{Provider: *p}, nil
	}
	if !current.IsActive {
		return domain.ScheduledProvider{Provider: *current}, nil
	}
	return domain.ScheduledProvider{Provider: *current, Scheduled: s.schedule(*current)}, nil
}

// UpdateProvider replaces provider fields and reschedules it. An active provider gets a new job,
// which replaces the old one, an inactive provider has its job stopped.
// Returns domain.ErrNotFound for unknown id, the scheduler is not touched in that case.
func (s *ProviderService) UpdateProvider(ctx context.Context, id int64, in domain.ProviderInput) (domain.ScheduledProvider, error) {
	if err := in.Validate(); err != nil {
		return domain.ScheduledProvider{}, err
	}

	unlock := s.locks.lock(id)
	defer unlock()

	p, err := s.store.UpdateProvider(ctx, id, in)
	if err != nil {
		return domain.ScheduledProvider{}, fmt.Errorf("update provider: %w", err)
	}
	lgr.Printf("[INFO] updated provider %d (%s), active: %v, frequency: %v", p.ID, p.Name, p.IsActive, p.Frequency)

	if !p.IsActive {
		s.scheduler.StopProviderTask(p.ID)
		return domain.ScheduledProvider{Provider: *p}, nil
	}
	return domain.ScheduledProvider{Provider: *p, Scheduled: s.schedule(*p)}, nil
}

// DeleteProvider removes a provider with all its raw data and stops its job.
// Deleting a missing provider is not an error.
func (s *ProviderService) DeleteProvider(ctx context.Context, id int64) error {
	unlock := s.locks.lock(id)
	defer unlock()

	if err := s.store.DeleteProvider(ctx, id); err != nil {
		return fmt.Errorf("delete provider: %w", err)
	}
	s.scheduler.StopProviderTask(id)
	lgr.Printf("[INFO] deleted provider %d", id)
	return nil
}

// GetProvider returns a provider by id, domain.ErrNotFound for unknown id
func (s *ProviderService) GetProvider(ctx context.Context, id int64) (*domain.Provider, error) {
	p, err := s.store.FindProvider(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get provider: %w", err)
	}
	return p, nil
}

// FetchNow runs one fetch cycle for an existing provider right away, regardless of its schedule
// and active flag. The provider's job, if any, keeps its timing.
func (s *ProviderService) FetchNow(ctx context.Context, id int64) (scheduler.FetchResult, error) {
	p, err := s.store.FindProvider(ctx, id)
	if err != nil {
		return scheduler.FetchSkipped, fmt.Errorf("fetch provider: %w", err)
	}
	lgr.Printf("[INFO] manual fetch of provider %d (%s)", p.ID, p.Name)
	return s.scheduler.FetchNow(ctx, p.ID, p.URL)
}

// schedule creates the job for an active provider, failure is logged and reported as not scheduled
func (s *ProviderService) schedule(p domain.Provider) bool {
	if err := s.scheduler.ScheduleProviderTask(p); err != nil {
		lgr.Printf("[WARN] provider %d saved but not scheduled: %v", p.ID, err)
		return false
	}
	return true
}

// providerLocks is a set of mutexes keyed by provider id, an entry lives while someone holds or waits for it
type providerLocks struct {
	mu    sync.Mutex
	locks map[int64]*providerLock
}

type providerLock struct {
	sync.Mutex
	refs int
}

// lock acquires the lock of the provider and returns its release func
func (l *providerLocks) lock(id int64) (unlock func()) {
	l.mu.Lock()
	pl, ok := l.locks[id]
	if !ok {
		pl = &providerLock{}
		l.locks[id] = pl
	}
	pl.refs++
	l.mu.Unlock()

	pl.Lock()
	return func() {
		pl.Unlock()
		l.mu.Lock()
		pl.refs--
		if pl.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}
