package scheduler

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/samber/lo"
	"golang.org/x/sync/semaphore"

	"github.com/umputun/fetchsched/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store StoreTx
//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher

const defaultMaxWorkers = 10

// ErrStopped is returned when scheduling on a stopped scheduler
var ErrStopped = errors.New("scheduler stopped")

// Store is the persistence surface used by the scheduler and its fetch cycles
type Store interface {
	ListActiveProviders(ctx context.Context) ([]domain.Provider, error)
	InTransaction(ctx context.Context, fn func(tx StoreTx) error) error
}

// StoreTx is the transactional view used by a single fetch cycle
type StoreTx interface {
	FindProvider(ctx context.Context, id int64) (*domain.Provider, error)
	AppendRawData(ctx context.Context, providerID int64, fetchTime time.Time, body string) error
	UpdateLastFetch(ctx context.Context, providerID int64, at time.Time) error
}

// Fetcher performs the blocking network GET of a provider url
type Fetcher interface {
	Get(ctx context.Context, url string) (status int, body string, err error)
}

// Scheduler keeps one recurring fetch job per active provider. Jobs can be added, replaced
// and canceled at any time while the scheduler runs.
//
// Lock discipline: mu guards the jobs map only. Scheduling and cancellation hold it for the
// map update and the non-blocking cancel of the previous job; fetch cycles never run under it.
type Scheduler struct {
	store     Store
	processor *FetchProcessor
	now       func() time.Time
	sem       *semaphore.Weighted

	mu   sync.Mutex
	jobs map[int64]*job

	ctx    context.Context // parent of all job contexts
	cancel context.CancelFunc
	wg     sync.WaitGroup // job loops and in-flight fetch cycles
}

// job is the handle of one provider's recurring timer
type job struct {
	providerID int64
	url        string
	frequency  time.Duration
	ctx        context.Context
	cancel     context.CancelFunc
	running    atomic.Bool // fetch cycle in flight
}

// Params holds scheduler dependencies and settings
type Params struct {
	Store      Store
	Fetcher    Fetcher
	MaxWorkers int              // max concurrent fetch cycles across all providers, default 10
	Now        func() time.Time // clock, default time.Now
}

// NewScheduler creates a new scheduler instance, jobs can be scheduled right away
func NewScheduler(params Params) *Scheduler {
	if params.MaxWorkers <= 0 {
		params.MaxWorkers = defaultMaxWorkers
	}
	if params.Now == nil {
		params.Now = time.Now
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		store:     params.Store,
		processor: NewFetchProcessor(params.Store, params.Fetcher, params.Now),
		now:       params.Now,
		sem:       semaphore.NewWeighted(int64(params.MaxWorkers)),
		jobs:      make(map[int64]*job),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start schedules all active providers and stops the scheduler once ctx is canceled
func (s *Scheduler) Start(ctx context.Context) error {
	if err := s.ScheduleActiveProviders(ctx); err != nil {
		return err
	}

	go func() {
		select {
		case <-ctx.Done():
			s.Stop()
		case <-s.ctx.Done():
		}
	}()

	lgr.Printf("[INFO] scheduler started with %d jobs", len(s.Jobs()))
	return nil
}

// Stop cancels all jobs and waits for in-flight fetch cycles to finish
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	s.mu.Lock()
	s.cancel()
	clear(s.jobs)
	s.mu.Unlock()

	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// ScheduleActiveProviders loads active providers from the store and schedules a job for each.
// A provider failing to schedule is logged and skipped, it doesn't affect others.
// Intended to be called once on startup.
func (s *Scheduler) ScheduleActiveProviders(ctx context.Context) error {
	providers, err := s.store.ListActiveProviders(ctx)
	if err != nil {
		return fmt.Errorf("list active providers: %w", err)
	}

	scheduled := 0
	for _, p := range providers {
		if !p.IsActive {
			continue
		}
		if err := s.ScheduleProviderTask(p); err != nil {
			lgr.Printf("[WARN] failed to schedule provider %d (%s): %v", p.ID, p.Name, err)
			continue
		}
		scheduled++
	}

	lgr.Printf("[INFO] scheduled %d of %d active providers", scheduled, len(providers))
	return nil
}

// ScheduleProviderTask creates a recurring fetch job for the provider, replacing the existing one.
// The first fetch happens after the initial delay derived from the last fetch time, then every
// p.Frequency. The caller is responsible for passing active providers only.
func (s *Scheduler) ScheduleProviderTask(p domain.Provider) error {
	if p.Frequency <= 0 {
		return fmt.Errorf("%w: provider %d has non-positive frequency %v", domain.ErrInvalidConfig, p.ID, p.Frequency)
	}
	delay := CalculateInitialDelay(p.LastFetch, p.Frequency, s.now())

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctx.Err() != nil {
		return ErrStopped
	}

	// cancel the previous timer first, there is never more than one job per provider
	if prev, ok := s.jobs[p.ID]; ok {
		prev.cancel()
		delete(s.jobs, p.ID)
		lgr.Printf("[DEBUG] replaced job of provider %d", p.ID)
	}

	ctx, cancel := context.WithCancel(s.ctx)
	j := &job{providerID: p.ID, url: p.URL, frequency: p.Frequency, ctx: ctx, cancel: cancel}
	s.jobs[p.ID] = j

	s.wg.Add(1)
	go s.run(j, delay)

	lgr.Printf("[INFO] scheduled provider %d (%s) every %v, first fetch in %v", p.ID, p.Name, p.Frequency, delay)
	return nil
}

// StopProviderTask cancels the job of a provider. Unknown id is a no-op.
// A fetch cycle already in flight is not interrupted and may still commit.
func (s *Scheduler) StopProviderTask(providerID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.jobs[providerID]
	if !ok {
		return
	}
	j.cancel()
	delete(s.jobs, providerID)
	lgr.Printf("[INFO] stopped job of provider %d", providerID)
}

// FetchNow runs a single fetch cycle for the provider synchronously, outside of its schedule
func (s *Scheduler) FetchNow(ctx context.Context, providerID int64, url string) (FetchResult, error) {
	return s.processor.FetchAndSave(ctx, providerID, url)
}

// Jobs returns ids of scheduled providers in ascending order
func (s *Scheduler) Jobs() []int64 {
	s.mu.Lock()
	ids := lo.Keys(s.jobs)
	s.mu.Unlock()
	slices.Sort(ids)
	return ids
}

// IsScheduled reports whether a job exists for the provider
func (s *Scheduler) IsScheduled(providerID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.jobs[providerID]
	return ok
}

// CalculateInitialDelay returns the time to wait before the first fetch of a (re)scheduled provider.
// Never fetched and overdue providers are fetched immediately, otherwise the fetch waits
// until lastFetched + frequency.
func CalculateInitialDelay(lastFetched *time.Time, frequency time.Duration, now time.Time) time.Duration {
	if lastFetched == nil {
		return 0
	}
	nextFetch := lastFetched.Add(frequency)
	if now.Before(nextFetch) {
		return nextFetch.Sub(now)
	}
	return 0
}

// run is the timer loop of a single job. It only dispatches fetch cycles and never waits for them.
func (s *Scheduler) run(j *job, delay time.Duration) {
	defer s.wg.Done()

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-j.ctx.Done():
		return
	case <-timer.C:
	}
	s.dispatch(j)

	ticker := time.NewTicker(j.frequency)
	defer ticker.Stop()
	for {
		select {
		case <-j.ctx.Done():
			return
		case <-ticker.C:
			s.dispatch(j)
		}
	}
}

// dispatch starts a fetch cycle in its own goroutine limited by the worker semaphore.
// A tick is skipped if the previous cycle of the same job is still running.
func (s *Scheduler) dispatch(j *job) {
	if !j.running.CompareAndSwap(false, true) {
		lgr.Printf("[DEBUG] provider %d is still being fetched, tick skipped", j.providerID)
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer j.running.Store(false)

		// waiting for a worker slot is abandoned on cancel, a started cycle is not
		if err := s.sem.Acquire(j.ctx, 1); err != nil {
			return
		}
		defer s.sem.Release(1)

		if _, err := s.processor.FetchAndSave(context.WithoutCancel(j.ctx), j.providerID, j.url); err != nil {
			lgr.Printf("[ERROR] fetch cycle of provider %d failed: %v", j.providerID, err)
		}
	}()
}
