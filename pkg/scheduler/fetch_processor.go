package scheduler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/fetchsched/pkg/domain"
)

// FetchResult describes how a fetch cycle ended
type FetchResult int

// fetch cycle outcomes
const (
	FetchSaved   FetchResult = iota // response stored and last fetch advanced
	FetchSkipped                    // transport failure or non-200 status, nothing written
	FetchDropped                    // provider no longer exists, nothing written
	FetchFailed                     // storage failure, nothing committed
)

// String returns the outcome name
func (r FetchResult) String() string {
	switch r {
	case FetchSaved:
		return "saved"
	case FetchSkipped:
		return "skipped"
	case FetchDropped:
		return "dropped"
	case FetchFailed:
		return "failed"
	default:
		return fmt.Sprintf("FetchResult(%d)", int(r))
	}
}

// FetchProcessor runs fetch cycles: GET the provider url and persist the body on success.
// Transport failures are absorbed here and never retried, the next tick tries again.
type FetchProcessor struct {
	store   Store
	fetcher Fetcher
	now     func() time.Time
}

// NewFetchProcessor creates a new fetch processor
func NewFetchProcessor(store Store, fetcher Fetcher, now func() time.Time) *FetchProcessor {
	if now == nil {
		now = time.Now
	}
	return &FetchProcessor{store: store, fetcher: fetcher, now: now}
}

// FetchAndSave performs one fetch cycle for a provider.
// On 200 response the raw data record and the provider's last fetch time are written in one
// transaction, using the same instant for both. Transport errors and non-200 statuses write nothing
// and are not returned as errors. The provider is re-read inside the transaction, if it was deleted
// meanwhile the result is dropped. Returned error means storage failure, nothing was committed.
func (fp *FetchProcessor) FetchAndSave(ctx context.Context, providerID int64, url string) (FetchResult, error) {
	lgr.Printf("[DEBUG] fetching provider %d from %s", providerID, url)

	status, body, err := fp.fetcher.Get(ctx, url)
	if err != nil {
		lgr.Printf("[WARN] failed to fetch provider %d from %s: %v", providerID, url, err)
		return FetchSkipped, nil
	}
	if status != http.StatusOK {
		lgr.Printf("[WARN] provider %d responded with status %d, skipped", providerID, status)
		return FetchSkipped, nil
	}

	var fetchTime time.Time
	err = fp.store.InTransaction(ctx, func(tx StoreTx) error {
		p, err := tx.FindProvider(ctx, providerID)
		if err != nil {
			return err
		}
		fetchTime = fp.now().UTC()
		if err := tx.AppendRawData(ctx, p.ID, fetchTime, body); err != nil {
			return err
		}
		return tx.UpdateLastFetch(ctx, p.ID, fetchTime)
	})
	if errors.Is(err, domain.ErrNotFound) {
		lgr.Printf("[DEBUG] provider %d no longer exists, fetched data dropped", providerID)
		return FetchDropped, nil
	}
	if err != nil {
		return FetchFailed, fmt.Errorf("save data of provider %d: %w", providerID, err)
	}

	lgr.Printf("[DEBUG] saved %d bytes from provider %d fetched at %s", len(body), providerID, fetchTime.Format(time.RFC3339Nano))
	return FetchSaved, nil
}
