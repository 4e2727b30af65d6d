package domain

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Provider represents an external HTTP data source polled on a schedule
type Provider struct {
	ID        int64
	Name      string
	URL       string
	Frequency time.Duration
	IsActive  bool
	LastFetch *time.Time
}

// ProviderInput carries the mutable provider fields for add and update
type ProviderInput struct {
	Name      string
	URL       string
	Frequency time.Duration
	IsActive  bool
}

// Validate checks name, url and frequency of the input, returns ErrInvalidConfig on failure
func (in ProviderInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: provider name is required", ErrInvalidConfig)
	}
	if err := validateURL(in.URL); err != nil {
		return err
	}
	if in.Frequency <= 0 {
		return fmt.Errorf("%w: frequency must be positive, got %v", ErrInvalidConfig, in.Frequency)
	}
	// frequency is stored in whole milliseconds
	if in.Frequency%time.Millisecond != 0 {
		return fmt.Errorf("%w: frequency must be a whole number of milliseconds, got %v", ErrInvalidConfig, in.Frequency)
	}
	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: invalid url %q: %v", ErrInvalidConfig, raw, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("%w: url %q is not absolute", ErrInvalidConfig, raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: unsupported url scheme %q", ErrInvalidConfig, u.Scheme)
	}
	return nil
}

// RawData is one persisted response body of a provider with its fetch time
type RawData struct {
	ProviderID int64
	FetchTime  time.Time
	Data       string
}

// ScheduledProvider is a provider with its scheduling status after add or update
type ScheduledProvider struct {
	Provider  Provider
	Scheduled bool
}

// ProviderWithData combines a provider with one page of its raw data
type ProviderWithData struct {
	Provider Provider
	Data     PaginationResult[RawData]
}
