package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/fetchsched/pkg/domain"
)

// ProviderRepository handles provider-related database operations
type ProviderRepository struct {
	db sqlx.ExtContext
}

// providerSQL represents a provider for SQL operations
type providerSQL struct {
	ID          int64      `db:"id"`
	Name        string     `db:"name"`
	URL         string     `db:"url"`
	FrequencyMS int64      `db:"frequency_ms"`
	IsActive    bool       `db:"is_active"`
	LastFetch   *time.Time `db:"last_fetch"`
}

const providerColumns = "id, name, url, frequency_ms, is_active, last_fetch"

// NewProviderRepository creates a new provider repository on top of a database or a transaction
func NewProviderRepository(db sqlx.ExtContext) *ProviderRepository {
	return &ProviderRepository{db: db}
}

// CreateProvider inserts a new provider and returns it with the assigned id
func (r *ProviderRepository) CreateProvider(ctx context.Context, in domain.ProviderInput) (*domain.Provider, error) {
	query := r.db.Rebind(`
		INSERT INTO providers (name, url, frequency_ms, is_active)
		VALUES (?, ?, ?, ?)
		RETURNING id`)

	var id int64
	err := r.db.QueryRowxContext(ctx, query, in.Name, in.URL, in.Frequency.Milliseconds(), in.IsActive).Scan(&id)
	if isUniqueViolation(err) {
		return nil, fmt.Errorf("create provider with url %s: %w", in.URL, domain.ErrAlreadyExists)
	}
	if err != nil {
		return nil, fmt.Errorf("create provider: %w", err)
	}

	return &domain.Provider{
		ID:        id,
		Name:      in.Name,
		URL:       in.URL,
		Frequency: in.Frequency,
		IsActive:  in.IsActive,
	}, nil
}

// UpdateProvider replaces all mutable fields of a provider, returns domain.ErrNotFound for unknown id.
// The last fetch timestamp is kept as is.
func (r *ProviderRepository) UpdateProvider(ctx context.Context, id int64, in domain.ProviderInput) (*domain.Provider, error) {
	query := r.db.Rebind(`
		UPDATE providers
		SET name = ?, url = ?, frequency_ms = ?, is_active = ?
		WHERE id = ?
		RETURNING ` + providerColumns)

	var p providerSQL
	err := sqlx.GetContext(ctx, r.db, &p, query, in.Name, in.URL, in.Frequency.Milliseconds(), in.IsActive, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update provider %d: %w", id, domain.ErrNotFound)
	}
	if isUniqueViolation(err) {
		return nil, fmt.Errorf("update provider %d with url %s: %w", id, in.URL, domain.ErrAlreadyExists)
	}
	if err != nil {
		return nil, fmt.Errorf("update provider %d: %w", id, err)
	}
	return r.toDomainProvider(&p), nil
}

// DeleteProvider removes a provider and all its raw data. Deleting a missing provider is not an error.
func (r *ProviderRepository) DeleteProvider(ctx context.Context, id int64) error {
	// raw data removed explicitly, cascade depends on foreign_keys pragma of the sqlite connection
	if _, err := r.db.ExecContext(ctx, r.db.Rebind("DELETE FROM raw_data WHERE provider_id = ?"), id); err != nil {
		return fmt.Errorf("delete raw data of provider %d: %w", id, err)
	}
	if _, err := r.db.ExecContext(ctx, r.db.Rebind("DELETE FROM providers WHERE id = ?"), id); err != nil {
		return fmt.Errorf("delete provider %d: %w", id, err)
	}
	return nil
}

// GetProvider retrieves a provider by id, returns domain.ErrNotFound for unknown id
func (r *ProviderRepository) GetProvider(ctx context.Context, id int64) (*domain.Provider, error) {
	var p providerSQL
	err := sqlx.GetContext(ctx, r.db, &p, r.db.Rebind("SELECT "+providerColumns+" FROM providers WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get provider %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get provider %d: %w", id, err)
	}
	return r.toDomainProvider(&p), nil
}

// GetActiveProviders retrieves all active providers ordered by id
func (r *ProviderRepository) GetActiveProviders(ctx context.Context) ([]domain.Provider, error) {
	var rows []providerSQL
	query := r.db.Rebind("SELECT " + providerColumns + " FROM providers WHERE is_active = ? ORDER BY id")
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, true); err != nil {
		return nil, fmt.Errorf("get active providers: %w", err)
	}
	return r.toDomainProviders(rows), nil
}

// GetProviders retrieves a window of providers ordered by id
func (r *ProviderRepository) GetProviders(ctx context.Context, limit, offset int) ([]domain.Provider, error) {
	var rows []providerSQL
	query := r.db.Rebind("SELECT " + providerColumns + " FROM providers ORDER BY id LIMIT ? OFFSET ?")
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, limit, offset); err != nil {
		return nil, fmt.Errorf("get providers: %w", err)
	}
	return r.toDomainProviders(rows), nil
}

// CountProviders returns the total number of providers
func (r *ProviderRepository) CountProviders(ctx context.Context) (int, error) {
	var count int
	if err := sqlx.GetContext(ctx, r.db, &count, "SELECT COUNT(*) FROM providers"); err != nil {
		return 0, fmt.Errorf("count providers: %w", err)
	}
	return count, nil
}

// UpdateLastFetch sets the last fetch timestamp of a provider, returns domain.ErrNotFound for unknown id
func (r *ProviderRepository) UpdateLastFetch(ctx context.Context, id int64, at time.Time) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind("UPDATE providers SET last_fetch = ? WHERE id = ?"), at.UTC(), id)
	if err != nil {
		return fmt.Errorf("update last fetch of provider %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update last fetch of provider %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// toDomainProvider converts providerSQL to domain.Provider
func (r *ProviderRepository) toDomainProvider(p *providerSQL) *domain.Provider {
	res := &domain.Provider{
		ID:        p.ID,
		Name:      p.Name,
		URL:       p.URL,
		Frequency: time.Duration(p.FrequencyMS) * time.Millisecond,
		IsActive:  p.IsActive,
	}
	if p.LastFetch != nil {
		lf := p.LastFetch.UTC()
		res.LastFetch = &lf
	}
	return res
}

func (r *ProviderRepository) toDomainProviders(rows []providerSQL) []domain.Provider {
	res := make([]domain.Provider, len(rows))
	for i := range rows {
		res[i] = *r.toDomainProvider(&rows[i])
	}
	return res
}
