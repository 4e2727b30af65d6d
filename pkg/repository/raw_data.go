package repository

import (
	"context"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/fetchsched/pkg/domain"
)

// RawDataRepository handles raw data records, append-only
type RawDataRepository struct {
	db sqlx.ExtContext
}

// rawDataSQL represents a raw data record for SQL operations
type rawDataSQL struct {
	ProviderID int64     `db:"provider_id"`
	FetchTime  time.Time `db:"fetch_time"`
	Data       string    `db:"data"`
}

// NewRawDataRepository creates a new raw data repository on top of a database or a transaction
func NewRawDataRepository(db sqlx.ExtContext) *RawDataRepository {
	return &RawDataRepository{db: db}
}

// AppendRawData inserts a raw data record. Body must be well-formed JSON, otherwise domain.ErrInvalidBody returned.
func (r *RawDataRepository) AppendRawData(ctx context.Context, providerID int64, fetchTime time.Time, body string) error {
	if !json.Valid([]byte(body)) {
		return fmt.Errorf("append raw data for provider %d: %w", providerID, domain.ErrInvalidBody)
	}

	query := r.db.Rebind("INSERT INTO raw_data (provider_id, fetch_time, data) VALUES (?, ?, ?)")
	if _, err := r.db.ExecContext(ctx, query, providerID, fetchTime.UTC(), body); err != nil {
		return fmt.Errorf("append raw data for provider %d: %w", providerID, err)
	}
	return nil
}

// GetRawDataRange retrieves a window of records with begin <= fetch_time <= end, ordered by fetch time
func (r *RawDataRepository) GetRawDataRange(ctx context.Context, providerID int64, begin, end time.Time, limit, offset int) ([]domain.RawData, error) {
	query := r.db.Rebind(`
		SELECT provider_id, fetch_time, data FROM raw_data
		WHERE provider_id = ? AND fetch_time >= ? AND fetch_time <= ?
		ORDER BY fetch_time, id
		LIMIT ? OFFSET ?`)

	var rows []rawDataSQL
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, providerID, begin.UTC(), end.UTC(), limit, offset); err != nil {
		return nil, fmt.Errorf("get raw data for provider %d: %w", providerID, err)
	}

	res := make([]domain.RawData, len(rows))
	for i, row := range rows {
		res[i] = domain.RawData{ProviderID: row.ProviderID, FetchTime: row.FetchTime.UTC(), Data: row.Data}
	}
	return res, nil
}

// CountRawDataRange returns the number of records with begin <= fetch_time <= end
func (r *RawDataRepository) CountRawDataRange(ctx context.Context, providerID int64, begin, end time.Time) (int, error) {
	query := r.db.Rebind("SELECT COUNT(*) FROM raw_data WHERE provider_id = ? AND fetch_time >= ? AND fetch_time <= ?")

	var count int
	if err := sqlx.GetContext(ctx, r.db, &count, query, providerID, begin.UTC(), end.UTC()); err != nil {
		return 0, fmt.Errorf("count raw data for provider %d: %w", providerID, err)
	}
	return count, nil
}
