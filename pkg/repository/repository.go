package repository

import (
	"context"
	"embed"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"  // postgres driver
	_ "modernc.org/sqlite" // pure Go SQLite driver
)

//go:embed schema_sqlite.sql schema_postgres.sql
var schemaFS embed.FS

const (
	driverSQLite   = "sqlite"
	driverPostgres = "postgres"

	defaultDSN = "file:fetchsched.db?mode=rwc"
)

// sqliteParams are added to sqlite DSN unless set explicitly. Pragmas set in DSN apply to every pooled connection.
var sqliteParams = []struct{ probe, param string }{
	{probe: "_txlock=", param: "_txlock=immediate"},
	{probe: "_time_format=", param: "_time_format=sqlite"},
	{probe: "foreign_keys", param: "_pragma=foreign_keys(1)"},
	{probe: "busy_timeout", param: "_pragma=busy_timeout(5000)"},
}

// Config represents database configuration
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Repositories contains all repository instances
type Repositories struct {
	Provider *ProviderRepository
	RawData  *RawDataRepository
	DB       *sqlx.DB

	retryAttempts int
	retryDelay    time.Duration
}

// TxRepositories contains repositories bound to a single transaction
type TxRepositories struct {
	Provider *ProviderRepository
	RawData  *RawDataRepository
}

// NewRepositories creates all repositories with a shared database connection.
// DSN with postgres:// or postgresql:// scheme selects PostgreSQL, anything else is opened as SQLite.
func NewRepositories(ctx context.Context, cfg Config) (*Repositories, error) {
	if cfg.DSN == "" {
		cfg.DSN = defaultDSN
	}

	driver := driverName(cfg.DSN)
	if driver == driverSQLite {
		cfg.DSN = sqliteDSN(cfg.DSN)
	}
	db, err := sqlx.Open(driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// configure connection pool
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if driver == driverSQLite {
		// optimize SQLite settings
		pragmas := []string{
			"PRAGMA foreign_keys = ON",
			"PRAGMA journal_mode = WAL",
			"PRAGMA synchronous = NORMAL",
			"PRAGMA temp_store = MEMORY",
			"PRAGMA busy_timeout = 5000", // 5 second timeout for locks
		}
		for _, pragma := range pragmas {
			if _, err := db.ExecContext(ctx, pragma); err != nil {
				_ = db.Close()
				return nil, fmt.Errorf("execute %s: %w", pragma, err)
			}
		}
	}

	if err := initSchema(ctx, db, driver); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	lgr.Printf("[DEBUG] database initialized with %s driver", driver)
	return &Repositories{
		Provider:      NewProviderRepository(db),
		RawData:       NewRawDataRepository(db),
		DB:            db,
		retryAttempts: 5,
		retryDelay:    50 * time.Millisecond,
	}, nil
}

// Close closes the database connection
func (r *Repositories) Close() error {
	return r.DB.Close()
}

// Ping verifies the database connection
func (r *Repositories) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

// InTransaction runs fn within a single database transaction. Both repositories passed to fn
// share the transaction, so their writes commit together or not at all.
// Transactions failed on lock contention are retried with backoff, any other failure is returned as is.
func (r *Repositories) InTransaction(ctx context.Context, fn func(tx *TxRepositories) error) error {
	retrier := repeater.NewBackoff(r.retryAttempts, r.retryDelay, repeater.WithMaxDelay(2*time.Second))

	var critical error
	err := retrier.Do(ctx, func() error {
		err := r.runTx(ctx, fn)
		if err == nil {
			return nil
		}
		if isLockError(err) {
			lgr.Printf("[DEBUG] transaction hit lock contention, retrying: %v", err)
			return err
		}
		critical = err // stop retrying
		return nil
	})
	if critical != nil {
		return critical
	}
	return err
}

func (r *Repositories) runTx(ctx context.Context, fn func(tx *TxRepositories) error) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(&TxRepositories{Provider: NewProviderRepository(tx), RawData: NewRawDataRepository(tx)}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction failed: %w (rollback also failed: %s)", err, rbErr.Error())
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sqlx.DB, driver string) error {
	schema, err := schemaFS.ReadFile(fmt.Sprintf("schema_%s.sql", driver))
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}

	if _, err := db.ExecContext(ctx, string(schema)); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// sqliteDSN completes dsn with required sqlite parameters
func sqliteDSN(dsn string) string {
	for _, p := range sqliteParams {
		if strings.Contains(dsn, p.probe) {
			continue
		}
		sep := "&"
		if !strings.Contains(dsn, "?") {
			sep = "?"
		}
		dsn += sep + p.param
	}
	return dsn
}

func driverName(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return driverPostgres
	}
	return driverSQLite
}
