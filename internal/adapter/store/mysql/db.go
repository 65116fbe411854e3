// Package mysql implements the domain store interfaces on MySQL using
// database/sql with parameterized queries. Multi-step writes run inside a
// transaction carried on the context (see TxManager).
package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/airline-ops/airline-inventory-system/internal/domain"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	db, err := sql.Open("mysql", buildDSN(user, pass, host, port, name))
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// buildDSN assembles the connection string.
// parseTime=true maps DATETIME columns to time.Time; loc=UTC keeps every
// stored instant consistent with the UTC-anchored scheduling arithmetic.
// clientFoundRows=true makes RowsAffected report rows matched rather than
// rows changed, so a no-op UPDATE on an existing row (resubmitting unchanged
// values, re-asserting a flight's current status) does not surface as a
// spurious not-found through requireRow.
func buildDSN(user, pass, host, port, name string) string {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	return fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC&clientFoundRows=true",
		auth, host, port, name)
}

// querier is the subset of *sql.DB and *sql.Tx the stores use. Every store
// method resolves its querier from the context so that calls made inside
// TxManager.WithinTx join the transaction transparently.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txKey struct{}

// queryerFor returns the transaction bound to ctx, or the raw DB handle.
func queryerFor(ctx context.Context, db *sql.DB) querier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return db
}

// TxManager implements domain.TxManager on a *sql.DB, carrying the open
// transaction on the context passed to fn.
type TxManager struct {
	db *sql.DB
}

// NewTxManager creates a TxManager for the given DB handle.
func NewTxManager(db *sql.DB) *TxManager {
	return &TxManager{db: db}
}

// WithinTx implements domain.TxManager.WithinTx. A nested call joins the
// outer transaction rather than opening a second one.
func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// notFound maps sql.ErrNoRows to the domain's NotFound sentinel.
func notFound(err error, entity string, id uint64) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewNotFoundError(entity, id)
	}
	return err
}
