// Package store implements the SQLite store engine behind
// container.StoreEngine. On-disk stores live in a database file under the
// descriptor's location; in-memory stores use SQLite's :memory: database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/makery/pkg/container"
)

// Engine opens SQLite-backed stores. The zero value is ready to use; one
// Engine may serve any number of concurrent Open calls.
type Engine struct{}

// NewEngine returns a SQLite store engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Open opens the store described by desc and, when desc.AutoMigrate is set,
// applies the merged schema DDL. The handle is closed and not returned on
// any error. Open honors ctx cancellation between steps and during DDL
// execution.
func (*Engine) Open(ctx context.Context, schema string, desc container.StoreDescriptor) (*sql.DB, error) {
	dsn, err := dsnFor(desc)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", desc.Kind, err)
	}

	if desc.Kind == container.StoreInMemory {
		// Each new connection gets its own :memory: database; pin the
		// pool to one connection so the schema survives.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s store: %w", desc.Kind, err)
	}

	if desc.AutoMigrate {
		ddl := schema
		if desc.AutoInferMapping {
			// Tolerate tables left by a previous run of the same schema.
			ddl = tolerantDDL(ddl)
		}
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
	}

	return db, nil
}

// dsnFor maps a descriptor to a SQLite DSN, creating the parent directory
// for on-disk stores.
func dsnFor(desc container.StoreDescriptor) (string, error) {
	switch desc.Kind {
	case container.StoreOnDisk:
		if err := os.MkdirAll(filepath.Dir(desc.Location), 0o755); err != nil {
			return "", fmt.Errorf("create store directory: %w", err)
		}
		return desc.Location, nil
	case container.StoreInMemory:
		return ":memory:", nil
	default:
		return "", fmt.Errorf("%w: %q", container.ErrStoreKindUnknown, desc.Kind)
	}
}

// tolerantDDL rewrites CREATE statements to skip objects that already
// exist.
func tolerantDDL(ddl string) string {
	ddl = strings.ReplaceAll(ddl, "CREATE TABLE ", "CREATE TABLE IF NOT EXISTS ")
	ddl = strings.ReplaceAll(ddl, "CREATE INDEX ", "CREATE INDEX IF NOT EXISTS ")
	return ddl
}
