package container

import (
	"context"
	"database/sql"
	"strconv"
	"sync"
)

// SchemaResolver resolves a named schema source to its DDL text. Resolution
// failures are opaque to this package and surface wrapped in a SchemaError.
type SchemaResolver interface {
	Resolve(name string) (ddl string, err error)
}

// StoreEngine opens one store and leaves it ready for use. Implementations
// must respect ctx cancellation and must not leak the handle on error.
type StoreEngine interface {
	Open(ctx context.Context, schema string, desc StoreDescriptor) (*sql.DB, error)
}

// SchemaError reports a schema source that could not be resolved.
type SchemaError struct {
	Source string
	Err    error
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	return "container: schema source " + strconv.Quote(e.Source) + ": " + e.Err.Error()
}

// Unwrap exposes the resolver's error for errors.Is/As.
func (e *SchemaError) Unwrap() error { return e.Err }

// StoreError reports a store that failed to initialize.
type StoreError struct {
	Descriptor StoreDescriptor
	Err        error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	return "container: " + string(e.Descriptor.Kind) + " store: " + e.Err.Error()
}

// Unwrap exposes the engine's error for errors.Is/As.
func (e *StoreError) Unwrap() error { return e.Err }

// Store is one initialized store inside a ready container.
type Store struct {
	Descriptor StoreDescriptor
	DB         *sql.DB
}

// Container holds the merged schema and the initialized stores. Build is
// the only way to obtain one; a Container never exists in a partially
// initialized state.
type Container struct {
	schema string

	mu     sync.Mutex
	closed bool
	stores []Store
}

// Schema returns the merged DDL the container was built with.
func (c *Container) Schema() string {
	return c.schema
}

// Stores returns the initialized stores in descriptor order.
func (c *Container) Stores() []Store {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Store(nil), c.stores...)
}

// Close closes every store. Idempotent: later calls return nil. The first
// close error is returned after all stores have been attempted.
func (c *Container) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	var firstErr error
	for _, s := range c.stores {
		if s.DB == nil {
			continue
		}
		if err := s.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.stores = nil

	return firstErr
}
