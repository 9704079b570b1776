package container

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Build runs the fixed container-creation algorithm: resolve and merge the
// definition's schema sources in order, then initialize every store and
// block until all are ready or one fails.
//
// Store initialization runs on worker goroutines, one per descriptor, but
// Build does not return until the group settles. The first store error
// cancels the group context, remaining opens abort at their next context
// check, every store opened so far is closed, and that first error is
// returned. A non-nil Container is always fully initialized.
//
// Build itself imposes no deadline; callers bound the wait through ctx.
func Build(ctx context.Context, def Definition, resolver SchemaResolver, engine StoreEngine) (*Container, error) {
	for _, desc := range def.Stores {
		if err := desc.Validate(); err != nil {
			return nil, err
		}
	}

	schema, err := mergeSources(def.ModelSources, resolver)
	if err != nil {
		return nil, err
	}

	c := &Container{
		schema: schema,
		stores: make([]Store, len(def.Stores)),
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, desc := range def.Stores {
		g.Go(func() error {
			db, err := engine.Open(gctx, schema, desc)
			if err != nil {
				return &StoreError{Descriptor: desc, Err: err}
			}
			// Each goroutine writes its own slot; no two share an index.
			c.stores[i] = Store{Descriptor: desc, DB: db}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		// Best effort: release whatever opened before the failure. The
		// initialization error wins over any close error.
		_ = c.Close()
		return nil, err
	}

	return c, nil
}

// mergeSources resolves each named source and concatenates the DDL in the
// order given.
func mergeSources(names []string, resolver SchemaResolver) (string, error) {
	var b strings.Builder
	for _, name := range names {
		ddl, err := resolver.Resolve(name)
		if err != nil {
			return "", &SchemaError{Source: name, Err: err}
		}
		b.WriteString(ddl)
		if !strings.HasSuffix(ddl, "\n") {
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}
