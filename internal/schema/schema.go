// Package schema resolves named schema sources to their DDL text. Sources
// are .sql files embedded in the binary; the name set is fixed at build
// time.
package schema

import (
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"
)

//go:embed sources/*.sql
var sourcesFS embed.FS

// ErrSourceNotFound is returned when no embedded source carries the
// requested name.
var ErrSourceNotFound = errors.New("schema source not found")

// Resolver resolves schema source names against the embedded sources.
// It implements container.SchemaResolver. The zero value is ready to use.
type Resolver struct{}

// NewResolver returns a Resolver over the embedded sources.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve returns the DDL text for the named source. Returns an error
// wrapping ErrSourceNotFound when the name is not embedded.
func (*Resolver) Resolve(name string) (string, error) {
	if strings.ContainsAny(name, "/\\.") {
		return "", fmt.Errorf("%w: %q", ErrSourceNotFound, name)
	}
	data, err := sourcesFS.ReadFile("sources/" + name + ".sql")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrSourceNotFound, name)
	}
	return string(data), nil
}

// Names returns the embedded source names, sorted.
func Names() []string {
	entries, err := sourcesFS.ReadDir("sources")
	if err != nil {
		// The directory is embedded at compile time; missing it is a
		// build defect, not a runtime condition.
		panic(fmt.Sprintf("schema: embedded sources unavailable: %v", err))
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".sql"))
	}
	sort.Strings(names)

	return names
}
