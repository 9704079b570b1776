package container

import "errors"

// StoreKind selects the backing storage for one store.
type StoreKind string

// Supported store kinds.
const (
	StoreOnDisk   StoreKind = "on-disk"
	StoreInMemory StoreKind = "in-memory"
)

// Descriptor validation errors.
var (
	ErrStoreKindUnknown = errors.New("unknown store kind")
	ErrLocationEmpty    = errors.New("on-disk store requires a location")
	ErrLocationSet      = errors.New("in-memory store must not set a location")
)

// StoreDescriptor configures one store inside a container.
type StoreDescriptor struct {
	// Kind selects on-disk or in-memory backing.
	Kind StoreKind `json:"kind" yaml:"kind"`

	// Location is the database file path. Required iff Kind is StoreOnDisk.
	Location string `json:"location,omitempty" yaml:"location,omitempty"`

	// AutoMigrate applies the merged schema DDL when the store opens.
	AutoMigrate bool `json:"auto_migrate" yaml:"auto_migrate"`

	// AutoInferMapping tolerates tables that already exist in the store
	// instead of failing the migration.
	AutoInferMapping bool `json:"auto_infer_mapping" yaml:"auto_infer_mapping"`
}

// Validate checks that the descriptor is well-formed. It returns a sentinel
// error from this package on failure.
func (d StoreDescriptor) Validate() error {
	switch d.Kind {
	case StoreOnDisk:
		if d.Location == "" {
			return ErrLocationEmpty
		}
	case StoreInMemory:
		if d.Location != "" {
			return ErrLocationSet
		}
	default:
		return ErrStoreKindUnknown
	}
	return nil
}
