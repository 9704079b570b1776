package container

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Profile names one of the shipped container configurations. The set is
// closed: adding a configuration means adding both a constant here and a
// case in Definition.
type Profile string

// Shipped profiles.
const (
	// Primary is the production configuration: every schema module, one
	// on-disk store.
	Primary Profile = "primary"

	// PrimaryTest mirrors Primary's schema but backs it with an in-memory
	// store for tests.
	PrimaryTest Profile = "primary-test"

	// SecondaryModuleTest carries only the tracker module's schema, in
	// memory, for tests scoped to that module.
	SecondaryModuleTest Profile = "secondary-module-test"
)

// ErrProfileUnknown is returned by ParseProfile for names outside the
// shipped set.
var ErrProfileUnknown = errors.New("unknown profile")

// knownProfiles lists the profiles that ParseProfile accepts.
var knownProfiles = []Profile{Primary, PrimaryTest, SecondaryModuleTest}

// Profiles returns the shipped profiles in declaration order.
func Profiles() []Profile {
	return append([]Profile(nil), knownProfiles...)
}

// ParseProfile maps a user-supplied name to a Profile. It returns
// ErrProfileUnknown for anything outside the shipped set.
func ParseProfile(name string) (Profile, error) {
	for _, p := range knownProfiles {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrProfileUnknown, name)
}

// Schema source names. "app" and "ledger" belong to the primary module;
// "tracker" is the secondary module.
const (
	SourceApp     = "app"
	SourceLedger  = "ledger"
	SourceTracker = "tracker"
)

// primarySources is the full schema set used by the primary profiles.
var primarySources = []string{SourceApp, SourceLedger, SourceTracker}

// Definition is the data a profile contributes to Build: schema sources to
// merge, in order, and stores to open. Profiles are plain data, not
// subtypes; PrimaryTest reuses Primary's source list and only swaps the
// store backing.
type Definition struct {
	ModelSources []string
	Stores       []StoreDescriptor
}

// Definition returns the profile's build inputs. On-disk stores are placed
// under dataDir. The mapping is exhaustive over the shipped profiles;
// calling this on a Profile outside them is a programmer error and panics.
func (p Profile) Definition(dataDir string) Definition {
	switch p {
	case Primary:
		return Definition{
			ModelSources: append([]string(nil), primarySources...),
			Stores: []StoreDescriptor{{
				Kind:             StoreOnDisk,
				Location:         filepath.Join(dataDir, "makery.db"),
				AutoMigrate:      true,
				AutoInferMapping: true,
			}},
		}
	case PrimaryTest:
		return Definition{
			ModelSources: append([]string(nil), primarySources...),
			Stores: []StoreDescriptor{{
				Kind:        StoreInMemory,
				AutoMigrate: true,
			}},
		}
	case SecondaryModuleTest:
		return Definition{
			ModelSources: []string{SourceTracker},
			Stores: []StoreDescriptor{{
				Kind:        StoreInMemory,
				AutoMigrate: true,
			}},
		}
	default:
		panic(fmt.Sprintf("container: unknown profile %q", p))
	}
}
