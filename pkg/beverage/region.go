package beverage

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
)

// Region identifies one concrete drink-factory variant.
type Region string

// Supported regions.
const (
	RegionA Region = "region-a"
	RegionB Region = "region-b"
)

// ErrRegionUnknown is returned by ParseRegion for names outside the
// supported set.
var ErrRegionUnknown = errors.New("unknown region")

// knownRegions lists the regions that ParseRegion accepts.
var knownRegions = []Region{RegionA, RegionB}

// Regions returns the supported regions in declaration order.
func Regions() []Region {
	return append([]Region(nil), knownRegions...)
}

// ParseRegion maps a user-supplied name to a Region. It returns
// ErrRegionUnknown for anything outside the supported set.
func ParseRegion(name string) (Region, error) {
	for _, r := range knownRegions {
		if string(r) == name {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrRegionUnknown, name)
}

// PickRegion chooses a region uniformly at random. Callers that need a
// stable choice should parse one from configuration instead; the Factory
// returned by ForRegion never changes region either way.
func PickRegion() Region {
	return knownRegions[rand.IntN(len(knownRegions))]
}

// ForRegion returns a fresh Factory handle for the given region. Each call
// creates a distinct handle with its own family tag; products from different
// handles must not be mixed even when the regions match.
//
// Passing a Region outside the declared constants is a programmer error and
// panics. Use ParseRegion at trust boundaries.
func ForRegion(r Region) Factory {
	tag := newFamilyTag()
	switch r {
	case RegionA:
		return &regionAFactory{tag: tag}
	case RegionB:
		return &regionBFactory{tag: tag}
	default:
		panic(fmt.Sprintf("beverage: unknown region %q", r))
	}
}

// newFamilyTag generates the per-handle family tag as a UUID v7.
func newFamilyTag() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
