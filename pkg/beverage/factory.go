package beverage

import "fmt"

// Factory produces one family of mutually compatible drink products. A
// handle is pinned to its region for its whole lifetime.
//
// MakeCoffee and MakeTea require sugar made by the same handle. Violating
// that precondition is a bug at the call site, not a runtime condition, so
// it panics instead of returning an error.
type Factory interface {
	// Region returns the region this handle was created for.
	Region() Region

	// MakeSugar records a non-negative spoon count. Negative counts panic.
	MakeSugar(spoons int) Sugar

	// MakeCoffee prepares a coffee with the given sugar.
	MakeCoffee(sugar Sugar) Coffee

	// MakeTea prepares a tea with the given sugar.
	MakeTea(sugar Sugar) Tea

	// MakeWater prepares plain water.
	MakeWater() Water
}

// mustSpoons rejects negative spoon counts.
func mustSpoons(spoons int) {
	if spoons < 0 {
		panic(fmt.Sprintf("beverage: negative spoon count %d", spoons))
	}
}

// mustSameFamily enforces family purity: sugar must originate from the
// handle identified by tag.
func mustSameFamily(tag string, sugar Sugar) {
	if sugar == nil {
		panic("beverage: nil sugar")
	}
	if sugar.familyTag() != tag {
		panic(fmt.Sprintf("beverage: sugar from a different factory (want family %s, got %s)",
			tag, sugar.familyTag()))
	}
}

// regionAFactory serves RegionA with cane sugar.
type regionAFactory struct {
	tag string
}

func (f *regionAFactory) Region() Region { return RegionA }

func (f *regionAFactory) MakeSugar(spoons int) Sugar {
	mustSpoons(spoons)
	return caneSugar{spoons: spoons, tag: f.tag}
}

func (f *regionAFactory) MakeCoffee(sugar Sugar) Coffee {
	mustSameFamily(f.tag, sugar)
	return Coffee{region: RegionA, sugar: sugar}
}

func (f *regionAFactory) MakeTea(sugar Sugar) Tea {
	mustSameFamily(f.tag, sugar)
	return Tea{region: RegionA, sugar: sugar}
}

func (f *regionAFactory) MakeWater() Water {
	return Water{region: RegionA}
}

// regionBFactory serves RegionB with beet sugar.
type regionBFactory struct {
	tag string
}

func (f *regionBFactory) Region() Region { return RegionB }

func (f *regionBFactory) MakeSugar(spoons int) Sugar {
	mustSpoons(spoons)
	return beetSugar{spoons: spoons, tag: f.tag}
}

func (f *regionBFactory) MakeCoffee(sugar Sugar) Coffee {
	mustSameFamily(f.tag, sugar)
	return Coffee{region: RegionB, sugar: sugar}
}

func (f *regionBFactory) MakeTea(sugar Sugar) Tea {
	mustSameFamily(f.tag, sugar)
	return Tea{region: RegionB, sugar: sugar}
}

func (f *regionBFactory) MakeWater() Water {
	return Water{region: RegionB}
}
