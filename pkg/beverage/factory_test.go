// Tests for the drink family factory.
package beverage

import (
	"strings"
	"sync"
	"testing"
)

func TestForRegion_PinnedRegion(t *testing.T) {
	for _, r := range Regions() {
		f := ForRegion(r)
		if f.Region() != r {
			t.Errorf("ForRegion(%s).Region() = %s", r, f.Region())
		}
		// Region never changes across operations on one handle.
		f.MakeWater()
		f.MakeCoffee(f.MakeSugar(1))
		if f.Region() != r {
			t.Errorf("region drifted to %s after use", f.Region())
		}
	}
}

func TestFactory_DrinkReferencesSameSugar(t *testing.T) {
	f := ForRegion(RegionA)

	sugar := f.MakeSugar(2)
	coffee := f.MakeCoffee(sugar)
	tea := f.MakeTea(sugar)

	if coffee.Sweetener() != sugar {
		t.Error("coffee does not reference the sugar passed in")
	}
	if tea.Sweetener() != sugar {
		t.Error("tea does not reference the sugar passed in")
	}
	if coffee.Sweetener().Spoons() != 2 {
		t.Errorf("spoons = %d, want 2", coffee.Sweetener().Spoons())
	}
}

func TestFactory_WaterHasNoSugar(t *testing.T) {
	w := ForRegion(RegionB).MakeWater()
	if w.Sweetener() != nil {
		t.Error("water carries sugar")
	}
}

func TestFactory_CrossFamilySugarPanics(t *testing.T) {
	cases := []struct {
		name string
		from Region
		to   Region
	}{
		{"a to b", RegionA, RegionB},
		{"b to a", RegionB, RegionA},
		// Two handles of the same region are still distinct families.
		{"a to a", RegionA, RegionA},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sugar := ForRegion(tc.from).MakeSugar(1)
			other := ForRegion(tc.to)

			assertPanics(t, "MakeCoffee", func() { other.MakeCoffee(sugar) })
			assertPanics(t, "MakeTea", func() { other.MakeTea(sugar) })
		})
	}
}

func TestFactory_NegativeSpoonsPanics(t *testing.T) {
	f := ForRegion(RegionA)
	assertPanics(t, "MakeSugar", func() { f.MakeSugar(-1) })
}

func TestFactory_NilSugarPanics(t *testing.T) {
	f := ForRegion(RegionA)
	assertPanics(t, "MakeCoffee", func() { f.MakeCoffee(nil) })
}

func TestParseRegion(t *testing.T) {
	for _, r := range Regions() {
		got, err := ParseRegion(string(r))
		if err != nil {
			t.Fatalf("ParseRegion(%s) failed: %v", r, err)
		}
		if got != r {
			t.Errorf("ParseRegion(%s) = %s", r, got)
		}
	}

	if _, err := ParseRegion("region-z"); err == nil {
		t.Error("expected error for unknown region")
	}
}

func TestPickRegion_ReturnsKnownRegion(t *testing.T) {
	for range 20 {
		r := PickRegion()
		if _, err := ParseRegion(string(r)); err != nil {
			t.Fatalf("PickRegion returned unknown region %q", r)
		}
	}
}

func TestFactory_ConcurrentUse(t *testing.T) {
	f := ForRegion(RegionB)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 50 {
				c := f.MakeCoffee(f.MakeSugar(i))
				if c.Region() != RegionB {
					t.Error("wrong region on concurrent make")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestOrder_Summary(t *testing.T) {
	f := ForRegion(RegionA)
	o := NewOrder().
		Add(f.MakeWater()).
		Add(f.MakeCoffee(f.MakeSugar(3)))

	if o.Len() != 2 {
		t.Fatalf("Len = %d, want 2", o.Len())
	}

	s := o.Summary()
	if !strings.Contains(s, "water (region-a)") {
		t.Errorf("summary missing water line: %q", s)
	}
	if !strings.Contains(s, "coffee (region-a, 3 spoons)") {
		t.Errorf("summary missing coffee line: %q", s)
	}
}

// assertPanics fails the test unless fn panics.
func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}
