package beverage

// Sugar is an ingredient produced by a Factory handle. Each region defines
// its own concrete sugar type; the interface is not implementable outside
// this package.
type Sugar interface {
	// Spoons returns the spoon count recorded at creation.
	Spoons() int

	// familyTag identifies the Factory handle that made this sugar.
	familyTag() string
}

// caneSugar is RegionA's sugar.
type caneSugar struct {
	spoons int
	tag    string
}

func (s caneSugar) Spoons() int       { return s.spoons }
func (s caneSugar) familyTag() string { return s.tag }

// beetSugar is RegionB's sugar.
type beetSugar struct {
	spoons int
	tag    string
}

func (s beetSugar) Spoons() int       { return s.spoons }
func (s beetSugar) familyTag() string { return s.tag }

// Drink is one prepared drink. Concrete drinks are Coffee, Tea, and Water;
// all are immutable once created.
type Drink interface {
	// Name returns the drink name for display.
	Name() string

	// Region returns the region of the factory that prepared the drink.
	Region() Region

	// Sweetener returns the sugar used, or nil for unsweetened drinks.
	Sweetener() Sugar
}

// Coffee is a sweetened drink. It references exactly the Sugar value passed
// to MakeCoffee.
type Coffee struct {
	region Region
	sugar  Sugar
}

func (c Coffee) Name() string     { return "coffee" }
func (c Coffee) Region() Region   { return c.region }
func (c Coffee) Sweetener() Sugar { return c.sugar }

// Tea is a sweetened drink. It references exactly the Sugar value passed
// to MakeTea.
type Tea struct {
	region Region
	sugar  Sugar
}

func (t Tea) Name() string     { return "tea" }
func (t Tea) Region() Region   { return t.region }
func (t Tea) Sweetener() Sugar { return t.sugar }

// Water carries no ingredients.
type Water struct {
	region Region
}

func (w Water) Name() string     { return "water" }
func (w Water) Region() Region   { return w.region }
func (w Water) Sweetener() Sugar { return nil }
