package pricing

// Item is one priced catalog entry. ID is the value the form submits.
type Item struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Price int64  `json:"price"`
}

// Fixed add-on prices in rupees
const (
	DecorationPrice     int64 = 500
	PhotographyPrice    int64 = 699
	GoldPackageCouples  int64 = 2000
	GoldPackageStandard int64 = 2500
)

// CouplesTheatrePackage is the paired tier with the cheaper gold package
const CouplesTheatrePackage = "Couples Theatre - 1111"

// Catalog holds the static price tables
type Catalog struct {
	Packages   []Item
	Cakes      []Item
	FogEntries []Item

	packages   map[string]int64
	cakes      map[string]int64
	fogEntries map[string]int64
}

// NewCatalog indexes the given tables for lookup by ID
func NewCatalog(packages, cakes, fogEntries []Item) *Catalog {
	return &Catalog{
		Packages:   packages,
		Cakes:      cakes,
		FogEntries: fogEntries,
		packages:   index(packages),
		cakes:      index(cakes),
		fogEntries: index(fogEntries),
	}
}

var defaultCatalog = NewCatalog(
	[]Item{
		{ID: "Family Theatre - 1599", Label: "Family Theatre", Price: 1599},
		{ID: CouplesTheatrePackage, Label: "Couples Theatre", Price: 1111},
		{ID: "Friends Theatre - 1599", Label: "Friends Theatre", Price: 1599},
	},
	[]Item{
		{ID: "Chocolate Cake - 500", Label: "Chocolate Cake", Price: 500},
		{ID: "Black Forest Cake - 500", Label: "Black Forest Cake", Price: 500},
		{ID: "Butterscotch Cake - 500", Label: "Butterscotch Cake", Price: 500},
		{ID: "Pineapple Cake - 500", Label: "Pineapple Cake", Price: 500},
		{ID: "Red Velvet Round Cake - 600", Label: "Red Velvet Round Cake", Price: 600},
		{ID: "Irish Coffee Cake - 600", Label: "Irish Coffee Cake", Price: 600},
		{ID: "Red Velvet Heart Cake - 750", Label: "Red Velvet Heart Cake", Price: 750},
		{ID: "Choco Truffle Cake - 800", Label: "Choco Truffle Cake", Price: 800},
		{ID: "DBC Cake - 800", Label: "DBC Cake", Price: 800},
		{ID: "Choco Oreo Cake - 800", Label: "Choco Oreo Cake", Price: 800},
		{ID: "Choco Chip Loaded Cake - 800", Label: "Choco Chip Loaded Cake", Price: 800},
		{ID: "Kit Jar Cake - 1000", Label: "Kit Jar Cake", Price: 1000},
	},
	[]Item{
		{ID: "1 pot - 300", Label: "1 pot", Price: 300},
		{ID: "2 pots - 500", Label: "2 pots", Price: 500},
		{ID: "3 pots - 700", Label: "3 pots", Price: 700},
		{ID: "4 pots - 900", Label: "4 pots", Price: 900},
		{ID: "Grand Fog Entry (10 pots) - 1599", Label: "Grand Fog Entry (10 pots)", Price: 1599},
	},
)

// Default returns the theatre's price list
func Default() *Catalog {
	return defaultCatalog
}

// PackagePrice returns 0 for an unknown or empty package
func (c *Catalog) PackagePrice(id string) int64 {
	return c.packages[id]
}

func (c *Catalog) CakePrice(id string) int64 {
	return c.cakes[id]
}

func (c *Catalog) FogEntryPrice(id string) int64 {
	return c.fogEntries[id]
}

// GoldPackagePrice is keyed by the base package: couples tier or any other
func (c *Catalog) GoldPackagePrice(packageID string) int64 {
	if packageID == CouplesTheatrePackage {
		return GoldPackageCouples
	}
	return GoldPackageStandard
}

// HasPackage reports whether the ID is a known package
func (c *Catalog) HasPackage(id string) bool {
	_, ok := c.packages[id]
	return ok
}

func (c *Catalog) HasCake(id string) bool {
	_, ok := c.cakes[id]
	return ok
}

func (c *Catalog) HasFogEntry(id string) bool {
	_, ok := c.fogEntries[id]
	return ok
}

func index(items []Item) map[string]int64 {
	m := make(map[string]int64, len(items))
	for _, item := range items {
		m[item.ID] = item.Price
	}
	return m
}
