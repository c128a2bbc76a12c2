package catalog

// Product is one sellable item. PriceCents is the authoritative price in
// minor currency units; client-submitted prices are never trusted.
type Product struct {
	ID         string
	Name       string
	PriceCents int
	ImagePath  string
	WeightOz   int
}

// Catalog is the static product table. Loaded once at process start and
// never mutated, so concurrent reads need no synchronization.
type Catalog struct {
	byID    map[string]Product
	ordered []Product
}

const defaultWeightOz = 8

// New builds a catalog from the provided products, preserving order for
// listings. Products without a weight get the default parcel weight.
func New(products []Product) *Catalog {
	byID := make(map[string]Product, len(products))
	ordered := make([]Product, 0, len(products))
	for _, p := range products {
		if p.ID == "" {
			continue
		}
		if p.WeightOz <= 0 {
			p.WeightOz = defaultWeightOz
		}
		if _, exists := byID[p.ID]; exists {
			continue
		}
		byID[p.ID] = p
		ordered = append(ordered, p)
	}
	return &Catalog{byID: byID, ordered: ordered}
}

// Default returns the storefront's built-in product table.
func Default() *Catalog {
	return New(defaultProducts)
}

// Lookup returns the product for the given id, if it exists.
func (c *Catalog) Lookup(id string) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Contains reports whether the id names a known product.
func (c *Catalog) Contains(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// List returns all products in catalog order.
func (c *Catalog) List() []Product {
	out := make([]Product, len(c.ordered))
	copy(out, c.ordered)
	return out
}

var defaultProducts = []Product{
	{ID: "classic-tee-black", Name: "Classic Tee Black", PriceCents: 2800, ImagePath: "/images/products/classic-tee-black.jpg", WeightOz: 7},
	{ID: "classic-tee-bone", Name: "Classic Tee Bone", PriceCents: 2800, ImagePath: "/images/products/classic-tee-bone.jpg", WeightOz: 7},
	{ID: "heavyweight-hoodie", Name: "Heavyweight Hoodie", PriceCents: 7400, ImagePath: "/images/products/heavyweight-hoodie.jpg", WeightOz: 26},
	{ID: "crewneck-washed", Name: "Washed Crewneck", PriceCents: 6200, ImagePath: "/images/products/crewneck-washed.jpg", WeightOz: 20},
	{ID: "work-jacket", Name: "Work Jacket", PriceCents: 11800, ImagePath: "/images/products/work-jacket.jpg", WeightOz: 34},
	{ID: "canvas-tote", Name: "Canvas Tote", PriceCents: 2400, ImagePath: "/images/products/canvas-tote.jpg", WeightOz: 10},
	{ID: "dad-cap", Name: "Dad Cap", PriceCents: 3200, ImagePath: "/images/products/dad-cap.jpg", WeightOz: 4},
	{ID: "wool-beanie", Name: "Wool Beanie", PriceCents: 3000, ImagePath: "/images/products/wool-beanie.jpg", WeightOz: 4},
}
