package catalog

import "github.com/shopspring/decimal"

// Product is one immutable catalog listing. JSON tags match the persisted
// snapshot layout.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Gallery     []string        `json:"gallery"`
	Sizes       []string        `json:"sizes"`
	Tags        []string        `json:"tags,omitempty"`
}

// Clone returns a deep copy of the product, including its slice fields.
func (p Product) Clone() Product {
	out := p
	out.Gallery = append([]string(nil), p.Gallery...)
	out.Sizes = append([]string(nil), p.Sizes...)
	if p.Tags != nil {
		out.Tags = append([]string(nil), p.Tags...)
	}
	return out
}

// Catalog is the static, read-only product listing shared by every storefront
// shell. It is never mutated after construction.
type Catalog struct {
	products []Product
	byID     map[string]Product
}

// New builds a catalog over the given products. Later duplicates of a product
// id are ignored.
func New(products []Product) *Catalog {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		byID:     make(map[string]Product, len(products)),
	}
	for _, p := range products {
		if _, exists := c.byID[p.ID]; exists {
			continue
		}
		c.products = append(c.products, p)
		c.byID[p.ID] = p
	}
	return c
}

// Default returns the catalog shipped with the demo storefront.
func Default() *Catalog {
	return New(defaultProducts)
}

// Products returns all listings in display order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// ByID looks up a product by id.
func (c *Catalog) ByID(id string) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// ByCategory returns the listings tagged with the given category, in display
// order.
func (c *Catalog) ByCategory(category string) []Product {
	var out []Product
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the storefront's browse categories.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}
