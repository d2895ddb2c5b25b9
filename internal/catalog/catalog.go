package catalog

import (
	"fmt"
	"sync"

	pkgerrors "github.com/kanvah/storefront-backend/pkg/errors"
)

var ErrProductNotFound = pkgerrors.New(pkgerrors.CodeNotFound, "product not found")

// Catalog is the fixed, read-only product list. It is safe for concurrent use.
type Catalog struct {
	products []Product
	byID     map[int]int
}

// New validates the entries and indexes them by id. Catalog order is preserved.
func New(products []Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]Product, len(products)),
		byID:     make(map[int]int, len(products)),
	}
	for i, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		c.products[i] = p
		c.byID[p.ID] = i
	}
	return c, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the storefront catalog compiled into the binary.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := New(defaultProducts)
		if err != nil {
			panic(fmt.Sprintf("catalog: invalid built-in catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// All returns a copy of every product in catalog order.
func (c *Catalog) All() []Product {
	return append([]Product(nil), c.products...)
}

func (c *Catalog) Get(id int) (Product, error) {
	idx, ok := c.byID[id]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return c.products[idx], nil
}

// Search runs q against the whole catalog.
func (c *Catalog) Search(q Query) []Product {
	return Run(c.products, q)
}

// Related lists up to limit other products of the same category, in catalog
// order. A non-positive limit means no cap.
func (c *Catalog) Related(id, limit int) ([]Product, error) {
	p, err := c.Get(id)
	if err != nil {
		return nil, err
	}
	out := []Product{}
	for _, candidate := range c.products {
		if limit > 0 && len(out) == limit {
			break
		}
		if candidate.Category == p.Category && candidate.ID != p.ID {
			out = append(out, candidate)
		}
	}
	return out, nil
}
