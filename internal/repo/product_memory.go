package repo

import (
	"cmp"
	"slices"

	"github.com/rogerio-castellano/webstore/internal/models"
)

// InMemoryProductData serves the catalog from a seed. It is read-only after
// construction, so concurrent readers need no locking.
type InMemoryProductData struct {
	sections []models.Section
	brands   []models.Brand
	products []models.Product

	sectionsByID map[int]int
	brandsByID   map[int]int
}

// NewInMemoryProductData copies the seed and orders every collection by
// Order, then ID.
func NewInMemoryProductData(seed CatalogSeed) *InMemoryProductData {
	r := &InMemoryProductData{
		sections:     slices.Clone(seed.Sections),
		brands:       make([]models.Brand, len(seed.Brands)),
		products:     slices.Clone(seed.Products),
		sectionsByID: make(map[int]int, len(seed.Sections)),
		brandsByID:   make(map[int]int, len(seed.Brands)),
	}

	slices.SortStableFunc(r.sections, func(a, b models.Section) int {
		return byOrder(a.Order, a.ID, b.Order, b.ID)
	})
	slices.SortStableFunc(r.products, func(a, b models.Product) int {
		return byOrder(a.Order, a.ID, b.Order, b.ID)
	})

	for i, b := range seed.Brands {
		b.Products = nil
		r.brands[i] = b
	}
	slices.SortStableFunc(r.brands, func(a, b models.Brand) int {
		return byOrder(a.Order, a.ID, b.Order, b.ID)
	})

	for i, s := range r.sections {
		r.sectionsByID[s.ID] = i
	}
	for i, b := range r.brands {
		r.brandsByID[b.ID] = i
	}
	for _, p := range r.products {
		if p.BrandID == nil {
			continue
		}
		if i, ok := r.brandsByID[*p.BrandID]; ok {
			p.Section, p.Brand = nil, nil
			r.brands[i].Products = append(r.brands[i].Products, p)
		}
	}

	return r
}

func byOrder(orderA, idA, orderB, idB int) int {
	if c := cmp.Compare(orderA, orderB); c != 0 {
		return c
	}
	return cmp.Compare(idA, idB)
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

func (r *InMemoryProductData) GetSections() ([]models.Section, error) {
	return slices.Clone(r.sections), nil
}

func (r *InMemoryProductData) GetSectionByID(id int) (*models.Section, error) {
	i, ok := r.sectionsByID[id]
	if !ok {
		return nil, nil
	}
	s := r.sections[i]
	return &s, nil
}

func (r *InMemoryProductData) GetBrands() ([]models.Brand, error) {
	return slices.Clone(r.brands), nil
}

func (r *InMemoryProductData) GetBrandByID(id int) (*models.Brand, error) {
	i, ok := r.brandsByID[id]
	if !ok {
		return nil, nil
	}
	b := r.brands[i]
	return &b, nil
}

// GetProducts filters by exact section and brand. Child sections of the
// requested section are not included.
func (r *InMemoryProductData) GetProducts(filter *ProductFilter) (models.Page[models.Product], error) {
	f := filterOrDefault(filter)

	filtered := []models.Product{}
	for _, p := range r.products {
		if f.matches(p) {
			filtered = append(filtered, p)
		}
	}

	total := len(filtered)
	if f.Paged() {
		start := clamp(f.Offset(), 0, total)
		end := clamp(start+f.Size(), start, total)
		filtered = filtered[start:end]
	}

	items := make([]models.Product, len(filtered))
	for i, p := range filtered {
		items[i] = r.withRelations(p)
	}

	return models.NewPage(items, f.Page(), f.Size(), total), nil
}

func (r *InMemoryProductData) GetProductByID(id int) (*models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			p = r.withRelations(p)
			return &p, nil
		}
	}
	return nil, nil
}

func (r *InMemoryProductData) withRelations(p models.Product) models.Product {
	p.Section, _ = r.GetSectionByID(p.SectionID)
	p.Brand = nil
	if p.BrandID != nil {
		p.Brand, _ = r.GetBrandByID(*p.BrandID)
	}
	return p
}
