package dto

import "github.com/rogerio-castellano/webstore/internal/models"

// Single value mappers return nil for nil input. Slice mappers return nil for
// a nil slice and an empty slice for an empty one.

func SectionToDTO(s *models.Section) *SectionDTO {
	if s == nil {
		return nil
	}
	return &SectionDTO{
		Id:       s.ID,
		Name:     s.Name,
		Order:    s.Order,
		ParentId: copyInt(s.ParentID),
	}
}

func SectionFromDTO(s *SectionDTO) *models.Section {
	if s == nil {
		return nil
	}
	return &models.Section{
		ID:       s.Id,
		Name:     s.Name,
		Order:    s.Order,
		ParentID: copyInt(s.ParentId),
	}
}

func BrandToDTO(b *models.Brand) *BrandDTO {
	if b == nil {
		return nil
	}
	return &BrandDTO{
		Id:            b.ID,
		Name:          b.Name,
		Order:         b.Order,
		ProductsCount: b.ProductsCount(),
	}
}

// BrandFromDTO restores Products as ProductsCount empty placeholders. The
// count survives the round trip, the product identities do not.
func BrandFromDTO(b *BrandDTO) *models.Brand {
	if b == nil {
		return nil
	}
	count := b.ProductsCount
	if count < 0 {
		count = 0
	}
	return &models.Brand{
		ID:       b.Id,
		Name:     b.Name,
		Order:    b.Order,
		Products: make([]models.Product, count),
	}
}

func ProductToDTO(p *models.Product) *ProductDTO {
	if p == nil {
		return nil
	}
	return &ProductDTO{
		Id:       p.ID,
		Name:     p.Name,
		Order:    p.Order,
		Section:  SectionToDTO(p.Section),
		Brand:    BrandToDTO(p.Brand),
		ImageUrl: p.ImageURL,
		Price:    p.Price,
	}
}

func ProductFromDTO(p *ProductDTO) *models.Product {
	if p == nil {
		return nil
	}
	product := &models.Product{
		ID:       p.Id,
		Name:     p.Name,
		Order:    p.Order,
		ImageURL: p.ImageUrl,
		Price:    p.Price,
		Section:  SectionFromDTO(p.Section),
		Brand:    BrandFromDTO(p.Brand),
	}
	if product.Section != nil {
		product.SectionID = product.Section.ID
	}
	if product.Brand != nil {
		id := product.Brand.ID
		product.BrandID = &id
	}
	return product
}

func SectionsToDTO(sections []models.Section) []SectionDTO {
	return mapSlice(sections, SectionToDTO)
}

func SectionsFromDTO(sections []SectionDTO) []models.Section {
	return mapSlice(sections, SectionFromDTO)
}

func BrandsToDTO(brands []models.Brand) []BrandDTO {
	return mapSlice(brands, BrandToDTO)
}

func BrandsFromDTO(brands []BrandDTO) []models.Brand {
	return mapSlice(brands, BrandFromDTO)
}

func ProductsToDTO(products []models.Product) []ProductDTO {
	return mapSlice(products, ProductToDTO)
}

func ProductsFromDTO(products []ProductDTO) []models.Product {
	return mapSlice(products, ProductFromDTO)
}

func ProductPageToDTO(page models.Page[models.Product]) models.Page[ProductDTO] {
	return models.MapPage(page, func(p models.Product) ProductDTO {
		return *ProductToDTO(&p)
	})
}

func ProductPageFromDTO(page models.Page[ProductDTO]) models.Page[models.Product] {
	return models.MapPage(page, func(p ProductDTO) models.Product {
		return *ProductFromDTO(&p)
	})
}

func mapSlice[A, B any](in []A, fn func(*A) *B) []B {
	if in == nil {
		return nil
	}
	out := make([]B, len(in))
	for i := range in {
		out[i] = *fn(&in[i])
	}
	return out
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
