package repo

import "github.com/rogerio-castellano/webstore/internal/models"

// ProductData is the catalog query contract. Lookups return nil, nil when the
// entity does not exist.
type ProductData interface {
	GetSections() ([]models.Section, error)
	GetSectionByID(id int) (*models.Section, error)
	GetBrands() ([]models.Brand, error)
	GetBrandByID(id int) (*models.Brand, error)
	GetProducts(filter *ProductFilter) (models.Page[models.Product], error)
	GetProductByID(id int) (*models.Product, error)
}

func filterOrDefault(filter *ProductFilter) ProductFilter {
	if filter == nil {
		return DefaultProductFilter()
	}
	return *filter
}
