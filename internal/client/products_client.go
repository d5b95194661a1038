package client

import (
	"fmt"
	"net/http"

	"github.com/rogerio-castellano/webstore/internal/dto"
	"github.com/rogerio-castellano/webstore/internal/models"
	"github.com/rogerio-castellano/webstore/internal/repo"
)

const productsPath = "/api/v1/products"

// ProductsClient implements repo.ProductData over the Products Web API.
// Errors are returned as they occur and are never retried.
type ProductsClient struct {
	baseClient
}

var _ repo.ProductData = (*ProductsClient)(nil)

func NewProductsClient(baseURL string, httpClient *http.Client) *ProductsClient {
	return &ProductsClient{baseClient: newBaseClient(baseURL, httpClient)}
}

func (c *ProductsClient) GetSections() ([]models.Section, error) {
	var sections []dto.SectionDTO
	if _, err := c.getJSON(productsPath+"/sections", &sections); err != nil {
		return nil, err
	}
	return dto.SectionsFromDTO(sections), nil
}

func (c *ProductsClient) GetSectionByID(id int) (*models.Section, error) {
	var section dto.SectionDTO
	found, err := c.getJSON(fmt.Sprintf("%s/sections/%d", productsPath, id), &section)
	if err != nil || !found {
		return nil, err
	}
	return dto.SectionFromDTO(&section), nil
}

func (c *ProductsClient) GetBrands() ([]models.Brand, error) {
	var brands []dto.BrandDTO
	if _, err := c.getJSON(productsPath+"/brands", &brands); err != nil {
		return nil, err
	}
	return dto.BrandsFromDTO(brands), nil
}

func (c *ProductsClient) GetBrandByID(id int) (*models.Brand, error) {
	var brand dto.BrandDTO
	found, err := c.getJSON(fmt.Sprintf("%s/brands/%d", productsPath, id), &brand)
	if err != nil || !found {
		return nil, err
	}
	return dto.BrandFromDTO(&brand), nil
}

func (c *ProductsClient) GetProducts(filter *repo.ProductFilter) (models.Page[models.Product], error) {
	f := repo.DefaultProductFilter()
	if filter != nil {
		f = *filter
	}

	var page models.Page[dto.ProductDTO]
	found, err := c.postJSON(productsPath, f, &page)
	if err != nil {
		return models.Page[models.Product]{}, err
	}
	if !found {
		return models.Page[models.Product]{}, &StatusError{Path: productsPath, StatusCode: http.StatusNotFound}
	}
	return dto.ProductPageFromDTO(page), nil
}

func (c *ProductsClient) GetProductByID(id int) (*models.Product, error) {
	var product dto.ProductDTO
	found, err := c.getJSON(fmt.Sprintf("%s/%d", productsPath, id), &product)
	if err != nil || !found {
		return nil, err
	}
	return dto.ProductFromDTO(&product), nil
}
