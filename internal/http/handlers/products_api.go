package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/webstore/internal/dto"
	"github.com/rogerio-castellano/webstore/internal/repo"
)

// GetProductsHandler godoc
// @Summary Query a page of products
// @Description Filters products by section and brand. A missing or zero PageSize returns every match.
// @Tags products
// @Accept json
// @Produce json
// @Param filter body repo.ProductFilter false "Product filter"
// @Success 200 {object} models.Page[dto.ProductDTO]
// @Failure 400 {array} ValidationError
// @Failure 500 {string} string "Internal error"
// @Router /api/v1/products [post]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	filter := repo.DefaultProductFilter()
	if err := readJSON(w, r, &filter); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if validationErrors := validateProductFilter(filter); len(validationErrors) > 0 {
		writeValidationErrors(w, validationErrors)
		return
	}

	page, err := productData.GetProducts(&filter)
	if err != nil {
		storageFailure(w, "fetch products", err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ProductPageToDTO(page))
}

// GetSectionsHandler godoc
// @Summary List catalog sections
// @Tags products
// @Produce json
// @Success 200 {array} dto.SectionDTO
// @Failure 500 {string} string "Internal error"
// @Router /api/v1/products/sections [get]
func GetSectionsHandler(w http.ResponseWriter, r *http.Request) {
	sections, err := productData.GetSections()
	if err != nil {
		storageFailure(w, "fetch sections", err)
		return
	}
	writeJSON(w, http.StatusOK, dto.SectionsToDTO(sections))
}

// GetSectionByIDHandler godoc
// @Summary Get section by ID
// @Tags products
// @Produce json
// @Param id path int true "Section ID"
// @Success 200 {object} dto.SectionDTO
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /api/v1/products/sections/{id} [get]
func GetSectionByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "section")
	if !ok {
		return
	}

	section, err := productData.GetSectionByID(id)
	if err != nil {
		storageFailure(w, "fetch section", err)
		return
	}
	if section == nil {
		http.Error(w, "section not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, dto.SectionToDTO(section))
}

// GetBrandsHandler godoc
// @Summary List brands
// @Tags products
// @Produce json
// @Success 200 {array} dto.BrandDTO
// @Failure 500 {string} string "Internal error"
// @Router /api/v1/products/brands [get]
func GetBrandsHandler(w http.ResponseWriter, r *http.Request) {
	brands, err := productData.GetBrands()
	if err != nil {
		storageFailure(w, "fetch brands", err)
		return
	}
	writeJSON(w, http.StatusOK, dto.BrandsToDTO(brands))
}

// GetBrandByIDHandler godoc
// @Summary Get brand by ID
// @Tags products
// @Produce json
// @Param id path int true "Brand ID"
// @Success 200 {object} dto.BrandDTO
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /api/v1/products/brands/{id} [get]
func GetBrandByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "brand")
	if !ok {
		return
	}

	brand, err := productData.GetBrandByID(id)
	if err != nil {
		storageFailure(w, "fetch brand", err)
		return
	}
	if brand == nil {
		http.Error(w, "brand not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, dto.BrandToDTO(brand))
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} dto.ProductDTO
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /api/v1/products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "product")
	if !ok {
		return
	}

	product, err := productData.GetProductByID(id)
	if err != nil {
		storageFailure(w, "fetch product", err)
		return
	}
	if product == nil {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, dto.ProductToDTO(product))
}
