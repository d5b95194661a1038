package handlers

import (
	"cmp"
	"net/http"
	"slices"

	"github.com/rogerio-castellano/webstore/internal/cart"
	"github.com/rogerio-castellano/webstore/internal/http/paging"
	"github.com/rogerio-castellano/webstore/internal/models"
	"github.com/rogerio-castellano/webstore/internal/repo"
)

// CatalogHandler godoc
// @Summary Browse the catalog
// @Description Products of a section and brand with page links. PageSize defaults to the configured catalog page size.
// @Tags catalog
// @Produce json
// @Param SectionId query int false "Section ID"
// @Param BrandId query int false "Brand ID"
// @Param PageNumber query int false "Page number, 1-based"
// @Param PageSize query int false "Page size"
// @Success 200 {object} CatalogView
// @Failure 400 {array} ValidationError
// @Router /catalog [get]
func CatalogHandler(w http.ResponseWriter, r *http.Request) {
	filter := repo.DefaultProductFilter()

	var err error
	var pageNumber, pageSize *int
	if filter.SectionID, err = queryInt(r, "SectionId"); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if filter.BrandID, err = queryInt(r, "BrandId"); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if pageNumber, err = queryInt(r, "PageNumber"); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if pageSize, err = queryInt(r, "PageSize"); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if pageNumber != nil {
		filter.PageNumber = *pageNumber
	}
	if pageSize == nil {
		size := catalogPageSize
		pageSize = &size
	}
	filter.PageSize = pageSize

	if validationErrors := validateProductFilter(filter); len(validationErrors) > 0 {
		writeValidationErrors(w, validationErrors)
		return
	}

	page, err := productData.GetProducts(&filter)
	if err != nil {
		storageFailure(w, "fetch catalog", err)
		return
	}

	products := slices.Clone(page.Items)
	slices.SortStableFunc(products, func(a, b models.Product) int {
		return cmp.Compare(a.Order, b.Order)
	})

	views := make([]cart.ProductView, len(products))
	for i, p := range products {
		views[i] = cart.NewProductView(p)
	}

	writeJSON(w, http.StatusOK, CatalogView{
		SectionId: filter.SectionID,
		BrandId:   filter.BrandID,
		Products:  views,
		Page: PageView{
			Page:       page.PageNumber,
			PageSize:   page.PageSize,
			TotalItems: page.TotalCount,
			TotalPages: page.PagesCount(),
		},
		Links: paging.BuildLinks(r.URL.Path, r.URL.Query(), page.PageNumber, page.PagesCount()),
	})
}

// ProductDetailsHandler godoc
// @Summary Product details
// @Tags catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} cart.ProductView
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /catalog/{id} [get]
func ProductDetailsHandler(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, cart.NewProductView(*product))
}

// SectionsTreeHandler godoc
// @Summary Section tree
// @Tags catalog
// @Produce json
// @Success 200 {array} SectionView
// @Router /catalog/sections [get]
func SectionsTreeHandler(w http.ResponseWriter, r *http.Request) {
	sections, err := productData.GetSections()
	if err != nil {
		storageFailure(w, "fetch sections", err)
		return
	}
	writeJSON(w, http.StatusOK, buildSectionTree(sections))
}

// buildSectionTree nests sections under their parents. Sections with a
// missing parent become roots, and every section appears at most once even
// when parent links form a cycle.
func buildSectionTree(sections []models.Section) []SectionView {
	byID := make(map[int]models.Section, len(sections))
	for _, s := range sections {
		byID[s.ID] = s
	}

	children := make(map[int][]models.Section)
	var roots []models.Section
	for _, s := range sections {
		if s.ParentID == nil {
			roots = append(roots, s)
			continue
		}
		if _, ok := byID[*s.ParentID]; !ok {
			roots = append(roots, s)
			continue
		}
		children[*s.ParentID] = append(children[*s.ParentID], s)
	}

	visited := make(map[int]bool, len(sections))
	var build func(list []models.Section) []SectionView
	build = func(list []models.Section) []SectionView {
		slices.SortStableFunc(list, func(a, b models.Section) int {
			if c := cmp.Compare(a.Order, b.Order); c != 0 {
				return c
			}
			return cmp.Compare(a.ID, b.ID)
		})
		views := []SectionView{}
		for _, s := range list {
			if visited[s.ID] {
				continue
			}
			visited[s.ID] = true
			views = append(views, SectionView{
				Id:            s.ID,
				Name:          s.Name,
				Order:         s.Order,
				ChildSections: build(children[s.ID]),
			})
		}
		return views
	}

	tree := build(roots)

	// Sections only reachable through a cycle have no root. Promote the
	// first unvisited one of each cycle.
	for _, s := range sections {
		if !visited[s.ID] {
			tree = append(tree, build([]models.Section{s})...)
		}
	}
	return tree
}

// BrandsViewHandler godoc
// @Summary Brands with product counts
// @Tags catalog
// @Produce json
// @Success 200 {array} BrandView
// @Router /catalog/brands [get]
func BrandsViewHandler(w http.ResponseWriter, r *http.Request) {
	brands, err := productData.GetBrands()
	if err != nil {
		storageFailure(w, "fetch brands", err)
		return
	}

	slices.SortStableFunc(brands, func(a, b models.Brand) int {
		return cmp.Compare(a.Order, b.Order)
	})

	views := make([]BrandView, len(brands))
	for i, b := range brands {
		views[i] = BrandView{Id: b.ID, Name: b.Name, ProductsCount: b.ProductsCount()}
	}
	writeJSON(w, http.StatusOK, views)
}
