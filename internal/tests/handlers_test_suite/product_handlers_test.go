package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rogerio-castellano/webstore/internal/dto"
	api "github.com/rogerio-castellano/webstore/internal/http"
	handler "github.com/rogerio-castellano/webstore/internal/http/handlers"
	"github.com/rogerio-castellano/webstore/internal/models"
	"github.com/rogerio-castellano/webstore/internal/repo"
)

func TestGetProductsHandler_Paged(t *testing.T) {
	r := api.NewRouter()

	w := doRequest(r, http.MethodPost, "/api/v1/products", repo.ProductFilter{PageNumber: 2, PageSize: intPtr(5)}, false)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var page models.Page[dto.ProductDTO]
	if err := json.NewDecoder(w.Body).Decode(&page); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if page.TotalCount != 12 {
		t.Errorf("expected total count 12, got %d", page.TotalCount)
	}
	if page.PageNumber != 2 || page.PageSize != 5 {
		t.Errorf("expected page 2 of size 5, got page %d of size %d", page.PageNumber, page.PageSize)
	}
	if len(page.Items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(page.Items))
	}
	if page.Items[0].Id != 6 {
		t.Errorf("expected first item id 6, got %d", page.Items[0].Id)
	}
	if page.Items[0].Section == nil || page.Items[0].Section.Name != "Guess" {
		t.Errorf("expected section Guess, got %+v", page.Items[0].Section)
	}
	if page.PagesCount() != 3 {
		t.Errorf("expected 3 pages, got %d", page.PagesCount())
	}
}

func TestGetProductsHandler_EmptyBodyReturnsAll(t *testing.T) {
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var page models.Page[dto.ProductDTO]
	if err := json.NewDecoder(w.Body).Decode(&page); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(page.Items) != 12 || page.TotalCount != 12 {
		t.Errorf("expected all 12 products, got %d of %d", len(page.Items), page.TotalCount)
	}
	if page.PageSize != 0 || page.PagesCount() != 0 {
		t.Errorf("expected unpaged result, got page size %d", page.PageSize)
	}
}

func TestGetProductsHandler_Filters(t *testing.T) {
	r := api.NewRouter()

	tests := []struct {
		name        string
		filter      repo.ProductFilter
		expectedIDs []int
	}{
		{"Section only, no children", repo.ProductFilter{SectionID: intPtr(1), PageNumber: 1}, []int{}},
		{"Leaf section", repo.ProductFilter{SectionID: intPtr(2), PageNumber: 1}, []int{1, 2, 3}},
		{"Brand", repo.ProductFilter{BrandID: intPtr(4), PageNumber: 1}, []int{3, 4, 12}},
		{"Section and brand", repo.ProductFilter{SectionID: intPtr(2), BrandID: intPtr(4), PageNumber: 1}, []int{3}},
		{"Unknown brand", repo.ProductFilter{BrandID: intPtr(100), PageNumber: 1, PageSize: intPtr(3)}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, http.MethodPost, "/api/v1/products", tt.filter, false)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200 OK, got %d", w.Code)
			}

			var page models.Page[dto.ProductDTO]
			if err := json.NewDecoder(w.Body).Decode(&page); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}

			if len(page.Items) != len(tt.expectedIDs) {
				t.Fatalf("expected %d items, got %d", len(tt.expectedIDs), len(page.Items))
			}
			for i, id := range tt.expectedIDs {
				if page.Items[i].Id != id {
					t.Errorf("item %d: expected id %d, got %d", i, id, page.Items[i].Id)
				}
			}
			if page.TotalCount != len(tt.expectedIDs) {
				t.Errorf("expected total %d, got %d", len(tt.expectedIDs), page.TotalCount)
			}
		})
	}
}

func TestGetProductsHandler_NegativePageSize(t *testing.T) {
	r := api.NewRouter()

	w := doRequest(r, http.MethodPost, "/api/v1/products", repo.ProductFilter{PageNumber: 1, PageSize: intPtr(-1)}, false)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", w.Code)
	}

	var resp []handler.ValidationError
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	found := false
	for _, e := range resp {
		if strings.EqualFold(e.Field, "PageSize") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected error for field PageSize, got %+v", resp)
	}
}

func TestGetProductsHandler_PageNumberOutOfRange(t *testing.T) {
	r := api.NewRouter()

	w := doRequest(r, http.MethodPost, "/api/v1/products", repo.ProductFilter{PageNumber: math.MaxInt, PageSize: intPtr(2)}, false)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", w.Code)
	}

	var resp []handler.ValidationError
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp) != 1 || resp[0].Field != "PageNumber" {
		t.Errorf("expected error for field PageNumber, got %+v", resp)
	}
}

func TestGetProductsHandler_MalformedJSON(t *testing.T) {
	r := api.NewRouter()

	badJSON := `{"PageNumber": 1 "PageSize": 2}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", bytes.NewBufferString(badJSON))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 Bad Request, got %d", w.Code)
	}
}

func TestGetProductByIDHandler(t *testing.T) {
	r := api.NewRouter()

	tests := []struct {
		name       string
		path       string
		expectCode int
	}{
		{"Existing product", "/api/v1/products/4", http.StatusOK},
		{"Missing product", "/api/v1/products/999", http.StatusNotFound},
		{"Invalid id", "/api/v1/products/abc", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, http.MethodGet, tt.path, nil, false)
			if w.Code != tt.expectCode {
				t.Fatalf("expected status %d, got %d", tt.expectCode, w.Code)
			}
		})
	}

	w := doRequest(r, http.MethodGet, "/api/v1/products/4", nil, false)
	var product dto.ProductDTO
	if err := json.NewDecoder(w.Body).Decode(&product); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if product.Name != "Training Jacket" {
		t.Errorf("expected name 'Training Jacket', got %v", product.Name)
	}
	if product.Brand == nil || product.Brand.ProductsCount != 3 {
		t.Errorf("expected brand with 3 products, got %+v", product.Brand)
	}
}

func TestSectionsAndBrandsEndpoints(t *testing.T) {
	r := api.NewRouter()

	w := doRequest(r, http.MethodGet, "/api/v1/products/sections", nil, false)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var sections []dto.SectionDTO
	if err := json.NewDecoder(w.Body).Decode(&sections); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(sections) != 18 {
		t.Errorf("expected 18 sections, got %d", len(sections))
	}

	w = doRequest(r, http.MethodGet, "/api/v1/products/sections/2", nil, false)
	var section dto.SectionDTO
	if err := json.NewDecoder(w.Body).Decode(&section); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if section.ParentId == nil || *section.ParentId != 1 {
		t.Errorf("expected parent 1, got %v", section.ParentId)
	}

	if w := doRequest(r, http.MethodGet, "/api/v1/products/sections/404", nil, false); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for missing section, got %d", w.Code)
	}

	w = doRequest(r, http.MethodGet, "/api/v1/products/brands", nil, false)
	var brands []dto.BrandDTO
	if err := json.NewDecoder(w.Body).Decode(&brands); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(brands) != 7 {
		t.Fatalf("expected 7 brands, got %d", len(brands))
	}
	if brands[0].Name != "Acne" || brands[0].ProductsCount != 2 {
		t.Errorf("unexpected first brand %+v", brands[0])
	}

	if w := doRequest(r, http.MethodGet, "/api/v1/products/brands/x", nil, false); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid brand id, got %d", w.Code)
	}
	if w := doRequest(r, http.MethodGet, "/api/v1/products/brands/77", nil, false); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for missing brand, got %d", w.Code)
	}
}
