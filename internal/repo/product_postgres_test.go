package repo

import (
	"errors"
	"math"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productRowColumns = []string{
	"id", "name", "order", "price", "image_url",
	"section_id", "section_name", "section_order", "section_parent_id",
	"brand_id", "brand_name", "brand_order", "brand_products",
}

func newMockProductData(t *testing.T) (*PostgresProductData, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresProductData(db), mock
}

func TestPostgresProductData_GetSections(t *testing.T) {
	data, mock := newMockProductData(t)

	mock.ExpectQuery(`SELECT id, name, "order", parent_id FROM sections ORDER BY "order", id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "order", "parent_id"}).
			AddRow(1, "Sportswear", 0, nil).
			AddRow(2, "Nike", 0, 1))

	sections, err := data.GetSections()
	require.NoError(t, err)
	require.Len(t, sections, 2)
	assert.Nil(t, sections[0].ParentID)
	require.NotNil(t, sections[1].ParentID)
	assert.Equal(t, 1, *sections[1].ParentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresProductData_GetSectionByID_NotFound(t *testing.T) {
	data, mock := newMockProductData(t)

	mock.ExpectQuery(`FROM sections WHERE id = \$1`).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "order", "parent_id"}))

	section, err := data.GetSectionByID(99)
	require.NoError(t, err)
	assert.Nil(t, section)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresProductData_GetBrands(t *testing.T) {
	data, mock := newMockProductData(t)

	mock.ExpectQuery(`FROM brands b LEFT JOIN products p`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "order", "count"}).
			AddRow(1, "Acne", 0, 3).
			AddRow(2, "Grune Erde", 1, 0))

	brands, err := data.GetBrands()
	require.NoError(t, err)
	require.Len(t, brands, 2)
	assert.Equal(t, 3, brands[0].ProductsCount())
	assert.Equal(t, 0, brands[1].ProductsCount())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresProductData_GetBrandByID(t *testing.T) {
	data, mock := newMockProductData(t)

	mock.ExpectQuery(`WHERE b.id = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "order", "count"}).AddRow(1, "Acne", 0, 2))

	brand, err := data.GetBrandByID(1)
	require.NoError(t, err)
	require.NotNil(t, brand)
	assert.Equal(t, "Acne", brand.Name)
	assert.Equal(t, 2, brand.ProductsCount())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresProductData_GetProducts_Paged(t *testing.T) {
	data, mock := newMockProductData(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM products p WHERE 1=1 AND p.section_id = \$1 AND p.brand_id = \$2`).
		WithArgs(2, 1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery(`AND p.section_id = \$1 AND p.brand_id = \$2 ORDER BY p."order", p.id LIMIT \$3 OFFSET \$4`).
		WithArgs(2, 1, 2, 2).
		WillReturnRows(sqlmock.NewRows(productRowColumns).
			AddRow(3, "Shorts", 2, 640.0, "product3.jpg", 2, "Nike", 0, 1, 1, "Acne", 0, 5).
			AddRow(4, "Jacket", 3, 2150.0, "product4.jpg", 2, "Nike", 0, 1, 1, "Acne", 0, 5))

	page, err := data.GetProducts(&ProductFilter{SectionID: intPtr(2), BrandID: intPtr(1), PageNumber: 2, PageSize: intPtr(2)})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, ids(page.Items))
	assert.Equal(t, 5, page.TotalCount)
	assert.Equal(t, 2, page.PageNumber)
	assert.Equal(t, 3, page.PagesCount())

	first := page.Items[0]
	require.NotNil(t, first.Section)
	assert.Equal(t, "Nike", first.Section.Name)
	require.NotNil(t, first.Section.ParentID)
	require.NotNil(t, first.Brand)
	assert.Equal(t, 5, first.Brand.ProductsCount())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresProductData_GetProducts_Unpaged(t *testing.T) {
	data, mock := newMockProductData(t)

	mock.ExpectQuery(`FROM products p\s+JOIN sections s`).
		WillReturnRows(sqlmock.NewRows(productRowColumns).
			AddRow(10, "Canvas Tote", 9, 450.0, "product10.jpg", 17, "Bags", 8, nil, nil, nil, nil, 0))

	page, err := data.GetProducts(nil)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Nil(t, page.Items[0].Brand)
	assert.Nil(t, page.Items[0].BrandID)
	assert.Equal(t, 1, page.TotalCount)
	assert.Equal(t, 0, page.PageSize)
	assert.Equal(t, 0, page.PagesCount())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresProductData_GetProducts_OffsetSaturates(t *testing.T) {
	data, mock := newMockProductData(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM products p WHERE 1=1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery(`LIMIT \$1 OFFSET \$2`).
		WithArgs(2, math.MaxInt).
		WillReturnRows(sqlmock.NewRows(productRowColumns))

	page, err := data.GetProducts(&ProductFilter{PageNumber: math.MaxInt, PageSize: intPtr(2)})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 5, page.TotalCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresProductData_GetProducts_CountFailure(t *testing.T) {
	data, mock := newMockProductData(t)
	dbErr := errors.New("connection reset")

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM products`).WillReturnError(dbErr)

	_, err := data.GetProducts(&ProductFilter{PageNumber: 1, PageSize: intPtr(6)})
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresProductData_GetProductByID(t *testing.T) {
	data, mock := newMockProductData(t)

	mock.ExpectQuery(`WHERE p.id = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(productRowColumns).
			AddRow(1, "Easy Polo", 0, 1025.0, "product1.jpg", 2, "Nike", 0, 1, 1, "Acne", 0, 2))
	mock.ExpectQuery(`WHERE p.id = \$1`).
		WithArgs(404).
		WillReturnRows(sqlmock.NewRows(productRowColumns))

	product, err := data.GetProductByID(1)
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, 2, product.SectionID)
	require.NotNil(t, product.BrandID)
	assert.Equal(t, 1, *product.BrandID)

	missing, err := data.GetProductByID(404)
	require.NoError(t, err)
	assert.Nil(t, missing)
	assert.NoError(t, mock.ExpectationsWereMet())
}
