package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rogerio-castellano/webstore/internal/models"
)

// PostgresProductData reads the catalog from Postgres. The count and page
// queries of GetProducts run without a shared transaction.
type PostgresProductData struct {
	db *sql.DB
}

func NewPostgresProductData(db *sql.DB) *PostgresProductData {
	return &PostgresProductData{db: db}
}

const productColumns = `p.id, p.name, p."order", p.price, p.image_url,
	s.id, s.name, s."order", s.parent_id,
	b.id, b.name, b."order", (SELECT COUNT(*) FROM products bp WHERE bp.brand_id = b.id)`

const productFrom = ` FROM products p
	JOIN sections s ON s.id = p.section_id
	LEFT JOIN brands b ON b.id = p.brand_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PostgresProductData) GetSections() ([]models.Section, error) {
	query := `SELECT id, name, "order", parent_id FROM sections ORDER BY "order", id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sections := []models.Section{}
	for rows.Next() {
		s, err := scanSection(rows)
		if err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	return sections, rows.Err()
}

func (r *PostgresProductData) GetSectionByID(id int) (*models.Section, error) {
	query := `SELECT id, name, "order", parent_id FROM sections WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	s, err := scanSection(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func scanSection(row rowScanner) (models.Section, error) {
	var s models.Section
	var parentID sql.NullInt64
	if err := row.Scan(&s.ID, &s.Name, &s.Order, &parentID); err != nil {
		return models.Section{}, err
	}
	if parentID.Valid {
		id := int(parentID.Int64)
		s.ParentID = &id
	}
	return s, nil
}

func (r *PostgresProductData) GetBrands() ([]models.Brand, error) {
	query := `SELECT b.id, b.name, b."order", COUNT(p.id)
		FROM brands b LEFT JOIN products p ON p.brand_id = b.id
		GROUP BY b.id, b.name, b."order"
		ORDER BY b."order", b.id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	brands := []models.Brand{}
	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			return nil, err
		}
		brands = append(brands, b)
	}
	return brands, rows.Err()
}

func (r *PostgresProductData) GetBrandByID(id int) (*models.Brand, error) {
	query := `SELECT b.id, b.name, b."order", COUNT(p.id)
		FROM brands b LEFT JOIN products p ON p.brand_id = b.id
		WHERE b.id = $1
		GROUP BY b.id, b.name, b."order"`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	b, err := scanBrand(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// scanBrand fills Products with placeholders so that only the product count
// is carried.
func scanBrand(row rowScanner) (models.Brand, error) {
	var b models.Brand
	var count int
	if err := row.Scan(&b.ID, &b.Name, &b.Order, &count); err != nil {
		return models.Brand{}, err
	}
	b.Products = make([]models.Product, count)
	return b, nil
}

func (r *PostgresProductData) GetProducts(filter *ProductFilter) (models.Page[models.Product], error) {
	f := filterOrDefault(filter)
	conditions, args, argIdx := productConditions(f)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	query := "SELECT " + productColumns + productFrom + " WHERE 1=1" + conditions
	query += ` ORDER BY p."order", p.id`

	var totalCount int
	if f.Paged() {
		countQuery := "SELECT COUNT(*) FROM products p WHERE 1=1" + conditions
		if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&totalCount); err != nil {
			return models.Page[models.Product]{}, fmt.Errorf("count products: %w", err)
		}

		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
		args = append(args, f.Size(), f.Offset())
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return models.Page[models.Product]{}, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return models.Page[models.Product]{}, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return models.Page[models.Product]{}, err
	}

	if !f.Paged() {
		totalCount = len(products)
	}
	return models.NewPage(products, f.Page(), f.Size(), totalCount), nil
}

func productConditions(f ProductFilter) (string, []any, int) {
	query := ""
	argIdx := 1
	args := []any{}

	if f.SectionID != nil {
		query += fmt.Sprintf(" AND p.section_id = $%d", argIdx)
		args = append(args, *f.SectionID)
		argIdx++
	}
	if f.BrandID != nil {
		query += fmt.Sprintf(" AND p.brand_id = $%d", argIdx)
		args = append(args, *f.BrandID)
		argIdx++
	}
	return query, args, argIdx
}

func (r *PostgresProductData) GetProductByID(id int) (*models.Product, error) {
	query := "SELECT " + productColumns + productFrom + " WHERE p.id = $1"
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProduct(row rowScanner) (models.Product, error) {
	var (
		p               models.Product
		section         models.Section
		sectionParentID sql.NullInt64
		brandID         sql.NullInt64
		brandName       sql.NullString
		brandOrder      sql.NullInt64
		brandCount      int
	)
	err := row.Scan(
		&p.ID, &p.Name, &p.Order, &p.Price, &p.ImageURL,
		&section.ID, &section.Name, &section.Order, &sectionParentID,
		&brandID, &brandName, &brandOrder, &brandCount,
	)
	if err != nil {
		return models.Product{}, err
	}

	if sectionParentID.Valid {
		parentID := int(sectionParentID.Int64)
		section.ParentID = &parentID
	}
	p.SectionID = section.ID
	p.Section = &section

	if brandID.Valid {
		id := int(brandID.Int64)
		p.BrandID = &id
		p.Brand = &models.Brand{
			ID:       id,
			Name:     brandName.String,
			Order:    int(brandOrder.Int64),
			Products: make([]models.Product, brandCount),
		}
	}
	return p, nil
}
