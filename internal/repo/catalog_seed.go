package repo

import "github.com/rogerio-castellano/webstore/internal/models"

// CatalogSeed is the initial content of an InMemoryProductData. Brand.Products
// is ignored; brand membership comes from Product.BrandID.
type CatalogSeed struct {
	Sections []models.Section
	Brands   []models.Brand
	Products []models.Product
}

func intPtr(v int) *int {
	return &v
}

// DefaultCatalogSeed returns the demo catalog used when no database is configured.
func DefaultCatalogSeed() CatalogSeed {
	return CatalogSeed{
		Sections: []models.Section{
			{ID: 1, Name: "Sportswear", Order: 0},
			{ID: 2, Name: "Nike", Order: 0, ParentID: intPtr(1)},
			{ID: 3, Name: "Under Armour", Order: 1, ParentID: intPtr(1)},
			{ID: 4, Name: "Adidas", Order: 2, ParentID: intPtr(1)},
			{ID: 5, Name: "Puma", Order: 3, ParentID: intPtr(1)},
			{ID: 6, Name: "ASICS", Order: 4, ParentID: intPtr(1)},
			{ID: 7, Name: "Mens", Order: 1},
			{ID: 8, Name: "Fendi", Order: 0, ParentID: intPtr(7)},
			{ID: 9, Name: "Guess", Order: 1, ParentID: intPtr(7)},
			{ID: 10, Name: "Valentino", Order: 2, ParentID: intPtr(7)},
			{ID: 11, Name: "Womens", Order: 2},
			{ID: 12, Name: "Kids", Order: 3},
			{ID: 13, Name: "Fashion", Order: 4},
			{ID: 14, Name: "Households", Order: 5},
			{ID: 15, Name: "Interiors", Order: 6},
			{ID: 16, Name: "Clothing", Order: 7},
			{ID: 17, Name: "Bags", Order: 8},
			{ID: 18, Name: "Shoes", Order: 9},
		},
		Brands: []models.Brand{
			{ID: 1, Name: "Acne", Order: 0},
			{ID: 2, Name: "Grune Erde", Order: 1},
			{ID: 3, Name: "Albiro", Order: 2},
			{ID: 4, Name: "Ronhill", Order: 3},
			{ID: 5, Name: "Oddmolly", Order: 4},
			{ID: 6, Name: "Boudestijn", Order: 5},
			{ID: 7, Name: "Rosch creative culture", Order: 6},
		},
		Products: []models.Product{
			{ID: 1, Name: "Easy Polo Black Edition", Order: 0, Price: 1025, ImageURL: "product1.jpg", SectionID: 2, BrandID: intPtr(1)},
			{ID: 2, Name: "Easy Polo White Edition", Order: 1, Price: 1025, ImageURL: "product2.jpg", SectionID: 2, BrandID: intPtr(1)},
			{ID: 3, Name: "Running Shorts", Order: 2, Price: 640, ImageURL: "product3.jpg", SectionID: 2, BrandID: intPtr(4)},
			{ID: 4, Name: "Training Jacket", Order: 3, Price: 2150, ImageURL: "product4.jpg", SectionID: 3, BrandID: intPtr(4)},
			{ID: 5, Name: "Wool Sweater", Order: 4, Price: 1870, ImageURL: "product5.jpg", SectionID: 8, BrandID: intPtr(2)},
			{ID: 6, Name: "Linen Shirt", Order: 5, Price: 990, ImageURL: "product6.jpg", SectionID: 9, BrandID: intPtr(3)},
			{ID: 7, Name: "Summer Dress", Order: 6, Price: 1450, ImageURL: "product7.jpg", SectionID: 11, BrandID: intPtr(5)},
			{ID: 8, Name: "Kids Sneakers", Order: 7, Price: 760, ImageURL: "product8.jpg", SectionID: 12, BrandID: intPtr(6)},
			{ID: 9, Name: "Leather Bag", Order: 8, Price: 3200, ImageURL: "product9.jpg", SectionID: 17, BrandID: intPtr(7)},
			{ID: 10, Name: "Canvas Tote", Order: 9, Price: 450, ImageURL: "product10.jpg", SectionID: 17},
			{ID: 11, Name: "Desk Lamp", Order: 10, Price: 890, ImageURL: "product11.jpg", SectionID: 15},
			{ID: 12, Name: "Trail Shoes", Order: 11, Price: 2490, ImageURL: "product12.jpg", SectionID: 18, BrandID: intPtr(4)},
		},
	}
}
