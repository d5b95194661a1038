package models

// Product represents a catalog item. Every product belongs to exactly one
// section and optionally to one brand.
type Product struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Order     int      `json:"order"`
	Price     float64  `json:"price"`
	ImageURL  string   `json:"image_url"`
	SectionID int      `json:"section_id"`
	Section   *Section `json:"section,omitempty"`
	BrandID   *int     `json:"brand_id,omitempty"`
	Brand     *Brand   `json:"brand,omitempty"`
}
