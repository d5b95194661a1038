package models

// Brand groups products. Only the number of products is meaningful outside
// the storage layer.
type Brand struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Order    int       `json:"order"`
	Products []Product `json:"-"`
}

func (b Brand) ProductsCount() int {
	return len(b.Products)
}
