package models

type CartItem struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type Cart struct {
	Items []CartItem `json:"items"`
}

// ItemsCount is the sum of all item quantities.
func (c Cart) ItemsCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}
