package models

import "time"

type OrderItem struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Order is a checked out cart. Item prices are copied from the catalog at
// checkout time.
type Order struct {
	ID          int         `json:"id"`
	User        string      `json:"user"`
	Phone       string      `json:"phone"`
	Address     string      `json:"address"`
	Description string      `json:"description,omitempty"`
	Date        time.Time   `json:"date"`
	Items       []OrderItem `json:"items"`
}

func (o Order) TotalPrice() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
