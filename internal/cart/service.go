package cart

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rogerio-castellano/webstore/internal/models"
	"github.com/rogerio-castellano/webstore/internal/repo"
)

var ErrEmptyCart = errors.New("cart is empty")

type ProductView struct {
	Id       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageUrl string  `json:"image_url"`
	Section  string  `json:"section,omitempty"`
	Brand    string  `json:"brand,omitempty"`
}

func NewProductView(p models.Product) ProductView {
	v := ProductView{
		Id:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		ImageUrl: p.ImageURL,
	}
	if p.Section != nil {
		v.Section = p.Section.Name
	}
	if p.Brand != nil {
		v.Brand = p.Brand.Name
	}
	return v
}

type ItemView struct {
	Product    ProductView `json:"product"`
	Quantity   int         `json:"quantity"`
	TotalPrice float64     `json:"total_price"`
}

type View struct {
	Items      []ItemView `json:"items"`
	ItemsCount int        `json:"items_count"`
	TotalPrice float64    `json:"total_price"`
}

// Service applies cart operations for an owner on top of a CartStore and
// resolves product details from the catalog.
type Service struct {
	store    repo.CartStore
	products repo.ProductData
}

func NewService(store repo.CartStore, products repo.ProductData) *Service {
	return &Service{store: store, products: products}
}

func (s *Service) update(owner string, fn func(models.Cart) models.Cart) error {
	return s.store.Update(owner, fn)
}

func (s *Service) Add(owner string, productID int) error {
	return s.update(owner, func(c models.Cart) models.Cart {
		for i := range c.Items {
			if c.Items[i].ProductID == productID {
				c.Items[i].Quantity++
				return c
			}
		}
		c.Items = append(c.Items, models.CartItem{ProductID: productID, Quantity: 1})
		return c
	})
}

// Decrement lowers the quantity by one and removes the item at zero.
func (s *Service) Decrement(owner string, productID int) error {
	return s.update(owner, func(c models.Cart) models.Cart {
		for i := range c.Items {
			if c.Items[i].ProductID != productID {
				continue
			}
			c.Items[i].Quantity--
			if c.Items[i].Quantity <= 0 {
				c.Items = slices.Delete(c.Items, i, i+1)
			}
			return c
		}
		return c
	})
}

func (s *Service) Remove(owner string, productID int) error {
	return s.update(owner, func(c models.Cart) models.Cart {
		c.Items = slices.DeleteFunc(c.Items, func(item models.CartItem) bool {
			return item.ProductID == productID
		})
		return c
	})
}

func (s *Service) Clear(owner string) error {
	return s.store.Delete(owner)
}

// View resolves every cart item against the catalog. Items whose product no
// longer exists are left out.
func (s *Service) View(owner string) (View, error) {
	c, err := s.store.Get(owner)
	if err != nil {
		return View{}, err
	}

	view := View{Items: []ItemView{}}
	for _, item := range c.Items {
		product, err := s.products.GetProductByID(item.ProductID)
		if err != nil {
			return View{}, fmt.Errorf("load product %d: %w", item.ProductID, err)
		}
		if product == nil {
			continue
		}
		total := product.Price * float64(item.Quantity)
		view.Items = append(view.Items, ItemView{
			Product:    NewProductView(*product),
			Quantity:   item.Quantity,
			TotalPrice: total,
		})
		view.ItemsCount += item.Quantity
		view.TotalPrice += total
	}
	return view, nil
}

// OrderItems prices the cart from the catalog for checkout.
func (s *Service) OrderItems(owner string) ([]models.OrderItem, error) {
	view, err := s.View(owner)
	if err != nil {
		return nil, err
	}
	if len(view.Items) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]models.OrderItem, len(view.Items))
	for i, item := range view.Items {
		items[i] = models.OrderItem{
			ProductID: item.Product.Id,
			Name:      item.Product.Name,
			Price:     item.Product.Price,
			Quantity:  item.Quantity,
		}
	}
	return items, nil
}
