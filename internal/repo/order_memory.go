package repo

import (
	"slices"
	"sync"
	"time"

	"github.com/rogerio-castellano/webstore/internal/models"
)

type InMemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []models.Order
	nextID int
}

func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		orders: []models.Order{},
		nextID: 1,
	}
}

func (r *InMemoryOrderRepository) Create(order *models.Order) (models.Order, error) {
	if order == nil {
		return models.Order{}, ErrInvalidArgument
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	created := *order
	created.ID = r.nextID
	created.Items = slices.Clone(order.Items)
	if created.Date.IsZero() {
		created.Date = time.Now().UTC()
	}
	r.nextID++
	r.orders = append(r.orders, created)
	return created, nil
}

func (r *InMemoryOrderRepository) GetUserOrders(user string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := []models.Order{}
	for _, o := range r.orders {
		if o.User == user {
			o.Items = slices.Clone(o.Items)
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (r *InMemoryOrderRepository) GetByID(id int) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id {
			o.Items = slices.Clone(o.Items)
			return &o, nil
		}
	}
	return nil, nil
}
