package repo

import (
	"slices"
	"sync"

	"github.com/rogerio-castellano/webstore/internal/models"
)

type InMemoryCartStore struct {
	mu    sync.RWMutex
	carts map[string]models.Cart
}

func NewInMemoryCartStore() *InMemoryCartStore {
	return &InMemoryCartStore{carts: make(map[string]models.Cart)}
}

func (s *InMemoryCartStore) Get(owner string) (models.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.carts[owner]
	if !ok {
		return models.Cart{Items: []models.CartItem{}}, nil
	}
	return models.Cart{Items: slices.Clone(cart.Items)}, nil
}

func (s *InMemoryCartStore) Save(owner string, cart models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[owner] = models.Cart{Items: slices.Clone(cart.Items)}
	return nil
}

func (s *InMemoryCartStore) Update(owner string, fn func(models.Cart) models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := models.Cart{Items: []models.CartItem{}}
	if current, ok := s.carts[owner]; ok {
		cart.Items = slices.Clone(current.Items)
	}
	s.carts[owner] = models.Cart{Items: slices.Clone(fn(cart).Items)}
	return nil
}

func (s *InMemoryCartStore) Delete(owner string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, owner)
	return nil
}
