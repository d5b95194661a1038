package repo

import "github.com/rogerio-castellano/webstore/internal/models"

// CartStore persists one cart per owner. Get returns an empty cart for
// owners without one.
type CartStore interface {
	Get(owner string) (models.Cart, error)
	Save(owner string, cart models.Cart) error
	// Update applies fn to the current cart and stores the result. Concurrent
	// updates of the same owner never overwrite each other.
	Update(owner string, fn func(models.Cart) models.Cart) error
	Delete(owner string) error
}
