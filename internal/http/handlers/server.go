package handlers

import (
	"github.com/rogerio-castellano/webstore/internal/cart"
	"github.com/rogerio-castellano/webstore/internal/events"
	"github.com/rogerio-castellano/webstore/internal/repo"
)

const defaultCatalogPageSize = 6

var (
	productData   repo.ProductData
	userRepo      repo.UserRepository
	orderRepo     repo.OrderRepository
	employeesData repo.EmployeesData
	cartService   *cart.Service
	publisher     events.Publisher = events.LogPublisher{}

	catalogPageSize = defaultCatalogPageSize
)

func SetProductData(d repo.ProductData) {
	productData = d
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetOrderRepo(r repo.OrderRepository) {
	orderRepo = r
}

func SetEmployeesData(d repo.EmployeesData) {
	employeesData = d
}

func SetCartService(s *cart.Service) {
	cartService = s
}

func SetPublisher(p events.Publisher) {
	publisher = p
}

// SetCatalogPageSize sets the page size used by /catalog when the request
// has none. Zero disables paging.
func SetCatalogPageSize(size int) {
	if size < 0 {
		size = 0
	}
	catalogPageSize = size
}
