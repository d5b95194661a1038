package repo

import "github.com/rogerio-castellano/webstore/internal/models"

type OrderRepository interface {
	Create(order *models.Order) (models.Order, error)
	GetUserOrders(user string) ([]models.Order, error)
	GetByID(id int) (*models.Order, error)
}
