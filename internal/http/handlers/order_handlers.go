package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/rogerio-castellano/webstore/internal/cart"
	"github.com/rogerio-castellano/webstore/internal/events"
	"github.com/rogerio-castellano/webstore/internal/http/middleware"
	"github.com/rogerio-castellano/webstore/internal/models"
)

// CheckoutHandler godoc
// @Summary Turn the cart into an order
// @Description Prices the cart from the catalog, stores the order, empties the cart and publishes order.created.
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param order body OrderRequest true "Delivery details"
// @Success 201 {object} OrderCreatedResult
// @Failure 400 {array} ValidationError
// @Failure 500 {string} string "Internal error"
// @Router /cart/checkout [post]
func CheckoutHandler(w http.ResponseWriter, r *http.Request) {
	var req OrderRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if validationErrors := validateOrder(req); len(validationErrors) > 0 {
		writeValidationErrors(w, validationErrors)
		return
	}

	owner := middleware.Username(r)
	items, err := cartService.OrderItems(owner)
	if errors.Is(err, cart.ErrEmptyCart) {
		writeValidationErrors(w, []ValidationError{{Field: "Cart", Description: "Cart is empty"}})
		return
	}
	if err != nil {
		storageFailure(w, "load cart", err)
		return
	}

	order, err := orderRepo.Create(&models.Order{
		User:        owner,
		Phone:       req.Phone,
		Address:     req.Address,
		Description: req.Description,
		Date:        time.Now().UTC(),
		Items:       items,
	})
	if err != nil {
		storageFailure(w, "create order", err)
		return
	}

	if err := cartService.Clear(owner); err != nil {
		log.Printf("order %d created but cart of %s not cleared: %v", order.ID, owner, err)
	}

	event := events.OrderCreatedEvent{
		OrderID:    order.ID,
		User:       order.User,
		TotalPrice: order.TotalPrice(),
		ItemsCount: len(order.Items),
		Date:       order.Date,
	}
	if err := publisher.Publish(events.OrderCreated, event); err != nil {
		log.Printf("publish %s for order %d failed: %v", events.OrderCreated, order.ID, err)
	}

	writeJSON(w, http.StatusCreated, OrderCreatedResult{Id: order.ID})
}

// GetUserOrdersHandler godoc
// @Summary Orders of the logged-in user
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} UserOrderView
// @Router /orders [get]
func GetUserOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := orderRepo.GetUserOrders(middleware.Username(r))
	if err != nil {
		storageFailure(w, "fetch orders", err)
		return
	}

	views := make([]UserOrderView, len(orders))
	for i, o := range orders {
		views[i] = UserOrderView{
			Id:          o.ID,
			Phone:       o.Phone,
			Address:     o.Address,
			Description: o.Description,
			TotalPrice:  o.TotalPrice(),
			Date:        o.Date,
		}
	}
	writeJSON(w, http.StatusOK, views)
}
