package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/webstore/internal/http/middleware"
)

// GetCartHandler godoc
// @Summary Current cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} cart.View
// @Router /cart [get]
func GetCartHandler(w http.ResponseWriter, r *http.Request) {
	view, err := cartService.View(middleware.Username(r))
	if err != nil {
		storageFailure(w, "load cart", err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// cartMutation runs op for the product in the path and answers with the
// updated cart.
func cartMutation(op func(owner string, productID int) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "product")
		if !ok {
			return
		}

		owner := middleware.Username(r)
		if err := op(owner, id); err != nil {
			storageFailure(w, "update cart", err)
			return
		}
		GetCartHandler(w, r)
	}
}

// AddToCartHandler godoc
// @Summary Add one unit of a product to the cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} cart.View
// @Failure 404 {string} string "Not found"
// @Router /cart/{id}/add [post]
func AddToCartHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "product")
	if !ok {
		return
	}

	product, err := productData.GetProductByID(id)
	if err != nil {
		storageFailure(w, "fetch product", err)
		return
	}
	if product == nil {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	cartMutation(cartService.Add)(w, r)
}

// DecrementCartHandler godoc
// @Summary Remove one unit of a product from the cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} cart.View
// @Router /cart/{id}/decrement [post]
func DecrementCartHandler(w http.ResponseWriter, r *http.Request) {
	cartMutation(cartService.Decrement)(w, r)
}

// RemoveFromCartHandler godoc
// @Summary Remove a product from the cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} cart.View
// @Router /cart/{id} [delete]
func RemoveFromCartHandler(w http.ResponseWriter, r *http.Request) {
	cartMutation(cartService.Remove)(w, r)
}

// ClearCartHandler godoc
// @Summary Empty the cart
// @Tags cart
// @Security BearerAuth
// @Success 204 "Cleared"
// @Router /cart [delete]
func ClearCartHandler(w http.ResponseWriter, r *http.Request) {
	if err := cartService.Clear(middleware.Username(r)); err != nil {
		storageFailure(w, "clear cart", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
