package http

import "net/http"

type addToCartRequest struct {
	ItemID string `json:"itemId" validate:"required"`
	Size   string `json:"size" validate:"required"`
}

type updateCartRequest struct {
	ItemID string `json:"itemId" validate:"required"`
	Size   string `json:"size" validate:"required"`
	// Quantity may legitimately be zero or negative; that removes the entry.
	Quantity int64 `json:"quantity"`
}

func (a *API) handleAddToCart(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	var req addToCartRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if err := a.cartSvc.AddItem(r.Context(), userID, req.ItemID, req.Size); err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Product added to cart"})
}

func (a *API) handleUpdateCart(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	var req updateCartRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if err := a.cartSvc.UpdateQuantity(r.Context(), userID, req.ItemID, req.Size, req.Quantity); err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Cart updated"})
}

func (a *API) handleGetCart(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	c, err := a.cartSvc.GetCart(r.Context(), userID)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "cartData": c})
}
