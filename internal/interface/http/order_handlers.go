package http

import (
	"net/http"

	domorder "example.com/forever-shop/backend/internal/domain/order"
	orderuc "example.com/forever-shop/backend/internal/usecase/order"
)

type orderItemPayload struct {
	ProductID string   `json:"_id" validate:"required"`
	Name      string   `json:"name" validate:"required"`
	Price     float64  `json:"price" validate:"required,gt=0"`
	Size      string   `json:"size"`
	Quantity  int64    `json:"quantity" validate:"required,gt=0"`
	Image     []string `json:"image"`
}

type addressPayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Street    string `json:"street" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state"`
	Zipcode   string `json:"zipcode"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

type placeOrderRequest struct {
	Items   []orderItemPayload `json:"items" validate:"required,min=1,dive"`
	Address addressPayload     `json:"address"`
	Amount  float64            `json:"amount" validate:"required,gt=0"`
	// CartData, when present, asks the server to clear the persisted cart.
	CartData map[string]map[string]int64 `json:"cartData"`
}

type verifyStripeRequest struct {
	OrderID string `json:"orderId" validate:"required"`
	Success string `json:"success"`
	UserID  string `json:"userId"`
}

type verifyRazorpayRequest struct {
	OrderID           string `json:"orderId" validate:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	RazorpayOrderID   string `json:"razorpay_order_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature" validate:"required"`
}

type updateStatusRequest struct {
	OrderID string `json:"orderId" validate:"required"`
	Status  string `json:"status" validate:"required"`
}

func (req *placeOrderRequest) toInput(userID string) orderuc.PlaceInput {
	items := make([]domorder.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, domorder.LineItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Size:      item.Size,
			Quantity:  item.Quantity,
			Image:     item.Image,
		})
	}
	return orderuc.PlaceInput{
		UserID:    userID,
		Items:     items,
		Address:   domorder.Address(req.Address),
		Amount:    req.Amount,
		ClearCart: req.CartData != nil,
	}
}

func (a *API) handlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	var req placeOrderRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	ord, err := a.orderSvc.PlaceCOD(r.Context(), req.toInput(userID))
	if err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Order placed successfully",
		"order":   mapOrder(ord),
	})
}

func (a *API) handlePlaceOrderStripe(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	var req placeOrderRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	_, url, err := a.orderSvc.PlaceStripe(r.Context(), req.toInput(userID), r.Header.Get("Origin"))
	if err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "url": url})
}

func (a *API) handlePlaceOrderRazorpay(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	var req placeOrderRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	placement, err := a.orderSvc.PlaceRazorpay(r.Context(), req.toInput(userID), r.Header.Get("Origin"))
	if err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"orderId": placement.Order.ID,
		"key":     placement.KeyID,
		"razorpayOrder": map[string]any{
			"id":       placement.ProviderOrder.ID,
			"amount":   placement.ProviderOrder.Amount,
			"currency": placement.ProviderOrder.Currency,
		},
		"redirectUrl": placement.RedirectURL,
	})
}

func (a *API) handleVerifyStripe(w http.ResponseWriter, r *http.Request) {
	var req verifyStripeRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	success := req.Success == "true"
	if err := a.orderSvc.VerifyStripe(r.Context(), req.OrderID, req.UserID, success); err != nil {
		handleDomainError(w, err)
		return
	}

	// The failure path deletes the order and reports success=false, the
	// same shape the original service answers with.
	writeJSON(w, http.StatusOK, map[string]any{"success": success})
}

func (a *API) handleVerifyRazorpay(w http.ResponseWriter, r *http.Request) {
	var req verifyRazorpayRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	err := a.orderSvc.VerifyRazorpay(r.Context(), req.OrderID, req.RazorpayPaymentID, req.RazorpayOrderID, req.RazorpaySignature)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Payment verified successfully",
	})
}

func (a *API) handleUserOrders(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	orders, err := a.orderSvc.UserOrders(r.Context(), userID)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "orders": mapOrders(orders)})
}

func (a *API) handleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := a.orderSvc.List(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "orders": mapOrders(orders)})
}

func (a *API) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if err := a.orderSvc.UpdateStatus(r.Context(), req.OrderID, req.Status); err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Status updated"})
}

func mapOrders(orders []*domorder.Order) []map[string]any {
	resp := make([]map[string]any, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, mapOrder(o))
	}
	return resp
}
