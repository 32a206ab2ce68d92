package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	domcart "example.com/forever-shop/backend/internal/domain/cart"
	domorder "example.com/forever-shop/backend/internal/domain/order"
	domproduct "example.com/forever-shop/backend/internal/domain/product"
	domuser "example.com/forever-shop/backend/internal/domain/user"
	authuc "example.com/forever-shop/backend/internal/usecase/auth"
	cartuc "example.com/forever-shop/backend/internal/usecase/cart"
	orderuc "example.com/forever-shop/backend/internal/usecase/order"
	productuc "example.com/forever-shop/backend/internal/usecase/product"
)

type API struct {
	authSvc    *authuc.Service
	cartSvc    *cartuc.Service
	productSvc *productuc.Service
	orderSvc   *orderuc.Service
	validator  *validator.Validate
}

type Dependencies struct {
	AuthService    *authuc.Service
	CartService    *cartuc.Service
	ProductService *productuc.Service
	OrderService   *orderuc.Service
}

func NewAPI(deps Dependencies) *API {
	return &API{
		authSvc:    deps.AuthService,
		cartSvc:    deps.CartService,
		productSvc: deps.ProductService,
		orderSvc:   deps.OrderService,
		validator:  validator.New(),
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", a.handleRegister)
			r.Post("/login", a.handleLogin)
			r.Post("/admin-login", a.handleAdminLogin)
		})

		r.Route("/product", func(r chi.Router) {
			r.Get("/list", a.handleListProducts)
			r.Post("/single", a.handleSingleProduct)

			r.Group(func(ar chi.Router) {
				ar.Use(a.adminAuth)
				ar.Post("/add", a.handleAddProduct)
				ar.Post("/remove", a.handleRemoveProduct)
			})
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(a.userAuth)
			r.Post("/add", a.handleAddToCart)
			r.Post("/update", a.handleUpdateCart)
			r.Post("/get", a.handleGetCart)
		})

		r.Route("/order", func(r chi.Router) {
			r.Group(func(ur chi.Router) {
				ur.Use(a.userAuth)
				ur.Post("/place", a.handlePlaceOrder)
				ur.Post("/stripe", a.handlePlaceOrderStripe)
				ur.Post("/razorpay", a.handlePlaceOrderRazorpay)
				ur.Post("/verifyStripe", a.handleVerifyStripe)
				ur.Post("/verifyRazorpay", a.handleVerifyRazorpay)
				ur.Post("/userorders", a.handleUserOrders)
			})

			r.Group(func(ar chi.Router) {
				ar.Use(a.adminAuth)
				ar.Post("/list", a.handleListOrders)
				ar.Post("/status", a.handleUpdateStatus)
			})
		})
	})

	return r
}

func (a *API) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return a.validator.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]any{"success": false, "message": err.Error()})
}

func handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domcart.ErrSizeRequired),
		errors.Is(err, domorder.ErrEmptyOrderItems),
		errors.Is(err, domorder.ErrInvalidAddress),
		errors.Is(err, domorder.ErrInvalidAmount),
		errors.Is(err, domorder.ErrInvalidStatus),
		errors.Is(err, domorder.ErrMissingOrigin),
		errors.Is(err, domorder.ErrInvalidSignature),
		errors.Is(err, domproduct.ErrInvalidName),
		errors.Is(err, domproduct.ErrInvalidPrice),
		errors.Is(err, domproduct.ErrNoImages),
		errors.Is(err, domuser.ErrEmailAlreadyUsed),
		errors.Is(err, domuser.ErrInvalidCredential):
		respondError(w, http.StatusBadRequest, err)
	case errors.Is(err, domuser.ErrUnauthorized):
		respondError(w, http.StatusUnauthorized, err)
	case errors.Is(err, domuser.ErrUserNotFound),
		errors.Is(err, domproduct.ErrProductNotFound),
		errors.Is(err, domorder.ErrOrderNotFound),
		errors.Is(err, domcart.ErrItemNotFound):
		respondError(w, http.StatusNotFound, err)
	default:
		respondError(w, http.StatusInternalServerError, err)
	}
}

func mapProduct(p *domproduct.Product) map[string]any {
	return map[string]any{
		"_id":         p.ID,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"category":    p.Category,
		"subCategory": p.SubCategory,
		"sizes":       p.Sizes,
		"image":       p.Image,
		"bestseller":  p.Bestseller,
		"date":        p.Date,
	}
}

func mapOrder(o *domorder.Order) map[string]any {
	items := make([]map[string]any, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, map[string]any{
			"_id":      item.ProductID,
			"name":     item.Name,
			"price":    item.Price,
			"size":     item.Size,
			"quantity": item.Quantity,
			"image":    item.Image,
		})
	}
	return map[string]any{
		"_id":           o.ID,
		"userId":        o.UserID,
		"items":         items,
		"address":       mapAddress(o.Address),
		"amount":        o.Amount,
		"paymentMethod": o.PaymentMethod,
		"payment":       o.Payment,
		"status":        o.Status,
		"date":          o.Date,
	}
}

func mapAddress(a domorder.Address) map[string]any {
	return map[string]any{
		"firstName": a.FirstName,
		"lastName":  a.LastName,
		"email":     a.Email,
		"street":    a.Street,
		"city":      a.City,
		"state":     a.State,
		"zipcode":   a.Zipcode,
		"country":   a.Country,
		"phone":     a.Phone,
	}
}
