package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	domorder "example.com/forever-shop/backend/internal/domain/order"
)

type OrderRepository interface {
	domorder.Repository
}

// CartClearer resets the owning user's cart after a checkout. Clearing is
// idempotent, so a replay after a partial failure is harmless.
type CartClearer interface {
	Clear(ctx context.Context, userID string) error
}

// StripeGateway opens a hosted checkout session for an order and returns
// the redirect URL.
type StripeGateway interface {
	CreateCheckoutSession(ctx context.Context, ord *domorder.Order, origin string) (string, error)
}

// ProviderOrder is the handle Razorpay returns for client-side session
// initiation.
type ProviderOrder struct {
	ID       string
	Amount   int64
	Currency string
}

type RazorpayGateway interface {
	CreateProviderOrder(ctx context.Context, ord *domorder.Order) (*ProviderOrder, error)
	VerifySignature(providerOrderID, paymentID, signature string) bool
	KeyID() string
}

type Service struct {
	orderRepo OrderRepository
	carts     CartClearer
	stripe    StripeGateway
	razorpay  RazorpayGateway
	logger    zerolog.Logger
}

func NewService(orderRepo OrderRepository, carts CartClearer, stripe StripeGateway, razorpay RazorpayGateway, logger zerolog.Logger) *Service {
	return &Service{
		orderRepo: orderRepo,
		carts:     carts,
		stripe:    stripe,
		razorpay:  razorpay,
		logger:    logger,
	}
}

type PlaceInput struct {
	UserID  string
	Items   []domorder.LineItem
	Address domorder.Address
	Amount  float64
	// ClearCart mirrors the presence of cartData in the request payload.
	ClearCart bool
}

// PlaceCOD records a cash-on-delivery order. The payment flag is set at
// placement: COD means the payment obligation is accepted, not that funds
// were received.
func (s *Service) PlaceCOD(ctx context.Context, in PlaceInput) (*domorder.Order, error) {
	ord, err := s.newOrder(in, domorder.PaymentCOD)
	if err != nil {
		return nil, err
	}
	ord.Payment = true

	if err := s.orderRepo.Create(ctx, ord); err != nil {
		return nil, err
	}
	s.clearCart(ctx, in)
	s.logPlaced(ord)
	return ord, nil
}

// PlaceStripe records the order, then opens a Stripe checkout session and
// returns its redirect URL. If the session request fails the order stays in
// the store unpaid; there is no automatic cleanup.
func (s *Service) PlaceStripe(ctx context.Context, in PlaceInput, origin string) (*domorder.Order, string, error) {
	if origin == "" {
		return nil, "", domorder.ErrMissingOrigin
	}
	ord, err := s.newOrder(in, domorder.PaymentStripe)
	if err != nil {
		return nil, "", err
	}
	if err := s.orderRepo.Create(ctx, ord); err != nil {
		return nil, "", err
	}

	url, err := s.stripe.CreateCheckoutSession(ctx, ord, origin)
	if err != nil {
		s.logger.Warn().Err(err).Str("order_id", ord.ID).Msg("stripe session creation failed, order left unpaid")
		return nil, "", err
	}

	s.clearCart(ctx, in)
	s.logPlaced(ord)
	return ord, url, nil
}

// RazorpayPlacement carries everything the client needs to start the
// provider-side payment flow.
type RazorpayPlacement struct {
	Order         *domorder.Order
	ProviderOrder *ProviderOrder
	KeyID         string
	RedirectURL   string
}

func (s *Service) PlaceRazorpay(ctx context.Context, in PlaceInput, origin string) (*RazorpayPlacement, error) {
	if origin == "" {
		return nil, domorder.ErrMissingOrigin
	}
	ord, err := s.newOrder(in, domorder.PaymentRazorpay)
	if err != nil {
		return nil, err
	}
	if err := s.orderRepo.Create(ctx, ord); err != nil {
		return nil, err
	}

	provider, err := s.razorpay.CreateProviderOrder(ctx, ord)
	if err != nil {
		s.logger.Warn().Err(err).Str("order_id", ord.ID).Msg("razorpay order creation failed, order left unpaid")
		return nil, err
	}

	s.clearCart(ctx, in)
	s.logPlaced(ord)
	return &RazorpayPlacement{
		Order:         ord,
		ProviderOrder: provider,
		KeyID:         s.razorpay.KeyID(),
		RedirectURL:   origin + "/orders",
	}, nil
}

// VerifyStripe applies the caller-supplied confirmation signal. A truthy
// flag marks the order paid and clears the user's cart; a falsy flag
// deletes the order outright, leaving no trace of the abandoned session.
func (s *Service) VerifyStripe(ctx context.Context, orderID, userID string, success bool) error {
	if !success {
		return s.orderRepo.Delete(ctx, orderID)
	}
	if err := s.orderRepo.UpdatePayment(ctx, orderID, true); err != nil {
		return err
	}
	if err := s.carts.Clear(ctx, userID); err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("cart clear after stripe confirmation failed")
	}
	s.logger.Info().Str("order_id", orderID).Str("method", string(domorder.PaymentStripe)).Msg("payment confirmed")
	return nil
}

// VerifyRazorpay checks the provider signature before touching the order.
// A mismatch rejects the request with no state change.
func (s *Service) VerifyRazorpay(ctx context.Context, orderID, paymentID, providerOrderID, signature string) error {
	if !s.razorpay.VerifySignature(providerOrderID, paymentID, signature) {
		return domorder.ErrInvalidSignature
	}
	if err := s.orderRepo.MarkPaid(ctx, orderID, domorder.StatusPaid); err != nil {
		return err
	}
	s.logger.Info().Str("order_id", orderID).Str("method", string(domorder.PaymentRazorpay)).Msg("payment confirmed")
	return nil
}

func (s *Service) UserOrders(ctx context.Context, userID string) ([]*domorder.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

func (s *Service) List(ctx context.Context) ([]*domorder.Order, error) {
	return s.orderRepo.List(ctx)
}

// UpdateStatus persists an arbitrary non-empty status string. The known
// progression is not enforced here; the admin UI constrains choices.
func (s *Service) UpdateStatus(ctx context.Context, orderID, status string) error {
	if strings.TrimSpace(status) == "" {
		return domorder.ErrInvalidStatus
	}
	return s.orderRepo.UpdateStatus(ctx, orderID, domorder.Status(status))
}

func (s *Service) newOrder(in PlaceInput, method domorder.PaymentMethod) (*domorder.Order, error) {
	if len(in.Items) == 0 {
		return nil, domorder.ErrEmptyOrderItems
	}
	if strings.TrimSpace(in.Address.Street) == "" {
		return nil, fmt.Errorf("%w: street is required", domorder.ErrInvalidAddress)
	}
	if strings.TrimSpace(in.Address.City) == "" {
		return nil, fmt.Errorf("%w: city is required", domorder.ErrInvalidAddress)
	}
	if in.Amount <= 0 {
		return nil, domorder.ErrInvalidAmount
	}
	return &domorder.Order{
		UserID:        in.UserID,
		Items:         in.Items,
		Address:       in.Address,
		Amount:        in.Amount,
		PaymentMethod: method,
		Payment:       false,
		Status:        domorder.StatusProcessing,
		Date:          time.Now(),
	}, nil
}

func (s *Service) clearCart(ctx context.Context, in PlaceInput) {
	if !in.ClearCart {
		return
	}
	if err := s.carts.Clear(ctx, in.UserID); err != nil {
		s.logger.Warn().Err(err).Str("user_id", in.UserID).Msg("cart clear after placement failed")
	}
}

func (s *Service) logPlaced(ord *domorder.Order) {
	s.logger.Info().
		Str("order_id", ord.ID).
		Str("user_id", ord.UserID).
		Str("method", string(ord.PaymentMethod)).
		Float64("amount", ord.Amount).
		Msg("order placed")
}
