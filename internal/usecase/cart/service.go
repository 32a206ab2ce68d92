package cart

import (
	"context"

	domcart "example.com/forever-shop/backend/internal/domain/cart"
)

type CartRepository interface {
	domcart.Repository
}

type Service struct {
	cartRepo CartRepository
}

func NewService(cartRepo CartRepository) *Service {
	return &Service{cartRepo: cartRepo}
}

// AddItem increments the quantity for (productID, size) by one and persists
// the whole mapping back to the owning user record.
func (s *Service) AddItem(ctx context.Context, userID, productID, size string) error {
	if size == "" {
		return domcart.ErrSizeRequired
	}
	c, err := s.cartRepo.Get(ctx, userID)
	if err != nil {
		return err
	}
	c.Add(productID, size)
	return s.cartRepo.Save(ctx, userID, c)
}

// UpdateQuantity sets the quantity for an existing entry verbatim; zero or
// less removes it. Unknown entries are rejected.
func (s *Service) UpdateQuantity(ctx context.Context, userID, productID, size string, quantity int64) error {
	c, err := s.cartRepo.Get(ctx, userID)
	if err != nil {
		return err
	}
	if !c.SetQuantity(productID, size, quantity) {
		return domcart.ErrItemNotFound
	}
	return s.cartRepo.Save(ctx, userID, c)
}

func (s *Service) GetCart(ctx context.Context, userID string) (domcart.Cart, error) {
	return s.cartRepo.Get(ctx, userID)
}
