package user

import (
	"time"

	domcart "example.com/forever-shop/backend/internal/domain/cart"
)

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Cart         domcart.Cart
	CreatedAt    time.Time
}
