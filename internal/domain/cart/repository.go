package cart

import "context"

// Repository reads and writes the cart embedded on the owning user record.
// Save replaces the whole mapping; concurrent writers are last-writer-wins.
type Repository interface {
	Get(ctx context.Context, userID string) (Cart, error)
	Save(ctx context.Context, userID string, c Cart) error
	Clear(ctx context.Context, userID string) error
}
