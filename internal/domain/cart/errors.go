package cart

import "errors"

var (
	ErrSizeRequired = errors.New("size is required")
	ErrItemNotFound = errors.New("item not found in cart")
)
