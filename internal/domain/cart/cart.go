package cart

// Cart maps a product id to the quantity held per size label. A size entry
// never carries a quantity of zero or less: reaching zero removes the size,
// and a product with no sizes left is removed entirely.
type Cart map[string]map[string]int64

func New() Cart {
	return Cart{}
}

// Add increments the quantity for (productID, size) by one, creating the
// entries as needed.
func (c Cart) Add(productID, size string) {
	sizes, ok := c[productID]
	if !ok {
		sizes = make(map[string]int64)
		c[productID] = sizes
	}
	sizes[size]++
}

// SetQuantity overwrites the quantity for an existing (productID, size)
// entry. A quantity of zero or less removes the entry. It reports whether
// the entry was present.
func (c Cart) SetQuantity(productID, size string, quantity int64) bool {
	sizes, ok := c[productID]
	if !ok {
		return false
	}
	if _, ok := sizes[size]; !ok {
		return false
	}
	if quantity <= 0 {
		delete(sizes, size)
		if len(sizes) == 0 {
			delete(c, productID)
		}
		return true
	}
	sizes[size] = quantity
	return true
}

// Quantity returns the quantity held for (productID, size), zero when absent.
func (c Cart) Quantity(productID, size string) int64 {
	return c[productID][size]
}

func (c Cart) IsEmpty() bool {
	return len(c) == 0
}
