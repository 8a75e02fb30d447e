package cart

import (
	"github.com/chayanon-dev/lineadmin/pkg/enums"
	pkgerrors "github.com/chayanon-dev/lineadmin/pkg/errors"
	"github.com/chayanon-dev/lineadmin/pkg/models"
)

// Line pairs a product snapshot with the ordered quantity. Quantity is
// always a positive multiple of the product's minimum order size.
type Line struct {
	Product  models.Product
	Quantity int
}

// Subtotal returns the line total for the given unit price.
func (l Line) Subtotal(unitPrice int) int {
	return unitPrice * l.Quantity
}

// Cart is an ordered collection of lines, one per product ID. A cart is
// owned by a single session and must not be shared across goroutines.
type Cart struct {
	lines []*Line
}

// New builds an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add inserts a line for the product at the minimum order quantity, or
// bumps an existing line by one minimum-order step. Out-of-stock products
// are refused; callers are expected to disable the action beforehand, the
// guard here is the backstop.
func (c *Cart) Add(product models.Product) error {
	if product.Status == enums.ProductStatusOutOfStock {
		return pkgerrors.New(pkgerrors.CodeUnavailable, "product is out of stock").WithDetails(map[string]string{
			"product_id": product.ID,
		})
	}
	if line := c.line(product.ID); line != nil {
		line.Quantity += product.MinOrder
		return nil
	}
	c.lines = append(c.lines, &Line{Product: product, Quantity: product.MinOrder})
	return nil
}

// SetQuantity sets the line's quantity. Requests below the product's
// minimum order, or for a product not in the cart, are refused rather than
// clamped. Reports whether the quantity was applied.
func (c *Cart) SetQuantity(productID string, quantity int) bool {
	line := c.line(productID)
	if line == nil {
		return false
	}
	if quantity < line.Product.MinOrder {
		return false
	}
	line.Quantity = quantity
	return true
}

// Increment steps the line's quantity up by one minimum-order increment.
func (c *Cart) Increment(productID string) bool {
	line := c.line(productID)
	if line == nil {
		return false
	}
	return c.SetQuantity(productID, line.Quantity+line.Product.MinOrder)
}

// Decrement steps the line's quantity down by one minimum-order increment,
// refusing to go below the minimum.
func (c *Cart) Decrement(productID string) bool {
	line := c.line(productID)
	if line == nil {
		return false
	}
	return c.SetQuantity(productID, line.Quantity-line.Product.MinOrder)
}

// Remove deletes the line for the product; absent lines are a no-op.
// Reports whether a line was removed.
func (c *Cart) Remove(productID string) bool {
	for i, line := range c.lines {
		if line.Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// LineFor returns a copy of the line for the product, if present.
func (c *Cart) LineFor(productID string) (Line, bool) {
	if line := c.line(productID); line != nil {
		return *line, true
	}
	return Line{}, false
}

// Lines returns copies of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	lines := make([]Line, 0, len(c.lines))
	for _, line := range c.lines {
		lines = append(lines, *line)
	}
	return lines
}

// LineCount is the number of distinct lines, used for the cart badge.
func (c *Cart) LineCount() int {
	return len(c.lines)
}

// ItemCount is the total quantity across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// ProductNames returns the line product names in cart order.
func (c *Cart) ProductNames() []string {
	names := make([]string, 0, len(c.lines))
	for _, line := range c.lines {
		names = append(names, line.Product.Name)
	}
	return names
}

func (c *Cart) line(productID string) *Line {
	for _, line := range c.lines {
		if line.Product.ID == productID {
			return line
		}
	}
	return nil
}
