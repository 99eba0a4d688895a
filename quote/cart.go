package quote

import (
	"fmt"
	"strings"
)

// Item is one line of a visitor's quote request. ProductName is a display
// copy captured when the item is first added; it is not re-synced if the
// catalog's name changes later.
type Item struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}

// Cart is an ordered list of quote items, at most one per product id.
// Insertion order is display order. All operations are total: none of them
// returns an error, and none shares state across Cart values.
type Cart struct {
	Items []Item `json:"items"`
}

// AddItem merges quantity into an existing line for the product, or appends
// a new line at the end. The stored product name is first-write-wins.
func (c *Cart) AddItem(productID, productName string, quantity int) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity += quantity
			return
		}
	}
	c.Items = append(c.Items, Item{
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
	})
}

// RemoveItem deletes the line for the product. No-op when absent.
func (c *Cart) RemoveItem(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity replaces the stored quantity, keeping the line's position.
// A quantity of zero or less removes the line instead.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// TotalCount is the sum of all quantities, not the number of lines. It backs
// the cart badge in the site header.
func (c *Cart) TotalCount() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// Format renders the cart as the single display string recorded on a contact
// submission: `Name (x2), Other (x1)`. Empty cart formats to "".
func (c *Cart) Format() string {
	if len(c.Items) == 0 {
		return ""
	}
	parts := make([]string, 0, len(c.Items))
	for _, item := range c.Items {
		parts = append(parts, fmt.Sprintf("%s (x%d)", item.ProductName, item.Quantity))
	}
	return strings.Join(parts, ", ")
}
