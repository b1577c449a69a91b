// Package cart holds the client-session shopping cart: a plain mapping of
// menu item id to quantity, carried in a signed cookie and priced against
// the live catalog on every read.
package cart

import (
	"strconv"
	"strings"
)

// Cart maps a menu item id (decimal string) to a quantity. It lives only in
// the client's signed cookie; the catalog is the sole source of names and
// prices.
type Cart map[string]int

// Add puts one more unit of an item in the cart, creating the entry at
// quantity 1 if absent. The id is not checked against the catalog here —
// stale ids are dropped at pricing time instead.
func (c Cart) Add(itemID string) {
	c[itemID]++
}

// SetQuantity replaces an entry's quantity. Zero or negative removes the
// entry entirely.
func (c Cart) SetQuantity(itemID string, qty int) {
	if qty <= 0 {
		delete(c, itemID)
		return
	}
	c[itemID] = qty
}

// SetQuantities applies a batch of raw quantity fields. A field that does
// not parse as an integer is skipped on its own; the rest of the batch still
// applies.
func (c Cart) SetQuantities(fields map[string]string) {
	for itemID, raw := range fields {
		qty, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			continue
		}
		c.SetQuantity(itemID, qty)
	}
}
