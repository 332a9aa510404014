package catalog

import "ondc-seller-bridge/internal/pkg/money"

// Item is a catalog product as the bridge sees it. The catalog surface owns
// the full record; the bridge reads everything and mutates only Stock, and
// only through the inventory manager.
type Item struct {
	ID          string
	Name        string
	Description string
	Price       money.Amount
	Category    string
	Stock       int
	Images      []string
}
