package store

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a single user-created entry. Products are immutable once created;
// the only way to change one is to remove it.
type Product struct {
	ID        string
	Name      string
	Price     decimal.Decimal
	Photo     string // Opaque reference to image data, usually a file path
	CreatedAt time.Time
}

// FormattedPrice renders the price with two decimals, without currency symbol.
func (p Product) FormattedPrice() string {
	return p.Price.StringFixed(2)
}

// ShortID is the first six characters of the id, used as a display handle.
func (p Product) ShortID() string {
	if len(p.ID) <= 6 {
		return p.ID
	}
	return p.ID[:6]
}

// DaysOld is the number of whole days between creation and now.
func (p Product) DaysOld(now time.Time) int {
	if now.Before(p.CreatedAt) {
		return 0
	}
	return int(now.Sub(p.CreatedAt) / (24 * time.Hour))
}
