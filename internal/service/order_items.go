package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/MKhiriev/eat-around/models"
)

// sanitizeItems turns submitted lines into stored order items. Names are
// trimmed and nameless lines dropped. Quantity is truncated to an integer
// and defaults to 1 when it is missing, invalid or below 1. Price defaults
// to 0 when it is missing or invalid.
func sanitizeItems(raw []models.RawOrderItem) []models.OrderItem {
	items := make([]models.OrderItem, 0, len(raw))
	for _, item := range raw {
		name := strings.TrimSpace(string(item.Name))
		if name == "" {
			continue
		}

		items = append(items, models.OrderItem{
			Name:     name,
			Quantity: sanitizeQuantity(item.Quantity),
			Price:    sanitizePrice(item.Price),
		})
	}
	return items
}

func sanitizeQuantity(n models.FlexNumber) float64 {
	if !n.Valid || n.Value < 1 || n.Value > math.MaxInt32 {
		return 1
	}
	return math.Trunc(n.Value)
}

func sanitizePrice(n models.FlexNumber) float64 {
	if !n.Valid {
		return 0
	}
	return n.Value
}

// maxOrderTotal bounds the absolute value of every line subtotal and of the
// order total.
const maxOrderTotal = 1e12

func checkTotals(items []models.OrderItem) error {
	var total float64
	for _, item := range items {
		subtotal := item.Subtotal()
		if !withinOrderBound(subtotal) {
			return fmt.Errorf("%w: item %q", ErrOrderTotalOutOfRange, item.Name)
		}
		total += subtotal
	}
	if !withinOrderBound(total) {
		return ErrOrderTotalOutOfRange
	}
	return nil
}

func withinOrderBound(v float64) bool {
	return !math.IsNaN(v) && math.Abs(v) <= maxOrderTotal
}
