package models

import "time"

// OrderItem is a snapshotted line of an order. New orders always carry a
// whole quantity; older records may hold a fractional one.
type OrderItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

// Subtotal returns quantity × price.
func (i OrderItem) Subtotal() float64 {
	return i.Quantity * i.Price
}

// Order is a checkout record. The total is derived from Items on every read
// and is never stored.
type Order struct {
	ID            string      `json:"id"`
	Code          string      `json:"code"`
	ShopLocation  string      `json:"shopLocation"`
	CustomerNotes string      `json:"customerNotes"`
	OrderedAt     time.Time   `json:"orderedAt"`
	UserID        string      `json:"user,omitempty"`
	Items         []OrderItem `json:"items"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// Total returns the sum of quantity × price over all items.
func (o Order) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Subtotal()
	}
	return total
}

// View attaches the derived total.
func (o Order) View() OrderView {
	items := o.Items
	if items == nil {
		items = []OrderItem{}
	}
	o.Items = items
	return OrderView{Order: o, Total: o.Total()}
}

// Summary returns the compact summary form of the order.
func (o Order) Summary() OrderSummary {
	items := o.Items
	if items == nil {
		items = []OrderItem{}
	}
	return OrderSummary{
		ID:    o.ID,
		Code:  o.Code,
		Items: items,
		Total: o.Total(),
	}
}

// OrderView is an order with its derived total.
type OrderView struct {
	Order
	Total float64 `json:"total"`
}

// OrderSummary is the compact order form returned by the summary listing.
type OrderSummary struct {
	ID    string      `json:"id"`
	Code  string      `json:"code"`
	Items []OrderItem `json:"items"`
	Total float64     `json:"total"`
}

// OrderFilter narrows an order listing. A zero value matches every order.
type OrderFilter struct {
	UserID string
}

// OrderList is a listing of orders with their aggregate total.
type OrderList struct {
	Orders   []OrderView
	TotalSum float64
}

// OrderSummaryList is the summary listing with its aggregate total.
type OrderSummaryList struct {
	Orders   []OrderSummary
	TotalSum float64
}

// CreatedOrder identifies a freshly persisted order.
type CreatedOrder struct {
	ID   string
	Code string
}
