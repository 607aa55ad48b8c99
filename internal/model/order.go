package model

import (
	"strings"
	"time"
)

// OrderStatus is the closed set of order states. Status-update utterances
// are normalized against this enumeration before any write.
type OrderStatus string

const (
	StatusFoodProcessing OrderStatus = "Food Processing"
	StatusOutForDelivery OrderStatus = "Out for delivery"
	StatusDelivered      OrderStatus = "Delivered"
	StatusCancelled      OrderStatus = "Cancelled"
)

// ValidOrderStatuses lists every accepted status, in display order.
func ValidOrderStatuses() []OrderStatus {
	return []OrderStatus{
		StatusFoodProcessing,
		StatusOutForDelivery,
		StatusDelivered,
		StatusCancelled,
	}
}

// NormalizeOrderStatus maps free-text status synonyms onto the enumeration.
// Returns false when the text resolves to nothing valid.
func NormalizeOrderStatus(raw string) (OrderStatus, bool) {
	synonyms := map[string]OrderStatus{
		"processing":       StatusFoodProcessing,
		"food processing":  StatusFoodProcessing,
		"out for delivery": StatusOutForDelivery,
		"delivered":        StatusDelivered,
		"completed":        StatusDelivered,
		"cancelled":        StatusCancelled,
		"canceled":         StatusCancelled,
	}
	key := normalizeStatusKey(raw)
	if st, ok := synonyms[key]; ok {
		return st, true
	}
	for _, st := range ValidOrderStatuses() {
		if key == normalizeStatusKey(string(st)) {
			return st, true
		}
	}
	return "", false
}

func normalizeStatusKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// OrderItem is one line of an order.
type OrderItem struct {
	FoodID   string  `json:"food_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order is a placed customer order.
type Order struct {
	ID      string
	UserID  string
	Items   []OrderItem
	Amount  float64
	Status  OrderStatus
	Payment bool
	Date    time.Time
}

// ItemCount sums the quantities across all lines.
func (o Order) ItemCount() int {
	total := 0
	for _, it := range o.Items {
		if it.Quantity > 0 {
			total += it.Quantity
		} else {
			total++
		}
	}
	return total
}

// User is a registered platform account. Cart maps food id to quantity.
type User struct {
	ID    string
	Name  string
	Email string
	Cart  map[string]int
}
