package services

import (
	"time"

	"icecream-telegram/config"
	"icecream-telegram/models"
)

// History is one session's append-only order list. It owns the order
// number sequence (starting at 1, never reused) and the clock used for
// creation timestamps, so nothing in the domain touches global state.
type History struct {
	pricing config.PricingConfig
	now     func() time.Time
	next    int
	orders  []*models.Order
}

func NewHistory(pricing config.PricingConfig) *History {
	return &History{pricing: pricing, now: time.Now, next: 1}
}

// SetClock replaces the wall clock. Tests use this for deterministic
// timestamps; production code never calls it.
func (h *History) SetClock(now func() time.Time) {
	h.now = now
}

// Place validates the selection and commits it as a new single-item
// order. On validation failure the history is left untouched.
func (h *History) Place(sel models.Selection) (*models.Order, error) {
	it, err := BuildItem(sel, h.pricing.BasePrice)
	if err != nil {
		return nil, err
	}
	o := &models.Order{Number: h.next, CreatedAt: h.now()}
	AddItem(o, it)
	h.next++
	h.orders = append(h.orders, o)
	return o, nil
}

func (h *History) Orders() []*models.Order {
	return h.orders
}

func (h *History) Empty() bool {
	return len(h.orders) == 0
}

// Receipt renders every order placed this session under one banner.
func (h *History) Receipt() (string, error) {
	return SessionReceipt(h.orders, h.pricing.ServiceChargeRate)
}

// SessionStats aggregates the session the way a daily sales summary would.
type SessionStats struct {
	OrdersCount   int
	GrossRevenue  float64
	ServiceCharge float64
	NetRevenue    float64
}

func (h *History) Stats() (SessionStats, error) {
	var s SessionStats
	for _, o := range h.orders {
		total, err := OrderTotal(o)
		if err != nil {
			return SessionStats{}, err
		}
		s.OrdersCount++
		s.GrossRevenue += total
		s.ServiceCharge += ServiceCharge(total, h.pricing.ServiceChargeRate)
	}
	s.NetRevenue = s.GrossRevenue + s.ServiceCharge
	return s, nil
}
