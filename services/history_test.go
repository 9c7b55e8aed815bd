package services

import (
	"strings"
	"testing"
	"time"

	"icecream-telegram/config"
	"icecream-telegram/models"
)

func testPricing() config.PricingConfig {
	return config.PricingConfig{BasePrice: 5.0, ServiceChargeRate: 0.05}
}

func validSelection() models.Selection {
	return models.Selection{
		Option:  models.OptionCone,
		Size:    models.SizeLarge,
		Flavors: []models.Flavor{{ID: "1", Name: "Vanilla"}},
	}
}

func TestHistoryNumbersOrdersFromOne(t *testing.T) {
	h := NewHistory(testPricing())

	first, err := h.Place(validSelection())
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	sel := validSelection()
	sel.Size = models.SizeSmall
	sel.Option = models.OptionCup
	second, err := h.Place(sel)
	if err != nil {
		t.Fatalf("Place: %v", err)
	}

	if first.Number != 1 || second.Number != 2 {
		t.Errorf("order numbers = %d, %d, want 1, 2", first.Number, second.Number)
	}
	if len(h.Orders()) != 2 {
		t.Errorf("history has %d orders, want 2", len(h.Orders()))
	}
}

func TestHistoryEachPlaceIsOneSingleItemOrder(t *testing.T) {
	h := NewHistory(testPricing())
	o, err := h.Place(validSelection())
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if len(o.Items) != 1 {
		t.Errorf("placed order has %d items, want 1", len(o.Items))
	}
}

func TestHistoryRejectsInvalidSelectionUntouched(t *testing.T) {
	h := NewHistory(testPricing())

	sel := validSelection()
	sel.Option = ""
	if _, err := h.Place(sel); err == nil {
		t.Fatal("selection without option should be rejected")
	}
	sel = validSelection()
	sel.Size = ""
	if _, err := h.Place(sel); err == nil {
		t.Fatal("selection without size should be rejected")
	}
	sel = validSelection()
	sel.Flavors = nil
	if _, err := h.Place(sel); err == nil {
		t.Fatal("selection without flavor should be rejected")
	}

	if !h.Empty() {
		t.Errorf("rejected selections must not mutate the history, got %d orders", len(h.Orders()))
	}

	// numbering starts at 1 even after rejections
	o, err := h.Place(validSelection())
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if o.Number != 1 {
		t.Errorf("first accepted order number = %d, want 1", o.Number)
	}
}

func TestHistoryUsesInjectedClock(t *testing.T) {
	h := NewHistory(testPricing())
	fixed := time.Date(2024, 3, 15, 10, 30, 45, 0, time.UTC)
	h.SetClock(func() time.Time { return fixed })

	o, err := h.Place(validSelection())
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if !o.CreatedAt.Equal(fixed) {
		t.Errorf("CreatedAt = %v, want %v", o.CreatedAt, fixed)
	}

	receipt, err := h.Receipt()
	if err != nil {
		t.Fatalf("Receipt: %v", err)
	}
	if !strings.Contains(receipt, "15-03-2024 10:30:45") {
		t.Errorf("receipt should carry the injected timestamp:\n%s", receipt)
	}
}

func TestSessionReceipt(t *testing.T) {
	h := NewHistory(testPricing())
	h.SetClock(func() time.Time { return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC) })

	sel := validSelection()
	sel.Toppings = []models.Topping{{ID: "1", Name: "Caramel", Price: 1.5}}
	if _, err := h.Place(sel); err != nil {
		t.Fatalf("Place: %v", err)
	}
	sel = validSelection()
	sel.Size = models.SizeSmall
	sel.Option = models.OptionCup
	if _, err := h.Place(sel); err != nil {
		t.Fatalf("Place: %v", err)
	}

	receipt, err := h.Receipt()
	if err != nil {
		t.Fatalf("Receipt: %v", err)
	}
	if !strings.HasPrefix(receipt, receiptBanner) {
		t.Errorf("session receipt should start with the banner:\n%s", receipt)
	}
	if !strings.Contains(receipt, "Order #1") || !strings.Contains(receipt, "Order #2") {
		t.Errorf("session receipt should contain both orders:\n%s", receipt)
	}
	// blocks are separated by a blank line
	if !strings.Contains(receipt, "\n\nOrder #2") {
		t.Errorf("order blocks should be blank-line separated:\n%s", receipt)
	}
}

func TestSessionStats(t *testing.T) {
	h := NewHistory(testPricing())

	stats, err := h.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.OrdersCount != 0 || stats.GrossRevenue != 0 || stats.NetRevenue != 0 {
		t.Errorf("empty session stats should be zero: %+v", stats)
	}

	sel := validSelection() // large cone = 7.50
	if _, err := h.Place(sel); err != nil {
		t.Fatalf("Place: %v", err)
	}
	sel = validSelection()
	sel.Size = models.SizeSmall // small cone = 5.00
	if _, err := h.Place(sel); err != nil {
		t.Fatalf("Place: %v", err)
	}

	stats, err = h.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.OrdersCount != 2 {
		t.Errorf("OrdersCount = %d, want 2", stats.OrdersCount)
	}
	if !almostEqual(stats.GrossRevenue, 12.5) {
		t.Errorf("GrossRevenue = %v, want 12.5", stats.GrossRevenue)
	}
	if !almostEqual(stats.ServiceCharge, 0.625) {
		t.Errorf("ServiceCharge = %v, want 0.625", stats.ServiceCharge)
	}
	if !almostEqual(stats.NetRevenue, 13.125) {
		t.Errorf("NetRevenue = %v, want 13.125", stats.NetRevenue)
	}
}
