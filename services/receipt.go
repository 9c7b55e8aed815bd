package services

import (
	"fmt"
	"strings"

	"icecream-telegram/models"
)

const receiptBanner = "======== ICE CREAM PARLOR ========"

// ReceiptDateFormat is the day-month-year, second-precision timestamp
// layout used on receipts and order listings.
const ReceiptDateFormat = "02-01-2006 15:04:05"

// ItemDescription is the single-line description printed on receipts,
// e.g. "Large Cone with Vanilla and Caramel - $9.00".
func ItemDescription(it models.Icecream) (string, error) {
	price, err := ItemPrice(it)
	if err != nil {
		return "", err
	}
	var flavors []string
	for _, f := range it.Flavors {
		flavors = append(flavors, f.Name)
	}
	desc := fmt.Sprintf("%s %s with %s", it.Size.Label(), it.Option.Label(), strings.Join(flavors, ", "))
	if len(it.Toppings) > 0 {
		var toppings []string
		for _, t := range it.Toppings {
			toppings = append(toppings, t.Name)
		}
		desc += " and " + strings.Join(toppings, ", ")
	}
	return fmt.Sprintf("%s - $%.2f", desc, price), nil
}

// OrderReceipt renders one order as a text block: header, one row per
// item, then gross total, service charge and net total. All amounts are
// rounded to 2 decimals here and nowhere else.
func OrderReceipt(o *models.Order, rate float64) (string, error) {
	if rate == 0 {
		rate = defaultServiceChargeRate
	}
	rule := strings.Repeat("-", 72)

	text := fmt.Sprintf("Order #%d\n", o.Number)
	text += fmt.Sprintf("Date: %s\n", o.CreatedAt.Format(ReceiptDateFormat))
	text += fmt.Sprintf("%-48s %4s %9s %9s\n", "Description", "Qty", "Price", "Total")
	text += rule + "\n"
	for _, it := range o.Items {
		desc, err := ItemDescription(it)
		if err != nil {
			return "", err
		}
		price, err := ItemPrice(it)
		if err != nil {
			return "", err
		}
		text += fmt.Sprintf("%-48s %4d %9.2f %9.2f\n", desc, 1, it.BasePrice, price)
	}
	text += rule + "\n"

	total, err := OrderTotal(o)
	if err != nil {
		return "", err
	}
	charge := ServiceCharge(total, rate)
	text += fmt.Sprintf("%-63s %9.2f\n", "Total:", total)
	text += fmt.Sprintf("%-63s %9.2f\n", fmt.Sprintf("Service charge (%.0f%%):", rate*100), charge)
	text += fmt.Sprintf("%-63s %9.2f", "Net total:", total+charge)
	return text, nil
}

// SessionReceipt concatenates every order's receipt under one banner,
// separated by blank lines. Pure formatting, no side effects.
func SessionReceipt(orders []*models.Order, rate float64) (string, error) {
	parts := []string{receiptBanner}
	for _, o := range orders {
		block, err := OrderReceipt(o, rate)
		if err != nil {
			return "", err
		}
		parts = append(parts, block)
	}
	return strings.Join(parts, "\n\n"), nil
}
