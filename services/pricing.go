package services

import (
	"fmt"

	"icecream-telegram/models"
)

const defaultServiceChargeRate = 0.05

// SizeMultiplier returns the fixed price multiplier for a size.
// The mapping is closed; an unknown size is a configuration error, not a
// reachable user state, so it fails instead of defaulting.
func SizeMultiplier(s models.Size) (float64, error) {
	switch s {
	case models.SizeSmall:
		return 1.0, nil
	case models.SizeMedium:
		return 1.2, nil
	case models.SizeLarge:
		return 1.5, nil
	}
	return 0, fmt.Errorf("no price multiplier for size %q", s)
}

// ItemPrice is basePrice × size multiplier + the sum of topping prices.
// No rounding here; rounding to 2 decimals happens only when formatting.
func ItemPrice(it models.Icecream) (float64, error) {
	mult, err := SizeMultiplier(it.Size)
	if err != nil {
		return 0, err
	}
	price := it.BasePrice * mult
	for _, t := range it.Toppings {
		price += t.Price
	}
	return price, nil
}

// ServiceCharge returns the flat charge on top of an order total.
// A zero rate falls back to the standard 5%.
func ServiceCharge(total, rate float64) float64 {
	if rate == 0 {
		rate = defaultServiceChargeRate
	}
	return total * rate
}
