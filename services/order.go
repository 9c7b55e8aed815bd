package services

import (
	"fmt"

	"icecream-telegram/models"
)

// BuildItem validates a selection and turns it into a priced item.
// Error messages are shown to the user as-is.
func BuildItem(sel models.Selection, basePrice float64) (models.Icecream, error) {
	if sel.Option == "" {
		return models.Icecream{}, fmt.Errorf("serving option is required, please pick a cone or a cup")
	}
	if sel.Option != models.OptionCone && sel.Option != models.OptionCup {
		return models.Icecream{}, fmt.Errorf("unknown serving option %q", sel.Option)
	}
	if sel.Size == "" {
		return models.Icecream{}, fmt.Errorf("size is required, please pick one")
	}
	if _, err := SizeMultiplier(sel.Size); err != nil {
		return models.Icecream{}, err
	}
	if len(sel.Flavors) == 0 {
		return models.Icecream{}, fmt.Errorf("at least one flavor is required")
	}
	if basePrice <= 0 {
		return models.Icecream{}, fmt.Errorf("base price must be > 0, got %v", basePrice)
	}
	for _, t := range sel.Toppings {
		if t.Price < 0 {
			return models.Icecream{}, fmt.Errorf("topping %s has negative price", t.Name)
		}
	}
	return models.Icecream{
		Option:    sel.Option,
		Size:      sel.Size,
		BasePrice: basePrice,
		Flavors:   sel.Flavors,
		Toppings:  sel.Toppings,
	}, nil
}

// AddItem appends an item to the order. Items are never removed or edited.
func AddItem(o *models.Order, it models.Icecream) {
	o.Items = append(o.Items, it)
}

// OrderTotal is the sum of item prices; 0 for an empty order.
func OrderTotal(o *models.Order) (float64, error) {
	var total float64
	for _, it := range o.Items {
		price, err := ItemPrice(it)
		if err != nil {
			return 0, err
		}
		total += price
	}
	return total, nil
}

// OrderNetTotal is the order total plus the service charge.
func OrderNetTotal(o *models.Order, rate float64) (float64, error) {
	total, err := OrderTotal(o)
	if err != nil {
		return 0, err
	}
	return total + ServiceCharge(total, rate), nil
}
