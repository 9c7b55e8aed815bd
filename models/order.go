package models

import "time"

// Selection is one user's picks as collected by the bot, before validation.
// Toppings may be empty; everything else is required.
type Selection struct {
	Option   ServingOption
	Size     Size
	Flavors  []Flavor
	Toppings []Topping
}

// Icecream is one priced menu item inside an order.
type Icecream struct {
	Option    ServingOption
	Size      Size
	BasePrice float64
	Flavors   []Flavor
	Toppings  []Topping
}

// Order is an append-only list of items with a session-scoped number.
type Order struct {
	Number    int
	CreatedAt time.Time
	Items     []Icecream
}
