package models

type ServingOption string

const (
	OptionCone ServingOption = "cone"
	OptionCup  ServingOption = "cup"
)

type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

func (o ServingOption) Label() string {
	switch o {
	case OptionCone:
		return "Cone"
	case OptionCup:
		return "Cup"
	}
	return string(o)
}

func (s Size) Label() string {
	switch s {
	case SizeSmall:
		return "Small"
	case SizeMedium:
		return "Medium"
	case SizeLarge:
		return "Large"
	}
	return string(s)
}

// Flavor is a catalog row; flavors carry no price of their own.
type Flavor struct {
	ID   string
	Name string
}

// Topping is a catalog row; its price is added on top of the item price.
type Topping struct {
	ID    string
	Name  string
	Price float64
}
