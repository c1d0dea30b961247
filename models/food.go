package models

// Food is a read-only catalog entry.
type Food struct {
	ID          string  `json:"id" yaml:"-"`
	Name        string  `json:"name" yaml:"name"`
	Price       float64 `json:"price" yaml:"price"`
	Category    string  `json:"category" yaml:"category"`
	Description string  `json:"description" yaml:"description"`
}

// FoodFilter narrows a food listing. An empty Category matches every item.
type FoodFilter struct {
	Category string
}
