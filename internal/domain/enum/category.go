package enum

import "encoding/json"

// Category classifies a catalog product. The set is fixed; anything the
// API does not recognise is normalised to CategoryOther.
type Category string

const (
	CategorySmartphone Category = "Smartphone"
	CategoryLaptop     Category = "Laptop"
	CategoryTablet     Category = "Tablet"
	CategoryWatch      Category = "Watch"
	CategoryRouter     Category = "Router"
	CategoryAccessory  Category = "Accessory"
	CategoryOther      Category = "Other"
)

// Categories lists every valid category, in display order.
var Categories = []Category{
	CategorySmartphone,
	CategoryLaptop,
	CategoryTablet,
	CategoryWatch,
	CategoryRouter,
	CategoryAccessory,
	CategoryOther,
}

func (c Category) String() string {
	return string(c)
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Normalize maps unknown or empty categories to CategoryOther.
func (c Category) Normalize() Category {
	if c.Valid() {
		return c
	}
	return CategoryOther
}

func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(c))
}

func (c *Category) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*c = Category(str)
	return nil
}
