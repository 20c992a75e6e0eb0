package budget

// Category is one of the four fixed spending buckets of a trip budget.
type Category string

const (
	CategoryAccommodation Category = "accommodation"
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryActivities    Category = "activities"
)

// Categories returns the four budget categories in their canonical order.
func Categories() []Category {
	return []Category{CategoryAccommodation, CategoryFood, CategoryTransport, CategoryActivities}
}

// ParseCategory validates a category name coming from an API payload.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryAccommodation, CategoryFood, CategoryTransport, CategoryActivities:
		return Category(s), nil
	}
	return "", NewValidationError("unknown category %q: must be one of accommodation, food, transport, activities", s)
}

// CategoryInfo holds static display metadata for a category.
type CategoryInfo struct {
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

var categoryInfos = map[Category]CategoryInfo{
	CategoryAccommodation: {
		DisplayName: "Accommodation",
		Description: "Hotels, hostels, and other places to stay",
		Icon:        "bed",
		Color:       "#6C5CE7",
	},
	CategoryFood: {
		DisplayName: "Food & Dining",
		Description: "Restaurants, street food, groceries",
		Icon:        "restaurant",
		Color:       "#E17055",
	},
	CategoryTransport: {
		DisplayName: "Transport",
		Description: "Flights, trains, buses, taxis, fuel",
		Icon:        "directions-car",
		Color:       "#0984E3",
	},
	CategoryActivities: {
		DisplayName: "Activities",
		Description: "Tours, tickets, experiences",
		Icon:        "local-activity",
		Color:       "#00B894",
	},
}

// Info returns the display metadata for a category.
func (c Category) Info() CategoryInfo {
	info, ok := categoryInfos[c]
	if !ok {
		return CategoryInfo{DisplayName: string(c)}
	}
	return info
}

func (c Category) String() string { return string(c) }
