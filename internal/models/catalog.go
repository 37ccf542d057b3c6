package models

// Categories a product can belong to.
var Categories = []string{"Shoes", "Watch", "Perfume", "Belt", "Bag"}

// MaterialsByCategory constrains the material choices per category.
// This is a form affordance, not a security boundary; the server stores
// whatever material it is handed.
var MaterialsByCategory = map[string][]string{
	"Shoes":   {"Leather", "Mesh", "Canvas", "Rubber", "Synthetic", "Suede"},
	"Watch":   {"Stainless Steel", "Leather", "Silicone", "Titanium", "Plastic", "Ceramic"},
	"Perfume": {"Glass", "Plastic", "Metal", "Crystal"}, // bottle material
	"Belt":    {"Leather", "Canvas", "Fabric", "Synthetic"},
	"Bag":     {"Leather", "Canvas", "Nylon", "Polyester", "Jute", "Denim"},
}

// MaterialOptions returns the allowed materials for a category, or a
// single "N/A" placeholder when no category is selected yet.
func MaterialOptions(category string) []string {
	if m, ok := MaterialsByCategory[category]; ok {
		return m
	}
	return []string{"N/A"}
}

func MaterialAllowed(category, material string) bool {
	for _, m := range MaterialOptions(category) {
		if m == material {
			return true
		}
	}
	return false
}

// Sizes are the selectable apparel sizes.
var Sizes = []string{"XS", "S", "M", "L", "XL", "XXL"}

type Color struct {
	Name string
	Hex  string
}

var Colors = []Color{
	{Name: "Red", Hex: "#EF4444"},
	{Name: "Blue", Hex: "#3B82F6"},
	{Name: "Green", Hex: "#22C55E"},
	{Name: "Black", Hex: "#1A202C"},
	{Name: "White", Hex: "#FFFFFF"},
	{Name: "Grey", Hex: "#6B7280"},
	{Name: "Orange", Hex: "#F97316"},
	{Name: "Pink", Hex: "#EC4899"},
	{Name: "Purple", Hex: "#8B5CF6"},
	{Name: "Yellow", Hex: "#FACC15"},
	{Name: "Brown", Hex: "#8B5F42"},
	{Name: "Beige", Hex: "#F5F5DC"},
}
