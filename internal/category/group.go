package category

// Required is the fixed set of category headers the UI always renders, in
// display order, whether or not any item belongs to them.
var Required = []string{
	"Fruit",
	"Produce",
	"Spices",
	"Bakery",
	"Beverages",
	"Dairy & Eggs",
	"Meat",
	"Condiments",
	"Pantry",
	"Baking",
}

// Group buckets items by their category label. Every required category is
// present in the result, with an empty list when nothing belongs to it;
// categories outside the required set are kept too. Items stay in input order
// within each category.
func Group[T any](items []T, key func(T) string) map[string][]T {
	groups := make(map[string][]T, len(Required))
	for _, c := range Required {
		groups[c] = []T{}
	}
	for _, it := range items {
		c := key(it)
		groups[c] = append(groups[c], it)
	}
	return groups
}

// Headers returns the category display order for a grouped item list: the
// required categories first, then any extra categories in order of first
// appearance in the input.
func Headers[T any](items []T, key func(T) string) []string {
	headers := make([]string, 0, len(Required))
	seen := make(map[string]bool, len(Required))
	for _, c := range Required {
		headers = append(headers, c)
		seen[c] = true
	}
	for _, it := range items {
		if c := key(it); !seen[c] {
			headers = append(headers, c)
			seen[c] = true
		}
	}
	return headers
}
