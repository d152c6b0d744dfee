package category

import "strings"

// Categorize returns the catalog category for the given item name, used when
// an item is added without an explicit category. It performs case-insensitive
// matching: exact match first, then substring match. Falls back to "Other".
func Categorize(itemName string) string {
	name := strings.ToLower(strings.TrimSpace(itemName))
	if name == "" {
		return "Other"
	}

	if cat, ok := exactMatch[name]; ok {
		return cat
	}

	for _, entry := range substringMatches {
		if strings.Contains(name, entry.keyword) {
			return entry.category
		}
	}

	return "Other"
}

var exactMatch = map[string]string{
	// Fruit
	"apple":        "Fruit",
	"apples":       "Fruit",
	"banana":       "Fruit",
	"bananas":      "Fruit",
	"orange":       "Fruit",
	"oranges":      "Fruit",
	"lemon":        "Fruit",
	"lemons":       "Fruit",
	"lime":         "Fruit",
	"limes":        "Fruit",
	"grapes":       "Fruit",
	"strawberries": "Fruit",
	"blueberries":  "Fruit",
	"raspberries":  "Fruit",
	"watermelon":   "Fruit",
	"pineapple":    "Fruit",
	"mango":        "Fruit",
	"peach":        "Fruit",
	"peaches":      "Fruit",
	"pear":         "Fruit",
	"pears":        "Fruit",
	"avocado":      "Fruit",
	"avocados":     "Fruit",

	// Produce
	"tomato":      "Produce",
	"tomatoes":    "Produce",
	"potato":      "Produce",
	"potatoes":    "Produce",
	"onion":       "Produce",
	"onions":      "Produce",
	"garlic":      "Produce",
	"lettuce":     "Produce",
	"spinach":     "Produce",
	"kale":        "Produce",
	"broccoli":    "Produce",
	"carrots":     "Produce",
	"celery":      "Produce",
	"cucumber":    "Produce",
	"cucumbers":   "Produce",
	"peppers":     "Produce",
	"mushrooms":   "Produce",
	"corn":        "Produce",
	"zucchini":    "Produce",
	"asparagus":   "Produce",
	"green beans": "Produce",

	// Spices
	"cilantro": "Spices",
	"basil":    "Spices",
	"parsley":  "Spices",
	"ginger":   "Spices",
	"cinnamon": "Spices",
	"paprika":  "Spices",
	"cumin":    "Spices",
	"oregano":  "Spices",
	"thyme":    "Spices",
	"rosemary": "Spices",

	// Bakery
	"bread":      "Bakery",
	"bagels":     "Bakery",
	"tortillas":  "Bakery",
	"rolls":      "Bakery",
	"buns":       "Bakery",
	"muffins":    "Bakery",
	"croissants": "Bakery",
	"pita":       "Bakery",

	// Beverages
	"water":           "Beverages",
	"juice":           "Beverages",
	"coffee":          "Beverages",
	"tea":             "Beverages",
	"soda":            "Beverages",
	"kombucha":        "Beverages",
	"lemonade":        "Beverages",
	"sparkling water": "Beverages",

	// Dairy & Eggs
	"milk":           "Dairy & Eggs",
	"eggs":           "Dairy & Eggs",
	"butter":         "Dairy & Eggs",
	"cheese":         "Dairy & Eggs",
	"yogurt":         "Dairy & Eggs",
	"cream cheese":   "Dairy & Eggs",
	"sour cream":     "Dairy & Eggs",
	"heavy cream":    "Dairy & Eggs",
	"cottage cheese": "Dairy & Eggs",
	"feta":           "Dairy & Eggs",

	// Meat
	"chicken":       "Meat",
	"beef":          "Meat",
	"pork":          "Meat",
	"turkey":        "Meat",
	"bacon":         "Meat",
	"sausage":       "Meat",
	"ham":           "Meat",
	"steak":         "Meat",
	"salmon":        "Meat",
	"shrimp":        "Meat",
	"tuna":          "Meat",
	"fish":          "Meat",
	"ground beef":   "Meat",
	"ground turkey": "Meat",
	"lamb":          "Meat",

	// Condiments
	"ketchup":    "Condiments",
	"mustard":    "Condiments",
	"mayonnaise": "Condiments",
	"soy sauce":  "Condiments",
	"hot sauce":  "Condiments",
	"salsa":      "Condiments",
	"vinegar":    "Condiments",
	"honey":      "Condiments",
	"jam":        "Condiments",
	"jelly":      "Condiments",

	// Pantry
	"rice":            "Pantry",
	"pasta":           "Pantry",
	"oatmeal":         "Pantry",
	"cereal":          "Pantry",
	"canned beans":    "Pantry",
	"canned tomatoes": "Pantry",
	"soup":            "Pantry",
	"broth":           "Pantry",
	"beans":           "Pantry",
	"lentils":         "Pantry",
	"nuts":            "Pantry",
	"almonds":         "Pantry",
	"spaghetti":       "Pantry",
	"noodles":         "Pantry",
	"peanut butter":   "Pantry",
	"olive oil":       "Pantry",
	"oil":             "Pantry",

	// Baking
	"flour":           "Baking",
	"sugar":           "Baking",
	"baking powder":   "Baking",
	"baking soda":     "Baking",
	"vanilla extract": "Baking",
	"yeast":           "Baking",
	"cocoa powder":    "Baking",
	"maple syrup":     "Baking",
}

type substringEntry struct {
	keyword  string
	category string
}

// Ordered with longer/more-specific keywords first for deterministic priority.
var substringMatches = []substringEntry{
	// Meat — longer phrases first
	{"chicken breast", "Meat"},
	{"chicken thigh", "Meat"},
	{"ground beef", "Meat"},
	{"ground turkey", "Meat"},
	{"pork chop", "Meat"},
	{"chicken", "Meat"},
	{"beef", "Meat"},
	{"salmon", "Meat"},
	{"shrimp", "Meat"},

	// Dairy & Eggs
	{"cream cheese", "Dairy & Eggs"},
	{"sour cream", "Dairy & Eggs"},
	{"heavy cream", "Dairy & Eggs"},
	{"cottage cheese", "Dairy & Eggs"},
	{"greek yogurt", "Dairy & Eggs"},
	{"almond milk", "Dairy & Eggs"},
	{"oat milk", "Dairy & Eggs"},
	{"yogurt", "Dairy & Eggs"},
	{"cheese", "Dairy & Eggs"},
	{"milk", "Dairy & Eggs"},
	{"butter", "Dairy & Eggs"},
	{"cream", "Dairy & Eggs"},
	{"egg", "Dairy & Eggs"},

	// Fruit
	{"berry", "Fruit"},
	{"berries", "Fruit"},
	{"melon", "Fruit"},
	{"apple", "Fruit"},
	{"banana", "Fruit"},
	{"grape", "Fruit"},
	{"citrus", "Fruit"},

	// Produce
	{"salad mix", "Produce"},
	{"baby spinach", "Produce"},
	{"green onion", "Produce"},
	{"sweet potato", "Produce"},
	{"bell pepper", "Produce"},
	{"cherry tomato", "Produce"},
	{"romaine", "Produce"},
	{"arugula", "Produce"},
	{"cabbage", "Produce"},
	{"cauliflower", "Produce"},
	{"squash", "Produce"},
	{"lettuce", "Produce"},
	{"spinach", "Produce"},
	{"kale", "Produce"},
	{"tomato", "Produce"},
	{"potato", "Produce"},
	{"onion", "Produce"},
	{"pepper", "Produce"},
	{"carrot", "Produce"},
	{"celery", "Produce"},

	// Spices
	{"seasoning", "Spices"},
	{"spice", "Spices"},
	{"herb", "Spices"},
	{"chili flake", "Spices"},

	// Bakery
	{"sourdough", "Bakery"},
	{"whole wheat", "Bakery"},
	{"bread", "Bakery"},
	{"bagel", "Bakery"},
	{"tortilla", "Bakery"},
	{"bun", "Bakery"},
	{"roll", "Bakery"},
	{"muffin", "Bakery"},
	{"croissant", "Bakery"},

	// Beverages
	{"sparkling water", "Beverages"},
	{"orange juice", "Beverages"},
	{"apple juice", "Beverages"},
	{"coffee", "Beverages"},
	{"juice", "Beverages"},
	{"soda", "Beverages"},
	{"water", "Beverages"},
	{"tea", "Beverages"},
	{"drink", "Beverages"},

	// Condiments
	{"hot sauce", "Condiments"},
	{"soy sauce", "Condiments"},
	{"pasta sauce", "Condiments"},
	{"tomato sauce", "Condiments"},
	{"dressing", "Condiments"},
	{"mayo", "Condiments"},
	{"mustard", "Condiments"},
	{"ketchup", "Condiments"},
	{"sauce", "Condiments"},

	// Baking — before Pantry so "bread flour" beats the generic pantry terms
	{"baking powder", "Baking"},
	{"baking soda", "Baking"},
	{"vanilla extract", "Baking"},
	{"brown sugar", "Baking"},
	{"powdered sugar", "Baking"},
	{"chocolate chip", "Baking"},
	{"flour", "Baking"},
	{"sugar", "Baking"},
	{"yeast", "Baking"},

	// Pantry
	{"peanut butter", "Pantry"},
	{"olive oil", "Pantry"},
	{"coconut oil", "Pantry"},
	{"canned", "Pantry"},
	{"cereal", "Pantry"},
	{"oatmeal", "Pantry"},
	{"granola", "Pantry"},
	{"rice", "Pantry"},
	{"pasta", "Pantry"},
	{"noodle", "Pantry"},
	{"broth", "Pantry"},
	{"stock", "Pantry"},
	{"soup", "Pantry"},
	{"bean", "Pantry"},
	{"lentil", "Pantry"},
	{"oil", "Pantry"},
}
