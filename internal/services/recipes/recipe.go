package recipes

import "time"

// Collection is the document store collection holding recipe records.
const Collection = "recipes"

// Ingredient is owned entirely by its recipe; equality is structural.
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Recipe is the fully-populated, typed form of a stored recipe document.
// Every field is always set: reads go through FromDocument, which substitutes
// defaults for anything the stored document is missing.
type Recipe struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions []string     `json:"instructions"`
	CookingTime  int          `json:"cooking_time"`
	Servings     int          `json:"servings"`
	UserID       string       `json:"user_id"`
	ImageURL     string       `json:"image_url"`
	Categories   []string     `json:"categories"`
	CreatedAt    time.Time    `json:"created_at"`
}

// Draft is the caller-supplied input to Create. The store assigns the id and
// the repository stamps createdAt.
type Draft struct {
	Name         string
	Ingredients  []Ingredient
	Instructions []string
	CookingTime  int
	Servings     int
	UserID       string
	ImageURL     string
	Categories   []string
}
