package recipes

import (
	"time"

	"github.com/plateful/recipe-box/internal/services/docstore"
)

// Defaults substituted for fields absent from a stored document.
const (
	defaultName   = "Untitled Recipe"
	defaultUserID = "unknown"
)

// FromDocument shapes a raw stored document into a Recipe. It is pure and
// total: malformed or missing fields fall back to defaults, and the same
// document always yields the same Recipe.
func FromDocument(id string, doc docstore.Document) Recipe {
	return Recipe{
		ID:           id,
		Name:         stringField(doc, "name", defaultName),
		Ingredients:  ingredientsField(doc, "ingredients"),
		Instructions: stringSliceField(doc, "instructions"),
		CookingTime:  intField(doc, "cookingTime"),
		Servings:     intField(doc, "servings"),
		UserID:       stringField(doc, "userId", defaultUserID),
		ImageURL:     stringField(doc, "imageUrl", ""),
		Categories:   stringSliceField(doc, "categories"),
		CreatedAt:    timeField(doc, "createdAt"),
	}
}

// Document is the inverse of FromDocument for a fully-populated Recipe,
// omitting the id and any empty optional fields.
func (r Recipe) Document() docstore.Document {
	doc := docstore.Document{
		"name":         r.Name,
		"ingredients":  ingredientDocs(r.Ingredients),
		"instructions": r.Instructions,
		"cookingTime":  r.CookingTime,
		"servings":     r.Servings,
		"userId":       r.UserID,
	}
	if r.ImageURL != "" {
		doc["imageUrl"] = r.ImageURL
	}
	if len(r.Categories) > 0 {
		doc["categories"] = r.Categories
	}
	if !r.CreatedAt.IsZero() {
		doc["createdAt"] = r.CreatedAt.UTC().Format(time.RFC3339)
	}
	return doc
}

func ingredientDocs(ingredients []Ingredient) []interface{} {
	docs := make([]interface{}, 0, len(ingredients))
	for _, ing := range ingredients {
		docs = append(docs, map[string]interface{}{
			"name":     ing.Name,
			"quantity": ing.Quantity,
			"unit":     ing.Unit,
		})
	}
	return docs
}

func stringField(doc docstore.Document, key, fallback string) string {
	if s, ok := doc[key].(string); ok {
		return s
	}
	return fallback
}

func intField(doc docstore.Document, key string) int {
	switch v := doc[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	default:
		return 0
	}
}

func floatValue(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}

func stringSliceField(doc docstore.Document, key string) []string {
	out := make([]string, 0)
	switch v := doc[key].(type) {
	case []string:
		out = append(out, v...)
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
	}
	return out
}

func ingredientsField(doc docstore.Document, key string) []Ingredient {
	out := make([]Ingredient, 0)
	raw, ok := doc[key].([]interface{})
	if !ok {
		return out
	}
	for _, item := range raw {
		fields, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		ing := Ingredient{Quantity: floatValue(fields["quantity"])}
		if name, ok := fields["name"].(string); ok {
			ing.Name = name
		}
		if unit, ok := fields["unit"].(string); ok {
			ing.Unit = unit
		}
		out = append(out, ing)
	}
	return out
}

func timeField(doc docstore.Document, key string) time.Time {
	raw, ok := doc[key].(string)
	if !ok {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}
