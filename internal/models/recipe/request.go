package recipeModel

type (
	IngredientRequest struct {
		Name     string  `json:"name"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
	}

	CreateRequest struct {
		Name         string              `json:"name" binding:"required"`
		Ingredients  []IngredientRequest `json:"ingredients" binding:"required"`
		Instructions []string            `json:"instructions" binding:"required"`
		CookingTime  *int                `json:"cooking_time" binding:"required"`
		Servings     *int                `json:"servings" binding:"required"`
		ImageURL     string              `json:"image_url"`
		Categories   []string            `json:"categories"`
	}

	GetRequest struct {
		ID string `uri:"id" binding:"required"`
	}
)
