package recipeModel

import "github.com/plateful/recipe-box/internal/services/recipes"

type (
	CreateResponse struct {
		ID string `json:"id"`
	}

	GetResponse recipes.Recipe

	ListResponse recipes.Recipe
)
