package recipeController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	authMiddleware "github.com/plateful/recipe-box/internal/controllers/middlewares/auth"
	recipeModel "github.com/plateful/recipe-box/internal/models/recipe"
	"github.com/plateful/recipe-box/internal/services/recipes"
	"github.com/plateful/recipe-box/pkg/auth/tokenAuth"
	"github.com/plateful/recipe-box/pkg/tools/parseErrors"
)

type Controller struct {
	repo *recipes.Repository
}

// New creates a pointer to a Controller
func New(repo *recipes.Repository) *Controller {
	return &Controller{
		repo: repo,
	}
}

// Create handles the request to create a new recipe. The owner is taken from
// the access token, never from the request body.
func (c *Controller) Create(ctx *gin.Context) {
	var req recipeModel.CreateRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	payload := ctx.MustGet(authMiddleware.AuthorizationPayloadKey).(*tokenAuth.Payload)

	draft := recipes.Draft{
		Name:         req.Name,
		Ingredients:  ingredientsFromRequest(req.Ingredients),
		Instructions: req.Instructions,
		CookingTime:  *req.CookingTime,
		Servings:     *req.Servings,
		UserID:       payload.UserID,
		ImageURL:     req.ImageURL,
		Categories:   req.Categories,
	}

	id, err := c.repo.Create(ctx, draft)
	if err != nil {
		var validationErr *recipes.ValidationError
		if errors.As(err, &validationErr) {
			ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(validationErr))
			return
		}
		ctx.JSON(http.StatusInternalServerError, parseErrors.GenericErrorResponse())
		return
	}

	ctx.JSON(http.StatusOK, recipeModel.CreateResponse{ID: id})
}

// Recipe handles the request to get a recipe by ID
func (c *Controller) Recipe(ctx *gin.Context) {
	var req recipeModel.GetRequest

	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	recipe, err := c.repo.GetByID(ctx, req.ID)
	if err != nil {
		var notFoundErr *recipes.NotFoundError
		if errors.As(err, &notFoundErr) {
			ctx.JSON(http.StatusNotFound, parseErrors.ErrorResponse(notFoundErr))
			return
		}
		ctx.JSON(http.StatusInternalServerError, parseErrors.GenericErrorResponse())
		return
	}

	ctx.JSON(http.StatusOK, recipeModel.GetResponse(recipe))
}

// List handles the request to list every recipe
func (c *Controller) List(ctx *gin.Context) {
	allRecipes, err := c.repo.ListAll(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, parseErrors.GenericErrorResponse())
		return
	}

	res := make([]recipeModel.ListResponse, 0, len(allRecipes))
	for _, recipe := range allRecipes {
		res = append(res, recipeModel.ListResponse(recipe))
	}

	ctx.JSON(http.StatusOK, res)
}

func ingredientsFromRequest(reqs []recipeModel.IngredientRequest) []recipes.Ingredient {
	ingredients := make([]recipes.Ingredient, 0, len(reqs))
	for _, ing := range reqs {
		ingredients = append(ingredients, recipes.Ingredient(ing))
	}
	return ingredients
}
