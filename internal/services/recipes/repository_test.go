package recipes_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	mockeddocstore "github.com/plateful/recipe-box/internal/mocks/docstore"
	"github.com/plateful/recipe-box/internal/services/docstore"
	"github.com/plateful/recipe-box/internal/services/recipes"
	"github.com/plateful/recipe-box/pkg/tools/random"
	"github.com/stretchr/testify/require"
)

func validDraft() recipes.Draft {
	return recipes.Draft{
		Name: "Bread",
		Ingredients: []recipes.Ingredient{
			{Name: "Flour", Quantity: 500, Unit: "g"},
			{Name: "Salt", Quantity: 5, Unit: "g"},
		},
		Instructions: []string{"Knead", "Bake"},
		CookingTime:  40,
		Servings:     4,
		UserID:       random.String(16),
	}
}

func TestListAll(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mockeddocstore.NewMockStore(ctrl)
		store.EXPECT().
			Scan(gomock.Any(), gomock.Eq(recipes.Collection)).
			Times(1).
			Return([]docstore.Record{
				{ID: "a", Doc: docstore.Document{"name": "Soup"}},
				{ID: "b", Doc: docstore.Document{}},
			}, nil)

		repo := recipes.NewRepository(store)
		got, err := repo.ListAll(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, "a", got[0].ID)
		require.Equal(t, "Soup", got[0].Name)
		require.Equal(t, "Untitled Recipe", got[1].Name)
	})

	t.Run("Store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mockeddocstore.NewMockStore(ctrl)
		store.EXPECT().
			Scan(gomock.Any(), gomock.Any()).
			Times(1).
			Return(nil, &docstore.StoreError{Op: "scan", Collection: recipes.Collection, Err: errors.New("connection refused")})

		repo := recipes.NewRepository(store)
		got, err := repo.ListAll(context.Background())
		require.Error(t, err)
		require.Nil(t, got)

		var repoErr *recipes.RepositoryError
		require.True(t, errors.As(err, &repoErr))
	})
}

func TestGetByID(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mockeddocstore.NewMockStore(ctrl)
		store.EXPECT().
			Get(gomock.Any(), gomock.Eq(recipes.Collection), gomock.Eq("r1")).
			Times(1).
			Return(docstore.Document{"name": "Soup"}, nil)

		repo := recipes.NewRepository(store)
		got, err := repo.GetByID(context.Background(), "r1")
		require.NoError(t, err)
		require.Equal(t, "r1", got.ID)
		require.Equal(t, "Soup", got.Name)
	})

	t.Run("Absent id is NotFoundError, never RepositoryError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mockeddocstore.NewMockStore(ctrl)
		store.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Times(1).
			Return(nil, docstore.ErrNotFound)

		repo := recipes.NewRepository(store)
		_, err := repo.GetByID(context.Background(), "missing")
		require.Error(t, err)

		var notFoundErr *recipes.NotFoundError
		require.True(t, errors.As(err, &notFoundErr))
		require.Equal(t, "missing", notFoundErr.ID)

		var repoErr *recipes.RepositoryError
		require.False(t, errors.As(err, &repoErr))
	})

	t.Run("Connectivity failure is RepositoryError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mockeddocstore.NewMockStore(ctrl)
		store.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Times(1).
			Return(nil, &docstore.StoreError{Op: "get", Collection: recipes.Collection, Err: errors.New("timeout")})

		repo := recipes.NewRepository(store)
		_, err := repo.GetByID(context.Background(), "r1")
		require.Error(t, err)

		var repoErr *recipes.RepositoryError
		require.True(t, errors.As(err, &repoErr))
	})
}

func TestCreate(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		draft := recipes.Draft{
			Name:         "Seasoned Salt",
			Ingredients:  []recipes.Ingredient{{Name: "Salt", Quantity: 5, Unit: "g"}},
			Instructions: []string{"Mix"},
			CookingTime:  0,
			Servings:     1,
			UserID:       "user-1",
		}

		var stored docstore.Document
		store := mockeddocstore.NewMockStore(ctrl)
		store.EXPECT().
			Insert(gomock.Any(), gomock.Eq(recipes.Collection), gomock.Any()).
			Times(1).
			DoAndReturn(func(_ context.Context, _ string, doc docstore.Document) (string, error) {
				stored = doc
				return "assigned-id", nil
			})

		repo := recipes.NewRepository(store)
		id, err := repo.Create(context.Background(), draft)
		require.NoError(t, err)
		require.Equal(t, "assigned-id", id)

		require.Equal(t, []interface{}{
			map[string]interface{}{"name": "Salt", "quantity": float64(5), "unit": "g"},
		}, stored["ingredients"])
		require.Equal(t, "Seasoned Salt", stored["name"])
		require.Equal(t, "user-1", stored["userId"])
		require.NotContains(t, stored, "imageUrl")
		require.NotContains(t, stored, "categories")

		createdAt, err := time.Parse(time.RFC3339, stored["createdAt"].(string))
		require.NoError(t, err)
		require.WithinDuration(t, time.Now(), createdAt, 5*time.Second)
	})

	t.Run("Keeps non-empty optional fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		draft := validDraft()
		draft.ImageURL = "https://img.example.com/bread.jpg"
		draft.Categories = []string{"baking"}

		var stored docstore.Document
		store := mockeddocstore.NewMockStore(ctrl)
		store.EXPECT().
			Insert(gomock.Any(), gomock.Any(), gomock.Any()).
			Times(1).
			DoAndReturn(func(_ context.Context, _ string, doc docstore.Document) (string, error) {
				stored = doc
				return "assigned-id", nil
			})

		repo := recipes.NewRepository(store)
		_, err := repo.Create(context.Background(), draft)
		require.NoError(t, err)
		require.Equal(t, "https://img.example.com/bread.jpg", stored["imageUrl"])
		require.Equal(t, []string{"baking"}, stored["categories"])
	})

	t.Run("Validation failures never reach the store", func(t *testing.T) {
		testCases := []struct {
			name   string
			mutate func(*recipes.Draft)
		}{
			{
				name:   "EmptyName",
				mutate: func(d *recipes.Draft) { d.Name = "  " },
			},
			{
				name:   "ZeroQuantityIngredient",
				mutate: func(d *recipes.Draft) { d.Ingredients[0].Quantity = 0 },
			},
			{
				name:   "MissingIngredientUnit",
				mutate: func(d *recipes.Draft) { d.Ingredients[1].Unit = "" },
			},
			{
				name:   "BlankInstructionStep",
				mutate: func(d *recipes.Draft) { d.Instructions = []string{"Knead", "   "} },
			},
			{
				name:   "NegativeCookingTime",
				mutate: func(d *recipes.Draft) { d.CookingTime = -5 },
			},
			{
				name:   "NegativeServings",
				mutate: func(d *recipes.Draft) { d.Servings = -1 },
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				store := mockeddocstore.NewMockStore(ctrl)
				store.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

				draft := validDraft()
				tc.mutate(&draft)

				repo := recipes.NewRepository(store)
				id, err := repo.Create(context.Background(), draft)
				require.Empty(t, id)

				var validationErr *recipes.ValidationError
				require.True(t, errors.As(err, &validationErr))
			})
		}
	})

	t.Run("Insert failure is RepositoryError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mockeddocstore.NewMockStore(ctrl)
		store.EXPECT().
			Insert(gomock.Any(), gomock.Any(), gomock.Any()).
			Times(1).
			Return("", &docstore.StoreError{Op: "insert", Collection: recipes.Collection, Err: errors.New("connection reset")})

		repo := recipes.NewRepository(store)
		id, err := repo.Create(context.Background(), validDraft())
		require.Empty(t, id)

		var repoErr *recipes.RepositoryError
		require.True(t, errors.As(err, &repoErr))
	})
}
