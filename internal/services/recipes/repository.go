package recipes

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/plateful/recipe-box/internal/services/docstore"
)

// Repository mediates every recipe read and write against the document store.
// It owns no state beyond the store reference.
type Repository struct {
	docs docstore.Store
	now  func() time.Time
}

// NewRepository creates a Repository over the given store.
func NewRepository(docs docstore.Store) *Repository {
	return &Repository{
		docs: docs,
		now:  time.Now,
	}
}

// ListAll fetches every recipe, in store-defined order. The result is
// all-or-nothing: any store failure surfaces as a RepositoryError.
func (r *Repository) ListAll(ctx context.Context) ([]Recipe, error) {
	records, err := r.docs.Scan(ctx, Collection)
	if err != nil {
		return nil, &RepositoryError{Op: "list", Err: err}
	}

	out := make([]Recipe, 0, len(records))
	for _, record := range records {
		out = append(out, FromDocument(record.ID, record.Doc))
	}
	return out, nil
}

// GetByID fetches one recipe, distinguishing absence (NotFoundError) from
// store failure (RepositoryError).
func (r *Repository) GetByID(ctx context.Context, id string) (Recipe, error) {
	doc, err := r.docs.Get(ctx, Collection, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return Recipe{}, &NotFoundError{ID: id}
		}
		return Recipe{}, &RepositoryError{Op: "get", Err: err}
	}
	return FromDocument(id, doc), nil
}

// Create validates the draft, strips empty optional fields, stamps createdAt
// and inserts the document. Returns the store-assigned id. Validation failures
// never reach the store; store failures are not retried.
func (r *Repository) Create(ctx context.Context, draft Draft) (string, error) {
	if err := validateDraft(draft); err != nil {
		return "", err
	}

	recipe := Recipe{
		Name:         strings.TrimSpace(draft.Name),
		Ingredients:  draft.Ingredients,
		Instructions: trimAll(draft.Instructions),
		CookingTime:  draft.CookingTime,
		Servings:     draft.Servings,
		UserID:       draft.UserID,
		ImageURL:     draft.ImageURL,
		Categories:   draft.Categories,
		CreatedAt:    r.now().UTC().Truncate(time.Second),
	}

	id, err := r.docs.Insert(ctx, Collection, recipe.Document())
	if err != nil {
		return "", &RepositoryError{Op: "create", Err: err}
	}
	return id, nil
}

func validateDraft(draft Draft) error {
	if strings.TrimSpace(draft.Name) == "" {
		return &ValidationError{Constraint: "name must not be empty"}
	}
	for _, ing := range draft.Ingredients {
		if strings.TrimSpace(ing.Name) == "" || strings.TrimSpace(ing.Unit) == "" || ing.Quantity <= 0 {
			return &ValidationError{Constraint: "every ingredient needs a name, a unit and a quantity greater than zero"}
		}
	}
	for _, step := range draft.Instructions {
		if strings.TrimSpace(step) == "" {
			return &ValidationError{Constraint: "every instruction step must not be empty"}
		}
	}
	if draft.CookingTime < 0 {
		return &ValidationError{Constraint: "cooking time must not be negative"}
	}
	if draft.Servings < 0 {
		return &ValidationError{Constraint: "servings must not be negative"}
	}
	return nil
}

func trimAll(steps []string) []string {
	out := make([]string, 0, len(steps))
	for _, step := range steps {
		out = append(out, strings.TrimSpace(step))
	}
	return out
}
