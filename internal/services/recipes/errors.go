package recipes

import "fmt"

// ValidationError reports the first create constraint a draft violated.
// It is raised before anything is sent to the store.
type ValidationError struct {
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid recipe: %s", e.Constraint)
}

// NotFoundError reports an absent recipe id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("recipe %s not found", e.ID)
}

// RepositoryError wraps a store-level failure.
type RepositoryError struct {
	Op  string
	Err error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("recipes: %s: %v", e.Op, e.Err)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}
