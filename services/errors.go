package services

import "errors"

// Domain error kinds. Controllers match these with errors.Is and map them to
// HTTP statuses; anything else is a store failure and surfaces unmapped.
var (
	// ErrIngredientNotFound is returned when an ingredient id matches no row,
	// either as a direct lookup or as a recipe entry reference.
	ErrIngredientNotFound = errors.New("ingredient not found")

	// ErrProductNotFound is returned when a product id matches no row.
	ErrProductNotFound = errors.New("product not found")

	// ErrIngredientInUse blocks deleting an ingredient that is still
	// referenced by at least one product recipe.
	ErrIngredientInUse = errors.New("ingredient has products assigned")
)
