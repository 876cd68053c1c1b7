package services

import (
	"errors"

	"github.com/frcalderon/sweetify-ms-products/models"
	"github.com/frcalderon/sweetify-ms-products/store"
)

// IngredientInput carries the mutable fields of an ingredient. Field
// validation happens at the HTTP boundary before this layer is reached.
type IngredientInput struct {
	Name  string
	Units string
	Stock float64
}

// IngredientService owns ingredient CRUD and stock mutation.
type IngredientService struct {
	ingredients store.IngredientStore
	recipeLinks store.RecipeLinkStore
}

func NewIngredientService(ingredients store.IngredientStore, recipeLinks store.RecipeLinkStore) *IngredientService {
	return &IngredientService{
		ingredients: ingredients,
		recipeLinks: recipeLinks,
	}
}

// List returns every ingredient.
func (s *IngredientService) List() ([]models.Ingredient, error) {
	return s.ingredients.List()
}

// Get returns the ingredient with the given id or ErrIngredientNotFound.
func (s *IngredientService) Get(id uint) (*models.Ingredient, error) {
	ingredient, err := s.ingredients.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrIngredientNotFound
		}
		return nil, err
	}
	return ingredient, nil
}

// Create inserts a new ingredient and returns it with its assigned id.
func (s *IngredientService) Create(input IngredientInput) (*models.Ingredient, error) {
	ingredient := models.Ingredient{
		Name:  input.Name,
		Units: input.Units,
		Stock: input.Stock,
	}

	if err := s.ingredients.Create(&ingredient); err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// Update overwrites all mutable fields of the ingredient. This is a full
// replace, not a partial patch.
func (s *IngredientService) Update(id uint, input IngredientInput) (*models.Ingredient, error) {
	ingredient, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	ingredient.Name = input.Name
	ingredient.Units = input.Units
	ingredient.Stock = input.Stock

	if err := s.ingredients.Save(ingredient); err != nil {
		return nil, err
	}
	return ingredient, nil
}

// Delete removes the ingredient unless a product recipe still references it.
// Existence is checked first, so a missing ingredient reports
// ErrIngredientNotFound even if recipe links would also block it.
func (s *IngredientService) Delete(id uint) error {
	exists, err := s.ingredients.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrIngredientNotFound
	}

	links, err := s.recipeLinks.ListByIngredient(id)
	if err != nil {
		return err
	}
	if len(links) > 0 {
		return ErrIngredientInUse
	}

	return s.ingredients.Delete(id)
}

// AddStock increases the ingredient's stock by amount and returns the
// updated record.
func (s *IngredientService) AddStock(id uint, amount float64) (*models.Ingredient, error) {
	return s.adjustStock(id, amount)
}

// ConsumeStock decreases the ingredient's stock by amount. There is no lower
// bound: consuming more than is on hand leaves a negative stock.
func (s *IngredientService) ConsumeStock(id uint, amount float64) (*models.Ingredient, error) {
	return s.adjustStock(id, -amount)
}

func (s *IngredientService) adjustStock(id uint, delta float64) (*models.Ingredient, error) {
	ingredient, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	ingredient.Stock += delta

	if err := s.ingredients.Save(ingredient); err != nil {
		return nil, err
	}
	return ingredient, nil
}
