// Package store provides the persistence gateway for the inventory tables.
// Domain services depend only on the interfaces declared here; the gorm
// implementations translate them onto the relational store.
package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/frcalderon/sweetify-ms-products/models"
)

// ErrNotFound is returned when a lookup by identifier matches no row.
var ErrNotFound = errors.New("record not found")

// IngredientStore persists Ingredient rows.
type IngredientStore interface {
	List() ([]models.Ingredient, error)
	Get(id uint) (*models.Ingredient, error)
	Exists(id uint) (bool, error)
	Create(ingredient *models.Ingredient) error
	Save(ingredient *models.Ingredient) error
	Delete(id uint) error
}

// ProductStore persists Product rows. List and Get return products with their
// recipe links (and each link's ingredient) attached.
type ProductStore interface {
	List() ([]models.Product, error)
	Get(id uint) (*models.Product, error)
	Exists(id uint) (bool, error)
	Create(product *models.Product) error
	Save(product *models.Product) error
	Delete(id uint) error
}

// RecipeLinkStore persists ProductIngredient rows, the join records between
// products and ingredients.
type RecipeLinkStore interface {
	ListByIngredient(ingredientID uint) ([]models.ProductIngredient, error)
	ListByProduct(productID uint) ([]models.ProductIngredient, error)
	Create(link *models.ProductIngredient) error
	DeleteByProduct(productID uint) error
}

// Stores bundles the three gateways over a single database handle.
type Stores struct {
	Ingredients IngredientStore
	Products    ProductStore
	RecipeLinks RecipeLinkStore
}

// Atomic runs fn against transaction-bound stores. All writes made through
// the stores passed to fn commit together or roll back together.
type Atomic func(fn func(Stores) error) error

// NewStores builds gorm-backed stores over db.
func NewStores(db *gorm.DB) Stores {
	return Stores{
		Ingredients: &ingredientStore{db: db},
		Products:    &productStore{db: db},
		RecipeLinks: &recipeLinkStore{db: db},
	}
}

// NewAtomic builds an Atomic runner that wraps fn in a database transaction.
func NewAtomic(db *gorm.DB) Atomic {
	return func(fn func(Stores) error) error {
		return db.Transaction(func(tx *gorm.DB) error {
			return fn(NewStores(tx))
		})
	}
}
