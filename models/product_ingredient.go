package models

import (
	"gorm.io/gorm"
)

// ProductIngredient links a Product to one Ingredient with the quantity
// consumed or produced per unit of the product. Rows belong to their product:
// they are replaced wholesale on product update and removed on product delete.
// The ingredient side is a plain reference and is never cascaded.
type ProductIngredient struct {
	gorm.Model
	ProductID    uint        `json:"product_id" gorm:"not null;index"`
	IngredientID uint        `json:"ingredient_id" gorm:"not null;index"`
	Ingredient   *Ingredient `json:"ingredient,omitempty" gorm:"foreignKey:IngredientID"`
	Quantity     float64     `json:"quantity" gorm:"not null"`
}
