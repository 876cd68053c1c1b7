package models

import (
	"gorm.io/gorm"
)

// Product is a sellable item assembled from a recipe of ingredients.
type Product struct {
	gorm.Model
	Name        string              `json:"name" gorm:"size:100;not null"`
	Description string              `json:"description" gorm:"size:250"`
	Price       float64             `json:"price"`
	Ingredients []ProductIngredient `json:"ingredients" gorm:"foreignKey:ProductID"`
}
