package models

import (
	"gorm.io/gorm"
)

// Ingredient is a raw-material stock record. Stock is signed: consuming more
// than is on hand drives it negative rather than failing.
type Ingredient struct {
	gorm.Model
	Name     string              `json:"name" gorm:"size:100;not null"`
	Units    string              `json:"units" gorm:"size:10;not null"`
	Stock    float64             `json:"stock" gorm:"not null"`
	Products []ProductIngredient `json:"-" gorm:"foreignKey:IngredientID"`
}
