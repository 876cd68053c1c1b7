package store

import (
	"gorm.io/gorm"

	"github.com/frcalderon/sweetify-ms-products/models"
)

type recipeLinkStore struct {
	db *gorm.DB
}

func (s *recipeLinkStore) ListByIngredient(ingredientID uint) ([]models.ProductIngredient, error) {
	var links []models.ProductIngredient
	if err := s.db.Where("ingredient_id = ?", ingredientID).Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (s *recipeLinkStore) ListByProduct(productID uint) ([]models.ProductIngredient, error) {
	var links []models.ProductIngredient
	if err := s.db.Where("product_id = ?", productID).Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (s *recipeLinkStore) Create(link *models.ProductIngredient) error {
	return s.db.Omit("Ingredient").Create(link).Error
}

func (s *recipeLinkStore) DeleteByProduct(productID uint) error {
	return s.db.Where("product_id = ?", productID).Delete(&models.ProductIngredient{}).Error
}
