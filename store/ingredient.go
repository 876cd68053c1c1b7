package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/frcalderon/sweetify-ms-products/models"
)

type ingredientStore struct {
	db *gorm.DB
}

func (s *ingredientStore) List() ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := s.db.Order("id asc").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (s *ingredientStore) Get(id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := s.db.First(&ingredient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ingredient, nil
}

func (s *ingredientStore) Exists(id uint) (bool, error) {
	var count int64
	if err := s.db.Model(&models.Ingredient{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *ingredientStore) Create(ingredient *models.Ingredient) error {
	return s.db.Create(ingredient).Error
}

func (s *ingredientStore) Save(ingredient *models.Ingredient) error {
	return s.db.Save(ingredient).Error
}

func (s *ingredientStore) Delete(id uint) error {
	return s.db.Delete(&models.Ingredient{}, id).Error
}
