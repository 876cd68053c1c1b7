package store

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/frcalderon/sweetify-ms-products/models"
)

type productStore struct {
	db *gorm.DB
}

func (s *productStore) List() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Preload("Ingredients.Ingredient").Order("id asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *productStore) Get(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.Preload("Ingredients.Ingredient").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (s *productStore) Exists(id uint) (bool, error) {
	var count int64
	if err := s.db.Model(&models.Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create and Save omit the recipe association: link rows are written only
// through the RecipeLinkStore.
func (s *productStore) Create(product *models.Product) error {
	return s.db.Omit(clause.Associations).Create(product).Error
}

func (s *productStore) Save(product *models.Product) error {
	return s.db.Omit(clause.Associations).Save(product).Error
}

func (s *productStore) Delete(id uint) error {
	return s.db.Delete(&models.Product{}, id).Error
}
