package services

import (
	"errors"

	"github.com/frcalderon/sweetify-ms-products/models"
	"github.com/frcalderon/sweetify-ms-products/store"
)

// RecipeItem is one entry of a product's recipe: the referenced ingredient
// and the quantity consumed or produced per unit of the product.
type RecipeItem struct {
	IngredientID uint
	Quantity     float64
}

// ProductInput carries the mutable fields of a product, including its full
// recipe. On update the recipe replaces the previous one wholesale.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Ingredients []RecipeItem
}

// StockOrder requests a bulk stock adjustment of quantity units of one
// product.
type StockOrder struct {
	ProductID uint
	Quantity  int
}

// ProductService owns product CRUD and the bulk produce/consume operations
// that cascade stock changes onto recipe ingredients. Stock cascades go
// through the IngredientService so both entry points share one code path.
type ProductService struct {
	products    store.ProductStore
	recipeLinks store.RecipeLinkStore
	stock       *IngredientService
	atomic      store.Atomic
}

func NewProductService(stores store.Stores, stock *IngredientService, atomic store.Atomic) *ProductService {
	return &ProductService{
		products:    stores.Products,
		recipeLinks: stores.RecipeLinks,
		stock:       stock,
		atomic:      atomic,
	}
}

// List returns every product with its recipe links attached.
func (s *ProductService) List() ([]models.Product, error) {
	return s.products.List()
}

// Get returns the product with the given id or ErrProductNotFound.
func (s *ProductService) Get(id uint) (*models.Product, error) {
	product, err := s.products.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// Create inserts a product and one recipe link per entry. Every referenced
// ingredient is checked before anything is written; the insert runs in a
// single transaction so a bad entry leaves no product behind.
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	var productID uint

	err := s.atomic(func(tx store.Stores) error {
		if err := checkIngredientsExist(tx.Ingredients, input.Ingredients); err != nil {
			return err
		}

		product := models.Product{
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
		}
		if err := tx.Products.Create(&product); err != nil {
			return err
		}

		if err := insertRecipeLinks(tx.RecipeLinks, product.ID, input.Ingredients); err != nil {
			return err
		}

		productID = product.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Re-read so the response reflects the persisted recipe.
	return s.Get(productID)
}

// Update replaces the product's fields and its entire recipe as one atomic
// unit: existing links are deleted, the new set inserted, then the row saved.
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	err := s.atomic(func(tx store.Stores) error {
		product, err := tx.Products.Get(id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		if err := checkIngredientsExist(tx.Ingredients, input.Ingredients); err != nil {
			return err
		}

		if err := tx.RecipeLinks.DeleteByProduct(id); err != nil {
			return err
		}

		if err := insertRecipeLinks(tx.RecipeLinks, id, input.Ingredients); err != nil {
			return err
		}

		product.Name = input.Name
		product.Description = input.Description
		product.Price = input.Price
		return tx.Products.Save(product)
	})
	if err != nil {
		return nil, err
	}

	return s.Get(id)
}

// Delete removes the product and all its recipe links as one atomic unit.
// Referenced ingredients are untouched.
func (s *ProductService) Delete(id uint) error {
	return s.atomic(func(tx store.Stores) error {
		exists, err := tx.Products.Exists(id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrProductNotFound
		}

		if err := tx.RecipeLinks.DeleteByProduct(id); err != nil {
			return err
		}

		return tx.Products.Delete(id)
	})
}

// BulkProduce adds quantity × per-unit-recipe-quantity to every ingredient of
// each ordered product, modeling a replenishment run.
func (s *ProductService) BulkProduce(orders []StockOrder) error {
	return s.bulkAdjust(orders, s.stock.AddStock)
}

// BulkConsume subtracts quantity × per-unit-recipe-quantity from every
// ingredient of each ordered product, modeling a sale. Stock may go negative.
func (s *ProductService) BulkConsume(orders []StockOrder) error {
	return s.bulkAdjust(orders, s.stock.ConsumeStock)
}

// bulkAdjust validates every product id up front, then applies the per-item
// adjustments one by one. The items deliberately share no transaction: a
// failure partway through leaves earlier adjustments applied.
func (s *ProductService) bulkAdjust(orders []StockOrder, adjust func(uint, float64) (*models.Ingredient, error)) error {
	for _, order := range orders {
		exists, err := s.products.Exists(order.ProductID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrProductNotFound
		}
	}

	for _, order := range orders {
		links, err := s.recipeLinks.ListByProduct(order.ProductID)
		if err != nil {
			return err
		}
		for _, link := range links {
			if _, err := adjust(link.IngredientID, link.Quantity*float64(order.Quantity)); err != nil {
				return err
			}
		}
	}

	return nil
}

func checkIngredientsExist(ingredients store.IngredientStore, items []RecipeItem) error {
	for _, item := range items {
		exists, err := ingredients.Exists(item.IngredientID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrIngredientNotFound
		}
	}
	return nil
}

func insertRecipeLinks(links store.RecipeLinkStore, productID uint, items []RecipeItem) error {
	for _, item := range items {
		link := models.ProductIngredient{
			ProductID:    productID,
			IngredientID: item.IngredientID,
			Quantity:     item.Quantity,
		}
		if err := links.Create(&link); err != nil {
			return err
		}
	}
	return nil
}
