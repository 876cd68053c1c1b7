package store_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/frcalderon/sweetify-ms-products/database"
	"github.com/frcalderon/sweetify-ms-products/models"
	"github.com/frcalderon/sweetify-ms-products/store"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedIngredient(t *testing.T, stores store.Stores, name string, stock float64) *models.Ingredient {
	t.Helper()
	ingredient := models.Ingredient{Name: name, Units: "kg", Stock: stock}
	require.NoError(t, stores.Ingredients.Create(&ingredient))
	return &ingredient
}

func seedProduct(t *testing.T, stores store.Stores, name string) *models.Product {
	t.Helper()
	product := models.Product{Name: name, Description: "desc", Price: 1.5}
	require.NoError(t, stores.Products.Create(&product))
	return &product
}

func seedLink(t *testing.T, stores store.Stores, productID, ingredientID uint, quantity float64) *models.ProductIngredient {
	t.Helper()
	link := models.ProductIngredient{ProductID: productID, IngredientID: ingredientID, Quantity: quantity}
	require.NoError(t, stores.RecipeLinks.Create(&link))
	return &link
}

func TestIngredientStoreGetMissingReturnsErrNotFound(t *testing.T) {
	stores := store.NewStores(openTestDB(t))

	_, err := stores.Ingredients.Get(42)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestIngredientStoreExists(t *testing.T) {
	stores := store.NewStores(openTestDB(t))
	ingredient := seedIngredient(t, stores, "Flour", 10)

	exists, err := stores.Ingredients.Exists(ingredient.ID)
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = stores.Ingredients.Exists(ingredient.ID + 1)
	require.NoError(t, err)
	require.False(t, exists)
}

func TestIngredientStoreDeleteHidesRow(t *testing.T) {
	stores := store.NewStores(openTestDB(t))
	ingredient := seedIngredient(t, stores, "Flour", 10)

	require.NoError(t, stores.Ingredients.Delete(ingredient.ID))

	_, err := stores.Ingredients.Get(ingredient.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	exists, err := stores.Ingredients.Exists(ingredient.ID)
	require.NoError(t, err)
	require.False(t, exists)
}

func TestRecipeLinkStoreListByIngredient(t *testing.T) {
	stores := store.NewStores(openTestDB(t))
	ingredient := seedIngredient(t, stores, "Sugar", 3)
	productA := seedProduct(t, stores, "Cake")
	productB := seedProduct(t, stores, "Cookie")
	seedLink(t, stores, productA.ID, ingredient.ID, 0.5)
	seedLink(t, stores, productB.ID, ingredient.ID, 0.2)

	links, err := stores.RecipeLinks.ListByIngredient(ingredient.ID)
	require.NoError(t, err)
	require.Len(t, links, 2)
}

func TestRecipeLinkStoreListByProduct(t *testing.T) {
	stores := store.NewStores(openTestDB(t))
	sugar := seedIngredient(t, stores, "Sugar", 3)
	flour := seedIngredient(t, stores, "Flour", 8)
	product := seedProduct(t, stores, "Cake")
	seedLink(t, stores, product.ID, sugar.ID, 0.5)
	seedLink(t, stores, product.ID, flour.ID, 1.2)

	links, err := stores.RecipeLinks.ListByProduct(product.ID)
	require.NoError(t, err)
	require.Len(t, links, 2)
}

func TestRecipeLinkStoreDeleteByProductKeepsEndpoints(t *testing.T) {
	stores := store.NewStores(openTestDB(t))
	ingredient := seedIngredient(t, stores, "Sugar", 3)
	product := seedProduct(t, stores, "Cake")
	seedLink(t, stores, product.ID, ingredient.ID, 0.5)

	require.NoError(t, stores.RecipeLinks.DeleteByProduct(product.ID))

	links, err := stores.RecipeLinks.ListByProduct(product.ID)
	require.NoError(t, err)
	require.Empty(t, links)

	// The product and the ingredient survive the bulk delete.
	_, err = stores.Products.Get(product.ID)
	require.NoError(t, err)
	_, err = stores.Ingredients.Get(ingredient.ID)
	require.NoError(t, err)
}

func TestProductStoreGetPreloadsRecipe(t *testing.T) {
	stores := store.NewStores(openTestDB(t))
	ingredient := seedIngredient(t, stores, "Butter", 5.5)
	product := seedProduct(t, stores, "Cake")
	seedLink(t, stores, product.ID, ingredient.ID, 0.5)

	loaded, err := stores.Products.Get(product.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Ingredients, 1)
	require.Equal(t, ingredient.ID, loaded.Ingredients[0].IngredientID)
	require.NotNil(t, loaded.Ingredients[0].Ingredient)
	require.Equal(t, "Butter", loaded.Ingredients[0].Ingredient.Name)
}

func TestAtomicRollsBackOnError(t *testing.T) {
	db := openTestDB(t)
	stores := store.NewStores(db)
	atomic := store.NewAtomic(db)

	boom := errors.New("boom")
	err := atomic(func(tx store.Stores) error {
		if err := tx.Products.Create(&models.Product{Name: "Ghost", Description: "d", Price: 1}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	products, err := stores.Products.List()
	require.NoError(t, err)
	require.Empty(t, products)
}
