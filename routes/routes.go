package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/frcalderon/sweetify-ms-products/controllers"
)

// SetupRoutes registers every route on the router.
func SetupRoutes(
	router *gin.Engine,
	ingredients *controllers.IngredientController,
	products *controllers.ProductController,
	health gin.HandlerFunc,
) {
	controllers.RegisterValidators()

	router.GET("/health", health)

	ingredientRoutes := router.Group("/ingredients")
	{
		ingredientRoutes.GET("", ingredients.List)
		ingredientRoutes.GET("/:id", ingredients.Get)
		ingredientRoutes.POST("", ingredients.Create)
		ingredientRoutes.PUT("/:id", ingredients.Update)
		ingredientRoutes.DELETE("/:id", ingredients.Delete)
		ingredientRoutes.POST("/stock/add", ingredients.AddStock)
		ingredientRoutes.POST("/stock/consume", ingredients.ConsumeStock)
	}

	productRoutes := router.Group("/products")
	{
		productRoutes.GET("", products.List)
		productRoutes.GET("/:id", products.Get)
		productRoutes.POST("", products.Create)
		productRoutes.PUT("/:id", products.Update)
		productRoutes.DELETE("/:id", products.Delete)
		productRoutes.POST("/stock/add", products.BulkProduce)
		productRoutes.POST("/stock/consume", products.BulkConsume)
	}
}
