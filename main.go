package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/frcalderon/sweetify-ms-products/config"
	"github.com/frcalderon/sweetify-ms-products/controllers"
	"github.com/frcalderon/sweetify-ms-products/database"
	"github.com/frcalderon/sweetify-ms-products/routes"
	"github.com/frcalderon/sweetify-ms-products/services"
	"github.com/frcalderon/sweetify-ms-products/store"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on process environment")
	}

	cfg := config.LoadConfig()

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("failed to run migrations: ", err)
	}

	stores := store.NewStores(db)
	ingredientService := services.NewIngredientService(stores.Ingredients, stores.RecipeLinks)
	productService := services.NewProductService(stores, ingredientService, store.NewAtomic(db))

	// Initialize Gin router
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	}))

	routes.SetupRoutes(
		router,
		controllers.NewIngredientController(ingredientService),
		controllers.NewProductController(productService),
		controllers.HealthCheck(db),
	)

	// Start server
	if err := router.Run(cfg.ServerAddr); err != nil {
		log.Fatal("server stopped: ", err)
	}
}
