package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frcalderon/sweetify-ms-products/models"
	"github.com/frcalderon/sweetify-ms-products/services"
)

type ProductController struct {
	service *services.ProductService
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{service: service}
}

type ProductIngredientRequest struct {
	IngredientID *uint    `json:"ingredientId" binding:"required"`
	Quantity     *float64 `json:"quantity" binding:"required"`
}

// ProductRequest is the create/update body. The recipe list replaces the
// product's previous recipe wholesale on update.
type ProductRequest struct {
	Name                  string                     `json:"name" binding:"required,min=1,max=100"`
	Description           string                     `json:"description" binding:"required,min=1,max=250"`
	Price                 *float64                   `json:"price" binding:"required,decimal"`
	ProductIngredientList []ProductIngredientRequest `json:"productIngredientList" binding:"required,dive"`
}

// ManageProductsRequest is one entry of a bulk produce/consume call.
type ManageProductsRequest struct {
	ProductID *uint `json:"productId" binding:"required"`
	Quantity  *int  `json:"quantity" binding:"required"`
}

type ProductIngredientResponse struct {
	ID           uint                `json:"id"`
	IngredientID uint                `json:"ingredientId"`
	Quantity     float64             `json:"quantity"`
	Ingredient   *IngredientResponse `json:"ingredient,omitempty"`
}

type ProductResponse struct {
	ID          uint                        `json:"id"`
	Name        string                      `json:"name"`
	Description string                      `json:"description"`
	Price       float64                     `json:"price"`
	Ingredients []ProductIngredientResponse `json:"ingredients"`
}

func newProductResponse(product *models.Product) ProductResponse {
	links := make([]ProductIngredientResponse, 0, len(product.Ingredients))
	for _, link := range product.Ingredients {
		entry := ProductIngredientResponse{
			ID:           link.ID,
			IngredientID: link.IngredientID,
			Quantity:     link.Quantity,
		}
		if link.Ingredient != nil {
			ingredient := newIngredientResponse(link.Ingredient)
			entry.Ingredient = &ingredient
		}
		links = append(links, entry)
	}

	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Ingredients: links,
	}
}

func (req ProductRequest) toInput() services.ProductInput {
	items := make([]services.RecipeItem, 0, len(req.ProductIngredientList))
	for _, entry := range req.ProductIngredientList {
		items = append(items, services.RecipeItem{
			IngredientID: *entry.IngredientID,
			Quantity:     *entry.Quantity,
		})
	}

	return services.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Ingredients: items,
	}
}

func (ct *ProductController) List(c *gin.Context) {
	products, err := ct.service.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, newProductResponse(&products[i]))
	}
	c.JSON(http.StatusOK, responses)
}

func (ct *ProductController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respondError(c, http.StatusNotFound, "Product not found")
		return
	}

	product, err := ct.service.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newProductResponse(product))
}

func (ct *ProductController) Create(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	product, err := ct.service.Create(req.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newProductResponse(product))
}

func (ct *ProductController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respondError(c, http.StatusNotFound, "Product not found")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	product, err := ct.service.Update(id, req.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newProductResponse(product))
}

func (ct *ProductController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respondError(c, http.StatusNotFound, "Product not found")
		return
	}

	if err := ct.service.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (ct *ProductController) BulkProduce(c *gin.Context) {
	orders, ok := bindStockOrders(c)
	if !ok {
		return
	}

	if err := ct.service.BulkProduce(orders); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (ct *ProductController) BulkConsume(c *gin.Context) {
	orders, ok := bindStockOrders(c)
	if !ok {
		return
	}

	if err := ct.service.BulkConsume(orders); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func bindStockOrders(c *gin.Context) ([]services.StockOrder, bool) {
	var requests []ManageProductsRequest
	if err := c.ShouldBindJSON(&requests); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return nil, false
	}

	orders := make([]services.StockOrder, 0, len(requests))
	for _, req := range requests {
		orders = append(orders, services.StockOrder{
			ProductID: *req.ProductID,
			Quantity:  *req.Quantity,
		})
	}
	return orders, true
}
