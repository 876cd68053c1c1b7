package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/frcalderon/sweetify-ms-products/models"
	"github.com/frcalderon/sweetify-ms-products/services"
)

type IngredientController struct {
	service *services.IngredientService
}

func NewIngredientController(service *services.IngredientService) *IngredientController {
	return &IngredientController{service: service}
}

// IngredientRequest is the create/update body. Stock is a pointer so zero is
// a valid, present value.
type IngredientRequest struct {
	Name  string   `json:"name" binding:"required,min=1,max=100"`
	Units string   `json:"units" binding:"required,min=1,max=10"`
	Stock *float64 `json:"stock" binding:"required,decimal"`
}

// IngredientStockRequest adjusts one ingredient's stock by the given amount.
type IngredientStockRequest struct {
	IngredientID *uint    `json:"ingredientId" binding:"required"`
	Stock        *float64 `json:"stock" binding:"required,decimal"`
}

type IngredientResponse struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Units string  `json:"units"`
	Stock float64 `json:"stock"`
}

func newIngredientResponse(ingredient *models.Ingredient) IngredientResponse {
	return IngredientResponse{
		ID:    ingredient.ID,
		Name:  ingredient.Name,
		Units: ingredient.Units,
		Stock: ingredient.Stock,
	}
}

func (ct *IngredientController) List(c *gin.Context) {
	ingredients, err := ct.service.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	responses := make([]IngredientResponse, 0, len(ingredients))
	for i := range ingredients {
		responses = append(responses, newIngredientResponse(&ingredients[i]))
	}
	c.JSON(http.StatusOK, responses)
}

func (ct *IngredientController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respondError(c, http.StatusNotFound, "Ingredient not found")
		return
	}

	ingredient, err := ct.service.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newIngredientResponse(ingredient))
}

func (ct *IngredientController) Create(c *gin.Context) {
	var req IngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ingredient, err := ct.service.Create(services.IngredientInput{
		Name:  req.Name,
		Units: req.Units,
		Stock: *req.Stock,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newIngredientResponse(ingredient))
}

func (ct *IngredientController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respondError(c, http.StatusNotFound, "Ingredient not found")
		return
	}

	var req IngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ingredient, err := ct.service.Update(id, services.IngredientInput{
		Name:  req.Name,
		Units: req.Units,
		Stock: *req.Stock,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newIngredientResponse(ingredient))
}

func (ct *IngredientController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respondError(c, http.StatusNotFound, "Ingredient not found")
		return
	}

	if err := ct.service.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (ct *IngredientController) AddStock(c *gin.Context) {
	var req IngredientStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ingredient, err := ct.service.AddStock(*req.IngredientID, *req.Stock)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newIngredientResponse(ingredient))
}

func (ct *IngredientController) ConsumeStock(c *gin.Context) {
	var req IngredientStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ingredient, err := ct.service.ConsumeStock(*req.IngredientID, *req.Stock)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newIngredientResponse(ingredient))
}

// parseID reads the :id path parameter. A non-numeric id can never match a
// row, so callers treat a parse failure as not found.
func parseID(c *gin.Context) (uint, bool) {
	value, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(value), true
}
