package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"loja-backend/models"
	"loja-backend/services"
)

type CategoryController struct {
	catalogService *services.CatalogService
}

func NewCategoryController() *CategoryController {
	return &CategoryController{catalogService: services.NewCatalogService()}
}

// @Summary Get all categories
// @Description Get list of all categories
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *CategoryController) GetCategories(c *gin.Context) {
	categories, err := ctrl.catalogService.GetCategories(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve categories"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Categories retrieved",
		"data":    categories,
	})
}

// @Summary Create category
// @Description Create a new category (Admin only)
// @Tags Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CategoryRequest true "Category data"
// @Success 201 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /admin/categories [post]
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Name is required"})
		return
	}

	category, err := ctrl.catalogService.CreateCategory(c.Request.Context(), strings.TrimSpace(req.Name))
	if err != nil {
		respondError(c, err, "Failed to create category")
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Category created successfully",
		"data":    category,
	})
}

// @Summary Update category
// @Description Update an existing category (Admin only)
// @Tags Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body models.CategoryRequest true "Category data"
// @Success 200 {object} models.Response
// @Router /admin/categories/{id} [patch]
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid category ID"})
		return
	}

	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Name is required"})
		return
	}

	category, err := ctrl.catalogService.UpdateCategory(c.Request.Context(), id, strings.TrimSpace(req.Name))
	if err != nil {
		respondError(c, err, "Failed to update category")
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Category updated successfully",
		"data":    category,
	})
}

// @Summary Delete category
// @Description Delete a category; its products keep existing without one (Admin only)
// @Tags Categories
// @Security BearerAuth
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} models.Response
// @Router /admin/categories/{id} [delete]
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid category ID"})
		return
	}

	if err := ctrl.catalogService.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete category")
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Category deleted successfully",
	})
}
