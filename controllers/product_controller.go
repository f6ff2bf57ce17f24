package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"loja-backend/models"
	"loja-backend/services"
)

type ProductController struct {
	catalogService *services.CatalogService
}

func NewProductController() *ProductController {
	return &ProductController{catalogService: services.NewCatalogService()}
}

// @Summary Get all products
// @Description Get products with pagination
// @Tags Products
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.PaginatedResponse
// @Router /products [get]
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit > 100 {
		limit = 100
	}

	products, meta, err := ctrl.catalogService.GetProducts(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve products"})
		return
	}

	c.JSON(200, models.PaginatedResponse{
		Success: true,
		Message: "Products retrieved successfully",
		Data:    products,
		Meta:    meta,
	})
}

// @Summary Get product by ID
// @Description Get a single product
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	product, err := ctrl.catalogService.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to retrieve product")
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Product retrieved",
		"data":    product,
	})
}

// @Summary Create product
// @Description Create a new product (Admin only)
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateProductRequest true "Product data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request body", "error": err.Error()})
		return
	}

	product, err := ctrl.catalogService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create product")
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Product created successfully",
		"data":    product,
	})
}

// @Summary Update product
// @Description Update an existing product (Admin only)
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body models.UpdateProductRequest true "Product fields"
// @Success 200 {object} models.Response
// @Router /admin/products/{id} [patch]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request body", "error": err.Error()})
		return
	}

	product, err := ctrl.catalogService.UpdateProduct(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Failed to update product")
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Product updated successfully",
		"data":    product,
	})
}

// @Summary Delete product
// @Description Delete a product; cart and order items referencing it are removed (Admin only)
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /admin/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	if err := ctrl.catalogService.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete product")
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Product deleted successfully",
	})
}
