package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"loja-backend/models"
	"loja-backend/services"
)

// CartController serves the persisted cart path: carts and their line items
// live in the database, scoped to the authenticated owner.
type CartController struct {
	cartService *services.CartService
}

func NewCartController() *CartController {
	return &CartController{cartService: services.NewCartService()}
}

// @Summary Create cart
// @Description Open a new cart for the authenticated user
// @Tags Carts
// @Security BearerAuth
// @Produce json
// @Success 201 {object} models.Response
// @Router /carts [post]
func (ctrl *CartController) CreateCart(c *gin.Context) {
	userID := c.GetInt("user_id")

	cart, err := ctrl.cartService.CreateCart(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to create cart")
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Cart created successfully",
		"data":    cart,
	})
}

// @Summary Get cart
// @Description Get a cart with its items and total
// @Tags Carts
// @Security BearerAuth
// @Produce json
// @Param id path int true "Cart ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /carts/{id} [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	cart, ok := ctrl.ownedCart(c)
	if !ok {
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Cart retrieved",
		"data": gin.H{
			"cart":  cart,
			"total": cart.Total(),
		},
	})
}

// @Summary Add cart item
// @Description Add a product to the cart; rejected when quantity exceeds stock
// @Tags Carts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Cart ID"
// @Param request body models.AddCartItemRequest true "Item data"
// @Success 200 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /carts/{id}/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	cart, ok := ctrl.ownedCart(c)
	if !ok {
		return
	}

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request body", "error": err.Error()})
		return
	}

	if err := ctrl.cartService.AddLineItem(c.Request.Context(), cart.ID, req.ProductID, req.Quantity); err != nil {
		respondError(c, err, "Failed to add item to cart")
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Item added to cart",
	})
}

// @Summary Remove cart item
// @Description Remove a product from the cart
// @Tags Carts
// @Security BearerAuth
// @Produce json
// @Param id path int true "Cart ID"
// @Param productId path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /carts/{id}/items/{productId} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	cart, ok := ctrl.ownedCart(c)
	if !ok {
		return
	}

	productID, _ := strconv.Atoi(c.Param("productId"))
	if productID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	if err := ctrl.cartService.RemoveLineItem(c.Request.Context(), cart.ID, productID); err != nil {
		respondError(c, err, "Failed to remove item from cart")
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Item removed from cart",
	})
}

// @Summary Delete cart
// @Description Delete a cart and all of its items
// @Tags Carts
// @Security BearerAuth
// @Produce json
// @Param id path int true "Cart ID"
// @Success 200 {object} models.Response
// @Router /carts/{id} [delete]
func (ctrl *CartController) DeleteCart(c *gin.Context) {
	cart, ok := ctrl.ownedCart(c)
	if !ok {
		return
	}

	if err := ctrl.cartService.DeleteCart(c.Request.Context(), cart.ID); err != nil {
		respondError(c, err, "Failed to delete cart")
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Cart deleted successfully",
	})
}

// ownedCart loads the cart from the :id parameter and enforces that it
// belongs to the authenticated user (admins bypass the ownership check).
func (ctrl *CartController) ownedCart(c *gin.Context) (*models.Cart, bool) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid cart ID"})
		return nil, false
	}

	cart, err := ctrl.cartService.GetCart(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to load cart")
		return nil, false
	}

	if cart.UserID != c.GetInt("user_id") && c.GetString("user_role") != "admin" {
		c.JSON(403, gin.H{"success": false, "message": "Access denied"})
		return nil, false
	}
	return cart, true
}
