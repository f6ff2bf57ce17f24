package controllers

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"loja-backend/middleware"
	"loja-backend/models"
	"loja-backend/services"
)

// CheckoutController finalizes a session cart into an order.
type CheckoutController struct {
	checkoutService *services.CheckoutService
	emailService    *services.EmailService
}

func NewCheckoutController() *CheckoutController {
	emailService, err := services.NewEmailService()
	if err != nil {
		log.Println("Email service disabled:", err)
		emailService = nil
	}

	return &CheckoutController{
		checkoutService: services.NewCheckoutService(),
		emailService:    emailService,
	}
}

// @Summary Checkout
// @Description Turn the session cart into a pending order, decrementing stock
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 201 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /finalizar_compra [post]
func (ctrl *CheckoutController) Checkout(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetInt("user_id")
	sessionID := c.GetString(middleware.SessionContextKey)

	order, err := ctrl.checkoutService.Checkout(ctx, userID, sessionID)
	switch {
	case errors.Is(err, models.ErrEmptyCart):
		c.JSON(400, gin.H{"success": false, "message": "Carrinho vazio"})
		return
	case errors.Is(err, models.ErrInsufficientStock):
		c.JSON(409, gin.H{"success": false, "message": "Estoque insuficiente"})
		return
	case err != nil:
		respondError(c, err, "Failed to checkout")
		return
	}

	if ctrl.emailService != nil {
		email := c.GetString("user_email")
		go func(order models.Order) {
			if err := ctrl.emailService.SendOrderConfirmation(email, &order); err != nil {
				log.Println("Failed to send order confirmation:", err)
			}
		}(*order)
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Pedido criado com sucesso",
		"data": gin.H{
			"order":  order,
			"total":  order.Total(),
			"status": order.Status,
		},
	})
}
