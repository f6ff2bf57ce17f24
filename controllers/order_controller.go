package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"loja-backend/models"
	"loja-backend/services"
)

type OrderController struct {
	orderService *services.OrderService
}

func NewOrderController() *OrderController {
	return &OrderController{orderService: services.NewOrderService()}
}

// @Summary Place order
// @Description Create a pending order from explicit line items; prices are snapshotted at placement
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.PlaceOrderRequest true "Order lines"
// @Success 201 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /pedidos [post]
func (ctrl *OrderController) PlaceOrder(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request body", "error": err.Error()})
		return
	}

	lines := make([]services.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, services.OrderLine{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	order, err := ctrl.orderService.PlaceOrder(c.Request.Context(), userID, lines)
	if err != nil {
		respondError(c, err, "Failed to place order")
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Order placed successfully",
		"data": gin.H{
			"order": order,
			"total": order.Total(),
		},
	})
}

// @Summary List my orders
// @Description The authenticated user's orders, most recent first
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /pedidos [get]
func (ctrl *OrderController) GetMyOrders(c *gin.Context) {
	userID := c.GetInt("user_id")

	orders, err := ctrl.orderService.ListUserOrders(c.Request.Context(), userID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve orders"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Orders retrieved successfully",
		"data":    orders,
	})
}

// @Summary Get my order
// @Description A single order with items and total
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /pedidos/{id} [get]
func (ctrl *OrderController) GetMyOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid order ID"})
		return
	}

	order, err := ctrl.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to retrieve order")
		return
	}

	if order.UserID != c.GetInt("user_id") && c.GetString("user_role") != "admin" {
		c.JSON(403, gin.H{"success": false, "message": "Access denied"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Order retrieved successfully",
		"data": gin.H{
			"order": order,
			"total": order.Total(),
		},
	})
}

// @Summary Get all orders
// @Description All orders with pagination and status filter (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param status query string false "Filter by status"
// @Success 200 {object} models.PaginatedResponse
// @Router /admin/orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	status := c.Query("status")
	if status != "" && !models.ValidOrderStatus(status) {
		c.JSON(400, gin.H{"success": false, "message": "Unknown status"})
		return
	}

	orders, total, err := ctrl.orderService.ListOrders(c.Request.Context(), status, limit, (page-1)*limit)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve orders"})
		return
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	c.JSON(200, models.PaginatedResponse{
		Success: true,
		Message: "Orders retrieved successfully",
		Data:    orders,
		Meta: models.PaginationMeta{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	})
}

// @Summary Get order by ID
// @Description Order details with items (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid order ID"})
		return
	}

	order, err := ctrl.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to retrieve order")
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Order retrieved successfully",
		"data": gin.H{
			"order": order,
			"total": order.Total(),
		},
	})
}

// @Summary Update order status
// @Description Advance the order lifecycle; illegal transitions are rejected (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /admin/orders/{id}/status [patch]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid order ID"})
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Status is required"})
		return
	}

	order, err := ctrl.orderService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err, "Failed to update order status")
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Order status updated successfully",
		"data": gin.H{
			"id":     order.ID,
			"status": order.Status,
		},
	})
}

// @Summary Delete order
// @Description Delete an order and its items (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Router /admin/orders/{id} [delete]
func (ctrl *OrderController) DeleteOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid order ID"})
		return
	}

	if err := ctrl.orderService.DeleteOrder(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete order")
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Order deleted successfully",
		"data":    gin.H{"id": id},
	})
}
