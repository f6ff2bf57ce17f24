package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"loja-backend/middleware"
	"loja-backend/services"
)

// SessionCartController serves the session-scoped cart: a non-persisted
// (product, quantity) sequence keyed by the visitor's session cookie. No
// login is required on this path.
type SessionCartController struct {
	sessionCartService *services.SessionCartService
	catalogService     *services.CatalogService
}

func NewSessionCartController() *SessionCartController {
	return &SessionCartController{
		sessionCartService: services.NewSessionCartService(),
		catalogService:     services.NewCatalogService(),
	}
}

// @Summary Catalog home
// @Description List the catalog's first page of products
// @Tags Loja
// @Produce json
// @Success 200 {object} models.PaginatedResponse
// @Router / [get]
func (ctrl *SessionCartController) Home(c *gin.Context) {
	products, meta, err := ctrl.catalogService.GetProducts(c.Request.Context(), 1, 20)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve products"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Bem-vindo a loja",
		"data":    products,
		"meta":    meta,
	})
}

// @Summary Add to session cart
// @Description Increment the product in the session cart, or append it with quantity 1
// @Tags Loja
// @Produce plain
// @Param id path int true "Product ID"
// @Success 200 {string} string "Produto adicionado ao carrinho."
// @Router /adicionar_ao_carrinho/{id}/ [get]
func (ctrl *SessionCartController) AddToCart(c *gin.Context) {
	productID, _ := strconv.Atoi(c.Param("id"))
	if productID <= 0 {
		c.String(400, "Produto invalido.")
		return
	}

	sessionID := c.GetString(middleware.SessionContextKey)
	if err := ctrl.sessionCartService.AddItem(c.Request.Context(), sessionID, productID); err != nil {
		c.String(500, "Falha ao adicionar o produto ao carrinho.")
		return
	}

	c.String(200, "Produto adicionado ao carrinho.")
}

// @Summary Remove from session cart
// @Description Remove every entry of the product from the session cart
// @Tags Loja
// @Produce plain
// @Param id path int true "Product ID"
// @Success 200 {string} string "Produto removido do carrinho."
// @Router /remover_do_carrinho/{id}/ [get]
func (ctrl *SessionCartController) RemoveFromCart(c *gin.Context) {
	productID, _ := strconv.Atoi(c.Param("id"))
	if productID <= 0 {
		c.String(400, "Produto invalido.")
		return
	}

	sessionID := c.GetString(middleware.SessionContextKey)
	if err := ctrl.sessionCartService.RemoveItem(c.Request.Context(), sessionID, productID); err != nil {
		c.String(500, "Falha ao remover o produto do carrinho.")
		return
	}

	c.String(200, "Produto removido do carrinho.")
}

// @Summary Clear session cart
// @Description Empty the session cart
// @Tags Loja
// @Produce plain
// @Success 200 {string} string "Carrinho limpo."
// @Router /limpar_carrinho/ [get]
func (ctrl *SessionCartController) ClearCart(c *gin.Context) {
	sessionID := c.GetString(middleware.SessionContextKey)
	if err := ctrl.sessionCartService.Clear(c.Request.Context(), sessionID); err != nil {
		c.String(500, "Falha ao limpar o carrinho.")
		return
	}

	c.String(200, "Carrinho limpo.")
}

// @Summary View session cart
// @Description Session cart entries enriched with product data and totals; entries whose product was deleted are omitted
// @Tags Loja
// @Produce json
// @Success 200 {object} models.Response
// @Router /carrinho/ [get]
func (ctrl *SessionCartController) ViewCart(c *gin.Context) {
	sessionID := c.GetString(middleware.SessionContextKey)

	view, err := ctrl.sessionCartService.View(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load cart"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Carrinho",
		"data":    view,
	})
}
