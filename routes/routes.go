package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"loja-backend/controllers"
	"loja-backend/middleware"
)

func SetupRoutes(router *gin.Engine) {
	authCtrl := controllers.NewAuthController()
	categoryCtrl := controllers.NewCategoryController()
	productCtrl := controllers.NewProductController()
	cartCtrl := controllers.NewCartController()
	sessionCartCtrl := controllers.NewSessionCartController()
	checkoutCtrl := controllers.NewCheckoutController()
	orderCtrl := controllers.NewOrderController()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.GET("/categories", categoryCtrl.GetCategories)
	router.GET("/products", productCtrl.GetProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)

	// Store-facing routes; cart state rides the session cookie, no login
	// required until checkout.
	loja := router.Group("/")
	loja.Use(middleware.SessionMiddleware())
	{
		loja.GET("/", sessionCartCtrl.Home)
		loja.GET("/adicionar_ao_carrinho/:id/", sessionCartCtrl.AddToCart)
		loja.GET("/remover_do_carrinho/:id/", sessionCartCtrl.RemoveFromCart)
		loja.GET("/limpar_carrinho/", sessionCartCtrl.ClearCart)
		loja.GET("/carrinho/", sessionCartCtrl.ViewCart)

		loja.POST("/finalizar_compra", middleware.AuthMiddleware(), checkoutCtrl.Checkout)
	}

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/auth/profile", authCtrl.GetProfile)
		auth.PATCH("/auth/profile", authCtrl.UpdateProfile)

		auth.POST("/carts", cartCtrl.CreateCart)
		auth.GET("/carts/:id", cartCtrl.GetCart)
		auth.DELETE("/carts/:id", cartCtrl.DeleteCart)
		auth.POST("/carts/:id/items", cartCtrl.AddItem)
		auth.DELETE("/carts/:id/items/:productId", cartCtrl.RemoveItem)

		auth.POST("/pedidos", orderCtrl.PlaceOrder)
		auth.GET("/pedidos", orderCtrl.GetMyOrders)
		auth.GET("/pedidos/:id", orderCtrl.GetMyOrder)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("/categories", categoryCtrl.CreateCategory)
		admin.PATCH("/categories/:id", categoryCtrl.UpdateCategory)
		admin.DELETE("/categories/:id", categoryCtrl.DeleteCategory)

		admin.POST("/products", productCtrl.CreateProduct)
		admin.PATCH("/products/:id", productCtrl.UpdateProduct)
		admin.DELETE("/products/:id", productCtrl.DeleteProduct)

		admin.GET("/orders", orderCtrl.GetAllOrders)
		admin.GET("/orders/:id", orderCtrl.GetOrderByID)
		admin.PATCH("/orders/:id/status", orderCtrl.UpdateOrderStatus)
		admin.DELETE("/orders/:id", orderCtrl.DeleteOrder)
	}
}
