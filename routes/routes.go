package routes

import (
	"github.com/gin-gonic/gin"

	"marketplace-backend/controllers"
	"marketplace-backend/middleware"
	"marketplace-backend/models"
)

// Controllers bundles every handler group the router mounts.
type Controllers struct {
	Carts      *controllers.CartController
	Orders     *controllers.OrderController
	Products   *controllers.ProductController
	Categories *controllers.CategoryController
	Inventory  *controllers.InventoryController
	Customers  *controllers.CustomerController
	Users      *controllers.UserController
	Vendors    *controllers.VendorController
	Comments   *controllers.CommentController
}

// Register mounts all API routes under /api.
func Register(r *gin.Engine, auth *middleware.Authenticator, ctrl Controllers) {
	api := r.Group("/api")

	// Public: registration and login, rate limited per IP.
	login := api.Group("/")
	login.Use(middleware.LoginRateLimiter())
	{
		login.POST("/customer/register", ctrl.Customers.Register)
		login.POST("/customer/login", ctrl.Customers.Login)
		login.POST("/user/login", ctrl.Users.Login)
	}

	authed := api.Group("/")
	authed.Use(auth.Authenticate())

	staff := auth.RequireRole(models.RoleAdmin, models.RoleVendor, models.RoleCSR)
	adminOnly := auth.RequireRole(models.RoleAdmin)
	adminOrCSR := auth.RequireRole(models.RoleAdmin, models.RoleCSR)
	adminOrVendor := auth.RequireRole(models.RoleAdmin, models.RoleVendor)
	vendorOnly := auth.RequireRole(models.RoleVendor)

	cart := authed.Group("/cart")
	{
		cart.GET("/:userId", ctrl.Carts.GetCart)
		cart.POST("/:userId", ctrl.Carts.CreateCart)
		cart.POST("/:userId/items", ctrl.Carts.AddItem)
		cart.PUT("/:userId/items/:itemId", ctrl.Carts.UpdateItemQuantity)
		cart.DELETE("/:userId/items/:itemId", ctrl.Carts.RemoveItem)
		cart.DELETE("/:userId/clear", ctrl.Carts.ClearCart)
		cart.PUT("/status/:cartId", ctrl.Carts.UpdateCartStatus)
		cart.DELETE("/:userId", ctrl.Carts.DeleteCart)

		// Cart-id addressed views and mutations; closed carts included.
		cart.GET("/id/:cartId", ctrl.Carts.GetCartByID)
		cart.PUT("/id/:cartId/items/:itemId", ctrl.Carts.UpdateItemQuantityByCartID)
		cart.DELETE("/id/:cartId/items/:itemId", ctrl.Carts.RemoveItemByCartID)
	}

	orders := authed.Group("/orders")
	{
		orders.GET("", staff, ctrl.Orders.GetOrders)
		orders.GET("/:id", ctrl.Orders.GetOrder)
		orders.GET("/customer/:customerId", ctrl.Orders.GetOrdersByCustomer)
		orders.POST("", ctrl.Orders.CreateOrder)
		orders.POST("/upsert", ctrl.Orders.UpsertOrder)
		orders.PUT("/:id", adminOrCSR, ctrl.Orders.UpdateOrder)
		orders.PUT("/cancel/:id", adminOrCSR, ctrl.Orders.CancelOrder)
		orders.DELETE("/:id", adminOnly, ctrl.Orders.DeleteOrder)

		orders.GET("/vendor/:vendorEmail/order/:orderId/products", vendorOnly, ctrl.Orders.GetVendorLineItems)
		orders.POST("/vendor/:vendorEmail/order/:orderId/accept", vendorOnly, ctrl.Orders.AcceptVendorLineItems)
	}

	products := authed.Group("/products")
	{
		products.GET("", ctrl.Products.GetProducts)
		products.GET("/available", ctrl.Products.GetAvailableProducts)
		products.GET("/:id", ctrl.Products.GetProduct)
		products.GET("/:id/rating", ctrl.Products.GetProductRating)
		products.GET("/category/:categoryId", ctrl.Products.GetProductsByCategory)
		products.POST("", adminOrVendor, ctrl.Products.CreateProduct)
		products.PUT("/:id", adminOrVendor, ctrl.Products.UpdateProduct)
		products.PUT("/:id/status", adminOnly, ctrl.Products.SetProductActive)
		products.DELETE("/:id", adminOrVendor, ctrl.Products.DeleteProduct)
	}

	categories := authed.Group("/categories")
	{
		categories.GET("", ctrl.Categories.GetCategories)
		categories.GET("/:id", ctrl.Categories.GetCategory)
		categories.POST("", adminOnly, ctrl.Categories.CreateCategory)
		categories.PUT("/:id", adminOnly, ctrl.Categories.UpdateCategory)
		categories.PUT("/:id/status", adminOnly, ctrl.Categories.SetCategoryActive)
		categories.DELETE("/:id", adminOnly, ctrl.Categories.DeleteCategory)
	}

	inventory := authed.Group("/inventory")
	{
		inventory.GET("/:productId", ctrl.Inventory.GetStock)
		inventory.PUT("/:productId/increase", adminOrVendor, ctrl.Inventory.IncreaseStock)
		inventory.PUT("/:productId/decrease", adminOrVendor, ctrl.Inventory.DecreaseStock)
	}

	customers := authed.Group("/customer")
	{
		customers.GET("", adminOrCSR, ctrl.Customers.GetCustomers)
		customers.GET("/:email", ctrl.Customers.GetCustomer)
		customers.PUT("/:id", ctrl.Customers.UpdateCustomer)
		customers.PUT("/activate/:email", adminOrCSR, ctrl.Customers.Activate)
		customers.PUT("/deactivate/:email", adminOrCSR, ctrl.Customers.Deactivate)
		customers.PUT("/reactivate/:email", adminOrCSR, ctrl.Customers.Reactivate)
		customers.DELETE("/:email", adminOnly, ctrl.Customers.DeleteCustomer)
	}

	users := authed.Group("/user")
	{
		users.POST("", adminOnly, ctrl.Users.CreateUser)
		users.GET("/:id", staff, ctrl.Users.GetUser)
		users.GET("/role/:role", adminOnly, ctrl.Users.GetUsersByRole)
		users.PUT("/:id", adminOnly, ctrl.Users.UpdateUser)
		users.PUT("/:id/status", adminOnly, ctrl.Users.SetUserActive)
		users.DELETE("/:id", adminOnly, ctrl.Users.DeleteUser)
	}

	vendors := authed.Group("/vendor")
	{
		vendors.POST("/:vendorId/ranking", ctrl.Vendors.AddRanking)
		vendors.GET("/:vendorId/ranking", ctrl.Vendors.GetAverageRanking)
		vendors.GET("/:vendorId/rankings", ctrl.Vendors.GetRankings)
		vendors.POST("/:vendorId/comment", ctrl.Vendors.AddComment)
		vendors.GET("/:vendorId/comment/:customerId", ctrl.Vendors.GetComment)
	}

	comments := authed.Group("/comments")
	{
		comments.POST("", ctrl.Comments.AddComment)
		comments.GET("/product/:productId", ctrl.Comments.GetCommentsByProduct)
		comments.GET("/vendor/:vendorId", ctrl.Comments.GetCommentsByVendor)
		comments.GET("/user/:userId", ctrl.Comments.GetCommentsByUser)
		comments.DELETE("/:id", adminOrCSR, ctrl.Comments.DeleteComment)
	}
}
