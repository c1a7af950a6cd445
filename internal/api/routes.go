package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookorbit-backend-go/internal/core"
	"bookorbit-backend-go/internal/middleware"
)

// SetupRoutes wires all application routes. Global middleware (logging,
// recovery, CORS) is applied to the router before this is called.
func SetupRoutes(
	router *gin.Engine,
	logger *zap.Logger,
	authMW *middleware.AuthMiddleware,
	userService core.UserService,
	bookService core.BookService,
	orderService core.OrderService,
) {
	userHandler := NewUserHandler(userService, logger)
	bookHandler := NewBookHandler(bookService, logger)
	orderHandler := NewOrderHandler(orderService, logger)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "BookOrbit server is running")
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	users := router.Group("/users")
	{
		users.PUT("", userHandler.UpsertUser)
		users.GET("/role", authMW.VerifyToken(), userHandler.GetRole)
	}

	books := router.Group("/books")
	{
		books.POST("", authMW.VerifyToken(), bookHandler.CreateBook)
		books.GET("", bookHandler.ListBooks)
		books.GET("/mine", authMW.VerifyToken(), bookHandler.ListMine)
		books.GET("/:id", bookHandler.GetBook)
		books.PATCH("/:id", authMW.VerifyToken(), bookHandler.UpdateBook)
		books.DELETE("/:id", authMW.VerifyToken(), bookHandler.DeleteBook)
	}

	orders := router.Group("/orders")
	{
		orders.POST("", authMW.VerifyToken(), orderHandler.CreateOrder)
		orders.GET("/my", authMW.VerifyToken(), orderHandler.ListMine)
		orders.PATCH("/:id/cancel", authMW.VerifyToken(), orderHandler.CancelOrder)
	}
}
