// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ecoscan/internal/delivery/http/router/handler"
	"ecoscan/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers to register, injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	ProductHandler  *handler.ProductHandler
	FavoriteHandler *handler.FavoriteHandler
	EmissionHandler *handler.EmissionHandler
	RequestID       *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	productHandler  *handler.ProductHandler
	favoriteHandler *handler.FavoriteHandler
	emissionHandler *handler.EmissionHandler
	requestID       *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		productHandler:  params.ProductHandler,
		favoriteHandler: params.FavoriteHandler,
		emissionHandler: params.EmissionHandler,
		requestID:       params.RequestID,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestID.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	{
		api.GET("/products/search", r.productHandler.Search)
		api.GET("/emissions", r.emissionHandler.Lookup)

		userGroup := api.Group("/users")
		{
			userGroup.POST("/register", r.userHandler.Register)
			userGroup.POST("/login", r.userHandler.Login)

			userGroup.POST("/:userId/favorites", r.favoriteHandler.Add)
			userGroup.GET("/:userId/favorites", r.favoriteHandler.List)
			userGroup.DELETE("/:userId/favorites/:barcode", r.favoriteHandler.Remove)
		}
	}
}
