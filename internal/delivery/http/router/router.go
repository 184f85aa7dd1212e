// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cartsync/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CartHandler *handler.CartHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	cartHandler *handler.CartHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cartHandler: params.CartHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// The cart endpoint dispatches on the HTTP verb alone; Echo answers 405 for
// any verb not registered here, and OPTIONS never reaches the handlers
// because the CORS middleware short-circuits it.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	e.GET("/cart", r.cartHandler.GetCart)
	e.POST("/cart", r.cartHandler.SaveCart)
	e.PUT("/cart", r.cartHandler.SaveCart)
	e.DELETE("/cart", r.cartHandler.DeleteCart)
	e.PATCH("/cart", r.cartHandler.MergeCarts)
}
