// Package router contains routing and server setup for the backend HTTP delivery.
package router

import (
	"portal/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler *handler.AuthHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler *handler.AuthHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler: params.AuthHandler,
	}
}

// RegisterRoutes sets up all the API routes for the backend service.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Status endpoints
	e.GET("/", handler.Root)
	e.GET("/test", handler.Test)

	// Auth routes
	authGroup := e.Group("/api/v1/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}
}
