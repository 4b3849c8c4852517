// Package router contains routing for the agent HTTP delivery.
package router

import (
	"portal/internal/delivery/agent/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProcessHandler *handler.ProcessHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	processHandler *handler.ProcessHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		processHandler: params.ProcessHandler,
	}
}

// RegisterRoutes sets up all the routes for the agent service.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Root)
	e.POST("/process", r.processHandler.Process)
}
