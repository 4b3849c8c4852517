// Package handler contains the HTTP handlers for the agent service.
package handler

import (
	"log/slog"
	"net/http"

	"portal/internal/delivery/response"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const agentStatusMessage = "Agent service is running"

// ProcessHandler holds dependencies for the text-processing handler.
type ProcessHandler struct {
	uc     usecase.AgentUsecase
	logger *slog.Logger
}

// NewProcessHandler is the constructor for ProcessHandler, injected by Fx.
func NewProcessHandler(uc usecase.AgentUsecase, logger *slog.Logger) *ProcessHandler {
	return &ProcessHandler{
		uc:     uc,
		logger: logger,
	}
}

// Process handles the text-processing request.
func (h *ProcessHandler) Process(c echo.Context) error {
	input := new(usecase.ProcessInput)
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrMissingInputText.WrapMessage("bind process payload")
	}
	if err := c.Validate(input); err != nil {
		return domainerrors.ErrMissingInputText.WrapMessage("validate process payload")
	}

	output, err := h.uc.Process(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, output)
}

// Root is a plaintext liveness endpoint.
func Root(c echo.Context) error {
	return c.String(http.StatusOK, agentStatusMessage)
}
