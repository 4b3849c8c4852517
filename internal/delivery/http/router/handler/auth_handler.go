// Package handler contains the HTTP handlers for the backend service.
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

// AuthHandler holds dependencies for the registration and login handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the user registration request. Any bind or presence failure
// maps to the single fixed payload error; the response body is the public user
// view, never the stored hash.
func (h *AuthHandler) Register(c echo.Context) error {
	input := new(usecase.RegisterInput)
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrInvalidPayload.WrapMessage("bind registration payload")
	}
	if err := c.Validate(input); err != nil {
		return domainerrors.ErrInvalidPayload.WrapMessage("validate registration payload")
	}

	view, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, view)
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	input := new(usecase.LoginInput)
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrInvalidPayload.WrapMessage("bind login payload")
	}
	if err := c.Validate(input); err != nil {
		return domainerrors.ErrInvalidPayload.WrapMessage("validate login payload")
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, output)
}
