package handler

import (
	"net/http"

	"portal/internal/delivery/response"

	"github.com/labstack/echo/v4"
)

const backendStatusMessage = "Backend service is running"

// Root is a plaintext liveness endpoint.
func Root(c echo.Context) error {
	return c.String(http.StatusOK, backendStatusMessage)
}

// Test is a simple JSON endpoint used by deployment smoke checks.
func Test(c echo.Context) error {
	return response.Message(c, http.StatusOK, "Backend /test endpoint is working!")
}
