// Package response holds the wire shapes shared by both services' handlers.
// Bodies are flat: handlers return their payload directly and errors are a
// single {"message": ...} object, matching the service's published contract.
package response

import (
	"github.com/labstack/echo/v4"
)

// MessageBody is the shape of every error response and of simple status
// endpoints.
type MessageBody struct {
	Message string `json:"message"`
}

// JSON writes the payload as-is with the given status code.
func JSON(c echo.Context, statusCode int, payload any) error {
	return c.JSON(statusCode, payload)
}

// Message writes a {"message": ...} body with the given status code.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageBody{Message: message})
}
