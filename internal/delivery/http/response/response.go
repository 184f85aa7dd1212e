// Package response renders the wire shapes the cart client expects.
package response

import (
	"net/http"

	"cartsync/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// CartEnvelope wraps every cart-returning operation. A missing cart is an
// explicit null, not an absent key.
type CartEnvelope struct {
	Cart *entity.Cart `json:"cart"`
}

// AckEnvelope acknowledges operations that return no cart.
type AckEnvelope struct {
	Success bool `json:"success"`
}

// ErrorEnvelope carries the client-safe error message. Diagnostic detail
// stays in the server logs.
type ErrorEnvelope struct {
	Error string `json:"error"`
}

// Cart returns 200 with the cart (or null when none exists).
func Cart(c echo.Context, cart *entity.Cart) error {
	return c.JSON(http.StatusOK, CartEnvelope{Cart: cart})
}

// Deleted returns 200 with the delete acknowledgement.
func Deleted(c echo.Context) error {
	return c.JSON(http.StatusOK, AckEnvelope{Success: true})
}

// Err returns the given status with a generic error message.
func Err(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorEnvelope{Error: message})
}
