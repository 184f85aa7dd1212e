// Package handler contains the HTTP handlers for the cart endpoint.
package handler

import (
	"log/slog"

	"cartsync/internal/delivery/http/response"
	"cartsync/internal/domain/entity"
	domainerrors "cartsync/internal/domain/errors"
	"cartsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for the cart endpoint handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

// saveCartRequest is the body accepted by POST and PUT.
type saveCartRequest struct {
	Items []entity.CartItem `json:"items"`
}

// mergeCartsRequest is the body accepted by PATCH.
type mergeCartsRequest struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
}

// GetCart handles the cart read request. A missing cart is a 200 with a null
// cart, not a 404.
func (h *CartHandler) GetCart(c echo.Context) error {
	identity, err := h.parseIdentity(c)
	if err != nil {
		return err
	}

	cart, err := h.uc.GetCart(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Cart(c, cart)
}

// SaveCart handles the cart upsert request for both POST and PUT.
func (h *CartHandler) SaveCart(c echo.Context) error {
	identity, err := h.parseIdentity(c)
	if err != nil {
		return err
	}

	var input saveCartRequest
	if err := c.Bind(&input); err != nil {
		h.logger.Warn("Rejected unparseable cart payload",
			slog.String("method", c.Request().Method),
			slog.String("error", err.Error()),
		)

		return domainerrors.ErrInvalidCartPayload
	}

	cart, err := h.uc.SaveCart(c.Request().Context(), identity, input.Items)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Cart(c, cart)
}

// DeleteCart handles the cart delete request. Deleting an absent cart still
// acknowledges success.
func (h *CartHandler) DeleteCart(c echo.Context) error {
	identity, err := h.parseIdentity(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteCart(c.Request().Context(), identity); err != nil {
		return errors.WithStack(err)
	}

	return response.Deleted(c)
}

// MergeCarts handles the login-time merge of a session cart into a user cart.
// Both identifiers arrive in the body and both are required.
func (h *CartHandler) MergeCarts(c echo.Context) error {
	var input mergeCartsRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrMissingIdentity
	}

	if input.SessionID == "" || input.UserID == "" {
		return domainerrors.ErrMissingIdentity
	}

	if !entity.ValidSessionID(input.SessionID) {
		h.logger.Warn("Rejected merge with malformed session ID",
			slog.String("sessionID", entity.TruncateToken(input.SessionID)),
		)

		return domainerrors.ErrInvalidSessionID
	}

	if !entity.ValidUserID(input.UserID) {
		h.logger.Warn("Rejected merge with malformed user ID",
			slog.String("userID", entity.TruncateToken(input.UserID)),
		)

		return domainerrors.ErrInvalidUserID
	}

	userID, err := uuid.Parse(input.UserID)
	if err != nil {
		return domainerrors.ErrInvalidUserID
	}

	cart, err := h.uc.MergeCarts(c.Request().Context(), input.SessionID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Cart(c, cart)
}

// parseIdentity reads and format-checks the ownership query parameters.
// Validation happens before any store access so a 400 has no side effects.
func (h *CartHandler) parseIdentity(c echo.Context) (usecase.Identity, error) {
	var identity usecase.Identity

	if raw := c.QueryParam("session_id"); raw != "" {
		if !entity.ValidSessionID(raw) {
			h.logger.Warn("Rejected malformed session ID",
				slog.String("sessionID", entity.TruncateToken(raw)),
			)

			return usecase.Identity{}, domainerrors.ErrInvalidSessionID
		}

		identity.SessionID = &raw
	}

	if raw := c.QueryParam("user_id"); raw != "" {
		if !entity.ValidUserID(raw) {
			h.logger.Warn("Rejected malformed user ID",
				slog.String("userID", entity.TruncateToken(raw)),
			)

			return usecase.Identity{}, domainerrors.ErrInvalidUserID
		}

		userID, err := uuid.Parse(raw)
		if err != nil {
			return usecase.Identity{}, domainerrors.ErrInvalidUserID
		}

		identity.UserID = &userID
	}

	if !identity.HasAny() {
		return usecase.Identity{}, domainerrors.ErrMissingIdentity
	}

	return identity, nil
}
