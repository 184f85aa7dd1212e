// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"cartsync/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartNotFound is a domain-specific error returned when no cart exists for the given key.
var ErrCartNotFound = errors.New("cart not found")

// CartRepository defines the standard operations for cart persistence.
// The application layer depends on this interface, not the concrete implementation.
type CartRepository interface {
	// FindBySessionID retrieves at most one cart owned by an anonymous session.
	FindBySessionID(ctx context.Context, sessionID string) (*entity.Cart, error)

	// FindByUserID retrieves at most one cart owned by an authenticated user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// Create persists a new cart and fills in store-generated fields on the entity.
	Create(ctx context.Context, cart *entity.Cart) error

	// Update replaces the items and ownership columns of an existing cart.
	Update(ctx context.Context, cart *entity.Cart) error

	// DeleteBySessionID removes all carts owned by the session.
	// Deleting a session with no cart is not an error.
	DeleteBySessionID(ctx context.Context, sessionID string) error

	// DeleteByUserID removes all carts owned by the user.
	// Deleting a user with no cart is not an error.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
