// Package usecase defines the application-layer interfaces consumed by the delivery layer.
package usecase

import (
	"context"

	"cartsync/internal/domain/entity"

	"github.com/google/uuid"
)

// Identity carries the caller-supplied cart ownership, already format-checked
// by the delivery layer. At least one side must be set for every operation
// except merge, which requires both.
type Identity struct {
	SessionID *string
	UserID    *uuid.UUID
}

// HasAny reports whether at least one identifier is present.
func (id Identity) HasAny() bool {
	return id.SessionID != nil || id.UserID != nil
}

// CartUsecase defines the cart synchronization use cases.
type CartUsecase interface {
	// GetCart looks up at most one cart, preferring the user identifier.
	// A missing cart returns (nil, nil), not an error.
	GetCart(ctx context.Context, id Identity) (*entity.Cart, error)

	// SaveCart validates the item batch and upserts the cart for the given
	// identity. A session cart found while a user identifier is also supplied
	// is opportunistically linked to that user.
	SaveCart(ctx context.Context, id Identity, items []entity.CartItem) (*entity.Cart, error)

	// DeleteCart removes all carts for the identity, preferring the user
	// identifier. Deleting a non-existent cart succeeds.
	DeleteCart(ctx context.Context, id Identity) error

	// MergeCarts reconciles an anonymous session cart into the user's cart at
	// login: user items keep priority, session items with new ids are appended
	// up to the cart cap, and the session record is removed.
	MergeCarts(ctx context.Context, sessionID string, userID uuid.UUID) (*entity.Cart, error)
}
