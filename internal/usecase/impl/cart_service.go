// Package impl contains the concrete implementations of the application use cases.
package impl

import (
	"context"
	"log/slog"

	"cartsync/internal/domain/entity"
	domainerrors "cartsync/internal/domain/errors"
	"cartsync/internal/domain/repository"
	"cartsync/internal/errors"
	"cartsync/internal/usecase"

	"github.com/google/uuid"
)

type cartService struct {
	cartRepo  repository.CartRepository
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCartService creates a new cart service instance.
func NewCartService(
	cartRepo repository.CartRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		cartRepo:  cartRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// GetCart looks up at most one cart, preferring the user identifier.
func (s *cartService) GetCart(ctx context.Context, id usecase.Identity) (*entity.Cart, error) {
	if !id.HasAny() {
		return nil, domainerrors.ErrMissingIdentity
	}

	var (
		cart *entity.Cart
		err  error
	)
	if id.UserID != nil {
		cart, err = s.cartRepo.FindByUserID(ctx, *id.UserID)
	} else {
		cart, err = s.cartRepo.FindBySessionID(ctx, *id.SessionID)
	}

	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, nil
		}

		return nil, domainerrors.NewStoreError(err, "failed to load cart")
	}

	return cart, nil
}

// SaveCart validates the item batch and upserts the cart for the identity.
func (s *cartService) SaveCart(ctx context.Context, id usecase.Identity, items []entity.CartItem) (*entity.Cart, error) {
	if !id.HasAny() {
		return nil, domainerrors.ErrMissingIdentity
	}

	if items == nil {
		items = []entity.CartItem{}
	}

	if err := entity.ValidateItems(items); err != nil {
		s.logger.Warn("cart payload rejected",
			slog.String("issues", err.Error()),
			slog.Int("itemCount", len(items)),
		)

		return nil, domainerrors.ErrInvalidCartPayload
	}

	cart, err := s.lookupForUpsert(ctx, id)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to look up cart for upsert")
	}

	if cart != nil {
		cart.Items = items
		if err := s.cartRepo.Update(ctx, cart); err != nil {
			return nil, domainerrors.NewStoreError(err, "failed to update cart")
		}

		return cart, nil
	}

	cart = &entity.Cart{
		ID:        uuid.New(),
		SessionID: id.SessionID,
		UserID:    id.UserID,
		Items:     items,
	}
	if err := s.cartRepo.Create(ctx, cart); err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to create cart")
	}

	return cart, nil
}

// lookupForUpsert finds the record an upsert should write to: the user's cart
// when one exists, otherwise the session's. A session cart found while a user
// identifier is also supplied gets that user attached; this is the only
// session-to-user migration outside of an explicit merge.
func (s *cartService) lookupForUpsert(ctx context.Context, id usecase.Identity) (*entity.Cart, error) {
	if id.UserID != nil {
		cart, err := s.cartRepo.FindByUserID(ctx, *id.UserID)
		if err == nil {
			return cart, nil
		}
		if !errors.Is(err, repository.ErrCartNotFound) {
			return nil, err
		}
	}

	if id.SessionID == nil {
		return nil, nil
	}

	cart, err := s.cartRepo.FindBySessionID(ctx, *id.SessionID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, nil
		}

		return nil, err
	}

	if id.UserID != nil {
		cart.UserID = id.UserID
	}

	return cart, nil
}

// DeleteCart removes all carts for the identity, preferring the user identifier.
func (s *cartService) DeleteCart(ctx context.Context, id usecase.Identity) error {
	if !id.HasAny() {
		return domainerrors.ErrMissingIdentity
	}

	var err error
	if id.UserID != nil {
		err = s.cartRepo.DeleteByUserID(ctx, *id.UserID)
	} else {
		err = s.cartRepo.DeleteBySessionID(ctx, *id.SessionID)
	}

	if err != nil {
		return domainerrors.NewStoreError(err, "failed to delete cart")
	}

	return nil
}

// MergeCarts reconciles the session cart into the user cart at login time.
// The user-cart write and the session-cart delete run in one transaction.
func (s *cartService) MergeCarts(ctx context.Context, sessionID string, userID uuid.UUID) (*entity.Cart, error) {
	sessionCart, err := s.findOrNil(ctx, func() (*entity.Cart, error) {
		return s.cartRepo.FindBySessionID(ctx, sessionID)
	})
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to load session cart for merge")
	}

	userCart, err := s.findOrNil(ctx, func() (*entity.Cart, error) {
		return s.cartRepo.FindByUserID(ctx, userID)
	})
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to load user cart for merge")
	}

	merged := mergeItems(s.sanitizeStoredItems(userCart), s.sanitizeStoredItems(sessionCart))

	result := userCart
	if result == nil {
		result = &entity.Cart{
			ID:     uuid.New(),
			UserID: &userID,
		}
	}
	result.Items = merged

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewCartRepository()

		if userCart != nil {
			if err := repo.Update(ctx, result); err != nil {
				return errors.Wrap(err, "update user cart")
			}
		} else {
			if err := repo.Create(ctx, result); err != nil {
				return errors.Wrap(err, "create user cart")
			}
		}

		if sessionCart != nil {
			if err := repo.DeleteBySessionID(ctx, sessionID); err != nil {
				return errors.Wrap(err, "delete session cart")
			}
		}

		return nil
	})
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to merge carts")
	}

	return result, nil
}

// findOrNil maps the repository's not-found sentinel to an absent cart.
func (s *cartService) findOrNil(_ context.Context, find func() (*entity.Cart, error)) (*entity.Cart, error) {
	cart, err := find()
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return cart, nil
}

// sanitizeStoredItems re-validates a stored item payload. A record corrupted by
// an earlier writer is coerced to an empty list so it cannot block the merge.
func (s *cartService) sanitizeStoredItems(cart *entity.Cart) []entity.CartItem {
	if cart == nil {
		return nil
	}

	if err := entity.ValidateItems(cart.Items); err != nil {
		s.logger.Warn("discarding corrupted stored cart payload",
			slog.String("cartID", cart.ID.String()),
			slog.String("issues", err.Error()),
		)

		return nil
	}

	return cart.Items
}

// mergeItems builds the merged list: user items keep priority, session items
// with ids not already present are appended until the cart cap is reached.
// Overflow beyond the cap is dropped silently.
func mergeItems(userItems, sessionItems []entity.CartItem) []entity.CartItem {
	merged := make([]entity.CartItem, 0, len(userItems))
	seen := make(map[string]struct{}, len(userItems))

	for _, item := range userItems {
		merged = append(merged, item)
		seen[item.ID] = struct{}{}
	}

	for _, item := range sessionItems {
		if len(merged) >= entity.MaxCartItems {
			break
		}
		if _, ok := seen[item.ID]; ok {
			continue
		}
		merged = append(merged, item)
		seen[item.ID] = struct{}{}
	}

	return merged
}
