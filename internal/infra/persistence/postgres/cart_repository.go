package postgres

import (
	"context"
	"encoding/json"

	"cartsync/internal/domain/entity"
	"cartsync/internal/domain/repository"
	"cartsync/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// FindBySessionID retrieves at most one cart owned by an anonymous session.
func (repo *cartRepository) FindBySessionID(ctx context.Context, sessionID string) (*entity.Cart, error) {
	var cartM model.CartModel

	if err := repo.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by session ID")
	}

	return toCartDomain(&cartM), nil
}

// FindByUserID retrieves at most one cart owned by an authenticated user.
func (repo *cartRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by user ID")
	}

	return toCartDomain(&cartM), nil
}

// Create persists a new cart.
func (repo *cartRepository) Create(ctx context.Context, cart *entity.Cart) error {
	cartM, err := fromCartDomain(cart)
	if err != nil {
		return errors.Wrap(err, "failed to encode cart items")
	}

	if err := repo.db.WithContext(ctx).Create(cartM).Error; err != nil {
		return errors.Wrap(err, "failed to create cart")
	}

	// Update the entity with store-generated values
	cart.ID = cartM.ID
	cart.CreatedAt = cartM.CreatedAt
	cart.UpdatedAt = cartM.UpdatedAt

	return nil
}

// Update replaces the items and ownership columns of an existing cart.
func (repo *cartRepository) Update(ctx context.Context, cart *entity.Cart) error {
	cartM, err := fromCartDomain(cart)
	if err != nil {
		return errors.Wrap(err, "failed to encode cart items")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.CartModel{}).
		Where("id = ?", cart.ID).
		Updates(map[string]any{
			"session_id": cartM.SessionID,
			"user_id":    cartM.UserID,
			"items":      cartM.Items,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update cart")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartNotFound
	}

	return nil
}

// DeleteBySessionID removes all carts owned by the session.
func (repo *cartRepository) DeleteBySessionID(ctx context.Context, sessionID string) error {
	if err := repo.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&model.CartModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete cart by session ID")
	}

	return nil
}

// DeleteByUserID removes all carts owned by the user.
func (repo *cartRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete cart by user ID")
	}

	return nil
}

// --- Mapper Functions ---

// toCartDomain converts a GORM CartModel to a domain Cart entity. A stored
// items document that no longer decodes degrades to an empty list instead of
// failing the read; the application layer re-validates and logs what it keeps.
func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	var items []entity.CartItem
	if len(data.Items) > 0 {
		if err := json.Unmarshal(data.Items, &items); err != nil {
			items = nil
		}
	}
	if items == nil {
		items = []entity.CartItem{}
	}

	return &entity.Cart{
		ID:        data.ID,
		SessionID: data.SessionID,
		UserID:    data.UserID,
		Items:     items,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromCartDomain converts a domain Cart entity to a GORM CartModel.
func fromCartDomain(data *entity.Cart) (*model.CartModel, error) {
	if data == nil {
		return nil, nil
	}

	items := data.Items
	if items == nil {
		items = []entity.CartItem{}
	}

	encoded, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}

	return &model.CartModel{
		ID:        data.ID,
		SessionID: data.SessionID,
		UserID:    data.UserID,
		Items:     encoded,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}, nil
}
