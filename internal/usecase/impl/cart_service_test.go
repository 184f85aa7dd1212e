package impl

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"cartsync/internal/domain/entity"
	domainerrors "cartsync/internal/domain/errors"
	"cartsync/internal/domain/repository"
	mockRepo "cartsync/internal/mocks/repository"
	"cartsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service   usecase.CartUsecase
	cartRepo  *mockRepo.MockCartRepository
	txManager *mockRepo.MockTransactionManager
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewCartService(cartRepo, txManager, slog.New(slog.DiscardHandler))

	return cartServiceFixtures{
		service:   service,
		cartRepo:  cartRepo,
		txManager: txManager,
	}
}

// expectTransaction makes Execute run the unit of work against the shared cart
// repository mock, as the real GORM transaction manager would.
func (f cartServiceFixtures) expectTransaction(t *testing.T, ctx context.Context) {
	t.Helper()

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewCartRepository().Return(f.cartRepo)

			return fn(factory)
		})
}

const testSessionID = "session_1700000000123"

func sessionIdentity(sessionID string) usecase.Identity {
	return usecase.Identity{SessionID: &sessionID}
}

func userIdentity(userID uuid.UUID) usecase.Identity {
	return usecase.Identity{UserID: &userID}
}

func testItem(id string, quantity int) entity.CartItem {
	return entity.CartItem{
		ID:       id,
		Name:     "Widget " + id,
		Price:    9.99,
		Quantity: quantity,
	}
}

func itemIDs(items []entity.CartItem) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}

	return ids
}

func TestCartService_GetCart_PrefersUserID(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := testSessionID
	stored := &entity.Cart{ID: uuid.New(), UserID: &userID, Items: []entity.CartItem{testItem("a", 1)}}

	// Only the user lookup may run even though both identifiers are present.
	fx.cartRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(stored, nil)

	cart, err := fx.service.GetCart(ctx, usecase.Identity{SessionID: &sessionID, UserID: &userID})
	require.NoError(t, err)
	assert.Equal(t, stored, cart)
}

func TestCartService_GetCart_BySession(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	stored := &entity.Cart{ID: uuid.New(), Items: []entity.CartItem{testItem("a", 1)}}

	fx.cartRepo.EXPECT().
		FindBySessionID(ctx, testSessionID).
		Return(stored, nil)

	cart, err := fx.service.GetCart(ctx, sessionIdentity(testSessionID))
	require.NoError(t, err)
	assert.Equal(t, stored, cart)
}

func TestCartService_GetCart_NotFoundIsNotAnError(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()

	fx.cartRepo.EXPECT().
		FindBySessionID(ctx, testSessionID).
		Return(nil, repository.ErrCartNotFound)

	cart, err := fx.service.GetCart(ctx, sessionIdentity(testSessionID))
	require.NoError(t, err)
	assert.Nil(t, cart)
}

func TestCartService_GetCart_MissingIdentity(t *testing.T) {
	fx := createTestCartService(t)

	cart, err := fx.service.GetCart(context.Background(), usecase.Identity{})
	require.ErrorIs(t, err, domainerrors.ErrMissingIdentity)
	assert.Nil(t, cart)
}

func TestCartService_SaveCart_CreatesNewSessionCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	items := []entity.CartItem{testItem("a", 1)}

	fx.cartRepo.EXPECT().
		FindBySessionID(ctx, testSessionID).
		Return(nil, repository.ErrCartNotFound)

	fx.cartRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Cart")).
		Return(nil)

	cart, err := fx.service.SaveCart(ctx, sessionIdentity(testSessionID), items)
	require.NoError(t, err)
	require.NotNil(t, cart)
	require.NotNil(t, cart.SessionID)
	assert.Equal(t, testSessionID, *cart.SessionID)
	assert.Nil(t, cart.UserID)
	assert.Equal(t, items, cart.Items)
}

func TestCartService_SaveCart_UpdatesExistingCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	sessionID := testSessionID
	existing := &entity.Cart{
		ID:        uuid.New(),
		SessionID: &sessionID,
		Items:     []entity.CartItem{testItem("a", 1)},
	}
	newItems := []entity.CartItem{testItem("a", 3)}

	fx.cartRepo.EXPECT().
		FindBySessionID(ctx, sessionID).
		Return(existing, nil)

	fx.cartRepo.EXPECT().
		Update(ctx, existing).
		Return(nil)

	cart, err := fx.service.SaveCart(ctx, sessionIdentity(sessionID), newItems)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, cart.ID)
	assert.Equal(t, newItems, cart.Items)
}

func TestCartService_SaveCart_MigratesSessionCartToUser(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	sessionID := testSessionID
	userID := uuid.New()
	existing := &entity.Cart{
		ID:        uuid.New(),
		SessionID: &sessionID,
		Items:     []entity.CartItem{testItem("a", 1)},
	}

	fx.cartRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(nil, repository.ErrCartNotFound)

	fx.cartRepo.EXPECT().
		FindBySessionID(ctx, sessionID).
		Return(existing, nil)

	fx.cartRepo.EXPECT().
		Update(ctx, existing).
		Return(nil)

	cart, err := fx.service.SaveCart(ctx, usecase.Identity{SessionID: &sessionID, UserID: &userID}, existing.Items)
	require.NoError(t, err)
	require.NotNil(t, cart.UserID)
	assert.Equal(t, userID, *cart.UserID)
	require.NotNil(t, cart.SessionID)
	assert.Equal(t, sessionID, *cart.SessionID)
}

func TestCartService_SaveCart_DefaultsNilItemsToEmptyList(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()

	fx.cartRepo.EXPECT().
		FindBySessionID(ctx, testSessionID).
		Return(nil, repository.ErrCartNotFound)

	fx.cartRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Cart")).
		Return(nil)

	cart, err := fx.service.SaveCart(ctx, sessionIdentity(testSessionID), nil)
	require.NoError(t, err)
	require.NotNil(t, cart.Items)
	assert.Empty(t, cart.Items)
}

func TestCartService_SaveCart_RejectsOversizedBatch(t *testing.T) {
	fx := createTestCartService(t)

	items := make([]entity.CartItem, 0, entity.MaxCartItems+1)
	for i := 0; i <= entity.MaxCartItems; i++ {
		items = append(items, testItem(fmt.Sprintf("item-%d", i), 1))
	}

	// Validation fails before any repository access.
	cart, err := fx.service.SaveCart(context.Background(), sessionIdentity(testSessionID), items)
	require.ErrorIs(t, err, domainerrors.ErrInvalidCartPayload)
	assert.Nil(t, cart)
}

func TestCartService_SaveCart_RejectsMalformedItem(t *testing.T) {
	fx := createTestCartService(t)

	items := []entity.CartItem{{ID: "", Name: "Widget", Price: 9.99, Quantity: 1}}

	cart, err := fx.service.SaveCart(context.Background(), sessionIdentity(testSessionID), items)
	require.ErrorIs(t, err, domainerrors.ErrInvalidCartPayload)
	assert.Nil(t, cart)
}

func TestCartService_DeleteCart_PrefersUserID(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := testSessionID

	fx.cartRepo.EXPECT().
		DeleteByUserID(ctx, userID).
		Return(nil)

	err := fx.service.DeleteCart(ctx, usecase.Identity{SessionID: &sessionID, UserID: &userID})
	require.NoError(t, err)
}

func TestCartService_DeleteCart_BySession(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()

	fx.cartRepo.EXPECT().
		DeleteBySessionID(ctx, testSessionID).
		Return(nil)

	err := fx.service.DeleteCart(ctx, sessionIdentity(testSessionID))
	require.NoError(t, err)
}

func TestCartService_DeleteCart_MissingIdentity(t *testing.T) {
	fx := createTestCartService(t)

	err := fx.service.DeleteCart(context.Background(), usecase.Identity{})
	require.ErrorIs(t, err, domainerrors.ErrMissingIdentity)
}

func TestCartService_MergeCarts_UserItemsKeepPriority(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := testSessionID

	sessionCart := &entity.Cart{
		ID:        uuid.New(),
		SessionID: &sessionID,
		Items:     []entity.CartItem{testItem("a", 1), testItem("b", 1)},
	}
	userCart := &entity.Cart{
		ID:     uuid.New(),
		UserID: &userID,
		Items:  []entity.CartItem{testItem("b", 2), testItem("c", 1)},
	}

	fx.cartRepo.EXPECT().
		FindBySessionID(ctx, sessionID).
		Return(sessionCart, nil)

	fx.cartRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(userCart, nil)

	fx.expectTransaction(t, ctx)

	fx.cartRepo.EXPECT().
		Update(ctx, userCart).
		Return(nil)

	fx.cartRepo.EXPECT().
		DeleteBySessionID(ctx, sessionID).
		Return(nil)

	merged, err := fx.service.MergeCarts(ctx, sessionID, userID)
	require.NoError(t, err)
	assert.Equal(t, userCart.ID, merged.ID)
	assert.Equal(t, []string{"b", "c", "a"}, itemIDs(merged.Items))
	// The user's quantity for the duplicate id wins.
	assert.Equal(t, 2, merged.Items[0].Quantity)
}

func TestCartService_MergeCarts_SessionOnlyCreatesUserCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := testSessionID

	sessionCart := &entity.Cart{
		ID:        uuid.New(),
		SessionID: &sessionID,
		Items:     []entity.CartItem{testItem("a", 1)},
	}

	fx.cartRepo.EXPECT().
		FindBySessionID(ctx, sessionID).
		Return(sessionCart, nil)

	fx.cartRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(nil, repository.ErrCartNotFound)

	fx.expectTransaction(t, ctx)

	fx.cartRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Cart")).
		Return(nil)

	fx.cartRepo.EXPECT().
		DeleteBySessionID(ctx, sessionID).
		Return(nil)

	merged, err := fx.service.MergeCarts(ctx, sessionID, userID)
	require.NoError(t, err)
	require.NotNil(t, merged.UserID)
	assert.Equal(t, userID, *merged.UserID)
	assert.Nil(t, merged.SessionID)
	assert.Equal(t, []string{"a"}, itemIDs(merged.Items))
}

func TestCartService_MergeCarts_NeitherCartExists(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().
		FindBySessionID(ctx, testSessionID).
		Return(nil, repository.ErrCartNotFound)

	fx.cartRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(nil, repository.ErrCartNotFound)

	fx.expectTransaction(t, ctx)

	fx.cartRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Cart")).
		Return(nil)

	merged, err := fx.service.MergeCarts(ctx, testSessionID, userID)
	require.NoError(t, err)
	require.NotNil(t, merged.UserID)
	assert.Empty(t, merged.Items)
}

func TestCartService_MergeCarts_CorruptedSessionPayloadIsDropped(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := testSessionID

	// Quantity 0 fails batch validation, so the stored payload is treated as empty.
	sessionCart := &entity.Cart{
		ID:        uuid.New(),
		SessionID: &sessionID,
		Items:     []entity.CartItem{{ID: "a", Name: "Widget a", Price: 1, Quantity: 0}},
	}
	userCart := &entity.Cart{
		ID:     uuid.New(),
		UserID: &userID,
		Items:  []entity.CartItem{testItem("c", 1)},
	}

	fx.cartRepo.EXPECT().
		FindBySessionID(ctx, sessionID).
		Return(sessionCart, nil)

	fx.cartRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(userCart, nil)

	fx.expectTransaction(t, ctx)

	fx.cartRepo.EXPECT().
		Update(ctx, userCart).
		Return(nil)

	fx.cartRepo.EXPECT().
		DeleteBySessionID(ctx, sessionID).
		Return(nil)

	merged, err := fx.service.MergeCarts(ctx, sessionID, userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, itemIDs(merged.Items))
}

func TestCartService_MergeCarts_CapsMergedListSilently(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := testSessionID

	userItems := make([]entity.CartItem, 0, entity.MaxCartItems-1)
	for i := 0; i < entity.MaxCartItems-1; i++ {
		userItems = append(userItems, testItem(fmt.Sprintf("u-%d", i), 1))
	}
	sessionItems := []entity.CartItem{testItem("s-0", 1), testItem("s-1", 1), testItem("s-2", 1)}

	sessionCart := &entity.Cart{ID: uuid.New(), SessionID: &sessionID, Items: sessionItems}
	userCart := &entity.Cart{ID: uuid.New(), UserID: &userID, Items: userItems}

	fx.cartRepo.EXPECT().
		FindBySessionID(ctx, sessionID).
		Return(sessionCart, nil)

	fx.cartRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(userCart, nil)

	fx.expectTransaction(t, ctx)

	fx.cartRepo.EXPECT().
		Update(ctx, userCart).
		Return(nil)

	fx.cartRepo.EXPECT().
		DeleteBySessionID(ctx, sessionID).
		Return(nil)

	merged, err := fx.service.MergeCarts(ctx, sessionID, userID)
	require.NoError(t, err)
	assert.Len(t, merged.Items, entity.MaxCartItems)
	// Only the first session item fits; the rest are dropped without error.
	assert.Equal(t, "s-0", merged.Items[entity.MaxCartItems-1].ID)
}
