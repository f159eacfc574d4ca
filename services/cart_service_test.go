package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"marketplace-backend/apperrors"
	"marketplace-backend/models"
	"marketplace-backend/services"
)

func newCartService(repo *memCartRepo) *services.CartService {
	logger, _ := zap.NewDevelopment()
	return services.NewCartService(repo, logger)
}

func TestAddItemCreatesCartOnFirstAdd(t *testing.T) {
	repo := newMemCartRepo()
	svc := newCartService(repo)
	ctx := context.Background()
	userID := primitive.NewObjectID()

	cart, err := svc.AddItem(ctx, userID, models.CartItem{
		ProductID: primitive.NewObjectID(), ProductName: "Lamp", Quantity: 2, Price: 20,
	})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.True(t, cart.Status)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, models.ItemStatusPending, cart.Items[0].Status)
	assert.False(t, cart.Items[0].ID.IsZero())
}

func TestAddItemMergesExistingLine(t *testing.T) {
	repo := newMemCartRepo()
	svc := newCartService(repo)
	ctx := context.Background()
	userID := primitive.NewObjectID()
	productID := primitive.NewObjectID()

	_, err := svc.AddItem(ctx, userID, models.CartItem{ProductID: productID, Quantity: 2})
	require.NoError(t, err)
	cart, err := svc.AddItem(ctx, userID, models.CartItem{ProductID: productID, Quantity: 3})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	svc := newCartService(newMemCartRepo())

	_, err := svc.AddItem(context.Background(), primitive.NewObjectID(), models.CartItem{
		ProductID: primitive.NewObjectID(), Quantity: 0,
	})
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidQuantity))

	_, err = svc.AddItem(context.Background(), primitive.NewObjectID(), models.CartItem{
		ProductID: primitive.NewObjectID(), Quantity: -1,
	})
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidQuantity))
}

func TestAddItemRejectsMissingProductID(t *testing.T) {
	svc := newCartService(newMemCartRepo())

	_, err := svc.AddItem(context.Background(), primitive.NewObjectID(), models.CartItem{Quantity: 1})
	assert.True(t, apperrors.Is(err, apperrors.ErrValidation))
}

func TestCreateCartIsIdempotentPerUser(t *testing.T) {
	svc := newCartService(newMemCartRepo())
	ctx := context.Background()
	userID := primitive.NewObjectID()

	first, err := svc.CreateCart(ctx, userID)
	require.NoError(t, err)
	second, err := svc.CreateCart(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestUpdateItemQuantity(t *testing.T) {
	repo := newMemCartRepo()
	svc := newCartService(repo)
	ctx := context.Background()
	userID := primitive.NewObjectID()

	cart, err := svc.AddItem(ctx, userID, models.CartItem{ProductID: primitive.NewObjectID(), Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateItemQuantity(ctx, userID, cart.Items[0].ID, 7))

	cart, err = svc.GetActiveCart(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 7, cart.Items[0].Quantity)
}

func TestConcurrentFirstAddsShareOneCart(t *testing.T) {
	repo := newMemCartRepo()
	svc := newCartService(repo)
	ctx := context.Background()
	userID := primitive.NewObjectID()
	productID := primitive.NewObjectID()

	const adders = 16
	errs := make(chan error, adders)
	var wg sync.WaitGroup
	for i := 0; i < adders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.AddItem(ctx, userID, models.CartItem{ProductID: productID, Quantity: 1})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	repo.mu.Lock()
	active := 0
	for _, c := range repo.carts {
		if c.UserID == userID && c.Status {
			active++
		}
	}
	repo.mu.Unlock()
	assert.Equal(t, 1, active)

	cart, err := svc.GetActiveCart(ctx, userID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, adders, cart.Items[0].Quantity)
}

func TestUpdateItemQuantityMissingCartIsNoOp(t *testing.T) {
	svc := newCartService(newMemCartRepo())

	err := svc.UpdateItemQuantity(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), 3)
	assert.NoError(t, err)
}

func TestRemoveItem(t *testing.T) {
	repo := newMemCartRepo()
	svc := newCartService(repo)
	ctx := context.Background()
	userID := primitive.NewObjectID()

	cart, err := svc.AddItem(ctx, userID, models.CartItem{ProductID: primitive.NewObjectID(), Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItem(ctx, userID, cart.Items[0].ID))

	cart, err = svc.GetActiveCart(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestUpdateItemQuantityByCartIDReachesClosedCart(t *testing.T) {
	repo := newMemCartRepo()
	svc := newCartService(repo)
	ctx := context.Background()
	userID := primitive.NewObjectID()

	cart, err := svc.AddItem(ctx, userID, models.CartItem{ProductID: primitive.NewObjectID(), Quantity: 1})
	require.NoError(t, err)
	require.NoError(t, svc.UpdateCartStatus(ctx, cart.ID, false))

	require.NoError(t, svc.UpdateItemQuantityByCartID(ctx, cart.ID, cart.Items[0].ID, 4))

	byID, err := svc.GetCartByID(ctx, cart.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, byID.Items[0].Quantity)
}

func TestUpdateItemQuantityByCartIDRejectsNonPositive(t *testing.T) {
	svc := newCartService(newMemCartRepo())

	err := svc.UpdateItemQuantityByCartID(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), 0)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidQuantity))
}

func TestRemoveItemByCartID(t *testing.T) {
	repo := newMemCartRepo()
	svc := newCartService(repo)
	ctx := context.Background()
	userID := primitive.NewObjectID()

	cart, err := svc.AddItem(ctx, userID, models.CartItem{ProductID: primitive.NewObjectID(), Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItemByCartID(ctx, cart.ID, cart.Items[0].ID))

	byID, err := svc.GetCartByID(ctx, cart.ID)
	require.NoError(t, err)
	assert.Empty(t, byID.Items)
}

func TestClearCartEmptiesActiveCart(t *testing.T) {
	repo := newMemCartRepo()
	svc := newCartService(repo)
	ctx := context.Background()
	userID := primitive.NewObjectID()

	_, err := svc.AddItem(ctx, userID, models.CartItem{ProductID: primitive.NewObjectID(), Quantity: 2})
	require.NoError(t, err)
	cart, err := svc.AddItem(ctx, userID, models.CartItem{ProductID: primitive.NewObjectID(), Quantity: 1})
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)

	require.NoError(t, svc.ClearCart(ctx, userID))

	// The cart survives, empty and still active.
	cleared, err := svc.GetActiveCart(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, cleared)
	assert.Equal(t, cart.ID, cleared.ID)
	assert.Empty(t, cleared.Items)
	assert.True(t, cleared.Status)
}

func TestClearCartMissingCartIsNoOp(t *testing.T) {
	svc := newCartService(newMemCartRepo())

	assert.NoError(t, svc.ClearCart(context.Background(), primitive.NewObjectID()))
}

func TestUpdateCartStatusUnknownCart(t *testing.T) {
	svc := newCartService(newMemCartRepo())

	err := svc.UpdateCartStatus(context.Background(), primitive.NewObjectID(), false)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestUpdateCartStatusSupersedesActiveCart(t *testing.T) {
	repo := newMemCartRepo()
	svc := newCartService(repo)
	ctx := context.Background()
	userID := primitive.NewObjectID()

	cart, err := svc.AddItem(ctx, userID, models.CartItem{ProductID: primitive.NewObjectID(), Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateCartStatus(ctx, cart.ID, false))

	active, err := svc.GetActiveCart(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, active)

	// The closed cart stays reachable by id for fulfillment.
	byID, err := svc.GetCartByID(ctx, cart.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.False(t, byID.Status)
}

func TestDeleteCartRemovesActiveCart(t *testing.T) {
	repo := newMemCartRepo()
	svc := newCartService(repo)
	ctx := context.Background()
	userID := primitive.NewObjectID()

	_, err := svc.AddItem(ctx, userID, models.CartItem{ProductID: primitive.NewObjectID(), Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCart(ctx, userID))

	active, err := svc.GetActiveCart(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, active)
}
