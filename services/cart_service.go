package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"marketplace-backend/apperrors"
	"marketplace-backend/models"
	"marketplace-backend/repository"
)

// CartService manages per-user carts. Lookups by user id address the single
// active cart; lookups by cart id address a specific cart regardless of
// status (used once checkout hands the cart id to vendor-facing calls).
//
// Mutations on a missing cart or item are silent no-ops, mirroring the
// store's historical behavior; callers that need to know must check first.
type CartService struct {
	carts  repository.CartRepository
	logger *zap.Logger
}

func NewCartService(carts repository.CartRepository, logger *zap.Logger) *CartService {
	return &CartService{carts: carts, logger: logger}
}

// GetActiveCart returns the user's active cart, or nil when none exists.
func (s *CartService) GetActiveCart(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	return s.carts.GetActiveCartByUserID(ctx, userID)
}

// GetCartByID returns any cart by its own id, or nil.
func (s *CartService) GetCartByID(ctx context.Context, cartID primitive.ObjectID) (*models.Cart, error) {
	return s.carts.GetCartByID(ctx, cartID)
}

// CreateCart explicitly creates (or returns) the user's active cart. It goes
// through the same conditional upsert as the implicit first-add path, so two
// racing creations still yield a single active cart.
func (s *CartService) CreateCart(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	return s.carts.EnsureActiveCart(ctx, userID)
}

// AddItem adds the item to the user's active cart, creating the cart when
// absent. An existing line for the same product has its quantity merged;
// otherwise the item gets a fresh id and a pending fulfillment status.
func (s *CartService) AddItem(ctx context.Context, userID primitive.ObjectID, item models.CartItem) (*models.Cart, error) {
	if item.Quantity <= 0 {
		return nil, apperrors.ErrInvalidQuantity
	}
	if item.ProductID.IsZero() {
		return nil, apperrors.Wrap(apperrors.ErrValidation, nil)
	}

	cart, err := s.carts.EnsureActiveCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	merged, err := s.carts.IncrementItemQuantity(ctx, cart.ID, item.ProductID, item.Quantity)
	if err != nil {
		return nil, err
	}
	if !merged {
		item.ID = primitive.NewObjectID()
		item.Status = models.ItemStatusPending
		pushed, err := s.carts.PushItem(ctx, cart.ID, item)
		if err != nil {
			return nil, err
		}
		if !pushed {
			// A concurrent add created the line between our two updates;
			// fold the quantity into it.
			if _, err := s.carts.IncrementItemQuantity(ctx, cart.ID, item.ProductID, item.Quantity); err != nil {
				return nil, err
			}
		}
	}

	cart, err = s.carts.GetCartByID(ctx, cart.ID)
	if err != nil {
		return nil, err
	}
	if cart == nil || len(cart.Items) == 0 {
		// Should be unreachable: the add above either merged or pushed.
		s.logger.Error("cart empty after add",
			zap.String("user_id", userID.Hex()))
		return nil, apperrors.ErrEmptyCart
	}
	return cart, nil
}

// UpdateItemQuantity sets the quantity of a line in the user's active cart.
func (s *CartService) UpdateItemQuantity(ctx context.Context, userID, itemID primitive.ObjectID, quantity int) error {
	if quantity <= 0 {
		return apperrors.ErrInvalidQuantity
	}
	cart, err := s.carts.GetActiveCartByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if cart == nil {
		return nil
	}
	_, err = s.carts.SetItemQuantity(ctx, cart.ID, itemID, quantity)
	return err
}

// UpdateItemQuantityByCartID sets the quantity of a line in a specific cart.
func (s *CartService) UpdateItemQuantityByCartID(ctx context.Context, cartID, itemID primitive.ObjectID, quantity int) error {
	if quantity <= 0 {
		return apperrors.ErrInvalidQuantity
	}
	_, err := s.carts.SetItemQuantity(ctx, cartID, itemID, quantity)
	return err
}

// RemoveItem removes a line from the user's active cart.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID primitive.ObjectID) error {
	cart, err := s.carts.GetActiveCartByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if cart == nil {
		return nil
	}
	_, err = s.carts.PullItem(ctx, cart.ID, itemID)
	return err
}

// RemoveItemByCartID removes a line from a specific cart.
func (s *CartService) RemoveItemByCartID(ctx context.Context, cartID, itemID primitive.ObjectID) error {
	_, err := s.carts.PullItem(ctx, cartID, itemID)
	return err
}

// ClearCart empties the user's active cart without deleting it.
func (s *CartService) ClearCart(ctx context.Context, userID primitive.ObjectID) error {
	cart, err := s.carts.GetActiveCartByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if cart == nil {
		return nil
	}
	_, err = s.carts.ClearItems(ctx, cart.ID)
	return err
}

// UpdateCartStatus flips a cart's active flag; checkout uses this to
// supersede the shopping cart.
func (s *CartService) UpdateCartStatus(ctx context.Context, cartID primitive.ObjectID, status bool) error {
	found, err := s.carts.SetCartStatus(ctx, cartID, status)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.Wrap(apperrors.ErrNotFound, nil)
	}
	return nil
}

// DeleteCart removes the user's active cart entirely.
func (s *CartService) DeleteCart(ctx context.Context, userID primitive.ObjectID) error {
	return s.carts.DeleteByUserID(ctx, userID)
}
