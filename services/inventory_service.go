package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"marketplace-backend/apperrors"
	"marketplace-backend/repository"
)

// lowStockThreshold is the stock level below which the owning vendor is
// warned after a decrement.
const lowStockThreshold = 10

// LowStockNotifier is the slice of the notification service the inventory
// adjuster needs.
type LowStockNotifier interface {
	NotifyVendorLowStock(vendorEmail, productName string, stock int)
}

// InventoryService adjusts product stock. Decrements are guarded twice:
// products referenced by Pending orders cannot be drained, and the
// subtraction itself is conditional on sufficient stock so the quantity can
// never go negative.
type InventoryService struct {
	products repository.ProductRepository
	carts    repository.CartRepository
	orders   repository.OrderRepository
	users    repository.UserRepository
	notifier LowStockNotifier
	logger   *zap.Logger
}

func NewInventoryService(
	products repository.ProductRepository,
	carts repository.CartRepository,
	orders repository.OrderRepository,
	users repository.UserRepository,
	notifier LowStockNotifier,
	logger *zap.Logger,
) *InventoryService {
	return &InventoryService{
		products: products,
		carts:    carts,
		orders:   orders,
		users:    users,
		notifier: notifier,
		logger:   logger,
	}
}

// IncreaseStock adds qty to the product's stock. No upper bound.
func (s *InventoryService) IncreaseStock(ctx context.Context, productID primitive.ObjectID, qty int) error {
	if qty <= 0 {
		return apperrors.ErrInvalidQuantity
	}
	found, err := s.products.IncrementStock(ctx, productID, qty)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.Wrap(apperrors.ErrNotFound, nil)
	}
	return nil
}

// DecreaseStock subtracts qty from the product's stock. Rejected when the
// product has Pending orders or when the current stock does not cover qty;
// in both cases stock is left unchanged. A successful decrement that lands
// below the low-stock threshold triggers a vendor warning, fire-and-forget.
func (s *InventoryService) DecreaseStock(ctx context.Context, productID primitive.ObjectID, qty int) error {
	if qty <= 0 {
		return apperrors.ErrInvalidQuantity
	}

	pending, err := s.HasPendingOrders(ctx, productID)
	if err != nil {
		return err
	}
	if pending {
		return apperrors.Wrap(apperrors.ErrPendingOrders, nil)
	}

	found, decremented, err := s.products.DecrementStockIf(ctx, productID, qty)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.Wrap(apperrors.ErrNotFound, nil)
	}
	if !decremented {
		return apperrors.Wrap(apperrors.ErrInsufficientStock, nil)
	}

	s.notifyIfLowStock(ctx, productID)
	return nil
}

// GetStock returns the product's stock, or 0 for an unknown product.
// Callers cannot distinguish the two through this call alone.
func (s *InventoryService) GetStock(ctx context.Context, productID primitive.ObjectID) (int, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, nil
	}
	return product.StockQuantity, nil
}

// HasPendingOrders reports whether any Pending order references a cart
// containing the product.
func (s *InventoryService) HasPendingOrders(ctx context.Context, productID primitive.ObjectID) (bool, error) {
	cartIDs, err := s.carts.FindCartIDsContainingProduct(ctx, productID)
	if err != nil {
		return false, err
	}
	if len(cartIDs) == 0 {
		return false, nil
	}
	count, err := s.orders.CountPendingByCartIDs(ctx, cartIDs)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *InventoryService) notifyIfLowStock(ctx context.Context, productID primitive.ObjectID) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil || product == nil {
		return
	}
	if product.StockQuantity >= lowStockThreshold {
		return
	}
	vendor, err := s.users.FindByID(ctx, product.VendorID)
	if err != nil || vendor == nil {
		s.logger.Warn("low stock but vendor unresolved",
			zap.String("product_id", productID.Hex()),
			zap.Error(err))
		return
	}
	s.notifier.NotifyVendorLowStock(vendor.Email, product.Name, product.StockQuantity)
}
