package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"marketplace-backend/apperrors"
	"marketplace-backend/models"
	"marketplace-backend/repository"
)

// Dispatch policies decide when vendor acceptance flips an order to
// Dispatched.
const (
	// DispatchAllItems dispatches only when every line in the cart is
	// accepted, whichever vendor it belongs to. Default: the only policy
	// under which a multi-vendor order can dispatch correctly.
	DispatchAllItems = "all-items"
	// DispatchVendorItems dispatches as soon as the calling vendor's own
	// lines are all accepted, reproducing the legacy behavior.
	DispatchVendorItems = "vendor-items"
)

// FulfillmentService runs the vendor acceptance workflow: an order points at
// a cart, the cart's lines point at products, and a vendor accepts the lines
// whose products it owns. Acceptance and the dispatch transition are
// field-scoped conditional updates, so concurrent vendors accepting their
// own lines on the same cart cannot lose each other's writes and the order
// status can only move Pending -> Dispatched once.
type FulfillmentService struct {
	orders   repository.OrderRepository
	carts    repository.CartRepository
	products repository.ProductRepository
	users    repository.UserRepository
	policy   string
	logger   *zap.Logger
}

func NewFulfillmentService(
	orders repository.OrderRepository,
	carts repository.CartRepository,
	products repository.ProductRepository,
	users repository.UserRepository,
	policy string,
	logger *zap.Logger,
) *FulfillmentService {
	if policy != DispatchVendorItems {
		policy = DispatchAllItems
	}
	return &FulfillmentService{
		orders:   orders,
		carts:    carts,
		products: products,
		users:    users,
		policy:   policy,
		logger:   logger,
	}
}

// resolveVendor maps a vendor email to its user id. Unknown or non-vendor
// accounts are NotFound.
func (s *FulfillmentService) resolveVendor(ctx context.Context, vendorEmail string) (primitive.ObjectID, error) {
	user, err := s.users.FindByEmail(ctx, vendorEmail)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if user == nil || user.Role != models.RoleVendor {
		return primitive.NilObjectID, apperrors.Wrap(apperrors.ErrNotFound, nil)
	}
	return user.ID, nil
}

// GetVendorLineItems lists the order's cart lines whose product belongs to
// the vendor, each joined with its product and line status. A missing order
// is a hard failure; a missing or empty cart yields an empty result.
func (s *FulfillmentService) GetVendorLineItems(ctx context.Context, vendorEmail string, orderID primitive.ObjectID) ([]models.VendorLineItem, error) {
	vendorID, err := s.resolveVendor(ctx, vendorEmail)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperrors.Wrap(apperrors.ErrNotFound, nil)
	}

	cart, err := s.carts.GetCartByID(ctx, order.CartID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return []models.VendorLineItem{}, nil
	}

	lines := []models.VendorLineItem{}
	for _, item := range cart.Items {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			s.logger.Warn("cart line references missing product",
				zap.String("cart_id", cart.ID.Hex()),
				zap.String("product_id", item.ProductID.Hex()))
			continue
		}
		if product.VendorID != vendorID {
			continue
		}
		lines = append(lines, models.VendorLineItem{
			Product:  *product,
			ItemID:   item.ID,
			Quantity: item.Quantity,
			Status:   item.Status,
		})
	}
	return lines, nil
}

// AcceptVendorLineItems marks every cart line owned by the vendor as
// accepted, then evaluates the dispatch policy against the fresh cart state.
// The returned AllAccepted always reports on the vendor's own lines; an
// order the vendor has no lines in is never accepted. The call is
// idempotent: repeating it with no other writer yields the same state and
// the same result.
func (s *FulfillmentService) AcceptVendorLineItems(ctx context.Context, vendorEmail string, orderID primitive.ObjectID) (*models.AcceptResult, error) {
	vendorID, err := s.resolveVendor(ctx, vendorEmail)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperrors.Wrap(apperrors.ErrNotFound, nil)
	}

	vendorProductIDs, err := s.products.FindIDsByVendorID(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	if _, err := s.carts.AcceptItemsForProducts(ctx, order.CartID, vendorProductIDs); err != nil {
		return nil, err
	}

	cart, err := s.carts.GetCartByID(ctx, order.CartID)
	if err != nil {
		return nil, err
	}
	if cart == nil || len(cart.Items) == 0 {
		return &models.AcceptResult{AllAccepted: false, OrderStatus: order.Status}, nil
	}

	vendorOwned := make(map[primitive.ObjectID]bool, len(vendorProductIDs))
	for _, id := range vendorProductIDs {
		vendorOwned[id] = true
	}

	vendorLines := 0
	vendorAccepted := true
	allAccepted := true
	for _, item := range cart.Items {
		accepted := item.Status == models.ItemStatusAccepted
		if !accepted {
			allAccepted = false
		}
		if vendorOwned[item.ProductID] {
			vendorLines++
			if !accepted {
				vendorAccepted = false
			}
		}
	}
	if vendorLines == 0 {
		return &models.AcceptResult{AllAccepted: false, OrderStatus: order.Status}, nil
	}

	dispatchReady := allAccepted
	if s.policy == DispatchVendorItems {
		dispatchReady = vendorAccepted
	}

	status := order.Status
	if dispatchReady {
		fired, err := s.orders.UpdateStatusIf(ctx, order.ID, models.OrderStatusPending, models.OrderStatusDispatched)
		if err != nil {
			return nil, err
		}
		if fired {
			status = models.OrderStatusDispatched
			s.logger.Info("order dispatched",
				zap.String("order_id", order.ID.Hex()),
				zap.String("vendor", vendorEmail))
		} else {
			// Someone else already moved the order; report what it is now.
			current, err := s.orders.FindByID(ctx, order.ID)
			if err != nil {
				return nil, err
			}
			if current != nil {
				status = current.Status
			}
		}
	}

	return &models.AcceptResult{AllAccepted: vendorAccepted, OrderStatus: status}, nil
}
