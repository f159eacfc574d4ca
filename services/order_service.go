package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"marketplace-backend/apperrors"
	"marketplace-backend/models"
	"marketplace-backend/repository"
)

// OrderService owns the order lifecycle outside of fulfillment:
// Pending at creation, Cancelled only from Pending. Unlike cart calls,
// updates and deletes on unknown orders fail loudly.
type OrderService struct {
	orders repository.OrderRepository
	logger *zap.Logger
}

func NewOrderService(orders repository.OrderRepository, logger *zap.Logger) *OrderService {
	return &OrderService{orders: orders, logger: logger}
}

func (s *OrderService) validate(order *models.Order) error {
	if order.CustomerID.IsZero() || order.CartID.IsZero() {
		return apperrors.Wrap(apperrors.ErrValidation, nil)
	}
	return nil
}

// CreateOrder always mints a fresh id and inserts; any id on the payload is
// discarded.
func (s *OrderService) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := s.validate(order); err != nil {
		return nil, err
	}
	order.ID = primitive.NewObjectID()
	s.applyDefaults(order)
	if err := s.orders.Insert(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// UpsertOrder preserves the legacy create route's dual behavior: a payload
// without an id is inserted with a fresh one, a payload with an id replaces
// the existing order (NotFound when it does not exist).
func (s *OrderService) UpsertOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	if order.ID.IsZero() {
		return s.CreateOrder(ctx, order)
	}
	if err := s.validate(order); err != nil {
		return nil, err
	}
	return s.UpdateOrder(ctx, order.ID, order)
}

// UpdateOrder replaces the whole order document.
func (s *OrderService) UpdateOrder(ctx context.Context, id primitive.ObjectID, order *models.Order) (*models.Order, error) {
	found, err := s.orders.Replace(ctx, id, order)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.Wrap(apperrors.ErrNotFound, nil)
	}
	return order, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, id primitive.ObjectID) error {
	found, err := s.orders.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.Wrap(apperrors.ErrNotFound, nil)
	}
	return nil
}

// CancelOrder moves a Pending order to Cancelled. Dispatched and Cancelled
// orders are terminal; cancelling them is a conflict.
func (s *OrderService) CancelOrder(ctx context.Context, id primitive.ObjectID) error {
	fired, err := s.orders.UpdateStatusIf(ctx, id, models.OrderStatusPending, models.OrderStatusCancelled)
	if err != nil {
		return err
	}
	if fired {
		s.logger.Info("order cancelled", zap.String("order_id", id.Hex()))
		return nil
	}
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperrors.Wrap(apperrors.ErrNotFound, nil)
	}
	return apperrors.Wrap(apperrors.ErrInvalidOrderState, nil)
}

func (s *OrderService) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	return s.orders.FindAll(ctx)
}

func (s *OrderService) GetOrderByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperrors.Wrap(apperrors.ErrNotFound, nil)
	}
	return order, nil
}

func (s *OrderService) GetOrdersByCustomer(ctx context.Context, customerID primitive.ObjectID) ([]models.Order, error) {
	return s.orders.FindByCustomerID(ctx, customerID)
}

func (s *OrderService) applyDefaults(order *models.Order) {
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	if order.PaymentStatus == "" {
		order.PaymentStatus = "Pending"
	}
	if order.OrderDate.IsZero() {
		order.OrderDate = time.Now().UTC()
	}
}
