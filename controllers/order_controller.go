package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marketplace-backend/apperrors"
	"marketplace-backend/models"
	"marketplace-backend/services"
)

type OrderController struct {
	orders      *services.OrderService
	fulfillment *services.FulfillmentService
	logger      *zap.Logger
}

func NewOrderController(orders *services.OrderService, fulfillment *services.FulfillmentService, logger *zap.Logger) *OrderController {
	return &OrderController{orders: orders, fulfillment: fulfillment, logger: logger}
}

func (oc *OrderController) GetOrders(c *gin.Context) {
	orders, err := oc.orders.GetAllOrders(c.Request.Context())
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (oc *OrderController) GetOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	order, err := oc.orders.GetOrderByID(c.Request.Context(), id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (oc *OrderController) GetOrdersByCustomer(c *gin.Context) {
	customerID, ok := parseID(c, "customerId")
	if !ok {
		return
	}

	orders, err := oc.orders.GetOrdersByCustomer(c.Request.Context(), customerID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// CreateOrder places a new order from a checked-out cart.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrValidation, err))
		return
	}

	created, err := oc.orders.CreateOrder(c.Request.Context(), &order)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpsertOrder creates the order when the payload carries no id, otherwise
// replaces the existing one.
func (oc *OrderController) UpsertOrder(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrValidation, err))
		return
	}

	saved, err := oc.orders.UpsertOrder(c.Request.Context(), &order)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrValidation, err))
		return
	}

	updated, err := oc.orders.UpdateOrder(c.Request.Context(), id, &order)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := oc.orders.DeleteOrder(c.Request.Context(), id); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}

// CancelOrder cancels a pending order; dispatched orders cannot be
// cancelled.
func (oc *OrderController) CancelOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := oc.orders.CancelOrder(c.Request.Context(), id); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled"})
}

// GetVendorLineItems lists the order lines belonging to the vendor's
// products.
func (oc *OrderController) GetVendorLineItems(c *gin.Context) {
	orderID, ok := parseID(c, "orderId")
	if !ok {
		return
	}
	vendorEmail := c.Param("vendorEmail")

	items, err := oc.fulfillment.GetVendorLineItems(c.Request.Context(), vendorEmail, orderID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// AcceptVendorLineItems marks the vendor's pending lines accepted and
// dispatches the order once the configured acceptance policy is met.
func (oc *OrderController) AcceptVendorLineItems(c *gin.Context) {
	orderID, ok := parseID(c, "orderId")
	if !ok {
		return
	}
	vendorEmail := c.Param("vendorEmail")

	result, err := oc.fulfillment.AcceptVendorLineItems(c.Request.Context(), vendorEmail, orderID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
