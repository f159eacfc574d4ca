package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses. Dispatched and Cancelled are terminal.
const (
	OrderStatusPending    = "Pending"
	OrderStatusDispatched = "Dispatched"
	OrderStatusCancelled  = "Cancelled"
)

// Order references its cart by id; the cart's items are the source of truth
// for what was bought.
type Order struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CustomerID      primitive.ObjectID `json:"customer_id" bson:"customer_id" binding:"required"`
	CartID          primitive.ObjectID `json:"cart_id" bson:"cart_id" binding:"required"`
	TotalPrice      float64            `json:"total_price" bson:"total_price"`
	ShippingAddress string             `json:"shipping_address" bson:"shipping_address"`
	OrderDate       time.Time          `json:"order_date" bson:"order_date"`
	Status          string             `json:"status" bson:"status"`
	PaymentStatus   string             `json:"payment_status" bson:"payment_status"`
	Notes           string             `json:"notes,omitempty" bson:"notes,omitempty"`
}

// VendorLineItem is one cart line of an order that belongs to a vendor,
// joined with its product.
type VendorLineItem struct {
	Product  Product            `json:"product"`
	ItemID   primitive.ObjectID `json:"item_id"`
	Quantity int                `json:"quantity"`
	Status   string             `json:"status"`
}

// AcceptResult reports the outcome of a vendor acceptance pass.
type AcceptResult struct {
	AllAccepted bool   `json:"all_accepted"`
	OrderStatus string `json:"order_status"`
}
