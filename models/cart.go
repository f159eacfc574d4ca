package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Cart item fulfillment statuses.
const (
	ItemStatusPending  = "pending"
	ItemStatusAccepted = "accepted"
)

// CartItem is one product line inside a cart. Price is a snapshot taken at
// add time; Status tracks per-line fulfillment.
type CartItem struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ProductID   primitive.ObjectID `json:"product_id" bson:"product_id" binding:"required"`
	ProductName string             `json:"product_name" bson:"product_name"`
	Quantity    int                `json:"quantity" bson:"quantity" binding:"required,min=1"`
	Price       float64            `json:"price" bson:"price"`
	ImagePath   string             `json:"image_path,omitempty" bson:"image_path,omitempty"`
	Status      string             `json:"status" bson:"status"`
}

// Cart holds a user's line items. Status true marks the user's single
// active cart; superseded carts keep Status false.
type Cart struct {
	ID     primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID primitive.ObjectID `json:"user_id" bson:"user_id"`
	Items  []CartItem         `json:"items" bson:"items"`
	Status bool               `json:"status" bson:"status"`
}

// UpdateQuantityRequest adjusts one cart line.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}
