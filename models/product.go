package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product is a vendor-owned catalog entry. CategoryName is denormalized at
// write time and refreshed when the category is renamed.
type Product struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	VendorID      primitive.ObjectID `json:"vendor_id,omitempty" bson:"vendor_id,omitempty"`
	Name          string             `json:"name" bson:"name" binding:"required"`
	Description   string             `json:"description" bson:"description"`
	Price         float64            `json:"price" bson:"price" binding:"required,gt=0"`
	IsActive      bool               `json:"is_active" bson:"is_active"`
	CategoryID    primitive.ObjectID `json:"category_id" bson:"category_id"`
	CategoryName  string             `json:"category_name,omitempty" bson:"category_name,omitempty"`
	StockQuantity int                `json:"stock_quantity" bson:"stock_quantity"`
	ImagePath     string             `json:"image_path,omitempty" bson:"image_path,omitempty"`
}
