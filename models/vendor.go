package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VendorRanking is write-once per customer/vendor pair.
type VendorRanking struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CustomerID primitive.ObjectID `json:"customer_id" bson:"customer_id"`
	VendorID   primitive.ObjectID `json:"vendor_id" bson:"vendor_id"`
	Score      int                `json:"score" bson:"score"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
}

// VendorComment has upsert semantics: the latest write per customer/vendor
// pair wins.
type VendorComment struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CustomerID primitive.ObjectID `json:"customer_id" bson:"customer_id"`
	VendorID   primitive.ObjectID `json:"vendor_id" bson:"vendor_id"`
	Comment    string             `json:"comment" bson:"comment"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at" bson:"updated_at"`
}

// AddRankingRequest ranks a vendor once per customer.
type AddRankingRequest struct {
	CustomerID primitive.ObjectID `json:"customer_id" binding:"required"`
	Score      int                `json:"score" binding:"required,min=1,max=5"`
}

// AddVendorCommentRequest adds or replaces a customer's comment on a vendor.
type AddVendorCommentRequest struct {
	CustomerID primitive.ObjectID `json:"customer_id" binding:"required"`
	Comment    string             `json:"comment" binding:"required"`
}
