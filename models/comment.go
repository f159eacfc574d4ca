package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is a user review on a product or vendor. Rating 0 means
// "no rating given"; product average ratings ignore it.
type Comment struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"user_id" bson:"user_id" binding:"required"`
	ProductID primitive.ObjectID `json:"product_id,omitempty" bson:"product_id,omitempty"`
	VendorID  primitive.ObjectID `json:"vendor_id,omitempty" bson:"vendor_id,omitempty"`
	Text      string             `json:"text" bson:"text" binding:"required"`
	Rating    int                `json:"rating,omitempty" bson:"rating,omitempty" binding:"omitempty,min=1,max=5"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}
