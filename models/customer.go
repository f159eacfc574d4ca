package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Customer accounts start inactive and are activated by a CSR or Admin.
type Customer struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Email        string             `json:"email" bson:"email" binding:"required,email"`
	Password     string             `json:"password,omitempty" bson:"password" binding:"required"`
	FullName     string             `json:"full_name" bson:"full_name"`
	MobileNumber string             `json:"mobile_number" bson:"mobile_number"`
	Address      string             `json:"address" bson:"address"`
	IsActive     bool               `json:"is_active" bson:"is_active"`
}
