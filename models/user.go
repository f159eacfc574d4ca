package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Staff roles. Customers live in their own collection.
const (
	RoleAdmin  = "Admin"
	RoleVendor = "Vendor"
	RoleCSR    = "CSR"
)

// User is a staff account: Admin, Vendor or CSR.
type User struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Username     string             `json:"username" bson:"username" binding:"required"`
	Email        string             `json:"email" bson:"email" binding:"required,email"`
	Password     string             `json:"password,omitempty" bson:"password"`
	MobileNumber string             `json:"mobile_number" bson:"mobile_number"`
	Address      string             `json:"address" bson:"address"`
	Role         string             `json:"role" bson:"role" binding:"required,oneof=Admin Vendor CSR"`
	IsActive     bool               `json:"is_active" bson:"is_active"`
}

// LoginRequest is the credential payload for both staff and customer login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}
