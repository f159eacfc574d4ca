package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marketplace-backend/apperrors"
	"marketplace-backend/models"
	"marketplace-backend/services"
)

type CustomerController struct {
	customers *services.CustomerService
	logger    *zap.Logger
}

func NewCustomerController(customers *services.CustomerService, logger *zap.Logger) *CustomerController {
	return &CustomerController{customers: customers, logger: logger}
}

// Register creates a customer account. New accounts start deactivated and
// wait for CSR approval.
func (cc *CustomerController) Register(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrValidation, err))
		return
	}

	created, err := cc.customers.Register(c.Request.Context(), &customer)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Login authenticates an activated customer.
func (cc *CustomerController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrValidation, err))
		return
	}

	resp, err := cc.customers.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (cc *CustomerController) GetCustomers(c *gin.Context) {
	customers, err := cc.customers.GetAll(c.Request.Context())
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (cc *CustomerController) GetCustomer(c *gin.Context) {
	customer, err := cc.customers.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrValidation, err))
		return
	}

	updated, err := cc.customers.Update(c.Request.Context(), id, &customer)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Activate approves a pending customer account. CSR and Admin only.
func (cc *CustomerController) Activate(c *gin.Context) {
	if err := cc.customers.Activate(c.Request.Context(), c.Param("email")); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer activated"})
}

func (cc *CustomerController) Deactivate(c *gin.Context) {
	if err := cc.customers.Deactivate(c.Request.Context(), c.Param("email")); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deactivated"})
}

// Reactivate re-enables a deactivated account; missing accounts are
// ignored.
func (cc *CustomerController) Reactivate(c *gin.Context) {
	if err := cc.customers.Reactivate(c.Request.Context(), c.Param("email")); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer reactivated"})
}

func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	if err := cc.customers.Delete(c.Request.Context(), c.Param("email")); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted"})
}
