package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marketplace-backend/apperrors"
	"marketplace-backend/models"
	"marketplace-backend/services"
)

type CartController struct {
	carts  *services.CartService
	logger *zap.Logger
}

func NewCartController(carts *services.CartService, logger *zap.Logger) *CartController {
	return &CartController{carts: carts, logger: logger}
}

// GetCart returns the user's active cart; an empty cart when none exists.
func (cc *CartController) GetCart(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	cart, err := cc.carts.GetActiveCart(c.Request.Context(), userID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	if cart == nil {
		cart = &models.Cart{UserID: userID, Items: []models.CartItem{}, Status: true}
	}
	c.JSON(http.StatusOK, cart)
}

// GetCartByID returns any cart by its own id, regardless of status. Closed
// carts stay addressable this way for order and fulfillment views.
func (cc *CartController) GetCartByID(c *gin.Context) {
	cartID, ok := parseID(c, "cartId")
	if !ok {
		return
	}

	cart, err := cc.carts.GetCartByID(c.Request.Context(), cartID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	if cart == nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrNotFound, nil))
		return
	}
	c.JSON(http.StatusOK, cart)
}

// CreateCart ensures the user has an active cart and returns it.
func (cc *CartController) CreateCart(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	cart, err := cc.carts.CreateCart(c.Request.Context(), userID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, cart)
}

// AddItem adds a product line to the user's active cart, or bumps its
// quantity when the product is already there.
func (cc *CartController) AddItem(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrValidation, err))
		return
	}

	cart, err := cc.carts.AddItem(c.Request.Context(), userID, item)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// UpdateItemQuantity sets the quantity of a cart line.
func (cc *CartController) UpdateItemQuantity(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}
	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}

	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrValidation, err))
		return
	}

	if err := cc.carts.UpdateItemQuantity(c.Request.Context(), userID, itemID, req.Quantity); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Quantity updated"})
}

// UpdateItemQuantityByCartID sets the quantity of a line in a specific cart.
func (cc *CartController) UpdateItemQuantityByCartID(c *gin.Context) {
	cartID, ok := parseID(c, "cartId")
	if !ok {
		return
	}
	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}

	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrValidation, err))
		return
	}

	if err := cc.carts.UpdateItemQuantityByCartID(c.Request.Context(), cartID, itemID, req.Quantity); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Quantity updated"})
}

// RemoveItem deletes a line from the user's active cart.
func (cc *CartController) RemoveItem(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}
	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}

	if err := cc.carts.RemoveItem(c.Request.Context(), userID, itemID); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
}

// RemoveItemByCartID deletes a line from a specific cart.
func (cc *CartController) RemoveItemByCartID(c *gin.Context) {
	cartID, ok := parseID(c, "cartId")
	if !ok {
		return
	}
	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}

	if err := cc.carts.RemoveItemByCartID(c.Request.Context(), cartID, itemID); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
}

// ClearCart empties the user's active cart, keeping the cart itself.
func (cc *CartController) ClearCart(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	if err := cc.carts.ClearCart(c.Request.Context(), userID); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}

// UpdateCartStatus opens or closes a cart.
func (cc *CartController) UpdateCartStatus(c *gin.Context) {
	cartID, ok := parseID(c, "cartId")
	if !ok {
		return
	}

	var req struct {
		Status *bool `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrValidation, err))
		return
	}

	if err := cc.carts.UpdateCartStatus(c.Request.Context(), cartID, *req.Status); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart status updated"})
}

// DeleteCart removes the user's active cart entirely.
func (cc *CartController) DeleteCart(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	if err := cc.carts.DeleteCart(c.Request.Context(), userID); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart deleted"})
}
