package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marketplace-backend/apperrors"
	"marketplace-backend/models"
	"marketplace-backend/services"
)

type InventoryController struct {
	inventory *services.InventoryService
	logger    *zap.Logger
}

func NewInventoryController(inventory *services.InventoryService, logger *zap.Logger) *InventoryController {
	return &InventoryController{inventory: inventory, logger: logger}
}

// GetStock reports the product's current stock level.
func (ic *InventoryController) GetStock(c *gin.Context) {
	productID, ok := parseID(c, "productId")
	if !ok {
		return
	}

	stock, err := ic.inventory.GetStock(c.Request.Context(), productID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, models.StockResponse{ProductID: productID.Hex(), Stock: stock})
}

func (ic *InventoryController) IncreaseStock(c *gin.Context) {
	productID, ok := parseID(c, "productId")
	if !ok {
		return
	}

	var req models.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrValidation, err))
		return
	}

	if err := ic.inventory.IncreaseStock(c.Request.Context(), productID, req.Quantity); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stock increased"})
}

// DecreaseStock lowers stock; blocked while the product sits in pending
// orders, and never allowed to go negative.
func (ic *InventoryController) DecreaseStock(c *gin.Context) {
	productID, ok := parseID(c, "productId")
	if !ok {
		return
	}

	var req models.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrValidation, err))
		return
	}

	if err := ic.inventory.DecreaseStock(c.Request.Context(), productID, req.Quantity); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stock decreased"})
}
