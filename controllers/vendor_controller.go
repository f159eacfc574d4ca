package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marketplace-backend/apperrors"
	"marketplace-backend/models"
	"marketplace-backend/services"
)

// VendorController exposes customer feedback on vendors.
type VendorController struct {
	vendors *services.VendorService
	logger  *zap.Logger
}

func NewVendorController(vendors *services.VendorService, logger *zap.Logger) *VendorController {
	return &VendorController{vendors: vendors, logger: logger}
}

// AddRanking scores a vendor once per customer; repeat scores are rejected.
func (vc *VendorController) AddRanking(c *gin.Context) {
	vendorID, ok := parseID(c, "vendorId")
	if !ok {
		return
	}

	var req models.AddRankingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrValidation, err))
		return
	}

	ranking, err := vc.vendors.AddRanking(c.Request.Context(), vendorID, &req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, ranking)
}

// GetAverageRanking reports the vendor's mean score; 0 when unranked.
func (vc *VendorController) GetAverageRanking(c *gin.Context) {
	vendorID, ok := parseID(c, "vendorId")
	if !ok {
		return
	}

	average, err := vc.vendors.GetAverageRanking(c.Request.Context(), vendorID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendor_id": vendorID.Hex(), "average_ranking": average})
}

func (vc *VendorController) GetRankings(c *gin.Context) {
	vendorID, ok := parseID(c, "vendorId")
	if !ok {
		return
	}

	rankings, err := vc.vendors.GetRankings(c.Request.Context(), vendorID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, rankings)
}

// AddComment stores the customer's comment on the vendor, replacing any
// earlier one.
func (vc *VendorController) AddComment(c *gin.Context) {
	vendorID, ok := parseID(c, "vendorId")
	if !ok {
		return
	}

	var req models.AddVendorCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrValidation, err))
		return
	}

	if err := vc.vendors.AddOrUpdateComment(c.Request.Context(), vendorID, &req); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment saved"})
}

func (vc *VendorController) GetComment(c *gin.Context) {
	vendorID, ok := parseID(c, "vendorId")
	if !ok {
		return
	}
	customerID, ok := parseID(c, "customerId")
	if !ok {
		return
	}

	comment, err := vc.vendors.GetComment(c.Request.Context(), customerID, vendorID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}
