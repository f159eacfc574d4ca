package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marketplace-backend/apperrors"
	"marketplace-backend/models"
	"marketplace-backend/services"
)

type CommentController struct {
	comments *services.CommentService
	logger   *zap.Logger
}

func NewCommentController(comments *services.CommentService, logger *zap.Logger) *CommentController {
	return &CommentController{comments: comments, logger: logger}
}

func (cc *CommentController) AddComment(c *gin.Context) {
	var comment models.Comment
	if err := c.ShouldBindJSON(&comment); err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrValidation, err))
		return
	}

	created, err := cc.comments.Add(c.Request.Context(), &comment)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (cc *CommentController) DeleteComment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := cc.comments.Delete(c.Request.Context(), id); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}

func (cc *CommentController) GetCommentsByProduct(c *gin.Context) {
	productID, ok := parseID(c, "productId")
	if !ok {
		return
	}

	comments, err := cc.comments.GetByProduct(c.Request.Context(), productID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (cc *CommentController) GetCommentsByVendor(c *gin.Context) {
	vendorID, ok := parseID(c, "vendorId")
	if !ok {
		return
	}

	comments, err := cc.comments.GetByVendor(c.Request.Context(), vendorID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (cc *CommentController) GetCommentsByUser(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	comments, err := cc.comments.GetByUser(c.Request.Context(), userID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}
