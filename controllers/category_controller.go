package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marketplace-backend/apperrors"
	"marketplace-backend/models"
	"marketplace-backend/services"
)

type CategoryController struct {
	categories *services.CategoryService
	logger     *zap.Logger
}

func NewCategoryController(categories *services.CategoryService, logger *zap.Logger) *CategoryController {
	return &CategoryController{categories: categories, logger: logger}
}

// GetCategories lists categories, optionally filtered by ?active=true|false.
func (cc *CategoryController) GetCategories(c *gin.Context) {
	if raw, present := c.GetQuery("active"); present {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.ErrValidation, err))
			return
		}
		categories, err := cc.categories.GetByActive(c.Request.Context(), active)
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, categories)
		return
	}

	categories, err := cc.categories.GetAll(c.Request.Context())
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (cc *CategoryController) GetCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	category, err := cc.categories.GetByID(c.Request.Context(), id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var category models.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrValidation, err))
		return
	}

	created, err := cc.categories.Create(c.Request.Context(), &category)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var category models.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrValidation, err))
		return
	}

	updated, err := cc.categories.Update(c.Request.Context(), id, &category)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (cc *CategoryController) SetCategoryActive(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		IsActive *bool `json:"is_active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrValidation, err))
		return
	}

	if err := cc.categories.SetActive(c.Request.Context(), id, *req.IsActive); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category status updated"})
}

func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := cc.categories.Delete(c.Request.Context(), id); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
