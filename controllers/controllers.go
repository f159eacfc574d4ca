package controllers

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"marketplace-backend/apperrors"
)

// parseID reads a path parameter as an ObjectID, responding 400 and
// returning false when it is malformed.
func parseID(c *gin.Context, param string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(param))
	if err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrInvalidObjectID, err))
		return primitive.NilObjectID, false
	}
	return id, true
}
