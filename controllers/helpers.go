package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/diegoperpetuo/perpetual-backend/apperrors"
	"github.com/diegoperpetuo/perpetual-backend/middleware"
)

// callerID resolves the authenticated subject id into an ObjectID. The auth
// gate guarantees presence on protected routes, so failures here are server
// faults, not client ones.
func callerID(ctx *gin.Context) (primitive.ObjectID, bool) {
	subjectID := middleware.SubjectID(ctx)
	if subjectID == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(subjectID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "invalid user id format"})
		return primitive.NilObjectID, false
	}
	return id, true
}

// bindMessage turns a ShouldBindJSON failure into a client-facing message.
func bindMessage(err error) string {
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			switch fe.Tag() {
			case "required":
				return fmt.Sprintf("%s is required", fe.Field())
			case "oneof":
				return fmt.Sprintf("%s must be one of %s", fe.Field(), fe.Param())
			case "gte":
				return fmt.Sprintf("%s must be >= %s", fe.Field(), fe.Param())
			case "lte":
				return fmt.Sprintf("%s must be <= %s", fe.Field(), fe.Param())
			case "min":
				return fmt.Sprintf("%s must have at least %s items", fe.Field(), fe.Param())
			default:
				return fmt.Sprintf("%s is invalid", fe.Field())
			}
		}
	}
	return "invalid request format"
}

// respondError maps a service failure to a status and a safe message.
func respondError(ctx *gin.Context, err error, generic string) {
	ctx.JSON(apperrors.Status(err), gin.H{"error": apperrors.Public(err, generic)})
}

// respondErrorWith is respondError with per-endpoint status overrides.
func respondErrorWith(ctx *gin.Context, err error, generic string, overrides map[apperrors.Kind]int) {
	ctx.JSON(apperrors.StatusWith(err, overrides), gin.H{"error": apperrors.Public(err, generic)})
}
