package response

import (
	"errors"
	"log"
	"net/http"

	"brik.community/portal/pkg/apperror"
	"brik.community/portal/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	playgroundValidator "github.com/go-playground/validator/v10"
)

// GetUserID retrieves the authenticated user ID from the context.
func GetUserID(c *gin.Context) (uuid.UUID, error) {
	userIDStr, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, apperror.ErrUnauthorized
	}

	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		return uuid.Nil, apperror.ErrUnauthorized
	}

	return userID, nil
}

// Error writes the single uniform error envelope. Binding validation errors
// get formatted field messages and a 400; everything else goes through the
// apperror status mapping.
func Error(c *gin.Context, err error) {
	var validationErrors playgroundValidator.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	code := apperror.MapErrorToStatus(err)
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
	}

	c.JSON(code, gin.H{"error": err.Error()})
}
