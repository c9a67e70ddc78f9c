package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hsaberwal/serunner/internal/shared/errors"
)

// ParseIDParam reads a UUID path parameter. entityName is used in error
// messages (e.g. "setup", "location").
func ParseIDParam(c *gin.Context, paramName, entityName string) (string, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return "", errors.NewValidationError(entityName + " ID is required")
	}

	parsed, err := uuid.Parse(raw)
	if err != nil {
		return "", errors.NewValidationError("invalid " + entityName + " ID format")
	}

	return parsed.String(), nil
}

// GetUserID returns the authenticated user ID set by the auth middleware.
func GetUserID(c *gin.Context) (string, error) {
	v, exists := c.Get("user_id")
	if !exists {
		return "", errors.NewUnauthorizedError("user not authenticated")
	}
	userID, ok := v.(string)
	if !ok || userID == "" {
		return "", errors.NewUnauthorizedError("invalid user ID in context")
	}
	return userID, nil
}

// GetUserRole returns the role set by the auth middleware, or "" if absent.
func GetUserRole(c *gin.Context) string {
	if v, ok := c.Get("user_role"); ok {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}
