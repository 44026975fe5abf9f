package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the key used to store the authenticated user's personnel ID.
const userIDKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated personnel ID from the
// request context. It returns the ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (int64, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(int64)
	return userID, ok
}
