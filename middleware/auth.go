// auth.go - JWT authentication middleware
//
// Authentication flow:
// 1. Extract the bearer token from the Authorization header
// 2. Verify signature and expiration via the auth package
// 3. Store the user ID in the Gin context for the handlers

package middleware // Declares the package name

import ( // Import required packages
	"net/http" // HTTP status codes
	"strings"  // Header parsing

	"go-gym-tracker/auth" // Session token verification

	"github.com/gin-gonic/gin" // Gin web framework
)

// UserIDKey is the Gin context key the authenticated user ID is stored under.
const UserIDKey = "user_id"

// AuthMiddleware returns a Gin middleware that rejects requests without a
// valid session token and exposes the caller's user ID to the handlers.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") { // Missing or malformed header
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing or invalid token"})
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		userID, err := auth.Verify(tokenStr)
		if err != nil { // Expired, malformed or badly signed
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		c.Set(UserIDKey, userID) // Make the user ID available to handlers
		c.Next()
	}
}
