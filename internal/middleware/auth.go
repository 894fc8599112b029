package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/swiftship/parcel-backend/internal/services"
)

// Context keys set by RequireAuth.
const (
	ContextEmailKey  = "userEmail"
	ContextClaimsKey = "userClaims"
)

// RequireAuth rejects requests without a valid bearer token. A missing or
// malformed Authorization header is 401; a token the verifier rejects is 403.
// On success the verified email and claims are set on the context.
func RequireAuth(verifier services.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(401, gin.H{"message": "unauthorized access"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			c.AbortWithStatusJSON(401, gin.H{"message": "unauthorized access"})
			return
		}

		claims, err := verifier.Verify(c.Request.Context(), parts[1])
		if err != nil {
			c.AbortWithStatusJSON(403, gin.H{"message": "forbidden access"})
			return
		}

		c.Set(ContextEmailKey, claims.Email)
		c.Set(ContextClaimsKey, claims)
		c.Next()
	}
}
