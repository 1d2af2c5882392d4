package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-analyzer/pkg/auth"
	"github.com/iamasit07/connect4-analyzer/pkg/httputil"
)

const SubjectKey = "subject"

// AuthMiddleware requires a valid service token signed with secret.
// The token subject is stored under SubjectKey for later handlers.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := httputil.GetTokenFromRequest(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := auth.ValidateServiceToken(secret, tokenString)
		if err != nil {
			log.Printf("[AUTH] Rejected token from %s: %v", c.ClientIP(), err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(SubjectKey, claims.Subject)
		c.Next()
	}
}
