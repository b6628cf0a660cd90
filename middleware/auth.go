package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/diegoperpetuo/perpetual-backend/auth"
)

const bearerPrefix = "Bearer "

// subjectKey is the gin context key holding the authenticated subject id.
const subjectKey = "user_id"

// Auth gates protected routes. The header checks run in strict order: a
// missing header and a header without the Bearer prefix are deliberately
// indistinguishable, while an empty token after the prefix gets its own
// message.
func Auth(tm *auth.TokenManager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, bearerPrefix) {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no token provided"})
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
		if tokenString == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "malformed or missing token"})
			return
		}

		subjectID, err := tm.Verify(tokenString)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		ctx.Set(subjectKey, subjectID)
		ctx.Next()
	}
}

// SubjectID returns the authenticated subject id set by Auth.
func SubjectID(ctx *gin.Context) string {
	return ctx.GetString(subjectKey)
}
