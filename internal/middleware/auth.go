package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"clientportal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// RequireRole validates the JWT and checks that the caller's role is in
// allowedRoles. The token is read from the access_token cookie first, then
// the Authorization header. Sets userID and role in the gin context.
func RequireRole(secret []byte, allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, cookieErr := c.Cookie("access_token")
		if cookieErr != nil || tokenString == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Authorization is missing"))
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid authorization format. Expected 'Bearer <token>'"))
				return
			}
			tokenString = parts[1]
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid or expired token"))
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid token claims"))
			return
		}

		role, _ := claims["role"].(string)
		allowed := false
		for _, r := range allowedRoles {
			if role == r {
				allowed = true
				break
			}
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error(http.StatusForbidden, "Insufficient role"))
			return
		}

		if sub, subOK := claims["sub"].(string); subOK {
			c.Set("userID", sub)
		}
		c.Set("role", role)
		c.Next()
	}
}
