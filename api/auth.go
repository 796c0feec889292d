package api

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// adminAuthMiddleware gates the administrative recovery routes behind a
// bearer token signed with the shared secret and carrying role=admin.
func (m ApiHandler) adminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			returnErrorJsonCode(fmt.Errorf("missing bearer token"), c, 401)
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return []byte(m.JwtSecret), nil
		})
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid token: %w", err), c, 401)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || !token.Valid {
			returnErrorJsonCode(fmt.Errorf("invalid token claims"), c, 401)
			return
		}
		if role, _ := claims["role"].(string); role != "admin" {
			returnErrorJsonCode(fmt.Errorf("insufficient permissions"), c, 403)
			return
		}

		c.Next()
	}
}
