package middleware

import (
	"Showreel/internal/pkg/response"
	"Showreel/internal/pkg/security"
	"context"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 逐请求校验 Supabase 访问令牌，并将用户身份注入 Context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, response.Unauthorized, "Token 缺失或格式错误")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := security.ValidateToken(tokenString)
		if err != nil {
			response.Fail(c, response.Unauthorized, "Token 无效或已过期")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID())
		c.Set("role", claims.Role)

		newCtx := context.WithValue(c.Request.Context(), "user_id", claims.UserID())
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
