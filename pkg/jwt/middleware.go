package jwt

import (
	"strconv"
	"strings"

	"event-app/pkg/logger"
	"event-app/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// ContextUserIDKey 用户ID在gin.Context中的键名
	ContextUserIDKey = "user_id"
	// ContextEmailKey 邮箱在gin.Context中的键名
	ContextEmailKey = "email"
	// ContextSlugKey 用户slug在gin.Context中的键名
	ContextSlugKey = "slug"
	// ContextClaimsKey JWT声明在gin.Context中的键名
	ContextClaimsKey = "jwt_claims"
)

// AuthMiddleware JWT认证中间件
// 从请求头中提取Authorization: Bearer <token>
// 验证token并将用户信息存入gin.Context
func (s *JWTService) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 从请求头获取Authorization
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "缺少Authorization请求头")
			c.Abort()
			return
		}

		// 检查Bearer前缀
		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.Unauthorized(c, "Authorization格式错误，应为Bearer <token>")
			c.Abort()
			return
		}

		// 提取token
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			response.Unauthorized(c, "token不能为空")
			c.Abort()
			return
		}

		// 验证token
		claims, err := s.ValidateToken(tokenString)
		if err != nil {
			logger.Warn("JWT验证失败",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
			)
			response.Unauthorized(c, "token无效或已过期")
			c.Abort()
			return
		}

		// 提取用户信息
		userID := claims.Subject
		email := ""
		slug := ""
		if claims.Data != nil {
			if v, ok := claims.Data["email"].(string); ok {
				email = v
			}
			if v, ok := claims.Data["slug"].(string); ok {
				slug = v
			}
		}

		// 将用户信息存入Context
		c.Set(ContextUserIDKey, userID)
		c.Set(ContextEmailKey, email)
		c.Set(ContextSlugKey, slug)
		c.Set(ContextClaimsKey, claims)

		c.Next()
	}
}

// GetUserID 从gin.Context中获取用户ID
func GetUserID(c *gin.Context) string {
	if userID, exists := c.Get(ContextUserIDKey); exists {
		if id, ok := userID.(string); ok {
			return id
		}
	}
	return ""
}

// GetUserIDUint 从gin.Context中获取用户ID并转换为uint
// 返回0表示未认证或ID非法
func GetUserIDUint(c *gin.Context) uint {
	id, err := strconv.ParseUint(GetUserID(c), 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}

// GetEmail 从gin.Context中获取邮箱
func GetEmail(c *gin.Context) string {
	if email, exists := c.Get(ContextEmailKey); exists {
		if v, ok := email.(string); ok {
			return v
		}
	}
	return ""
}

// GetClaims 从gin.Context中获取JWT声明
func GetClaims(c *gin.Context) *CustomClaims {
	if claims, exists := c.Get(ContextClaimsKey); exists {
		if v, ok := claims.(*CustomClaims); ok {
			return v
		}
	}
	return nil
}
