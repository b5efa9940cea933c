package handler

import (
	"errors"
	"strconv"

	"event-app/internal/apperr"
	"event-app/pkg/logger"
	"event-app/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError 将领域错误映射为HTTP状态码
// 未识别的错误统一返回500，不向外泄露内部细节
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, apperr.ErrConflict),
		errors.Is(err, apperr.ErrInvalidInput),
		errors.Is(err, apperr.ErrNoOpRejected):
		response.BadRequest(c, err.Error())
	case errors.Is(err, apperr.ErrInvalidCredentials):
		response.Unauthorized(c, err.Error())
	default:
		logger.Error("未预期的服务错误",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		response.InternalError(c, "服务器内部错误")
	}
}

// parseIDParam 解析URL中的正整数ID参数
// 返回0表示解析失败（已写出400响应）
func parseIDParam(c *gin.Context, name string) uint {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || value == 0 {
		response.BadRequest(c, name+" 必须为正整数")
		return 0
	}
	return uint(value)
}
