package response

import (
	"net/http"

	"event-app/internal/model"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构
// status 与HTTP状态码一致，message 为给前端直接展示的文案
type Response struct {
	Status  int         `json:"status"`  // HTTP状态码
	Message string      `json:"message"` // 响应消息
	Data    interface{} `json:"data"`    // 响应数据（可为null）
}

// write 写出统一响应
func write(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// OK 200成功响应
func OK(c *gin.Context, message string, data interface{}) {
	write(c, http.StatusOK, message, data)
}

// Created 201创建成功响应
func Created(c *gin.Context, message string, data interface{}) {
	write(c, http.StatusCreated, message, data)
}

// BadRequest 400错误
func BadRequest(c *gin.Context, message string) {
	write(c, http.StatusBadRequest, message, nil)
}

// Unauthorized 401错误
func Unauthorized(c *gin.Context, message string) {
	write(c, http.StatusUnauthorized, message, nil)
}

// Forbidden 403错误
func Forbidden(c *gin.Context, message string) {
	write(c, http.StatusForbidden, message, nil)
}

// NotFound 404错误
func NotFound(c *gin.Context, message string) {
	write(c, http.StatusNotFound, message, nil)
}

// InternalError 500错误（不向外泄露内部细节）
func InternalError(c *gin.Context, message string) {
	write(c, http.StatusInternalServerError, message, nil)
}

// UserInfo 用户信息（隐藏密码哈希等敏感字段）
type UserInfo struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Slug      string `json:"slug"`
	CreatedAt string `json:"created_at"`
}

// FilterUserInfo 过滤用户信息，隐藏敏感字段
func FilterUserInfo(user *model.User) *UserInfo {
	if user == nil {
		return nil
	}

	return &UserInfo{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Slug:      user.Slug,
		CreatedAt: user.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// FilterUserInfos 批量过滤用户信息
func FilterUserInfos(users []*model.User) []*UserInfo {
	infos := make([]*UserInfo, 0, len(users))
	for _, u := range users {
		infos = append(infos, FilterUserInfo(u))
	}
	return infos
}

// LoginResponse 登录响应
type LoginResponse struct {
	User        *UserInfo `json:"user"`
	AccessToken string    `json:"access_token"`
}
