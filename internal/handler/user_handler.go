package handler

import (
	"event-app/internal/service"
	"event-app/pkg/jwt"
	"event-app/pkg/response"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service      *service.UserService
	eventService *service.EventService
}

func NewUserHandler(s *service.UserService, eventService *service.EventService) *UserHandler {
	return &UserHandler{service: s, eventService: eventService}
}

// Register 用户注册
func (h *UserHandler) Register(c *gin.Context) {
	type req struct {
		FirstName string `json:"first_name" binding:"required"`
		LastName  string `json:"last_name" binding:"required"`
		Email     string `json:"email" binding:"required,email"`
		Password  string `json:"password" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, err := h.service.Register(r.FirstName, r.LastName, r.Email, r.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, "注册成功", response.FilterUserInfo(user))
}

// Login 用户登录
func (h *UserHandler) Login(c *gin.Context) {
	type req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, token, err := h.service.Login(r.Email, r.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "登录成功", &response.LoginResponse{
		User:        response.FilterUserInfo(user),
		AccessToken: token,
	})
}

// GetAllUsers 获取全部用户
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.service.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "用户列表获取成功", response.FilterUserInfos(users))
}

// GetUserByID 根据ID获取用户
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		return
	}
	user, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "用户获取成功", response.FilterUserInfo(user))
}

// GetUserBySlug 根据slug获取用户
func (h *UserHandler) GetUserBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		response.BadRequest(c, "slug 为必填")
		return
	}
	user, err := h.service.GetBySlug(slug)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "用户获取成功", response.FilterUserInfo(user))
}

// UpdateUser 更新用户资料（全字段覆盖，slug保持不变）
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		return
	}
	type req struct {
		FirstName string `json:"first_name" binding:"required"`
		LastName  string `json:"last_name" binding:"required"`
		Email     string `json:"email" binding:"required,email"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, err := h.service.Update(id, r.FirstName, r.LastName, r.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "用户更新成功", response.FilterUserInfo(user))
}

// DeleteUser 删除用户
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		return
	}
	if err := h.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "用户删除成功", nil)
}

// GetUserEvents 获取用户主持或受邀的全部活动（去重）
func (h *UserHandler) GetUserEvents(c *gin.Context) {
	userID := parseIDParam(c, "id")
	if userID == 0 {
		return
	}
	events, err := h.eventService.GetEventsForUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "用户相关活动获取成功", events)
}

// GetProfile 获取当前登录用户资料
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)
	if userID == 0 {
		response.Unauthorized(c, "用户未认证")
		return
	}
	user, err := h.service.GetByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "用户资料获取成功", response.FilterUserInfo(user))
}
