package handler

import (
	"event-app/internal/service"
	"event-app/pkg/response"

	"github.com/gin-gonic/gin"
)

type FriendHandler struct {
	service *service.FriendService
}

func NewFriendHandler(s *service.FriendService) *FriendHandler {
	return &FriendHandler{service: s}
}

// friendPairReq 好友相关操作的统一请求体
type friendPairReq struct {
	UserID   uint `json:"userId" binding:"required"`
	FriendID uint `json:"friendId" binding:"required"`
}

// SendRequest 发送好友请求
func (h *FriendHandler) SendRequest(c *gin.Context) {
	var r friendPairReq
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	request, err := h.service.SendRequest(r.UserID, r.FriendID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, "好友请求已发送", request)
}

// AcceptRequest 接受好友请求
func (h *FriendHandler) AcceptRequest(c *gin.Context) {
	var r friendPairReq
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	updated, err := h.service.AcceptRequest(r.UserID, r.FriendID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "好友请求已接受", updated)
}

// DeclineRequest 拒绝好友请求
func (h *FriendHandler) DeclineRequest(c *gin.Context) {
	var r friendPairReq
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	declined, err := h.service.DeclineRequest(r.UserID, r.FriendID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "好友请求已拒绝", declined)
}

// RemoveFriendship 解除好友或撤回请求（方向无关）
func (h *FriendHandler) RemoveFriendship(c *gin.Context) {
	var r friendPairReq
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.service.RemoveFriendship(r.UserID, r.FriendID); err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "好友关系已删除", nil)
}

// GetFriends 获取已接受的好友资料列表
func (h *FriendHandler) GetFriends(c *gin.Context) {
	userID := parseIDParam(c, "userId")
	if userID == 0 {
		return
	}
	friends, err := h.service.ListAcceptedFriends(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "好友列表获取成功", friends)
}

// GetFriendships 获取全部关系记录（任意方向、任意状态）
// 调用方按status和方向区分好友/收到的请求/发出的请求
func (h *FriendHandler) GetFriendships(c *gin.Context) {
	userID := parseIDParam(c, "userId")
	if userID == 0 {
		return
	}
	friendships, err := h.service.ListFriendships(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "关系记录获取成功", friendships)
}

// GetIncomingRequests 获取收到的pending好友请求（含发送方资料）
func (h *FriendHandler) GetIncomingRequests(c *gin.Context) {
	userID := parseIDParam(c, "userId")
	if userID == 0 {
		return
	}
	requests, err := h.service.ListIncomingRequests(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "好友请求获取成功", requests)
}
