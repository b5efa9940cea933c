package handler

import (
	"strconv"
	"time"

	"event-app/internal/service"
	"event-app/pkg/jwt"
	"event-app/pkg/response"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	service *service.EventService
}

func NewEventHandler(s *service.EventService) *EventHandler {
	return &EventHandler{service: s}
}

// GetAllEvents 获取全部活动（含主持人资料）
func (h *EventHandler) GetAllEvents(c *gin.Context) {
	events, err := h.service.GetAllEvents()
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "活动列表获取成功", events)
}

// CreateEvent 创建活动，当前登录用户自动成为主持人
func (h *EventHandler) CreateEvent(c *gin.Context) {
	type req struct {
		Title       string    `json:"title" binding:"required"`
		Description string    `json:"description"`
		Date        time.Time `json:"date" binding:"required"`
		Location    string    `json:"location"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	creatorID := jwt.GetUserIDUint(c)
	if creatorID == 0 {
		response.Unauthorized(c, "用户未认证")
		return
	}

	event, err := h.service.CreateEvent(r.Title, r.Description, r.Date, r.Location, creatorID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, "活动创建成功", event)
}

// GetEventByID 获取单个活动（含主持人资料）
func (h *EventHandler) GetEventByID(c *gin.Context) {
	id := parseIDParam(c, "eventId")
	if id == 0 {
		return
	}
	event, err := h.service.GetEventByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "活动获取成功", event)
}

// UpdateEvent 更新活动（全字段覆盖）
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id := parseIDParam(c, "eventId")
	if id == 0 {
		return
	}
	type req struct {
		Title       string    `json:"title" binding:"required"`
		Description string    `json:"description"`
		Date        time.Time `json:"date" binding:"required"`
		Location    string    `json:"location"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	event, err := h.service.UpdateEvent(id, r.Title, r.Description, r.Date, r.Location)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "活动更新成功", event)
}

// DeleteEvent 删除活动（主持与邀请记录级联清理）
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id := parseIDParam(c, "eventId")
	if id == 0 {
		return
	}
	if err := h.service.DeleteEvent(id); err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "活动删除成功", nil)
}

// GetHostedEvents 获取当前登录用户主持的活动
func (h *EventHandler) GetHostedEvents(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)
	if userID == 0 {
		response.Unauthorized(c, "用户未认证")
		return
	}
	events, err := h.service.GetHostedEvents(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "主持的活动获取成功", events)
}

// InviteUser 邀请用户参加活动
func (h *EventHandler) InviteUser(c *gin.Context) {
	eventID := parseIDParam(c, "eventId")
	if eventID == 0 {
		return
	}
	type req struct {
		UserID uint `json:"userId" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	invite, err := h.service.InviteUser(eventID, r.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, "邀请发送成功", invite)
}

// SetHost 新增活动主持人（支持多人共同主持）
func (h *EventHandler) SetHost(c *gin.Context) {
	eventID := parseIDParam(c, "eventId")
	if eventID == 0 {
		return
	}
	type req struct {
		UserID uint `json:"userId" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	host, err := h.service.SetHost(eventID, r.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "主持人设置成功", host)
}

// ListInvites 获取活动全部邀请记录
func (h *EventHandler) ListInvites(c *gin.Context) {
	eventID := parseIDParam(c, "eventId")
	if eventID == 0 {
		return
	}
	invites, err := h.service.ListInvites(eventID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "邀请列表获取成功", invites)
}

// RemoveInvite 撤销邀请
func (h *EventHandler) RemoveInvite(c *gin.Context) {
	eventID := parseIDParam(c, "eventId")
	if eventID == 0 {
		return
	}
	userID := parseIDParam(c, "userId")
	if userID == 0 {
		return
	}
	if err := h.service.RemoveInvite(eventID, userID); err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "邀请已撤销", nil)
}

// UpdateInvitationStatus 驱动邀请状态机
func (h *EventHandler) UpdateInvitationStatus(c *gin.Context) {
	type req struct {
		EventID uint   `json:"eventId" binding:"required"`
		UserID  uint   `json:"userId" binding:"required"`
		Status  string `json:"status" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	invite, err := h.service.UpdateInvitationStatus(r.EventID, r.UserID, r.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "邀请状态更新成功", invite)
}

// GetInvitationStatus 查询单个受邀人的邀请状态
// userId 可通过query指定，缺省为当前登录用户
func (h *EventHandler) GetInvitationStatus(c *gin.Context) {
	eventID := parseIDParam(c, "eventId")
	if eventID == 0 {
		return
	}

	userID := jwt.GetUserIDUint(c)
	if raw := c.Query("userId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || parsed == 0 {
			response.BadRequest(c, "userId 必须为正整数")
			return
		}
		userID = uint(parsed)
	}
	if userID == 0 {
		response.BadRequest(c, "userId 为必填")
		return
	}

	invite, err := h.service.GetInvitationStatus(eventID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "邀请状态获取成功", invite)
}

// GetAttendees 获取活动受邀人列表，可选status过滤
// data中附带各状态人数统计，便于前端展示
func (h *EventHandler) GetAttendees(c *gin.Context) {
	eventID := parseIDParam(c, "eventId")
	if eventID == 0 {
		return
	}
	status := c.Query("status")

	attendees, err := h.service.GetAttendees(eventID, status)
	if err != nil {
		respondError(c, err)
		return
	}

	counts := map[string]int{}
	for _, a := range attendees {
		counts[a.Status]++
	}

	response.OK(c, "受邀人列表获取成功", gin.H{
		"attendees": attendees,
		"counts":    counts,
	})
}
