package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"event-app/internal/apperr"
	"event-app/internal/model"
	"event-app/internal/repository"

	"gorm.io/gorm"
)

// EventService 活动与邀请服务
// 负责活动CRUD、主持人管理和邀请状态机
type EventService struct {
	repo     *repository.EventRepository
	userRepo *repository.UserRepository
}

func NewEventService(repo *repository.EventRepository, userRepo *repository.UserRepository) *EventService {
	return &EventService{repo: repo, userRepo: userRepo}
}

// CreateEvent 创建活动，创建者自动成为主持人
// 活动插入与主持人插入在同一事务内，不会出现无主持人的活动
func (s *EventService) CreateEvent(title, description string, date time.Time, location string, creatorID uint) (*model.Event, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperr.E(apperr.ErrInvalidInput, "活动标题为必填")
	}
	if date.IsZero() {
		return nil, apperr.E(apperr.ErrInvalidInput, "活动时间为必填")
	}
	if err := s.ensureUserExists(creatorID); err != nil {
		return nil, err
	}

	event := &model.Event{
		Title:       title,
		Description: description,
		Date:        date,
		Location:    location,
	}
	if err := s.repo.CreateWithHost(event, creatorID); err != nil {
		return nil, err
	}
	return event, nil
}

// UpdateEvent 更新活动（全字段覆盖，无部分更新语义）
func (s *EventService) UpdateEvent(id uint, title, description string, date time.Time, location string) (*model.Event, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperr.E(apperr.ErrInvalidInput, "活动标题为必填")
	}
	if date.IsZero() {
		return nil, apperr.E(apperr.ErrInvalidInput, "活动时间为必填")
	}

	event, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.E(apperr.ErrNotFound, "活动不存在")
		}
		return nil, err
	}

	event.Title = title
	event.Description = description
	event.Date = date
	event.Location = location
	if err := s.repo.Save(event); err != nil {
		return nil, err
	}
	return event, nil
}

// DeleteEvent 删除活动，主持与邀请记录由外键级联清理
func (s *EventService) DeleteEvent(id uint) error {
	rows, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.E(apperr.ErrNotFound, "活动不存在")
	}
	return nil
}

// InviteUser 邀请用户参加活动，初始状态pending
// 显式检查活动和用户存在，给出明确的错误消息（不依赖外键报错）
func (s *EventService) InviteUser(eventID, userID uint) (*model.EventInvite, error) {
	if err := s.ensureEventExists(eventID); err != nil {
		return nil, err
	}
	if err := s.ensureUserExists(userID); err != nil {
		return nil, err
	}

	invite := &model.EventInvite{
		EventID: eventID,
		UserID:  userID,
		Status:  model.InviteStatusPending,
	}
	if err := s.repo.CreateInvite(invite); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.E(apperr.ErrConflict, "该用户已被邀请")
		}
		return nil, err
	}
	return invite, nil
}

// SetHost 新增活动主持人（纯新增，不移除已有主持人，支持多人共同主持）
func (s *EventService) SetHost(eventID, userID uint) (*model.EventHost, error) {
	if err := s.ensureEventExists(eventID); err != nil {
		return nil, err
	}
	if err := s.ensureUserExists(userID); err != nil {
		return nil, err
	}

	host := &model.EventHost{EventID: eventID, UserID: userID}
	if err := s.repo.CreateHost(host); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.E(apperr.ErrConflict, "该用户已是主持人")
		}
		return nil, err
	}
	return host, nil
}

// RemoveInvite 撤销邀请
func (s *EventService) RemoveInvite(eventID, userID uint) error {
	rows, err := s.repo.DeleteInvite(eventID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.E(apperr.ErrNotFound, "该活动和用户对应的邀请不存在")
	}
	return nil
}

// UpdateInvitationStatus 驱动邀请状态机
// pending -> accepted/maybe/declined
// accepted/maybe/declined 之间可以互相转换（改变主意）
// 不允许回到pending，也不允许重复设置当前状态
func (s *EventService) UpdateInvitationStatus(eventID, userID uint, status string) (*model.EventInvite, error) {
	// 规则1：状态值必须合法
	if !model.IsValidInviteStatus(status) {
		return nil, apperr.E(apperr.ErrInvalidInput,
			fmt.Sprintf("非法的邀请状态，必须是以下之一: %s", strings.Join(model.ValidInviteStatuses, ", ")))
	}

	// 规则2：邀请必须已存在
	invite, err := s.repo.GetInvite(eventID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.E(apperr.ErrNotFound, "邀请不存在")
		}
		return nil, err
	}

	// 规则3：重复设置当前状态被拒绝（提示调用方UI存在冗余操作）
	if invite.Status == status {
		return nil, apperr.E(apperr.ErrNoOpRejected, fmt.Sprintf("邀请已经是%s状态", status))
	}

	// 规则4：已响应的邀请不能回到pending
	if status == model.InviteStatusPending {
		return nil, apperr.E(apperr.ErrInvalidInput, "邀请不能回到pending状态")
	}

	return s.repo.UpdateInviteStatus(eventID, userID, status)
}

// GetInvitationStatus 查询单个受邀人的邀请状态
func (s *EventService) GetInvitationStatus(eventID, userID uint) (*model.EventInvite, error) {
	invite, err := s.repo.GetInvite(eventID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.E(apperr.ErrNotFound, "邀请不存在")
		}
		return nil, err
	}
	return invite, nil
}

// GetAttendees 返回活动受邀人列表，可按状态过滤，按最近响应倒序
func (s *EventService) GetAttendees(eventID uint, status string) ([]*model.Attendee, error) {
	if status != "" && !model.IsValidInviteStatus(status) {
		return nil, apperr.E(apperr.ErrInvalidInput,
			fmt.Sprintf("非法的状态过滤条件，必须是以下之一: %s", strings.Join(model.ValidInviteStatuses, ", ")))
	}
	return s.repo.ListAttendees(eventID, status)
}

// ListInvites 返回活动的全部邀请记录
func (s *EventService) ListInvites(eventID uint) ([]*model.EventInvite, error) {
	return s.repo.ListInvites(eventID)
}

// GetAllEvents 返回全部活动（含主持人资料）
func (s *EventService) GetAllEvents() ([]*model.EventWithHost, error) {
	return s.repo.GetAllWithHost()
}

// GetEventByID 返回单个活动（含主持人资料）
func (s *EventService) GetEventByID(id uint) (*model.EventWithHost, error) {
	event, err := s.repo.GetByIDWithHost(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.E(apperr.ErrNotFound, "活动不存在")
		}
		return nil, err
	}
	return event, nil
}

// GetHostedEvents 返回用户主持的全部活动
func (s *EventService) GetHostedEvents(userID uint) ([]*model.EventWithHost, error) {
	return s.repo.GetHostedByUser(userID)
}

// GetEventsForUser 返回用户主持或受邀的活动并集（去重）
func (s *EventService) GetEventsForUser(userID uint) ([]*model.Event, error) {
	return s.repo.ListEventsForUser(userID)
}

func (s *EventService) ensureEventExists(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.E(apperr.ErrNotFound, "活动不存在")
		}
		return err
	}
	return nil
}

func (s *EventService) ensureUserExists(id uint) error {
	if _, err := s.userRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.E(apperr.ErrNotFound, "用户不存在")
		}
		return err
	}
	return nil
}
