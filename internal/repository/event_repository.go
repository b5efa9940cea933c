package repository

import (
	"event-app/internal/model"

	"gorm.io/gorm"
)

type EventRepository struct {
	orm *gorm.DB
}

func NewEventRepository(orm *gorm.DB) *EventRepository {
	return &EventRepository{orm: orm}
}

// CreateWithHost 创建活动并绑定创建者为主持人
// 两次插入放在同一事务中，保证不会出现无主持人的活动
func (r *EventRepository) CreateWithHost(event *model.Event, creatorID uint) error {
	return r.orm.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(event).Error; err != nil {
			return err
		}
		host := &model.EventHost{EventID: event.ID, UserID: creatorID}
		return tx.Create(host).Error
	})
}

func (r *EventRepository) GetByID(id uint) (*model.Event, error) {
	var e model.Event
	if err := r.orm.First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepository) Save(event *model.Event) error {
	return r.orm.Save(event).Error
}

// Delete 删除活动，主持与邀请记录由外键级联清理
func (r *EventRepository) Delete(id uint) (int64, error) {
	result := r.orm.Delete(&model.Event{}, id)
	return result.RowsAffected, result.Error
}

// 反规范化读取：每个活动连接"第一个"主持人（取user_id最小者）的资料字段
const eventWithHostSelect = `
	SELECT e.id, e.title, e.description, e.date, e.location, e.created_at, e.updated_at,
		u.id AS host_id, u.first_name AS host_first_name, u.last_name AS host_last_name,
		u.email AS host_email, u.slug AS host_slug
	FROM event e
	LEFT JOIN event_host eh ON e.id = eh.event_id
		AND eh.user_id = (SELECT MIN(user_id) FROM event_host WHERE event_id = e.id)
	LEFT JOIN "user" u ON eh.user_id = u.id`

// GetAllWithHost 返回全部活动（含主持人资料），按活动时间升序
func (r *EventRepository) GetAllWithHost() ([]*model.EventWithHost, error) {
	var events []*model.EventWithHost
	err := r.orm.Raw(eventWithHostSelect + " ORDER BY e.date ASC").Scan(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// GetByIDWithHost 返回单个活动（含主持人资料）
func (r *EventRepository) GetByIDWithHost(id uint) (*model.EventWithHost, error) {
	var events []*model.EventWithHost
	err := r.orm.Raw(eventWithHostSelect+" WHERE e.id = ? LIMIT 1", id).Scan(&events).Error
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return events[0], nil
}

// GetHostedByUser 返回用户主持的全部活动，按活动时间升序
func (r *EventRepository) GetHostedByUser(userID uint) ([]*model.EventWithHost, error) {
	var events []*model.EventWithHost
	err := r.orm.Raw(`
		SELECT e.id, e.title, e.description, e.date, e.location, e.created_at, e.updated_at,
			u.id AS host_id, u.first_name AS host_first_name, u.last_name AS host_last_name,
			u.email AS host_email, u.slug AS host_slug
		FROM event e
		JOIN event_host eh ON e.id = eh.event_id
		JOIN "user" u ON eh.user_id = u.id
		WHERE eh.user_id = ?
		ORDER BY e.date ASC`,
		userID,
	).Scan(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// ListEventsForUser 返回用户主持或受邀的活动并集（去重）
func (r *EventRepository) ListEventsForUser(userID uint) ([]*model.Event, error) {
	var events []*model.Event
	err := r.orm.
		Where(`id IN (
			SELECT event_id FROM event_invite WHERE user_id = ?
			UNION
			SELECT event_id FROM event_host WHERE user_id = ?)`,
			userID, userID).
		Order("date ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) CreateHost(host *model.EventHost) error {
	return r.orm.Create(host).Error
}

func (r *EventRepository) CreateInvite(invite *model.EventInvite) error {
	return r.orm.Create(invite).Error
}

func (r *EventRepository) GetInvite(eventID, userID uint) (*model.EventInvite, error) {
	var invite model.EventInvite
	err := r.orm.
		Where("event_id = ? AND user_id = ?", eventID, userID).
		First(&invite).Error
	if err != nil {
		return nil, err
	}
	return &invite, nil
}

func (r *EventRepository) ListInvites(eventID uint) ([]*model.EventInvite, error) {
	var invites []*model.EventInvite
	if err := r.orm.Where("event_id = ?", eventID).Find(&invites).Error; err != nil {
		return nil, err
	}
	return invites, nil
}

// DeleteInvite 删除邀请记录，返回删除行数（0表示邀请不存在）
func (r *EventRepository) DeleteInvite(eventID, userID uint) (int64, error) {
	result := r.orm.
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Delete(&model.EventInvite{})
	return result.RowsAffected, result.Error
}

// UpdateInviteStatus 更新邀请状态并返回最新记录
func (r *EventRepository) UpdateInviteStatus(eventID, userID uint, status string) (*model.EventInvite, error) {
	err := r.orm.Model(&model.EventInvite{}).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Update("status", status).Error
	if err != nil {
		return nil, err
	}
	return r.GetInvite(eventID, userID)
}

// ListAttendees 返回活动受邀人（连接用户资料），可按状态过滤
// 按最近响应时间倒序，便于前端展示最新动态
func (r *EventRepository) ListAttendees(eventID uint, status string) ([]*model.Attendee, error) {
	query := `
		SELECT u.id, u.first_name, u.last_name, u.email, u.slug,
			ei.status, ei.created_at AS invited_at, ei.updated_at AS responded_at
		FROM "user" u
		JOIN event_invite ei ON u.id = ei.user_id
		WHERE ei.event_id = ?`
	args := []interface{}{eventID}

	if status != "" {
		query += " AND ei.status = ?"
		args = append(args, status)
	}
	query += " ORDER BY ei.updated_at DESC"

	var attendees []*model.Attendee
	if err := r.orm.Raw(query, args...).Scan(&attendees).Error; err != nil {
		return nil, err
	}
	return attendees, nil
}
