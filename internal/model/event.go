package model

import (
	"time"
)

// 邀请状态枚举
const (
	InviteStatusPending  = "pending"
	InviteStatusAccepted = "accepted"
	InviteStatusMaybe    = "maybe"
	InviteStatusDeclined = "declined"
)

// ValidInviteStatuses 合法的邀请状态集合
var ValidInviteStatuses = []string{
	InviteStatusPending,
	InviteStatusAccepted,
	InviteStatusMaybe,
	InviteStatusDeclined,
}

// IsValidInviteStatus 判断是否为合法邀请状态
func IsValidInviteStatus(status string) bool {
	for _, s := range ValidInviteStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Event 活动模型

type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(100);not null;comment:标题" json:"title"`
	Description string    `gorm:"type:text;comment:描述" json:"description"`
	Date        time.Time `gorm:"not null;comment:活动时间" json:"date"`
	Location    string    `gorm:"type:varchar(255);comment:地点" json:"location"`
	CreatedAt   time.Time `gorm:"comment:创建时间" json:"created_at"`
	UpdatedAt   time.Time `gorm:"comment:更新时间" json:"updated_at"`
}

func (Event) TableName() string { return "event" }

// EventHost 活动主持人（多对多连接表，允许多个共同主持人）
// 复合主键保证同一活动同一用户至多一条主持记录
// 外键级联删除：活动或用户删除时清理主持记录

type EventHost struct {
	EventID   uint      `gorm:"primaryKey" json:"event_id"`
	UserID    uint      `gorm:"primaryKey" json:"user_id"`
	CreatedAt time.Time `gorm:"comment:创建时间" json:"created_at"`

	Event Event `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"-"`
	User  User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (EventHost) TableName() string { return "event_host" }

// EventInvite 活动邀请
// 复合主键保证每个(活动,用户)至多一条邀请
// Status: pending/accepted/maybe/declined，默认pending

type EventInvite struct {
	EventID   uint      `gorm:"primaryKey" json:"event_id"`
	UserID    uint      `gorm:"primaryKey" json:"user_id"`
	Status    string    `gorm:"type:varchar(20);default:'pending';comment:邀请状态" json:"status"`
	CreatedAt time.Time `gorm:"comment:创建时间" json:"created_at"`
	UpdatedAt time.Time `gorm:"comment:更新时间" json:"updated_at"`

	Event Event `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"-"`
	User  User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (EventInvite) TableName() string { return "event_invite" }

// EventWithHost 活动列表/详情的反规范化读取模型
// 连接第一个主持人的资料字段，便于前端直接展示

type EventWithHost struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Date          time.Time `json:"date"`
	Location      string    `json:"location"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	HostID        *uint     `json:"host_id"`
	HostFirstName string    `json:"host_first_name"`
	HostLastName  string    `json:"host_last_name"`
	HostEmail     string    `json:"host_email"`
	HostSlug      string    `json:"host_slug"`
}

// Attendee 受邀人读取模型（邀请记录连接用户资料）

type Attendee struct {
	ID          uint      `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	Slug        string    `json:"slug"`
	Status      string    `json:"status"`
	InvitedAt   time.Time `json:"invited_at"`
	RespondedAt time.Time `json:"responded_at"`
}
