package model

import (
	"time"
)

// 好友关系状态枚举
const (
	FriendStatusPending  = "pending"
	FriendStatusAccepted = "accepted"
	FriendStatusDeclined = "declined"
)

// Friendship 好友关系
// 有向记录：UserID为请求发送方，FriendID为接收方
// (UserID, FriendID) 唯一；双向查询需同时检查两个方向
// Status: pending/accepted/declined

type Friendship struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_friendship_pair;comment:发送方用户ID" json:"user_id"`
	FriendID  uint      `gorm:"not null;uniqueIndex:idx_friendship_pair;comment:接收方用户ID" json:"friend_id"`
	Status    string    `gorm:"type:varchar(20);default:'pending';comment:关系状态" json:"status"`
	CreatedAt time.Time `gorm:"comment:创建时间" json:"created_at"`
	UpdatedAt time.Time `gorm:"comment:更新时间" json:"updated_at"`

	User   User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Friend User `gorm:"foreignKey:FriendID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Friendship) TableName() string { return "friendship" }

// FriendProfile 好友/请求方资料读取模型

type FriendProfile struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Slug      string `json:"slug"`
}

// IncomingRequest 收到的好友请求（连接发送方资料）

type IncomingRequest struct {
	FriendshipID uint      `json:"friendship_id"`
	SenderID     uint      `json:"sender_id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Slug         string    `json:"slug"`
	RequestedAt  time.Time `json:"requested_at"`
}
