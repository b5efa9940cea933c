package repository

import (
	"event-app/internal/model"

	"gorm.io/gorm"
)

type FriendshipRepository struct {
	orm *gorm.DB
}

func NewFriendshipRepository(orm *gorm.DB) *FriendshipRepository {
	return &FriendshipRepository{orm: orm}
}

func (r *FriendshipRepository) Create(f *model.Friendship) error {
	return r.orm.Create(f).Error
}

// ExistsBetween 检查两个用户之间是否已存在任意方向、任意状态的关系记录
// 用于发送请求前的双向预检，防止反向重复请求
func (r *FriendshipRepository) ExistsBetween(userID, friendID uint) (bool, error) {
	var count int64
	err := r.orm.Model(&model.Friendship{}).
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			userID, friendID, friendID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// TransitionPending 将精确方向的pending记录迁移到新状态
// 不存在匹配的pending记录时返回(nil, nil)，由service层判定为失败
func (r *FriendshipRepository) TransitionPending(senderID, receiverID uint, newStatus string) (*model.Friendship, error) {
	result := r.orm.Model(&model.Friendship{}).
		Where("user_id = ? AND friend_id = ? AND status = ?", senderID, receiverID, model.FriendStatusPending).
		Update("status", newStatus)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	var f model.Friendship
	if err := r.orm.Where("user_id = ? AND friend_id = ?", senderID, receiverID).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// DeleteBetween 删除任意方向的关系记录，返回删除行数
// 同时用于"解除好友"和"撤回已发送的请求"
func (r *FriendshipRepository) DeleteBetween(userID, friendID uint) (int64, error) {
	result := r.orm.
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			userID, friendID, friendID, userID).
		Delete(&model.Friendship{})
	return result.RowsAffected, result.Error
}

// ListByUser 返回用户作为任一方的全部关系记录（不过滤状态）
func (r *FriendshipRepository) ListByUser(userID uint) ([]*model.Friendship, error) {
	var friendships []*model.Friendship
	err := r.orm.
		Where("user_id = ? OR friend_id = ?", userID, userID).
		Find(&friendships).Error
	if err != nil {
		return nil, err
	}
	return friendships, nil
}

// ListAcceptedProfiles 返回已接受关系对端用户的资料（双向，不含查询者自己）
func (r *FriendshipRepository) ListAcceptedProfiles(userID uint) ([]*model.FriendProfile, error) {
	var profiles []*model.FriendProfile
	err := r.orm.Raw(`
		SELECT u.id, u.first_name, u.last_name, u.email, u.slug
		FROM friendship f
		JOIN "user" u ON
			(u.id = f.friend_id AND f.user_id = ?)
			OR
			(u.id = f.user_id AND f.friend_id = ?)
		WHERE f.status = ?`,
		userID, userID, model.FriendStatusAccepted,
	).Scan(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// ListIncomingRequests 返回发给该用户的pending请求，连接发送方资料
func (r *FriendshipRepository) ListIncomingRequests(userID uint) ([]*model.IncomingRequest, error) {
	var requests []*model.IncomingRequest
	err := r.orm.Raw(`
		SELECT f.id AS friendship_id, u.id AS sender_id,
			u.first_name, u.last_name, u.email, u.slug,
			f.created_at AS requested_at
		FROM friendship f
		JOIN "user" u ON u.id = f.user_id
		WHERE f.friend_id = ? AND f.status = ?`,
		userID, model.FriendStatusPending,
	).Scan(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}
