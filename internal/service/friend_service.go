package service

import (
	"errors"

	"event-app/internal/apperr"
	"event-app/internal/model"
	"event-app/internal/repository"

	"gorm.io/gorm"
)

// FriendService 好友关系服务
// 关系为有向记录：发送方user_id，接收方friend_id
// 双向语义（是否为好友）由查询时同时检查两个方向实现
type FriendService struct {
	repo     *repository.FriendshipRepository
	userRepo *repository.UserRepository
}

func NewFriendService(repo *repository.FriendshipRepository, userRepo *repository.UserRepository) *FriendService {
	return &FriendService{repo: repo, userRepo: userRepo}
}

// SendRequest 发送好友请求
// 插入前双向预检：任意方向已存在记录（无论状态）则拒绝，
// 防止两个方向同时出现pending请求
func (s *FriendService) SendRequest(senderID, receiverID uint) (*model.Friendship, error) {
	if senderID == receiverID {
		return nil, apperr.E(apperr.ErrInvalidInput, "不能添加自己为好友")
	}
	if err := s.ensureUserExists(senderID); err != nil {
		return nil, err
	}
	if err := s.ensureUserExists(receiverID); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsBetween(senderID, receiverID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.E(apperr.ErrConflict, "好友请求已存在或双方已是好友")
	}

	f := &model.Friendship{
		UserID:   senderID,
		FriendID: receiverID,
		Status:   model.FriendStatusPending,
	}
	if err := s.repo.Create(f); err != nil {
		// 唯一索引兜底并发下的重复插入
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.E(apperr.ErrConflict, "好友请求已存在")
		}
		return nil, err
	}
	return f, nil
}

// AcceptRequest 接受好友请求（pending -> accepted）
// 只匹配精确方向：senderID发出、receiverID接收
func (s *FriendService) AcceptRequest(senderID, receiverID uint) (*model.Friendship, error) {
	f, err := s.repo.TransitionPending(senderID, receiverID, model.FriendStatusAccepted)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, apperr.E(apperr.ErrNotFound, "没有待处理的好友请求")
	}
	return f, nil
}

// DeclineRequest 拒绝好友请求（pending -> declined）
func (s *FriendService) DeclineRequest(senderID, receiverID uint) (*model.Friendship, error) {
	f, err := s.repo.TransitionPending(senderID, receiverID, model.FriendStatusDeclined)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, apperr.E(apperr.ErrNotFound, "没有待处理的好友请求")
	}
	return f, nil
}

// RemoveFriendship 删除任意方向的关系记录
// 同时用于"解除好友"和"撤回已发送的请求"
func (s *FriendService) RemoveFriendship(userID, friendID uint) error {
	rows, err := s.repo.DeleteBetween(userID, friendID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.E(apperr.ErrNotFound, "好友关系不存在")
	}
	return nil
}

// ListFriendships 返回用户的全部关系记录（不过滤状态和方向）
// 调用方按状态和方向自行区分好友、收到的请求、发出的请求
func (s *FriendService) ListFriendships(userID uint) ([]*model.Friendship, error) {
	return s.repo.ListByUser(userID)
}

// ListAcceptedFriends 返回已接受关系对端用户的资料
func (s *FriendService) ListAcceptedFriends(userID uint) ([]*model.FriendProfile, error) {
	return s.repo.ListAcceptedProfiles(userID)
}

// ListIncomingRequests 返回发给该用户的pending请求（含发送方资料）
func (s *FriendService) ListIncomingRequests(userID uint) ([]*model.IncomingRequest, error) {
	return s.repo.ListIncomingRequests(userID)
}

func (s *FriendService) ensureUserExists(id uint) error {
	if _, err := s.userRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.E(apperr.ErrNotFound, "用户不存在")
		}
		return err
	}
	return nil
}
