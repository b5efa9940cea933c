package service

import (
	"errors"
	"fmt"
	"strings"

	"event-app/internal/apperr"
	"event-app/internal/model"
	"event-app/internal/repository"
	"event-app/pkg/jwt"
	"event-app/pkg/password"
	"event-app/pkg/slug"

	"gorm.io/gorm"
)

type UserService struct {
	repo       *repository.UserRepository
	jwtService *jwt.JWTService
}

func NewUserService(repo *repository.UserRepository, jwtService *jwt.JWTService) *UserService {
	return &UserService{repo: repo, jwtService: jwtService}
}

// Register 注册
// slug 根据姓名生成，冲突时追加数字后缀（ann-lee, ann-lee-1, ...）
func (s *UserService) Register(firstName, lastName, email, plainPassword string) (*model.User, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	email = strings.TrimSpace(email)
	if firstName == "" || lastName == "" || email == "" || plainPassword == "" {
		return nil, apperr.E(apperr.ErrInvalidInput, "姓名、邮箱和密码均为必填")
	}

	// 生成唯一slug
	uniqueSlug, err := s.uniqueSlug(firstName, lastName)
	if err != nil {
		return nil, err
	}

	// 密码哈希
	hash, err := password.Hash(plainPassword)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hash,
		Slug:         uniqueSlug,
	}
	if err := s.repo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.E(apperr.ErrConflict, "该邮箱已被注册")
		}
		return nil, err
	}
	return user, nil
}

// uniqueSlug 生成不冲突的slug
func (s *UserService) uniqueSlug(firstName, lastName string) (string, error) {
	base := slug.Make(firstName, lastName)
	unique := base
	for count := 1; ; count++ {
		exists, err := s.repo.SlugExists(unique)
		if err != nil {
			return "", err
		}
		if !exists {
			return unique, nil
		}
		unique = fmt.Sprintf("%s-%d", base, count)
	}
}

// Login 登录，成功返回用户与访问令牌
func (s *UserService) Login(email, plainPassword string) (*model.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || plainPassword == "" {
		return nil, "", apperr.E(apperr.ErrInvalidInput, "邮箱和密码均为必填")
	}

	u, err := s.repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperr.E(apperr.ErrNotFound, "邮箱未注册")
		}
		return nil, "", err
	}
	if !password.Verify(plainPassword, u.PasswordHash) {
		return nil, "", apperr.E(apperr.ErrInvalidCredentials, "密码错误")
	}

	token, err := s.jwtService.GenerateToken(
		fmt.Sprintf("%d", u.ID),
		map[string]interface{}{"email": u.Email, "slug": u.Slug},
	)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// GetAll 获取全部用户
func (s *UserService) GetAll() ([]*model.User, error) {
	return s.repo.GetAll()
}

// GetByID 根据ID获取用户
func (s *UserService) GetByID(id uint) (*model.User, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.E(apperr.ErrNotFound, "用户不存在")
		}
		return nil, err
	}
	return u, nil
}

// GetBySlug 根据slug获取用户
func (s *UserService) GetBySlug(slugStr string) (*model.User, error) {
	u, err := s.repo.GetBySlug(slugStr)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.E(apperr.ErrNotFound, "用户不存在")
		}
		return nil, err
	}
	return u, nil
}

// Update 更新用户资料（全字段覆盖）
// 注意：slug在注册时生成后保持不变，改名不会重新生成（稳定URL）
func (s *UserService) Update(id uint, firstName, lastName, email string) (*model.User, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	email = strings.TrimSpace(email)
	if firstName == "" || lastName == "" || email == "" {
		return nil, apperr.E(apperr.ErrInvalidInput, "姓名和邮箱均为必填")
	}

	u, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	u.FirstName = firstName
	u.LastName = lastName
	u.Email = email
	if err := s.repo.Save(u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.E(apperr.ErrConflict, "该邮箱已被注册")
		}
		return nil, err
	}
	return u, nil
}

// Delete 删除用户
func (s *UserService) Delete(id uint) error {
	rows, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.E(apperr.ErrNotFound, "用户不存在")
	}
	return nil
}
