package repository

import (
	"event-app/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	orm *gorm.DB
}

func NewUserRepository(orm *gorm.DB) *UserRepository {
	return &UserRepository{orm: orm}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.orm.Create(user).Error
}

func (r *UserRepository) GetByID(id uint) (*model.User, error) {
	var u model.User
	if err := r.orm.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(email string) (*model.User, error) {
	var u model.User
	if err := r.orm.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetBySlug(slug string) (*model.User, error) {
	var u model.User
	if err := r.orm.Where("slug = ?", slug).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetAll() ([]*model.User, error) {
	var users []*model.User
	if err := r.orm.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// SlugExists 检查slug是否已被占用（注册时做编号消歧）
func (r *UserRepository) SlugExists(slug string) (bool, error) {
	var count int64
	if err := r.orm.Model(&model.User{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) Save(user *model.User) error {
	return r.orm.Save(user).Error
}

// Delete 删除用户，返回删除行数（0表示用户不存在）
func (r *UserRepository) Delete(id uint) (int64, error) {
	result := r.orm.Delete(&model.User{}, id)
	return result.RowsAffected, result.Error
}
