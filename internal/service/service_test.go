package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"event-app/config"
	"event-app/internal/model"
	"event-app/internal/repository"
	"event-app/pkg/jwt"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// newTestDB 每个测试使用独立的内存sqlite数据库
// 开启外键约束以验证级联删除行为
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Event{},
		&model.EventHost{},
		&model.EventInvite{},
		&model.Friendship{},
	))
	return db
}

func newTestJWT() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:     "test-secret",
		ExpireTime: time.Hour,
		Issuer:     "event-app-test",
	})
}

func newUserService(db *gorm.DB) *UserService {
	return NewUserService(repository.NewUserRepository(db), newTestJWT())
}

func newEventService(db *gorm.DB) *EventService {
	return NewEventService(repository.NewEventRepository(db), repository.NewUserRepository(db))
}

func newFriendService(db *gorm.DB) *FriendService {
	return NewFriendService(repository.NewFriendshipRepository(db), repository.NewUserRepository(db))
}

// mustRegister 注册测试用户
func mustRegister(t *testing.T, svc *UserService, first, last, email string) *model.User {
	t.Helper()
	u, err := svc.Register(first, last, email, "password123")
	require.NoError(t, err)
	return u
}

// mustCreateEvent 创建测试活动
func mustCreateEvent(t *testing.T, svc *EventService, title string, creatorID uint) *model.Event {
	t.Helper()
	e, err := svc.CreateEvent(title, "description", time.Now().Add(24*time.Hour), "location", creatorID)
	require.NoError(t, err)
	return e
}
