package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"event-app/config"
	"event-app/internal/model"
	"event-app/internal/repository"
	"event-app/internal/service"
	"event-app/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// envelope 统一响应结构
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// newTestRouter 按主程序的路由结构搭建测试路由
func newTestRouter(t *testing.T) (*gin.Engine, *jwt.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:handler_%s?mode=memory&cache=shared&_foreign_keys=on", name)

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

	jwtSvc := jwt.NewJWTService(config.JWTConfig{
		Secret:     "test-secret",
		ExpireTime: time.Hour,
		Issuer:     "event-app-test",
	})
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	friendRepo := repository.NewFriendshipRepository(db)
	userSvc := service.NewUserService(userRepo, jwtSvc)
	eventSvc := service.NewEventService(eventRepo, userRepo)
	friendSvc := service.NewFriendService(friendRepo, userRepo)
	userHandler := NewUserHandler(userSvc, eventSvc)
	eventHandler := NewEventHandler(eventSvc)
	friendHandler := NewFriendHandler(friendSvc)

	router := gin.New()
	api := router.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", userHandler.Register)
	auth.POST("/login", userHandler.Login)

	users := api.Group("/user")
	users.Use(jwtSvc.AuthMiddleware())
	users.GET("", userHandler.GetAllUsers)
	users.GET("/profile", userHandler.GetProfile)
	users.GET("/slug/:slug", userHandler.GetUserBySlug)
	users.GET("/:id", userHandler.GetUserByID)
	users.PUT("/:id", userHandler.UpdateUser)
	users.DELETE("/:id", userHandler.DeleteUser)
	users.GET("/:id/events", userHandler.GetUserEvents)

	events := api.Group("/event")
	events.Use(jwtSvc.AuthMiddleware())
	events.GET("", eventHandler.GetAllEvents)
	events.POST("", eventHandler.CreateEvent)
	events.GET("/hosted", eventHandler.GetHostedEvents)
	events.PUT("/invitation/status", eventHandler.UpdateInvitationStatus)
	events.GET("/:eventId", eventHandler.GetEventByID)
	events.PUT("/:eventId", eventHandler.UpdateEvent)
	events.DELETE("/:eventId", eventHandler.DeleteEvent)
	events.POST("/:eventId/invite", eventHandler.InviteUser)
	events.POST("/:eventId/host", eventHandler.SetHost)
	events.GET("/:eventId/invites", eventHandler.ListInvites)
	events.DELETE("/:eventId/invite/:userId/remove", eventHandler.RemoveInvite)
	events.GET("/:eventId/invitation/status", eventHandler.GetInvitationStatus)
	events.GET("/:eventId/attendees", eventHandler.GetAttendees)

	friends := api.Group("/friends")
	friends.Use(jwtSvc.AuthMiddleware())
	friends.POST("/friend-request", friendHandler.SendRequest)
	friends.PUT("/accept", friendHandler.AcceptRequest)
	friends.PUT("/decline", friendHandler.DeclineRequest)
	friends.DELETE("/remove", friendHandler.RemoveFriendship)
	friends.GET("/friendships/:userId", friendHandler.GetFriendships)
	friends.GET("/requests/incoming/:userId", friendHandler.GetIncomingRequests)
	friends.GET("/:userId", friendHandler.GetFriends)

	return router, jwtSvc
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "响应体: %s", w.Body.String())
	return w, env
}

func registerAndLogin(t *testing.T, router *gin.Engine, first, last, email string) (uint, string) {
	t.Helper()

	w, env := doJSON(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"first_name": first,
		"last_name":  last,
		"email":      email,
		"password":   "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code, "注册失败: %s", env.Message)

	var user struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &user))

	w, env = doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))
	require.NotEmpty(t, login.AccessToken)
	return user.ID, login.AccessToken
}

func TestRegisterEnvelope(t *testing.T) {
	router, _ := newTestRouter(t)

	w, env := doJSON(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"first_name": "Ann",
		"last_name":  "Lee",
		"email":      "ann@example.com",
		"password":   "password123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, http.StatusCreated, env.Status)
	assert.NotEmpty(t, env.Message)

	var user struct {
		Email string `json:"email"`
		Slug  string `json:"slug"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, "ann@example.com", user.Email)
	assert.Equal(t, "ann-lee", user.Slug)

	// 密码散列不允许出现在响应中
	assert.NotContains(t, w.Body.String(), "password_hash")
}

func TestRegisterInvalidPayload(t *testing.T) {
	router, _ := newTestRouter(t)

	w, env := doJSON(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"first_name": "Ann",
		"email":      "not-an-email",
		"password":   "password123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, http.StatusBadRequest, env.Status)
}

func TestLoginWrongPassword(t *testing.T) {
	router, _ := newTestRouter(t)
	registerAndLogin(t, router, "Ann", "Lee", "ann@example.com")

	w, env := doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "ann@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, http.StatusUnauthorized, env.Status)
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	router, _ := newTestRouter(t)

	w, env := doJSON(t, router, http.MethodGet, "/api/user", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, http.StatusUnauthorized, env.Status)

	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusUnauthorized, w2.Code)
}

func TestEventLifecycleOverHTTP(t *testing.T) {
	router, _ := newTestRouter(t)

	_, annToken := registerAndLogin(t, router, "Ann", "Lee", "ann@example.com")
	bobID, bobToken := registerAndLogin(t, router, "Bob", "King", "bob@example.com")

	// 创建活动，创建者自动成为主持人
	w, env := doJSON(t, router, http.MethodPost, "/api/event", annToken, gin.H{
		"title":    "Birthday",
		"date":     time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"location": "Park",
	})
	require.Equal(t, http.StatusCreated, w.Code, "创建活动失败: %s", env.Message)

	var event struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &event))

	// 邀请Bob
	w, _ = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/event/%d/invite", event.ID), annToken, gin.H{
		"userId": bobID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Bob接受邀请
	w, _ = doJSON(t, router, http.MethodPut, "/api/event/invitation/status", bobToken, gin.H{
		"eventId": event.ID,
		"userId":  bobID,
		"status":  "accepted",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// 重复提交相同状态被拒绝
	w, env = doJSON(t, router, http.MethodPut, "/api/event/invitation/status", bobToken, gin.H{
		"eventId": event.ID,
		"userId":  bobID,
		"status":  "accepted",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, http.StatusBadRequest, env.Status)

	// 参加者列表包含Bob
	w, env = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/event/%d/attendees?status=accepted", event.ID), annToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var attendeeData struct {
		Attendees []struct {
			ID uint `json:"id"`
		} `json:"attendees"`
		Counts map[string]int `json:"counts"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &attendeeData))
	require.Len(t, attendeeData.Attendees, 1)
	assert.Equal(t, bobID, attendeeData.Attendees[0].ID)
	assert.Equal(t, 1, attendeeData.Counts["accepted"])

	// 移除邀请后再移除返回404
	w, _ = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/event/%d/invite/%d/remove", event.ID, bobID), annToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, env = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/event/%d/invite/%d/remove", event.ID, bobID), annToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, http.StatusNotFound, env.Status)
}

func TestFriendRequestOverHTTP(t *testing.T) {
	router, _ := newTestRouter(t)

	annID, annToken := registerAndLogin(t, router, "Ann", "Lee", "ann@example.com")
	bobID, bobToken := registerAndLogin(t, router, "Bob", "King", "bob@example.com")

	w, _ := doJSON(t, router, http.MethodPost, "/api/friends/friend-request", annToken, gin.H{
		"userId":   annID,
		"friendId": bobID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Bob的待处理请求里能看到Ann
	w, env := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/friends/requests/incoming/%d", bobID), bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var incoming []struct {
		SenderID uint `json:"sender_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &incoming))
	require.Len(t, incoming, 1)
	assert.Equal(t, annID, incoming[0].SenderID)

	// 接受后双方互为好友
	w, _ = doJSON(t, router, http.MethodPut, "/api/friends/accept", bobToken, gin.H{
		"userId":   annID,
		"friendId": bobID,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, env = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/friends/%d", annID), annToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var friends []struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &friends))
	require.Len(t, friends, 1)
	assert.Equal(t, bobID, friends[0].ID)
}

func TestGetProfile(t *testing.T) {
	router, _ := newTestRouter(t)

	annID, annToken := registerAndLogin(t, router, "Ann", "Lee", "ann@example.com")

	w, env := doJSON(t, router, http.MethodGet, "/api/user/profile", annToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var user struct {
		ID   uint   `json:"id"`
		Slug string `json:"slug"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, annID, user.ID)
	assert.Equal(t, "ann-lee", user.Slug)
}
