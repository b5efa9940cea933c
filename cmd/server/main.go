package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"event-app/config"
	"event-app/internal/handler"
	"event-app/internal/model"
	"event-app/internal/repository"
	"event-app/internal/service"
	dbPkg "event-app/pkg/db"
	"event-app/pkg/jwt"
	"event-app/pkg/logger"
	"event-app/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	cfg := config.LoadConfig()

	// 2. 初始化日志系统
	log := logger.InitLogger(cfg.Log)
	defer log.Sync()

	log.Info("=== 活动应用服务启动 ===")
	log.Info("服务器配置信息",
		zap.String("port", cfg.Server.Port),
		zap.String("database_host", cfg.Database.Host),
		zap.Int("database_port", cfg.Database.Port),
		zap.String("database_name", cfg.Database.Database),
		zap.String("database_user", cfg.Database.Username),
		zap.Duration("jwt_expire_time", cfg.JWT.ExpireTime),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 初始化数据库连接
	db, err := dbPkg.InitDB(cfg.Database)
	if err != nil {
		log.Fatal("数据库连接失败", zap.Error(err))
	}
	defer func() {
		if err := dbPkg.CloseDB(); err != nil {
			log.Error("关闭数据库连接失败", zap.Error(err))
		}
	}()
	log.Info("数据库连接成功")

	// 3.1 自动迁移表结构
	if err := dbPkg.AutoMigrate(
		&model.User{},
		&model.Event{},
		&model.EventHost{},
		&model.EventInvite{},
		&model.Friendship{},
	); err != nil {
		log.Fatal("自动迁移失败", zap.Error(err))
	}
	log.Info("自动迁移完成")

	// 3.2 初始化业务服务
	jwtSvc := jwt.NewJWTService(cfg.JWT)
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	friendRepo := repository.NewFriendshipRepository(db)
	userSvc := service.NewUserService(userRepo, jwtSvc)
	eventSvc := service.NewEventService(eventRepo, userRepo)
	friendSvc := service.NewFriendService(friendRepo, userRepo)
	userHandler := handler.NewUserHandler(userSvc, eventSvc)
	eventHandler := handler.NewEventHandler(eventSvc)
	friendHandler := handler.NewFriendHandler(friendSvc)

	// 4. 设置Gin模式
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 5. 创建Gin路由
	router := gin.New()

	// 使用中间件
	router.Use(logger.LoggerMiddleware())      // 自定义日志中间件
	router.Use(logger.ErrorLoggerMiddleware()) // 错误日志中间件

	// 6. 设置基础路由
	setupBasicRoutes(router)

	// 6.1 绑定业务路由
	api := router.Group("/api")
	{
		// 认证接口（无需token）
		auth := api.Group("/auth")
		{
			auth.POST("/register", userHandler.Register)
			auth.POST("/login", userHandler.Login)
		}

		// 用户路由（需要认证）
		users := api.Group("/user")
		users.Use(jwtSvc.AuthMiddleware())
		{
			users.GET("", userHandler.GetAllUsers)
			users.GET("/profile", userHandler.GetProfile)
			users.GET("/slug/:slug", userHandler.GetUserBySlug)
			users.GET("/:id", userHandler.GetUserByID)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
			users.GET("/:id/events", userHandler.GetUserEvents)
		}

		// 活动路由（需要认证）
		events := api.Group("/event")
		events.Use(jwtSvc.AuthMiddleware())
		{
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
		}

		// 好友路由（需要认证）
		friends := api.Group("/friends")
		friends.Use(jwtSvc.AuthMiddleware())
		{
			friends.POST("/friend-request", friendHandler.SendRequest)
			friends.PUT("/accept", friendHandler.AcceptRequest)
			friends.PUT("/decline", friendHandler.DeclineRequest)
			friends.DELETE("/remove", friendHandler.RemoveFriendship)
			friends.GET("/friendships/:userId", friendHandler.GetFriendships)
			friends.GET("/requests/incoming/:userId", friendHandler.GetIncomingRequests)
			friends.GET("/:userId", friendHandler.GetFriends)
		}
	}

	// 7. 创建HTTP服务器
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// 8. 启动HTTP服务器
	go func() {
		log.Info("HTTP服务器启动", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP服务器启动失败", zap.Error(err))
		}
	}()

	// 9. 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("正在关闭服务器...")

	// 设置关闭超时
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 关闭HTTP服务器
	if err := server.Shutdown(ctx); err != nil {
		log.Error("HTTP服务器关闭失败", zap.Error(err))
	}

	log.Info("服务器已安全关闭")
}

// setupBasicRoutes 设置基础路由
func setupBasicRoutes(router *gin.Engine) {
	// 健康检查
	// 完整url为：http://localhost:8080/health
	router.GET("/health", func(c *gin.Context) {
		status := "ok"
		if err := dbPkg.HealthCheck(); err != nil {
			status = "db-down"
		}
		response.OK(c, "活动应用运行状态", gin.H{
			"status": status,
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// 根路径
	// 完整url为：http://localhost:8080/
	router.GET("/", func(c *gin.Context) {
		response.OK(c, "欢迎使用活动应用API", gin.H{
			"version": "1.0.0",
			"endpoints": gin.H{
				"health":  "/health",
				"auth":    "/api/auth/*",
				"users":   "/api/user/*",
				"events":  "/api/event/*",
				"friends": "/api/friends/*",
			},
		})
	})
}
