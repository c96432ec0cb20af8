package main

import (
	"log"
	"net/http"
	"os"

	_ "homehub/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"homehub/internal/auth"
	"homehub/internal/cache"
	"homehub/internal/config"
	"homehub/internal/db"
	"homehub/internal/handler"
	"homehub/internal/logger"
	"homehub/internal/model"
	"homehub/internal/repository"
	"homehub/internal/router"
	"homehub/internal/service"
	"homehub/internal/storage"
)

// @title HomeHub API
// @version 1.0
// @description Property listing and community platform API with JWT authentication.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer zlog.Sync()

	e := echo.New()
	e.HideBanner = true

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		zlog.Fatal("database init", zap.Error(err))
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		zlog.Info("RESET_DB=true detected, dropping all tables")
		tables := []interface{}{
			&model.Comment{},
			&model.Like{},
			&model.Post{},
			&model.Property{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				zlog.Warn("drop table", zap.Error(err))
			}
		}
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Property{},
		&model.Post{},
		&model.Like{},
		&model.Comment{},
	); err != nil {
		zlog.Fatal("auto-migrate", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	uploads, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		zlog.Fatal("upload storage init", zap.Error(err))
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	postRepo := repository.NewPostRepository(gormDB)
	propertyRepo := repository.NewPropertyRepository(gormDB)
	likeRepo := repository.NewLikeRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, zlog)
	userService := service.NewUserService(userRepo, cacheClient)
	postService := service.NewPostService(postRepo, userRepo, likeRepo, commentRepo, zlog)
	propertyService := service.NewPropertyService(propertyRepo)
	adminService := service.NewAdminService(userRepo, postRepo, propertyRepo, cacheClient, zlog)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, uploads)
	postHandler := handler.NewPostHandler(postService)
	propertyHandler := handler.NewPropertyHandler(propertyService, uploads)
	adminHandler := handler.NewAdminHandler(adminService)

	// Register routes
	router.Register(
		e,
		cfg,
		zlog,
		jwtService,
		userRepo,
		authHandler,
		userHandler,
		postHandler,
		propertyHandler,
		adminHandler,
	)

	zlog.Info("swagger documentation available", zap.String("url", "http://localhost:"+cfg.ServerPort+"/swagger/index.html"))

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		zlog.Fatal("server start", zap.Error(err))
	}
}
