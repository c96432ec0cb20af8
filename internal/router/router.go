package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"homehub/internal/auth"
	"homehub/internal/config"
	"homehub/internal/handler"
	"homehub/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log *zap.Logger,
	jwtService *auth.JWTService,
	users repository.UserRepository,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	postHandler *handler.PostHandler,
	propertyHandler *handler.PropertyHandler,
	adminHandler *handler.AdminHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(requestLogger(log))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Uploaded images are served straight from disk by stored filename.
	e.Static("/uploads", cfg.UploadDir)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// Gate 1: verified token. Gate 1b: resolve the user behind the claims.
	authed := api.Group("", echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.Validate(token)
		},
		ContextKey:   auth.ClaimsContextKey,
		ErrorHandler: auth.TokenErrorHandler,
	}), auth.ResolveUser(users, log))

	// Profile routes
	profile := authed.Group("/users/profile")
	profile.GET("/", userHandler.GetProfile)
	profile.PUT("/", userHandler.UpdateProfile)
	profile.POST("/upload-image", userHandler.UploadProfileImage)

	// Community post routes
	posts := authed.Group("/users/posts")
	posts.POST("/create", postHandler.Create)
	posts.DELETE("/delete/:id", postHandler.Delete)
	posts.GET("/my-posts", postHandler.MyPosts)
	posts.GET("/all", postHandler.Feed)
	posts.POST("/:id/like", postHandler.ToggleLike)
	posts.POST("/:id/comment", postHandler.AddComment)
	posts.GET("/:id/comments", postHandler.Comments)

	// Property routes
	properties := authed.Group("/users/properties")
	properties.POST("/add", propertyHandler.Add)
	properties.GET("/all", propertyHandler.ListApproved)
	properties.GET("/my-properties", propertyHandler.MyProperties)

	// Generic user routes; the owner-or-admin rule lives in the service.
	authed.GET("/users/", userHandler.ListUsers)
	authed.GET("/users/:id", userHandler.GetUser)
	authed.PUT("/users/:id", userHandler.UpdateUser)
	authed.DELETE("/users/:id", userHandler.DeleteUser)

	// Gate 2: admin only.
	admin := authed.Group("/admin", auth.AdminRequired())
	admin.GET("/users/all", adminHandler.ListUsers)
	admin.DELETE("/users/delete/:id", adminHandler.DeleteUser)
	admin.GET("/properties/all", adminHandler.ListProperties)
	admin.PUT("/properties/approve/:id", adminHandler.ApproveProperty)
	admin.PUT("/properties/decline/:id", adminHandler.DeclineProperty)
	admin.DELETE("/properties/delete/:id", adminHandler.DeleteProperty)
	admin.GET("/posts/all", adminHandler.ListPosts)
	admin.DELETE("/posts/delete/:id", adminHandler.DeletePost)
	admin.GET("/stats", adminHandler.Stats)
}

// requestLogger bridges Echo's request logging into zap.
func requestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			log.Info("request", fields...)
			return nil
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
