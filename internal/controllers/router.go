package controllers

import (
	"github.com/fsdevblog/bookmarks/internal/config"
	"github.com/fsdevblog/bookmarks/internal/controllers/middlewares"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RouterParams struct {
	UserService     UserManager
	BookmarkService BookmarkManager
	PingService     ConnectionChecker
	AppConf         config.Config
	AccessLog       *zap.Logger
}

func SetupRouter(params RouterParams) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware(params.AccessLog))

	jwtSecret := []byte(params.AppConf.JWTSecret)

	authController := NewAuthController(
		params.UserService,
		jwtSecret,
		params.AppConf.AccessTokenTTL,
		params.AppConf.RefreshTokenTTL,
	)
	bookmarkController := NewBookmarkController(params.BookmarkService, params.AppConf.BaseURL)
	pingController := NewPingController(params.PingService)

	r.GET("/ping", pingController.Ping)
	r.GET("/:shortID", bookmarkController.Redirect)

	api := r.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", authController.Register)
	auth.POST("/login", authController.Login)
	auth.GET("/me", middlewares.RequireAuth(jwtSecret), authController.Me)
	auth.POST("/token/refresh", authController.Refresh)

	bookmarks := api.Group("/bookmarks", middlewares.RequireAuth(jwtSecret))
	bookmarks.POST("/", bookmarkController.Create)
	bookmarks.GET("/", bookmarkController.List)
	bookmarks.GET("/stats", bookmarkController.Stats)
	bookmarks.GET("/:id", bookmarkController.Get)
	bookmarks.PUT("/:id", bookmarkController.Update)
	bookmarks.PATCH("/:id", bookmarkController.Update)
	bookmarks.DELETE("/:id", bookmarkController.Delete)

	return r
}
