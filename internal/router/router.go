package router

import (
	"fmt"
	"strings"

	"github.com/lumina-blog/internal/cache"
	"github.com/lumina-blog/internal/config"
	adminhandlers "github.com/lumina-blog/internal/http/handlers/admin"
	publichandlers "github.com/lumina-blog/internal/http/handlers/public"
	"github.com/lumina-blog/internal/logger"
	"github.com/lumina-blog/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "lb"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	api := r.Group("/api")
	{
		api.GET("/health", publicHandler.Health)
		api.GET("/captcha", publicHandler.GetCaptcha)

		// 公开读接口，携带有效凭证时可见未发布/私密内容
		read := api.Group("")
		read.Use(OptionalAdminMiddleware(cfg.JWT.SecretKey, c.AdminRepo))
		{
			read.GET("/articles", publicHandler.GetArticles)
			read.GET("/articles/:id", publicHandler.GetArticle)
			read.GET("/categories", publicHandler.GetCategories)
			read.GET("/categories/:id", publicHandler.GetCategory)
			read.GET("/tags", publicHandler.GetTags)
			read.GET("/tags/:id", publicHandler.GetTag)
		}

		// 管理端认证
		auth := api.Group("/auth")
		{
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("username")), adminHandler.AdminLogin)
		}

		// 管理端接口（需鉴权）
		admin := api.Group("/admin")
		admin.Use(AdminJWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo))
		{
			admin.GET("/me", adminHandler.GetAdminProfile)
			admin.PUT("/me/password", adminHandler.UpdateAdminPassword)

			admin.POST("/articles", adminHandler.CreateArticle)
			admin.PUT("/articles/:id", adminHandler.UpdateArticle)
			admin.DELETE("/articles/:id", adminHandler.DeleteArticle)

			admin.POST("/categories", adminHandler.CreateCategory)
			admin.PUT("/categories/:id", adminHandler.UpdateCategory)
			admin.DELETE("/categories/:id", adminHandler.DeleteCategory)

			admin.POST("/tags", adminHandler.CreateTag)
			admin.PUT("/tags/:id", adminHandler.UpdateTag)
			admin.DELETE("/tags/:id", adminHandler.DeleteTag)

			admin.GET("/dashboard", adminHandler.GetDashboard)
		}
	}

	return r
}
