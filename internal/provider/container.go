package provider

import (
	"github.com/lumina-blog/internal/cache"
	"github.com/lumina-blog/internal/config"
	"github.com/lumina-blog/internal/logger"
	"github.com/lumina-blog/internal/models"
	"github.com/lumina-blog/internal/queue"
	"github.com/lumina-blog/internal/repository"
	"github.com/lumina-blog/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo     repository.AdminRepository
	ArticleRepo   repository.ArticleRepository
	CategoryRepo  repository.CategoryRepository
	TagRepo       repository.TagRepository
	DashboardRepo repository.DashboardRepository

	// Services
	AuthService      *service.AuthService
	CaptchaService   *service.CaptchaService
	ArticleService   *service.ArticleService
	CategoryService  *service.CategoryService
	TagService       *service.TagService
	DashboardService *service.DashboardService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.ArticleRepo = repository.NewArticleRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.TagRepo = repository.NewTagRepository(db)
	c.DashboardRepo = repository.NewDashboardRepository(db)
}

func (c *Container) initServices() {
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.ArticleService = service.NewArticleService(c.ArticleRepo, c.CategoryRepo, c.TagRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.TagService = service.NewTagService(c.TagRepo)
	c.DashboardService = service.NewDashboardService(c.DashboardRepo)
}
