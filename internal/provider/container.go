package provider

import (
	"github.com/gamebazaar/internal/authz"
	"github.com/gamebazaar/internal/cache"
	"github.com/gamebazaar/internal/config"
	"github.com/gamebazaar/internal/logger"
	"github.com/gamebazaar/internal/models"
	"github.com/gamebazaar/internal/queue"
	"github.com/gamebazaar/internal/repository"
	"github.com/gamebazaar/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo    repository.AdminRepository
	UserRepo     repository.UserRepository
	GameRepo     repository.GameRepository
	CategoryRepo repository.CategoryRepository
	CartRepo     repository.CartRepository
	WishlistRepo repository.WishlistRepository
	OrderRepo    repository.OrderRepository
	ReviewRepo   repository.ReviewRepository
	PostRepo     repository.PostRepository

	// Services
	AuthzService        *authz.Service
	AuthService         *service.AuthService
	UserAuthService     *service.UserAuthService
	EmailService        *service.EmailService
	CaptchaService      *service.CaptchaService
	GameService         *service.GameService
	CategoryService     *service.CategoryService
	CartService         *service.CartService
	WishlistService     *service.WishlistService
	OrderService        *service.OrderService
	ReviewService       *service.ReviewService
	PostService         *service.PostService
	ReceiptRenderer     service.ReceiptRenderer
	NotificationService *service.NotificationService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
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

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.UserRepo = repository.NewUserRepository(db)
	c.GameRepo = repository.NewGameRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.WishlistRepo = repository.NewWishlistRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.ReviewRepo = repository.NewReviewRepository(db)
	c.PostRepo = repository.NewPostRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	siteName := c.Config.Email.FromName

	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo)
	c.GameService = service.NewGameService(c.GameRepo, c.CategoryRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.GameRepo, c.Config.Order.Currency)
	c.WishlistService = service.NewWishlistService(c.WishlistRepo, c.GameRepo)
	c.ReviewService = service.NewReviewService(c.ReviewRepo, c.GameRepo)
	c.PostService = service.NewPostService(c.PostRepo)

	c.ReceiptRenderer = service.NewPDFReceiptRenderer(siteName)
	c.NotificationService = service.NewNotificationService(c.OrderRepo, c.UserRepo, c.EmailService, c.ReceiptRenderer, siteName)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.GameRepo, c.CartRepo, c.QueueClient, c.NotificationService, c.Config.Order)
}
