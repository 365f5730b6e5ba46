package container

import (
	"context"
	"fmt"
	"time"

	"brandsite-backend/internal/config"
	infraCache "brandsite-backend/internal/infrastructure/cache"
	"brandsite-backend/internal/infrastructure/database"
	"brandsite-backend/internal/infrastructure/email"
	"brandsite-backend/internal/infrastructure/queue"
	"brandsite-backend/internal/infrastructure/storage"
	"brandsite-backend/pkg/cache"
	"brandsite-backend/pkg/jwt"
	"brandsite-backend/pkg/logger"

	"brandsite-backend/internal/domains/banner"
	bannerHandler "brandsite-backend/internal/domains/banner/handler"
	bannerRepo "brandsite-backend/internal/domains/banner/repository"
	bannerService "brandsite-backend/internal/domains/banner/service"
	"brandsite-backend/internal/domains/blog"
	blogHandler "brandsite-backend/internal/domains/blog/handler"
	blogRepo "brandsite-backend/internal/domains/blog/repository"
	blogService "brandsite-backend/internal/domains/blog/service"
	"brandsite-backend/internal/domains/contact"
	contactHandler "brandsite-backend/internal/domains/contact/handler"
	contactRepo "brandsite-backend/internal/domains/contact/repository"
	contactService "brandsite-backend/internal/domains/contact/service"
	"brandsite-backend/internal/domains/services"
	servicesHandler "brandsite-backend/internal/domains/services/handler"
	servicesRepo "brandsite-backend/internal/domains/services/repository"
	servicesService "brandsite-backend/internal/domains/services/service"
	"brandsite-backend/internal/domains/user"
	userHandler "brandsite-backend/internal/domains/user/handler"
	userRepo "brandsite-backend/internal/domains/user/repository"
	userService "brandsite-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, infrastructure first, then
// repositories, services and handlers.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager
	Storage    storage.Storage
	Uploader   *storage.Uploader
	Queue      *queue.Client
	Email      email.EmailService

	BlogRepo     blog.Repository
	ServicesRepo services.Repository
	BannerRepo   banner.Repository
	ContactRepo  contact.Repository
	UserRepo     user.Repository

	BlogService     blog.Service
	ServicesService services.Business
	BannerService   banner.Service
	ContactService  contact.Service
	UserService     user.Service

	BlogHandler     *blogHandler.Handler
	ServicesHandler *servicesHandler.Handler
	BannerHandler   *bannerHandler.Handler
	ContactHandler  *contactHandler.Handler
	UserHandler     *userHandler.Handler

	redisCache *infraCache.RedisCache
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	c.DB = database.NewPostgresDB(cfg.Database)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	c.redisCache = infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.redisCache.Ping(ctx); err != nil {
		// The API degrades to an uncached, unshared-limit mode rather
		// than refusing to start.
		logger.Warn("redis unreachable, falling back to in-memory cache", err)
		c.Cache = cache.NewMemoryCache()
	} else {
		c.Cache = c.redisCache
	}

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	c.Storage, err = newStorage(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	processor := storage.NewImageProcessor(cfg.Upload.MaxFileSize)
	c.Uploader = storage.NewUploader(processor, c.Storage)

	c.Queue = queue.NewClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	c.Email = email.NewSMTPEmailService(cfg.Email)

	c.BlogRepo = blogRepo.NewPostgresRepository(c.DB.Pool)
	c.ServicesRepo = servicesRepo.NewPostgresRepository(c.DB.Pool)
	c.BannerRepo = bannerRepo.NewPostgresRepository(c.DB.Pool)
	c.ContactRepo = contactRepo.NewPostgresRepository(c.DB.Pool)
	c.UserRepo = userRepo.NewPostgresRepository(c.DB.Pool)

	c.BlogService = blogService.NewBlogService(c.BlogRepo, c.Cache)
	c.ServicesService = servicesService.NewServiceBusiness(c.ServicesRepo, c.Cache)
	c.BannerService = bannerService.NewBannerService(c.BannerRepo, c.Cache)
	c.ContactService = contactService.NewContactService(c.ContactRepo, c.Queue)
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)

	c.BlogHandler = blogHandler.NewHandler(c.BlogService, c.Uploader)
	c.ServicesHandler = servicesHandler.NewHandler(c.ServicesService, c.Uploader)
	c.BannerHandler = bannerHandler.NewHandler(c.BannerService, c.Uploader)
	c.ContactHandler = contactHandler.NewHandler(c.ContactService)
	c.UserHandler = userHandler.NewHandler(c.UserService)

	return c, nil
}

func newStorage(cfg config.StorageConfig) (storage.Storage, error) {
	switch cfg.Driver {
	case "minio":
		return storage.NewMinIOStorage(cfg)
	default:
		return storage.NewLocalStorage(cfg.UploadDir)
	}
}

// Cleanup releases held connections in reverse initialization order.
func (c *Container) Cleanup() {
	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			logger.Warn("failed to close queue client", err)
		}
	}
	if c.redisCache != nil {
		if err := c.redisCache.Close(); err != nil {
			logger.Warn("failed to close redis client", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
