package container

import (
	"context"
	"fmt"

	"blogicum-backend/internal/config"
	infracache "blogicum-backend/internal/infrastructure/cache"
	"blogicum-backend/internal/infrastructure/database"
	"blogicum-backend/internal/infrastructure/queue"
	"blogicum-backend/pkg/cache"
	"blogicum-backend/pkg/jwt"
	"blogicum-backend/pkg/logger"

	"blogicum-backend/internal/domains/category"
	categoryRepo "blogicum-backend/internal/domains/category/repository"
	categoryService "blogicum-backend/internal/domains/category/service"
	"blogicum-backend/internal/domains/comment"
	commentHandler "blogicum-backend/internal/domains/comment/handler"
	commentRepo "blogicum-backend/internal/domains/comment/repository"
	commentService "blogicum-backend/internal/domains/comment/service"
	"blogicum-backend/internal/domains/post"
	postHandler "blogicum-backend/internal/domains/post/handler"
	postRepo "blogicum-backend/internal/domains/post/repository"
	postService "blogicum-backend/internal/domains/post/service"
	"blogicum-backend/internal/domains/user"
	userHandler "blogicum-backend/internal/domains/user/handler"
	userRepo "blogicum-backend/internal/domains/user/repository"
	userService "blogicum-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph: config, infrastructure,
// repositories, services, handlers, initialized in that order.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	Queue      *queue.Client
	JWTManager *jwt.Manager

	PostRepo     post.Repository
	CommentRepo  comment.Repository
	CategoryRepo category.Repository
	UserRepo     user.Repository

	PostService     post.Service
	CommentService  comment.Service
	CategoryService category.Service
	UserService     user.Service

	PostHandler    *postHandler.PostHandler
	CommentHandler *commentHandler.CommentHandler
	UserHandler    *userHandler.UserHandler

	redisCache *infracache.RedisCache
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	ctx := context.Background()

	c.DB = database.NewPostgresDB(cfg.Database)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	c.redisCache = infracache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.redisCache.Ping(ctx); err != nil {
		// Degrade to uncached reads rather than refuse to start.
		logger.Error("redis unavailable, running without cache", err)
		c.Cache = nil
	} else {
		c.Cache = c.redisCache
	}

	c.Queue = queue.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret)

	pool := c.DB.Pool
	c.PostRepo = postRepo.NewPostgresRepository(pool)
	c.CommentRepo = commentRepo.NewPostgresRepository(pool)
	c.CategoryRepo = categoryRepo.NewPostgresRepository(pool, c.Cache, cfg.Pages.CategoryCacheTTL)
	c.UserRepo = userRepo.NewPostgresRepository(pool)

	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo)
	c.PostService = postService.NewPostService(
		c.PostRepo, c.CommentRepo, c.UserRepo, c.CategoryService, cfg.Pages.ElementsToShow,
	)
	c.CommentService = commentService.NewCommentService(c.CommentRepo, c.PostRepo, c.Queue)
	c.UserService = userService.NewUserService(c.UserRepo)

	c.PostHandler = postHandler.NewPostHandler(c.PostService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)

	return c, nil
}

func (c *Container) Cleanup() {
	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			logger.Error("failed to close queue client", err)
		}
	}
	if c.redisCache != nil {
		if err := c.redisCache.Close(); err != nil {
			logger.Error("failed to close redis client", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
