package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"bookshelf-backend/internal/config"
	infraCache "bookshelf-backend/internal/infrastructure/cache"
	"bookshelf-backend/internal/infrastructure/catalog"
	"bookshelf-backend/internal/infrastructure/database"
	"bookshelf-backend/internal/infrastructure/docstore"
	"bookshelf-backend/pkg/jwt"

	bookHandler "bookshelf-backend/internal/domains/book/handler"
	bookService "bookshelf-backend/internal/domains/book/service"
	commentHandler "bookshelf-backend/internal/domains/comment/handler"
	commentRepo "bookshelf-backend/internal/domains/comment/repository"
	commentService "bookshelf-backend/internal/domains/comment/service"
	listHandler "bookshelf-backend/internal/domains/list/handler"
	listRepo "bookshelf-backend/internal/domains/list/repository"
	listService "bookshelf-backend/internal/domains/list/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup; there are no lazy globals.
type Container struct {
	// Infrastructure
	Config     *config.Config
	DB         *database.PostgresDB
	Redis      *infraCache.RedisClient
	DocStore   docstore.Store
	Catalog    *catalog.Client
	JWTManager *jwt.Manager

	// Repositories
	CommentRepo commentRepo.CommentRepository
	ListRepo    listRepo.ListRepository

	// Services
	CommentService commentService.ServiceInterface
	ListService    listService.ServiceInterface
	BookService    bookService.ServiceInterface

	// Handlers
	CommentHandler *commentHandler.CommentHandler
	ListHandler    *listHandler.ListHandler
	BookHandler    *bookHandler.BookHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer initializes the whole dependency graph in order:
// config, infrastructure, repositories, services, handlers.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db
	log.Println("✅ PostgreSQL connected")

	// ========================================
	// STEP 3: INITIALIZE REDIS (optional)
	// ========================================
	if cfg.Ratings.CacheEnabled {
		log.Println("🧰 Connecting to Redis...")

		redisClient := infraCache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
		if err := redisClient.Connect(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		c.Redis = redisClient
		log.Println("✅ Redis connected")
	}

	// ========================================
	// STEP 4: INFRASTRUCTURE SERVICES
	// ========================================
	c.DocStore = docstore.NewPostgresStore(db.Pool)
	c.Catalog = catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.PageSize, cfg.Catalog.RateLimit, 3)
	c.JWTManager = jwt.NewManager(cfg.Auth.JWTSecret)

	// ========================================
	// STEP 5: REPOSITORIES
	// ========================================
	c.CommentRepo = commentRepo.NewDocstoreCommentRepository(c.DocStore)
	c.ListRepo = listRepo.NewDocstoreListRepository(c.DocStore)

	// ========================================
	// STEP 6: SERVICES
	// ========================================
	var ratingCache commentService.RatingCache
	if cfg.Ratings.CacheEnabled && c.Redis != nil {
		ratingCache = commentService.NewRedisRatingCache(c.Redis.Client, cfg.Ratings.CacheTTL)
	}
	c.CommentService = commentService.NewCommentService(c.CommentRepo, ratingCache)

	itemPrice, err := decimal.NewFromString(cfg.Cart.DefaultPrice)
	if err != nil {
		return nil, fmt.Errorf("invalid CART_DEFAULT_PRICE: %w", err)
	}
	c.ListService = listService.NewListService(c.ListRepo, itemPrice)
	c.BookService = bookService.NewBookService(c.Catalog, c.CommentService)

	// ========================================
	// STEP 7: HANDLERS
	// ========================================
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
	c.ListHandler = listHandler.NewListHandler(c.ListService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)

	log.Println("✅ DI Container initialized")
	return c, nil
}

// Cleanup releases infrastructure resources in reverse order.
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Printf("⚠️  Failed to close redis: %v", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}

	log.Println("✅ Container cleanup complete")
}
