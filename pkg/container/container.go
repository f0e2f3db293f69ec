package container

import (
	"context"
	"fmt"
	"time"

	"masterdata-backend/internal/config"
	"masterdata-backend/internal/domains/auth"
	authHandler "masterdata-backend/internal/domains/auth/handler"
	"masterdata-backend/internal/domains/category"
	categoryHandler "masterdata-backend/internal/domains/category/handler"
	categoryRepo "masterdata-backend/internal/domains/category/repository"
	categoryService "masterdata-backend/internal/domains/category/service"
	"masterdata-backend/internal/domains/categorytype"
	categoryTypeHandler "masterdata-backend/internal/domains/categorytype/handler"
	categoryTypeRepo "masterdata-backend/internal/domains/categorytype/repository"
	categoryTypeService "masterdata-backend/internal/domains/categorytype/service"
	"masterdata-backend/internal/domains/grouping"
	groupingHandler "masterdata-backend/internal/domains/grouping/handler"
	groupingRepo "masterdata-backend/internal/domains/grouping/repository"
	groupingService "masterdata-backend/internal/domains/grouping/service"
	"masterdata-backend/internal/domains/ringsize"
	ringSizeHandler "masterdata-backend/internal/domains/ringsize/handler"
	ringSizeRepo "masterdata-backend/internal/domains/ringsize/repository"
	ringSizeService "masterdata-backend/internal/domains/ringsize/service"
	infraCache "masterdata-backend/internal/infrastructure/cache"
	"masterdata-backend/internal/infrastructure/database"
	"masterdata-backend/pkg/cache"
	"masterdata-backend/pkg/jwt"
	"masterdata-backend/pkg/logger"
)

// Container holds the full dependency graph. Everything in it is a
// singleton wired once at startup, in dependency order: config,
// infrastructure, repositories, services, handlers.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	CategoryTypeRepo categorytype.Repository
	CategoryRepo     category.Repository
	StyleRepo        grouping.Repository
	CollectionRepo   grouping.Repository
	RingSizeRepo     ringsize.Repository

	AuthService         auth.Service
	CategoryTypeService categorytype.Service
	CategoryService     category.Service
	StyleService        grouping.Service
	CollectionService   grouping.Service
	RingSizeService     ringsize.Service

	AuthHandler         *authHandler.AuthHandler
	CategoryTypeHandler *categoryTypeHandler.CategoryTypeHandler
	CategoryHandler     *categoryHandler.CategoryHandler
	StyleHandler        *groupingHandler.GroupingHandler
	CollectionHandler   *groupingHandler.GroupingHandler
	RingSizeHandler     *ringSizeHandler.RingSizeHandler
}

// NewContainer builds and connects the whole dependency graph.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Info("config loaded", map[string]interface{}{"environment": cfg.App.Environment})

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	c.DB = db
	logger.Info("database connected", nil)

	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(ctx); err != nil {
		// cache misses degrade to database reads, so this is not fatal
		logger.Warn("redis connection failed", err)
	} else {
		logger.Info("redis connected", nil)
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.CategoryTypeRepo = categoryTypeRepo.NewPostgresRepository(pool, c.Cache)
	c.CategoryRepo = categoryRepo.NewPostgresRepository(pool, c.Cache)
	c.StyleRepo = groupingRepo.NewPostgresRepository(grouping.KindStyle, pool, c.Cache)
	c.CollectionRepo = groupingRepo.NewPostgresRepository(grouping.KindCollection, pool, c.Cache)
	c.RingSizeRepo = ringSizeRepo.NewPostgresRepository(pool, c.Cache)
}

func (c *Container) initServices() {
	c.AuthService = auth.NewAuthService(c.Config.Admin, c.JWTManager, c.Config.JWT.AccessTokenExpiry)
	c.CategoryTypeService = categoryTypeService.NewCategoryTypeService(c.CategoryTypeRepo)
	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo, c.CategoryTypeRepo)
	c.StyleService = groupingService.NewGroupingService(
		grouping.KindStyle, c.StyleRepo, c.CategoryRepo, c.CategoryTypeRepo)
	c.CollectionService = groupingService.NewGroupingService(
		grouping.KindCollection, c.CollectionRepo, c.CategoryRepo, c.CategoryTypeRepo)
	c.RingSizeService = ringSizeService.NewRingSizeService(c.RingSizeRepo)
}

func (c *Container) initHandlers() {
	c.AuthHandler = authHandler.NewAuthHandler(c.AuthService)
	c.CategoryTypeHandler = categoryTypeHandler.NewCategoryTypeHandler(c.CategoryTypeService)
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.StyleHandler = groupingHandler.NewGroupingHandler(grouping.KindStyle, c.StyleService)
	c.CollectionHandler = groupingHandler.NewGroupingHandler(grouping.KindCollection, c.CollectionService)
	c.RingSizeHandler = ringSizeHandler.NewRingSizeHandler(c.RingSizeService)
}

// Cleanup releases infrastructure resources during shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
		logger.Info("database connections closed", nil)
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				logger.Warn("failed to close redis", err)
			} else {
				logger.Info("redis connections closed", nil)
			}
		}
	}
}
