package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"softdesk/docs"
	"softdesk/internal/auth"
	"softdesk/internal/cache"
	"softdesk/internal/config"
	"softdesk/internal/db"
	"softdesk/internal/handler"
	"softdesk/internal/model"
	"softdesk/internal/repository"
	"softdesk/internal/resolver"
	"softdesk/internal/router"
	"softdesk/internal/service"
)

// @title SoftDesk Issue Tracking API
// @version 1.0
// @description Multi-tenant project and issue tracking API with nested resources and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Contributor{},
		&model.Issue{},
		&model.Comment{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize persistence and the resource resolver
	store := repository.NewStore(gormDB)
	res := resolver.New(store)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(store.Users(), jwtService, tokenStore)
	userService := service.NewUserService(store, cacheClient)
	projectService := service.NewProjectService(store, res)
	membershipService := service.NewMembershipService(store, res)
	issueService := service.NewIssueService(store, res)
	commentService := service.NewCommentService(store, res)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	projectHandler := handler.NewProjectHandler(projectService)
	contributorHandler := handler.NewContributorHandler(membershipService)
	issueHandler := handler.NewIssueHandler(issueService)
	commentHandler := handler.NewCommentHandler(commentService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		store.Users(),
		authHandler,
		userHandler,
		projectHandler,
		contributorHandler,
		issueHandler,
		commentHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
