package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/parakita/backoffice/config"
	"github.com/parakita/backoffice/internal/handler"
	"github.com/parakita/backoffice/internal/middleware"
)

type Router struct {
	authHandler          *handler.AuthHandler
	userHandler          *handler.UserHandler
	roleHandler          *handler.RoleHandler
	vendorHandler        *handler.VendorHandler
	vendorGroupHandler   *handler.GroupHandler
	customerHandler      *handler.CustomerHandler
	customerGroupHandler *handler.GroupHandler
	currencyHandler      *handler.CurrencyHandler
	genderHandler        *handler.GenderHandler
	configHandler        *handler.ConfigHandler
	navigationHandler    *handler.NavigationHandler
	healthHandler        *handler.HealthHandler

	jwtMw *middleware.JWTMiddleware
	cfg   *config.Config
}

func NewRouter(
	auth *handler.AuthHandler,
	user *handler.UserHandler,
	role *handler.RoleHandler,
	vendor *handler.VendorHandler,
	vendorGroup *handler.GroupHandler,
	customer *handler.CustomerHandler,
	customerGroup *handler.GroupHandler,
	currency *handler.CurrencyHandler,
	gender *handler.GenderHandler,
	configH *handler.ConfigHandler,
	navigation *handler.NavigationHandler,
	health *handler.HealthHandler,
	jwtMw *middleware.JWTMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authHandler:          auth,
		userHandler:          user,
		roleHandler:          role,
		vendorHandler:        vendor,
		vendorGroupHandler:   vendorGroup,
		customerHandler:      customer,
		customerGroupHandler: customerGroup,
		currencyHandler:      currency,
		genderHandler:        gender,
		configHandler:        configH,
		navigationHandler:    navigation,
		healthHandler:        health,
		jwtMw:                jwtMw,
		cfg:                  cfg,
	}
}

func (r *Router) SetupRoutes() *gin.Engine {
	if !r.cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORS())

	api := router.Group("/api")
	{
		api.GET("/health", r.healthHandler.Health)

		v1 := api.Group("/v1")
		{
			v1.Use(middleware.RateLimit(r.cfg.RateLimit.Request, time.Duration(r.cfg.RateLimit.Duration)*time.Second))

			r.authRoutes(v1)
			r.userRoutes(v1)
			r.masterDataRoutes(v1)
			r.configRoutes(v1)
			r.navigationRoutes(v1)
		}
	}

	return router
}

func (r *Router) navigationRoutes(rg *gin.RouterGroup) {
	nav := rg.Group("/navigation")
	nav.Use(r.jwtMw.RequireAuth())
	{
		nav.GET("/menu", r.navigationHandler.Menu)
	}
}
