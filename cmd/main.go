package main

import (
	"os"
	"os/signal"
	"syscall"

	configs "github.com/parakita/backoffice/config"
	"github.com/parakita/backoffice/internal/handler"
	"github.com/parakita/backoffice/internal/middleware"
	"github.com/parakita/backoffice/internal/repository"
	"github.com/parakita/backoffice/internal/router"
	"github.com/parakita/backoffice/internal/service"
	"github.com/parakita/backoffice/pkg/database"
	"github.com/parakita/backoffice/pkg/logger"
	"github.com/parakita/backoffice/pkg/mailer"
	"github.com/parakita/backoffice/pkg/redis"
	"go.uber.org/zap"
)

func main() {
	config, err := configs.LoadConfig()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	if err := logger.InitLogger(config); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	logger.GetLogger().Info("Application starting",
		zap.String("app_name", config.App.Name),
		zap.String("environment", config.App.Environment))

	db, err := database.NewPostgresDB(database.Config{
		Host:            config.Database.Host,
		Port:            config.Database.Port,
		User:            config.Database.User,
		Password:        config.Database.Password,
		Database:        config.Database.Name,
		SSLMode:         config.Database.SSLMode,
		MaxIdleConns:    config.Database.MaxIdleConns,
		MaxOpenConns:    config.Database.MaxOpenConns,
		ConnMaxLifetime: config.Database.ConnMaxLifetime,
		ConnMaxIdleTime: config.Database.ConnMaxIdleTime,
	})
	if err != nil {
		logger.GetLogger().Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	if err := database.AutoMigrate(db); err != nil {
		logger.GetLogger().Fatal("Failed to run database migrations", zap.Error(err))
	}
	logger.GetLogger().Info("Database migrated successfully")

	// Seed errors are not fatal, the data may already exist
	if err := database.Seed(db); err != nil {
		logger.GetLogger().Error("Failed to seed database", zap.Error(err))
	} else {
		logger.GetLogger().Info("Database seeded successfully")
	}

	redisClient := redis.NewClient(redis.Config{
		Host:         config.Redis.Host,
		Port:         config.Redis.Port,
		Password:     config.Redis.Password,
		DB:           config.Redis.Database,
		Enabled:      config.Redis.Enabled,
		PoolSize:     config.Redis.PoolSize,
		MinIdleConns: config.Redis.MinIdleConns,
	}, logger.GetLogger())
	defer redisClient.Close()

	var mail mailer.Mailer
	if config.SMTP.Enabled {
		mail = mailer.NewSMTPMailer(mailer.SMTPConfig{
			Host:     config.SMTP.Host,
			Port:     config.SMTP.Port,
			Username: config.SMTP.Username,
			Password: config.SMTP.Password,
			From:     config.SMTP.From,
		}, logger.GetLogger())
	} else {
		mail = mailer.NewLogMailer(logger.GetLogger())
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	tokenRepo := repository.NewRefreshTokenRepository(db)
	sequenceRepo := repository.NewSequenceRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	vendorGroupRepo := repository.NewVendorGroupRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	customerGroupRepo := repository.NewCustomerGroupRepository(db)
	currencyRepo := repository.NewCurrencyRepository(db)
	genderRepo := repository.NewGenderRepository(db)
	configRepo := repository.NewConfigRepository(db)

	// Services
	tokenService := service.NewTokenService(config.JWT.Secret, config.JWT.ExpirationTime)
	navigationService := service.NewNavigationService(userRepo, redisClient)
	authService := service.NewAuthService(userRepo, tokenRepo, tokenService, mail, navigationService, config)
	userService := service.NewUserService(userRepo, roleRepo, tokenRepo, authService, navigationService)
	roleService := service.NewRoleService(roleRepo)
	vendorService := service.NewVendorService(vendorRepo, sequenceRepo)
	vendorGroupService := service.NewVendorGroupService(vendorGroupRepo)
	customerService := service.NewCustomerService(customerRepo, sequenceRepo)
	customerGroupService := service.NewCustomerGroupService(customerGroupRepo)
	currencyService := service.NewCurrencyService(currencyRepo)
	genderService := service.NewGenderService(genderRepo)
	configService := service.NewConfigService(configRepo)

	// Middleware and handlers
	jwtMiddleware := middleware.NewJWTMiddleware(tokenService, userRepo)

	r := router.NewRouter(
		handler.NewAuthHandler(authService),
		handler.NewUserHandler(userService),
		handler.NewRoleHandler(roleService),
		handler.NewVendorHandler(vendorService),
		handler.NewVendorGroupHandler(vendorGroupService),
		handler.NewCustomerHandler(customerService),
		handler.NewCustomerGroupHandler(customerGroupService),
		handler.NewCurrencyHandler(currencyService),
		handler.NewGenderHandler(genderService),
		handler.NewConfigHandler(configService),
		handler.NewNavigationHandler(navigationService),
		handler.NewHealthHandler(db, redisClient),
		jwtMiddleware,
		config,
	).SetupRoutes()

	go func() {
		logger.GetLogger().Info("Server starting",
			zap.String("port", config.App.Port))
		if err := r.Run(":" + config.App.Port); err != nil {
			logger.GetLogger().Fatal("Failed to start server",
				zap.Error(err),
				zap.String("port", config.App.Port))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.GetLogger().Info("Shutting down server...")
}
