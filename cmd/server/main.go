package main

import (
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"medibook/docs"

	"medibook/internal/auth"
	"medibook/internal/cache"
	"medibook/internal/config"
	"medibook/internal/db"
	"medibook/internal/handler"
	"medibook/internal/model"
	"medibook/internal/repository"
	"medibook/internal/router"
	"medibook/internal/service"
)

// @title Hospital Appointment Booking API
// @version 1.0
// @description Multi-tenant hospital appointment booking backend with JWT authentication.
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

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Appointment{},
			&model.Availability{},
			&model.Slot{},
			&model.User{},
			&model.Hospital{},
			&model.Specialization{},
			&model.Role{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Role{},
		&model.Specialization{},
		&model.Hospital{},
		&model.User{},
		&model.Availability{},
		&model.Slot{},
		&model.Appointment{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	roleRepo := repository.NewRoleRepository(gormDB)
	specializationRepo := repository.NewSpecializationRepository(gormDB)
	hospitalRepo := repository.NewHospitalRepository(gormDB)
	availabilityRepo := repository.NewAvailabilityRepository(gormDB)
	slotRepo := repository.NewSlotRepository(gormDB)
	appointmentRepo := repository.NewAppointmentRepository(gormDB)

	// Initialize auth components
	hasher := auth.NewPasswordHasher(cfg.HashIterations)
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, hasher, jwtService, tokenStore)
	userService := service.NewUserService(userRepo, hasher, cacheClient)
	roleService := service.NewRoleService(roleRepo)
	specializationService := service.NewSpecializationService(specializationRepo)
	hospitalService := service.NewHospitalService(hospitalRepo, cacheClient)
	availabilityService := service.NewAvailabilityService(availabilityRepo)
	slotService := service.NewSlotService(slotRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleService)
	specializationHandler := handler.NewSpecializationHandler(specializationService)
	hospitalHandler := handler.NewHospitalHandler(hospitalService)
	availabilityHandler := handler.NewAvailabilityHandler(availabilityService)
	slotHandler := handler.NewSlotHandler(slotService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		roleHandler,
		specializationHandler,
		hospitalHandler,
		availabilityHandler,
		slotHandler,
		appointmentHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
