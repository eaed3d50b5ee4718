package main

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"medibook/internal/auth"
	"medibook/internal/config"
	"medibook/internal/db"
	"medibook/internal/model"
	"medibook/internal/repository"
)

const (
	adminEmail    = "admin@medibook.local"
	adminPassword = "ChangeMe123!"
)

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(
		&model.Role{},
		&model.Specialization{},
		&model.Hospital{},
		&model.User{},
		&model.Availability{},
		&model.Slot{},
		&model.Appointment{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	roleRepo := repository.NewRoleRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	hospitalRepo := repository.NewHospitalRepository(gormDB)

	// Seed roles
	roleIDs := make(map[string]uint)
	for _, name := range []string{model.RoleAdmin, model.RoleDoctor, model.RolePatient} {
		role, err := roleRepo.FindByName(ctx, name)
		if err == nil {
			log.Printf("Role %q already exists, skipping", name)
			roleIDs[name] = role.ID
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to look up role %q: %v", name, err)
		}
		role = &model.Role{Name: name}
		if err := roleRepo.Create(ctx, role); err != nil {
			log.Fatalf("Failed to create role %q: %v", name, err)
		}
		log.Printf("Created role %q", name)
		roleIDs[name] = role.ID
	}

	// Seed specializations
	specializations := []string{"Cardiology", "Dermatology", "Neurology", "Orthopedics", "Pediatrics"}
	for _, name := range specializations {
		var existing model.Specialization
		err := gormDB.WithContext(ctx).Where("name = ?", name).First(&existing).Error
		if err == nil {
			log.Printf("Specialization %q already exists, skipping", name)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to look up specialization %q: %v", name, err)
		}
		if err := gormDB.WithContext(ctx).Create(&model.Specialization{Name: name}).Error; err != nil {
			log.Fatalf("Failed to create specialization %q: %v", name, err)
		}
		log.Printf("Created specialization %q", name)
	}

	// Seed demo hospital
	exists, err := hospitalRepo.ExistsWithNameAndLocation(ctx, "City General", "Pune", 0)
	if err != nil {
		log.Fatalf("Failed to look up demo hospital: %v", err)
	}
	if exists {
		log.Println("Demo hospital already exists, skipping")
	} else {
		hospital := &model.Hospital{
			Name:       "City General",
			Location:   "Pune",
			TenantCode: "city-general-pune",
		}
		if err := hospitalRepo.Create(ctx, hospital); err != nil {
			log.Fatalf("Failed to create demo hospital: %v", err)
		}
		log.Printf("Created demo hospital %q (%s)", hospital.Name, hospital.Location)
	}

	// Seed admin user
	_, err = userRepo.FindByEmail(ctx, adminEmail)
	if err == nil {
		log.Println("Admin user already exists, skipping")
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		hasher := auth.NewPasswordHasher(cfg.HashIterations)
		passwordHash, err := hasher.Hash(adminPassword)
		if err != nil {
			log.Fatalf("Failed to hash admin password: %v", err)
		}
		admin := &model.User{
			Name:         "Administrator",
			Email:        adminEmail,
			MobileNumber: 9999999999,
			PasswordHash: passwordHash,
			RoleID:       roleIDs[model.RoleAdmin],
		}
		if err := userRepo.Create(ctx, admin); err != nil {
			log.Fatalf("Failed to create admin user: %v", err)
		}
		log.Printf("Created admin user %s (change the default password)", adminEmail)
	} else {
		log.Fatalf("Failed to look up admin user: %v", err)
	}

	log.Println("Seed completed successfully")
}
