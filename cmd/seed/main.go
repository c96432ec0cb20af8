package main

import (
	"context"
	"errors"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"homehub/internal/config"
	"homehub/internal/db"
	"homehub/internal/model"
	"homehub/internal/repository"
)

// Seeds the initial admin account. Safe to run repeatedly: if a user with
// ADMIN_EMAIL already exists it is promoted to admin instead of duplicated.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Property{},
		&model.Post{},
		&model.Like{},
		&model.Comment{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	email := getenv("ADMIN_EMAIL", "admin@homehub.local")
	password := getenv("ADMIN_PASSWORD", "changeme")
	name := getenv("ADMIN_NAME", "Admin")

	users := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	existing, err := users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.IsAdmin {
			log.Printf("Admin %s already seeded, nothing to do", email)
			return
		}
		existing.IsAdmin = true
		if err := users.Update(ctx, existing); err != nil {
			log.Fatalf("Failed to promote existing user: %v", err)
		}
		log.Printf("Promoted existing user %s to admin", email)
	case errors.Is(err, gorm.ErrRecordNotFound):
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		admin := &model.User{
			Name:         name,
			Email:        email,
			PasswordHash: string(hash),
			IsAdmin:      true,
		}
		if err := users.Create(ctx, admin); err != nil {
			log.Fatalf("Failed to create admin: %v", err)
		}
		log.Printf("Created admin %s (id=%d)", email, admin.ID)
	default:
		log.Fatalf("Failed to look up admin: %v", err)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
