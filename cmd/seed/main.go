package main

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"travelai/internal/config"
	"travelai/internal/db"
	"travelai/internal/model"
	"travelai/internal/repository"
)

// testUser is a well-known development account.
type testUser struct {
	Email    string
	Name     string
	Password string
	Role     model.Role
}

var testUsers = []testUser{
	{Email: "user@test.com", Name: "Test User", Password: "123456", Role: model.RoleUser},
	{Email: "mod@test.com", Name: "Anna Moderator", Password: "123456", Role: model.RoleModerator},
	{Email: "admin@test.com", Name: "System Admin", Password: "123456", Role: model.RoleAdmin},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	users := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	for _, tu := range testUsers {
		existing, err := users.FindByEmail(ctx, tu.Email)
		if err == nil && existing != nil {
			log.Printf("User %s already exists, skipping", tu.Email)
			continue
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to check user %s: %v", tu.Email, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(tu.Password), cfg.BcryptCost)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", tu.Email, err)
		}

		user := &model.User{
			Email:        tu.Email,
			Name:         tu.Name,
			PasswordHash: string(hash),
			Role:         tu.Role,
		}
		if err := users.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create user %s: %v", tu.Email, err)
		}
		log.Printf("Created user: %s (%s)", tu.Email, tu.Role)
	}

	log.Println("Seed completed")
}
