package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/RomanBrocki/ponto-online-go/internal/config"
	"github.com/RomanBrocki/ponto-online-go/internal/domain/user"
	"github.com/RomanBrocki/ponto-online-go/internal/pkg/database"
	"github.com/RomanBrocki/ponto-online-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// Seeds the two accounts the app ships with: the employer (admin) and the
// employee. Credentials come from SEED_* env vars so nothing is hardcoded.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	ctx := context.Background()

	seeds := []struct {
		emailVar    string
		passwordVar string
		nameVar     string
		role        user.Role
	}{
		{"SEED_ADMIN_EMAIL", "SEED_ADMIN_PASSWORD", "SEED_ADMIN_NAME", user.RoleAdmin},
		{"SEED_EMPLOYEE_EMAIL", "SEED_EMPLOYEE_PASSWORD", "SEED_EMPLOYEE_NAME", user.RoleEmployee},
	}

	for _, seed := range seeds {
		email := os.Getenv(seed.emailVar)
		password := os.Getenv(seed.passwordVar)
		name := os.Getenv(seed.nameVar)
		if email == "" || password == "" || name == "" {
			log.Fatalf("%s, %s and %s are required", seed.emailVar, seed.passwordVar, seed.nameVar)
		}
		if len(password) < 8 {
			log.Fatal(user.ErrInvalidPasswordLength)
		}

		if _, err := userRepo.GetByEmail(ctx, email); err == nil {
			fmt.Printf("User %s already exists, skipping\n", email)
			continue
		} else if !errors.Is(err, pgx.ErrNoRows) {
			log.Fatal("Error checking existing user: ", err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("Error hashing password: ", err)
		}
		passwordHash := string(hash)

		created, err := userRepo.Create(ctx, user.User{
			Email:        email,
			PasswordHash: &passwordHash,
			Name:         name,
			Role:         seed.role,
		})
		if err != nil {
			log.Fatal("Error creating user: ", err)
		}
		fmt.Printf("Created %s user %s (%s)\n", created.Role, created.Name, created.Email)
	}
}
