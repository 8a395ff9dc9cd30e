package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"handpay/internal/config"
	"handpay/internal/db"
	apperrors "handpay/internal/errors"
	"handpay/internal/logging"
	"handpay/internal/repository"
	"handpay/internal/service"
)

const defaultSeedFile = "seed_users.json"

// SeedUser is one entry of the seed file.
type SeedUser struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Address   string    `json:"address"`
	Card      string    `json:"card"`
	Signature []float64 `json:"signature"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := logging.New(cfg.Log)

	path := defaultSeedFile
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	gormDB, err := db.Open(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close(gormDB)

	if err := db.InitSchema(gormDB); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("Failed to open seed file: %v", err)
	}
	defer f.Close()

	users, err := readSeedUsers(f)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}
	logger.Info("seed file loaded", "path", path, "users", len(users))

	userService := service.NewUserService(repository.NewUserRepository(gormDB), logger)
	created, skipped, err := seedUsers(context.Background(), userService, users)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	logger.Info("seed completed", "created", created, "skipped_existing", skipped)
}

// readSeedUsers decodes a JSON array of seed users.
func readSeedUsers(r io.Reader) ([]SeedUser, error) {
	var users []SeedUser
	if err := json.NewDecoder(r).Decode(&users); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return users, nil
}

// seedUsers registers each user, skipping names that already exist.
func seedUsers(ctx context.Context, svc service.UserService, users []SeedUser) (created int, skipped int, err error) {
	for _, u := range users {
		_, err := svc.Register(ctx, service.RegisterInput{
			Name:      u.Name,
			Email:     u.Email,
			Password:  u.Password,
			Address:   u.Address,
			Card:      u.Card,
			Signature: u.Signature,
		})
		switch {
		case errors.Is(err, apperrors.ErrDuplicateName):
			skipped++
		case err != nil:
			return created, skipped, fmt.Errorf("register %s: %w", u.Name, err)
		default:
			created++
		}
	}
	return created, skipped, nil
}
