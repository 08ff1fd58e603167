package main

import (
	"context"

	"github.com/pageza/skinroutine/backend/internal/apperrors"
	"github.com/pageza/skinroutine/backend/config"
	"github.com/pageza/skinroutine/backend/internal/database"
	"github.com/pageza/skinroutine/backend/internal/logger"
	"github.com/pageza/skinroutine/backend/internal/service"
	"github.com/pageza/skinroutine/backend/internal/store"
	"github.com/pageza/skinroutine/backend/internal/types"
	"github.com/sirupsen/logrus"
)

const testPassword = "testpassword123"

var testUsers = []struct {
	username  string
	email     string
	allergies []string
}{
	{"johndoe", "john.doe@example.com", nil},
	{"janesmith", "jane.smith@example.com", []string{"Fragrance"}},
	{"bobwilson", "bob.wilson@example.com", []string{"honey", "oat"}},
	{"alicecooper", "alice.cooper@example.com", []string{"Retinol", "aloe"}},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.New("info", "text").WithError(err).Fatal("Failed to load configuration")
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	db, err := database.New(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	if err := database.RunMigrations(db, cfg.MigrationsDir, log); err != nil {
		log.WithError(err).Fatal("Failed to run migrations")
	}

	auth := service.NewAuthService(store.NewGormStore(db), cfg.JWTSecret, cfg.JWTTTL)
	ctx := context.Background()

	for _, u := range testUsers {
		_, err := auth.Register(ctx, &types.RegisterRequest{
			Username:        u.username,
			Email:           u.email,
			Password:        testPassword,
			ConfirmPassword: testPassword,
			Allergies:       u.allergies,
		})
		switch {
		case apperrors.IsConflict(err):
			log.WithField("email", u.email).Info("User already exists, skipping")
		case err != nil:
			log.WithError(err).WithField("email", u.email).Error("Failed to create user")
		default:
			log.WithFields(logrus.Fields{"email": u.email, "allergies": u.allergies}).Info("Created test user")
		}
	}

	log.WithField("password", testPassword).Info("Test users ready")
}
