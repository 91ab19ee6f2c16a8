package main

import (
	"context"
	"log/slog"
	"os"

	"tourbook/internal/domain/activity"
	"tourbook/internal/infra/db"
	"tourbook/internal/infra/repository/converter"
	sqlc "tourbook/internal/infra/sqlc/generated"
	"tourbook/internal/pkg/config"
	"tourbook/internal/pkg/password"
	"tourbook/internal/pkg/pgconv"
)

type seedActivity struct {
	name            string
	description     string
	location        string
	durationMinutes int
	price           float64
	capacity        int
}

var seedActivities = []seedActivity{
	{"Old Town Walking Tour", "Two hours through the historic quarter with a local guide.", "Lisbon", 120, 25.00, 20},
	{"Sunset Sailing Trip", "Catamaran cruise along the coast with drinks included.", "Lisbon", 180, 65.50, 12},
	{"Wine Country Day Trip", "Full-day excursion with tastings at two family wineries.", "Douro Valley", 540, 129.99, 8},
	{"Sea Kayaking Adventure", "Guided paddle to hidden beaches, gear provided.", "Lagos", 240, 49.00, 10},
	{"Tile Painting Workshop", "Hands-on azulejo workshop; take your tile home.", "Porto", 150, 35.00, 14},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	ctx := context.Background()
	queries := sqlc.New()

	if err := seedAdminUser(ctx, queries, pool); err != nil {
		slog.Error("failed to seed admin user", "error", err)
		os.Exit(1)
	}

	for _, s := range seedActivities {
		if err := seedOneActivity(ctx, queries, pool, s); err != nil {
			slog.Error("failed to seed activity", "name", s.name, "error", err)
			os.Exit(1)
		}
	}

	slog.Info("seeding completed", "activities", len(seedActivities))
}

func seedAdminUser(ctx context.Context, queries *sqlc.Queries, db sqlc.DBTX) error {
	email := envOr("SEED_ADMIN_EMAIL", "admin@tourbook.local")
	plain := envOr("SEED_ADMIN_PASSWORD", "changeme-now")

	if _, err := queries.FindUserByEmail(ctx, db, email); err == nil {
		slog.Info("admin user already exists", "email", email)
		return nil
	} else if !pgconv.IsNoRows(err) {
		return err
	}

	hash, err := password.HashPassword(plain)
	if err != nil {
		return err
	}

	id, err := queries.CreateUser(ctx, db, sqlc.CreateUserParams{
		Email:        email,
		PasswordHash: hash,
		Role:         "admin",
		IsActive:     true,
	})
	if err != nil {
		return err
	}

	slog.Info("admin user created", "id", id, "email", email)
	return nil
}

func seedOneActivity(ctx context.Context, queries *sqlc.Queries, db sqlc.DBTX, s seedActivity) error {
	slug := activity.Slugify(s.name)

	if _, err := queries.GetActivityBySlug(ctx, db, slug); err == nil {
		slog.Info("activity already exists", "slug", slug)
		return nil
	} else if !pgconv.IsNoRows(err) {
		return err
	}

	entity, err := activity.NewActivity(s.name, slug, s.description, s.location, s.durationMinutes, s.price, s.capacity)
	if err != nil {
		return err
	}

	id, err := queries.CreateActivity(ctx, db, converter.ActivityToCreateParams(entity))
	if err != nil {
		return err
	}

	slog.Info("activity created", "id", id, "slug", slug)
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
