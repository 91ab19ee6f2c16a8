//go:build e2e

// Package dbtest seeds and resets reference data for end-to-end tests.
package dbtest

import (
	"context"
	"fmt"
	"time"

	"tourbook/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Fixed identities so tests can log in and book without extra lookups.
var (
	AdminUserID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	StaffUserID = uuid.MustParse("22222222-2222-2222-2222-222222222222")

	KayakActivityID    = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	FoodWalkActivityID = uuid.MustParse("44444444-4444-4444-4444-444444444444")
	RetiredActivityID  = uuid.MustParse("55555555-5555-5555-5555-555555555555")
)

const (
	AdminEmail   = "admin@tourbook.test"
	StaffEmail   = "staff@tourbook.test"
	TestPassword = "password123"
)

// SeedReferenceData inserts the users and activities shared by all e2e suites.
// Idempotent so suites can call it after every reset.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	hash, err := password.HashPassword(TestPassword)
	if err != nil {
		return fmt.Errorf("failed to hash test password: %w", err)
	}

	users := []struct {
		id    uuid.UUID
		email string
		role  string
	}{
		{AdminUserID, AdminEmail, "admin"},
		{StaffUserID, StaffEmail, "staff"},
	}
	for _, u := range users {
		_, err := pool.Exec(ctx, `
			INSERT INTO users (id, email, password_hash, role, is_active)
			VALUES ($1, $2, $3, $4, TRUE)
			ON CONFLICT (id) DO NOTHING`,
			u.id, u.email, hash, u.role)
		if err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.email, err)
		}
	}

	activities := []struct {
		id       uuid.UUID
		name     string
		slug     string
		price    float64
		capacity int
		active   bool
	}{
		{KayakActivityID, "Sunset Kayak Tour", "sunset-kayak-tour", 89.99, 12, true},
		{FoodWalkActivityID, "Old Town Food Walk", "old-town-food-walk", 65.00, 16, true},
		{RetiredActivityID, "Retired River Cruise", "retired-river-cruise", 120.00, 30, false},
	}
	for _, a := range activities {
		_, err := pool.Exec(ctx, `
			INSERT INTO activities (id, name, slug, description, location, duration_minutes, price, capacity, active)
			VALUES ($1, $2, $3, '', '', 120, $4, $5, $6)
			ON CONFLICT (id) DO NOTHING`,
			a.id, a.name, a.slug, a.price, a.capacity, a.active)
		if err != nil {
			return fmt.Errorf("failed to seed activity %s: %w", a.slug, err)
		}
	}

	return nil
}

// ResetDB truncates all mutable tables and reseeds the reference data.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `
		TRUNCATE booking_sensitive, bookings, customers, activities, users CASCADE`)
	if err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}

	return SeedReferenceData(pool)
}
