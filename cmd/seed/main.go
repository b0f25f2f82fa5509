// Command seed loads demo users and parking lots into the database.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/parkwell/parkwell-go/internal/config"
	"github.com/parkwell/parkwell-go/internal/crypto"
	"github.com/parkwell/parkwell-go/internal/model"
	"github.com/parkwell/parkwell-go/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()
	ctx := context.Background()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := repository.RunMigrations(ctx, db); err != nil {
		slog.Error("running migrations", "error", err)
		os.Exit(1)
	}

	users := repository.NewUserRepository(db)
	lots := repository.NewParkingRepository(db)

	seedUser(ctx, users, "admin@parking.local", "Admin@123", "Admin", "User", model.RoleAdmin)
	seedUser(ctx, users, "attendant@parking.local", "Attend@nt1", "John", "Doe", model.RoleAttendant)

	for i := 1; i <= 5; i++ {
		lot := &model.ParkingLot{
			Code:            fmt.Sprintf("PARK%03d", i),
			Name:            fmt.Sprintf("Parking Lot %d", i),
			Location:        fmt.Sprintf("Location %d", i),
			NumberOfSpaces:  20 * i,
			AvailableSpaces: 20 * i,
			FeePerHour:      float64(5 * i),
		}
		if err := lots.Create(ctx, lot); err != nil {
			if errors.Is(err, repository.ErrDuplicateCode) {
				slog.Info("lot already seeded", "code", lot.Code)
				continue
			}
			slog.Error("seeding lot", "code", lot.Code, "error", err)
			os.Exit(1)
		}
		slog.Info("seeded lot", "code", lot.Code, "spaces", lot.NumberOfSpaces)
	}

	slog.Info("seed complete")
}

func seedUser(ctx context.Context, users *repository.UserRepository, email, password, first, last string, role model.Role) {
	hash, err := crypto.HashPassword(password)
	if err != nil {
		slog.Error("hashing seed password", "error", err)
		os.Exit(1)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    first,
		LastName:     last,
		Role:         role,
	}
	if err := users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			slog.Info("user already seeded", "email", email)
			return
		}
		slog.Error("seeding user", "email", email, "error", err)
		os.Exit(1)
	}
	slog.Info("seeded user", "email", email, "role", role)
}
