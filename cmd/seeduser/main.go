// cmd/seeduser/main.go — creates or resets a demo user.
// Usage: go run ./cmd/seeduser [username] [password] [role]
package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"os"

	"orionpos/internal/config"
	"orionpos/internal/infra"
	"orionpos/internal/model"
	"orionpos/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	username := "demo"
	password := "demo1234"
	role := model.RoleCashier
	if len(os.Args) > 1 {
		username = os.Args[1]
	}
	if len(os.Args) > 2 {
		password = os.Args[2]
	}
	if len(os.Args) > 3 {
		role = os.Args[3]
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("config error: %v", err)
	}
	db, err := infra.NewDatabase(cfg.DBDriver, cfg.DSN())
	if err != nil {
		stdlog.Fatalf("db connect error: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		stdlog.Fatalf("bcrypt error: %v", err)
	}

	ctx := context.Background()
	repo := repository.NewUserRepository(db)

	existing, err := repo.FindByUsername(ctx, username)
	switch {
	case err == nil:
		existing.PasswordHash = string(hash)
		existing.Role = role
		if err := repo.Update(ctx, existing); err != nil {
			stdlog.Fatalf("update error: %v", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		u := &model.User{
			Username:     username,
			PasswordHash: string(hash),
			Role:         role,
			FullName:     "Demo User",
		}
		if err := repo.Create(ctx, u); err != nil {
			stdlog.Fatalf("insert error: %v", err)
		}
	default:
		stdlog.Fatalf("lookup error: %v", err)
	}

	fmt.Printf("user %q created/updated with role %s\n", username, role)
}
