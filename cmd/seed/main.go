// seed inserta usuarios de prueba (admin, manager y dos tenants) si no existen.
//
// Uso: go run ./cmd/seed
// Idempotente: los usuarios que ya existen se saltan.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/cvargas/propiedades-api/internal/domain/entity"
	"github.com/cvargas/propiedades-api/internal/infrastructure/postgres"
	"github.com/cvargas/propiedades-api/pkg/config"
)

type seedUser struct {
	username string
	email    string
	password string
	role     string
	fullName string
}

var users = []seedUser{
	{username: "admin1", email: "admin1@example.com", password: "AdminPass123", role: entity.RoleAdmin, fullName: "Admin Uno"},
	{username: "manager1", email: "manager1@example.com", password: "ManagerPass123", role: entity.RoleManager, fullName: "Manager Uno"},
	{username: "tenant1", email: "tenant1@example.com", password: "TenantPass123", role: entity.RoleTenant, fullName: "Tenant Uno"},
	{username: "tenant2", email: "tenant2@example.com", password: "TenantPass123", role: entity.RoleTenant, fullName: "Tenant Dos"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)

	for _, u := range users {
		exists, err := userRepo.ExistsByUsernameOrEmail(u.username, u.email)
		if err != nil {
			fmt.Fprintf(os.Stderr, "verificar usuario %s: %v\n", u.username, err)
			os.Exit(1)
		}
		if exists {
			fmt.Printf("User %s already exists.\n", u.username)
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "hashear contraseña de %s: %v\n", u.username, err)
			os.Exit(1)
		}
		now := time.Now()
		if err := userRepo.Create(&entity.User{
			ID:           uuid.New().String(),
			Username:     u.username,
			Email:        u.email,
			PasswordHash: string(hash),
			Role:         u.role,
			FullName:     u.fullName,
			CreatedAt:    now,
			UpdatedAt:    now,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "insertar usuario %s: %v\n", u.username, err)
			os.Exit(1)
		}
		fmt.Printf("Inserted user: %s\n", u.username)
	}
}
