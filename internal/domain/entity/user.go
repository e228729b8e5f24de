package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleTenant  = "tenant"
	RoleUser    = "user"
)

// User representa una cuenta del sistema. Un usuario con rol tenant
// posee como máximo un perfil de inquilino (tenants.user_id).
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, manager, tenant, user
	FullName     string
	Phone        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
