package repository

import "github.com/cvargas/propiedades-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	// ExistsByUsernameOrEmail para el registro público (username o email ya tomados).
	ExistsByUsernameOrEmail(username, email string) (bool, error)
	// IsUsernameTaken busca colisión exacta (case-sensitive) excluyendo un usuario.
	// excludeUserID vacío = sin exclusión.
	IsUsernameTaken(username, excludeUserID string) (bool, error)
	Update(user *entity.User) error
	List() ([]*entity.User, error)
	// ListByRoles lista usuarios cuyo rol esté en roles (sync de inquilinos, destinatarios admin).
	ListByRoles(roles ...string) ([]*entity.User, error)
	Delete(id string) error
}
