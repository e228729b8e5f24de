package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/cvargas/propiedades-api/internal/application/dto"
	"github.com/cvargas/propiedades-api/internal/domain"
	"github.com/cvargas/propiedades-api/internal/domain/entity"
	"github.com/cvargas/propiedades-api/internal/domain/repository"
)

// Mensajes de confirmación de la gestión de usuarios.
const (
	MsgUserCreated = "User created successfully."
	MsgUserDeleted = "User deleted successfully."
)

// UserUseCase gestión de cuentas desde el back office: a diferencia del
// registro público, aquí administración elige el rol.
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

func validRole(role string) bool {
	switch role {
	case entity.RoleAdmin, entity.RoleManager, entity.RoleTenant, entity.RoleUser:
		return true
	}
	return false
}

// Create registra una cuenta con el rol indicado (tenant por defecto).
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" || in.FullName == "" || in.Phone == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Password) < 6 {
		return nil, domain.ErrInvalidInput
	}
	if in.Role == "" {
		in.Role = entity.RoleTenant
	}
	if !validRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	exists, err := uc.userRepo.ExistsByUsernameOrEmail(in.Username, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		FullName:     in.FullName,
		Phone:        in.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// List devuelve todas las cuentas.
func (uc *UserUseCase) List() ([]*dto.UserResponse, error) {
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// Delete elimina una cuenta.
func (uc *UserUseCase) Delete(id string) error {
	u, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrNotFound
	}
	return uc.userRepo.Delete(id)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		FullName:  u.FullName,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}
