package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/cvargas/propiedades-api/internal/application/dto"
	"github.com/cvargas/propiedades-api/internal/application/usecase"
	"github.com/cvargas/propiedades-api/internal/domain"
	"github.com/cvargas/propiedades-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User // por ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) IsUsernameTaken(username, excludeUserID string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username && u.ID != excludeUserID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) ListByRoles(roles ...string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		for _, role := range roles {
			if u.Role == role {
				out = append(out, u)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func validCreateUserRequest() dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Username: "mwangi",
		Email:    "mwangi@example.com",
		Password: "Secret123",
		Role:     entity.RoleManager,
		FullName: "Juma Mwangi",
		Phone:    "+255700000010",
	}
}

func TestUserCreate_GuardaHashYRol(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Create(validCreateUserRequest())
	require.NoError(t, err)
	assert.Equal(t, "mwangi", out.Username)
	assert.Equal(t, entity.RoleManager, out.Role)

	stored, _ := repo.GetByUsername("mwangi")
	require.NotNil(t, stored)
	assert.NoError(t,
		bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Secret123")),
		"la contraseña debe guardarse hasheada con bcrypt")
	assert.NotEqual(t, "Secret123", stored.PasswordHash)
}

func TestUserCreate_RolVacioQuedaTenant(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	in := validCreateUserRequest()
	in.Role = ""
	out, err := uc.Create(in)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleTenant, out.Role)
}

func TestUserCreate_ValidaCampos(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	casos := []func(*dto.CreateUserRequest){
		func(in *dto.CreateUserRequest) { in.Username = "" },
		func(in *dto.CreateUserRequest) { in.Email = "" },
		func(in *dto.CreateUserRequest) { in.Password = "ab3" }, // < 6
		func(in *dto.CreateUserRequest) { in.FullName = "" },
		func(in *dto.CreateUserRequest) { in.Phone = "" },
		func(in *dto.CreateUserRequest) { in.Role = "superadmin" },
	}
	for _, mutar := range casos {
		in := validCreateUserRequest()
		mutar(&in)
		_, err := uc.Create(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestUserCreate_DuplicadoRechazado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(validCreateUserRequest())
	require.NoError(t, err)

	// mismo username, otro email
	in := validCreateUserRequest()
	in.Email = "otro@example.com"
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// mismo email, otro username
	in = validCreateUserRequest()
	in.Username = "otro"
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUserDelete_InexistenteEsNotFound(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	err := uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserDelete_EliminaLaCuenta(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Create(validCreateUserRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(out.ID))
	remaining, _ := repo.List()
	assert.Empty(t, remaining)
}
