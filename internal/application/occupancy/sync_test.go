package occupancy_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvargas/propiedades-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// SyncTenantUsers
// ──────────────────────────────────────────────────────────────────────────────

func TestSync_CreaPerfilParaUsuarioTenantSinPerfil(t *testing.T) {
	s := newMemStore()
	s.users["u-1"] = &entity.User{ID: "u-1", Username: "jdoe", Role: entity.RoleTenant, Email: "jdoe@example.com"}
	uc := newTestUseCase(s)

	res, err := uc.SyncTenantUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)
	assert.Equal(t, 0, res.Skipped)

	var created *entity.Tenant
	for _, tn := range s.tenants {
		if tn.UserID == "u-1" {
			created = tn
		}
	}
	require.NotNil(t, created, "debe crearse un perfil para el usuario sin perfil")
	assert.Equal(t, "jdoe", created.FullName, "el full_name se deriva del username")
	assert.Equal(t, "jdoe@example.com", created.Email)
}

// Caso de colisión: ya existe un perfil con full_name "jdoe" → el nuevo recibe "jdoe_1".
func TestSync_ColisionDeNombreAgregaSufijo(t *testing.T) {
	s := newMemStore()
	s.tenants["t-otro"] = &entity.Tenant{ID: "t-otro", UserID: "u-otro", FullName: "jdoe"}
	s.users["u-otro"] = &entity.User{ID: "u-otro", Username: "otro", Role: entity.RoleUser}
	s.users["u-1"] = &entity.User{ID: "u-1", Username: "jdoe", Role: entity.RoleTenant}
	uc := newTestUseCase(s)

	res, err := uc.SyncTenantUsers(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, res.Created)

	var created *entity.Tenant
	for _, tn := range s.tenants {
		if tn.UserID == "u-1" {
			created = tn
		}
	}
	require.NotNil(t, created)
	assert.Equal(t, "jdoe_1", created.FullName,
		"la colisión se resuelve con sufijo numérico incremental")
}

// Dos colisiones consecutivas: "jdoe" y "jdoe_1" ocupados → "jdoe_2".
func TestSync_DobleColisionIncrementaSufijo(t *testing.T) {
	s := newMemStore()
	s.tenants["t-a"] = &entity.Tenant{ID: "t-a", UserID: "u-a", FullName: "jdoe"}
	s.tenants["t-b"] = &entity.Tenant{ID: "t-b", UserID: "u-b", FullName: "jdoe_1"}
	s.users["u-1"] = &entity.User{ID: "u-1", Username: "jdoe", Role: entity.RoleTenant}
	uc := newTestUseCase(s)

	res, err := uc.SyncTenantUsers(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, res.Created)

	names := map[string]bool{}
	for _, tn := range s.tenants {
		names[tn.FullName] = true
	}
	assert.True(t, names["jdoe_2"], "el sufijo debe incrementarse hasta quedar libre")
}

func TestSync_UsernameEnBlancoSeOmite(t *testing.T) {
	s := newMemStore()
	s.users["u-1"] = &entity.User{ID: "u-1", Username: "   ", Role: entity.RoleTenant}
	uc := newTestUseCase(s)

	res, err := uc.SyncTenantUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Created)
	assert.Equal(t, 1, res.Skipped, "usernames en blanco se saltan y se loggean")
	assert.Empty(t, s.tenants)
}

func TestSync_UsuarioConPerfilNoSeDuplica(t *testing.T) {
	s := newMemStore()
	seedTenantWithUser(s, "t-5", "u-5", "maria", "Maria Lopez")
	uc := newTestUseCase(s)

	res, err := uc.SyncTenantUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Created)
	assert.Len(t, s.tenants, 1)
}

// Usuarios con rol distinto de tenant no participan del sync.
func TestSync_IgnoraRolesNoTenant(t *testing.T) {
	s := newMemStore()
	s.users["u-adm"] = &entity.User{ID: "u-adm", Username: "admin", Role: entity.RoleAdmin}
	uc := newTestUseCase(s)

	res, err := uc.SyncTenantUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Created)
	assert.Empty(t, s.tenants)
}
