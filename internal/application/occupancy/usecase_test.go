package occupancy_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/cvargas/propiedades-api/internal/application/occupancy"
	"github.com/cvargas/propiedades-api/internal/domain"
	"github.com/cvargas/propiedades-api/internal/domain/entity"
	"github.com/cvargas/propiedades-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func newTestUseCase(s *memStore) *occupancy.UseCase {
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return occupancy.NewUseCase(
		&memTxRunner{s},
		&fakeTenantRepo{s},
		&fakeLeaseRepo{s},
		&fakeUserRepo{s},
		log,
	)
}

// seedTenantWithUser crea un usuario con rol tenant y su perfil asociado.
func seedTenantWithUser(s *memStore, tenantID, userID, username, fullName string) {
	s.users[userID] = &entity.User{
		ID:       userID,
		Username: username,
		Email:    username + "@example.com",
		Role:     entity.RoleTenant,
		FullName: fullName,
	}
	s.tenants[tenantID] = &entity.Tenant{
		ID:       tenantID,
		UserID:   userID,
		FullName: fullName,
		Email:    username + "@example.com",
	}
}

func seedVacantUnit(s *memStore, unitID, name string) {
	s.units[unitID] = &entity.Unit{
		ID:              unitID,
		PropertyID:      "prop-1",
		UnitName:        name,
		RentAmount:      decimal.Zero,
		OccupancyStatus: entity.OccupancyVacant,
	}
}

func validLeaseInput(tenantID, unitID string) occupancy.LeaseInput {
	return occupancy.LeaseInput{
		TenantID:   tenantID,
		UnitID:     unitID,
		LeaseStart: "2025-01-01",
		LeaseEnd:   "2025-12-31",
		RentAmount: decimal.NewFromInt(250000),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateLease
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateLease_UnidadQuedaOcupadaConRenta(t *testing.T) {
	s := newMemStore()
	seedTenantWithUser(s, "t-5", "u-5", "maria", "Maria Lopez")
	seedVacantUnit(s, "unit-12", "A-12")
	uc := newTestUseCase(s)

	lease, err := uc.CreateLease(context.Background(), validLeaseInput("t-5", "unit-12"))
	require.NoError(t, err, "el lease válido debe crearse sin error")
	require.NotNil(t, lease)

	assert.Len(t, s.leases, 1, "debe existir exactamente un lease")
	stored := s.leases[lease.ID]
	require.NotNil(t, stored, "el lease debe quedar persistido")
	assert.Equal(t, "t-5", stored.TenantID)
	assert.Equal(t, "unit-12", stored.UnitID)

	unit := s.units["unit-12"]
	assert.Equal(t, entity.OccupancyOccupied, unit.OccupancyStatus,
		"la unidad debe quedar ocupada")
	assert.True(t, unit.RentAmount.Equal(decimal.NewFromInt(250000)),
		"la renta de la unidad debe igualar la renta pactada")
}

func TestCreateLease_FechasInvertidasNoEscribeNada(t *testing.T) {
	s := newMemStore()
	seedTenantWithUser(s, "t-5", "u-5", "maria", "Maria Lopez")
	seedVacantUnit(s, "unit-12", "A-12")
	uc := newTestUseCase(s)

	input := validLeaseInput("t-5", "unit-12")
	input.LeaseStart = "2025-12-31"
	input.LeaseEnd = "2025-01-01"

	_, err := uc.CreateLease(context.Background(), input)
	require.ErrorIs(t, err, domain.ErrInvalidInput,
		"start >= end debe fallar como error de validación")

	assert.Empty(t, s.leases, "no debe escribirse ningún lease")
	assert.Equal(t, entity.OccupancyVacant, s.units["unit-12"].OccupancyStatus,
		"la unidad debe seguir vacante")
}

func TestCreateLease_StartIgualEndFalla(t *testing.T) {
	s := newMemStore()
	seedTenantWithUser(s, "t-5", "u-5", "maria", "Maria Lopez")
	seedVacantUnit(s, "unit-12", "A-12")
	uc := newTestUseCase(s)

	input := validLeaseInput("t-5", "unit-12")
	input.LeaseEnd = input.LeaseStart

	_, err := uc.CreateLease(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateLease_RentaCeroFalla(t *testing.T) {
	s := newMemStore()
	seedTenantWithUser(s, "t-5", "u-5", "maria", "Maria Lopez")
	seedVacantUnit(s, "unit-12", "A-12")
	uc := newTestUseCase(s)

	input := validLeaseInput("t-5", "unit-12")
	input.RentAmount = decimal.Zero

	_, err := uc.CreateLease(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "renta <= 0 debe rechazarse")
}

func TestCreateLease_InquilinoInexistenteNotFound(t *testing.T) {
	s := newMemStore()
	seedVacantUnit(s, "unit-12", "A-12")
	uc := newTestUseCase(s)

	_, err := uc.CreateLease(context.Background(), validLeaseInput("no-existe", "unit-12"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, s.leases)
}

func TestCreateLease_UnidadInexistenteNotFound(t *testing.T) {
	s := newMemStore()
	seedTenantWithUser(s, "t-5", "u-5", "maria", "Maria Lopez")
	uc := newTestUseCase(s)

	_, err := uc.CreateLease(context.Background(), validLeaseInput("t-5", "no-existe"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, s.leases)
}

// Caso: falla el UPDATE de la unidad a mitad de la tx → el INSERT del lease
// debe revertirse (ambas escrituras confirman juntas o ninguna).
func TestCreateLease_FalloEnUnidadRevierteLease(t *testing.T) {
	s := newMemStore()
	seedTenantWithUser(s, "t-5", "u-5", "maria", "Maria Lopez")
	seedVacantUnit(s, "unit-12", "A-12")
	s.failMarkOccupied = true
	uc := newTestUseCase(s)

	_, err := uc.CreateLease(context.Background(), validLeaseInput("t-5", "unit-12"))
	require.Error(t, err, "el fallo de storage debe propagarse")

	assert.Empty(t, s.leases, "el insert del lease debe haberse revertido")
	assert.Equal(t, entity.OccupancyVacant, s.units["unit-12"].OccupancyStatus)
}

// ──────────────────────────────────────────────────────────────────────────────
// EditLease
// ──────────────────────────────────────────────────────────────────────────────

func TestEditLease_ActualizaLeaseYRentaDeUnidad(t *testing.T) {
	s := newMemStore()
	seedTenantWithUser(s, "t-5", "u-5", "maria", "Maria Lopez")
	seedVacantUnit(s, "unit-12", "A-12")
	uc := newTestUseCase(s)

	lease, err := uc.CreateLease(context.Background(), validLeaseInput("t-5", "unit-12"))
	require.NoError(t, err)

	input := validLeaseInput("t-5", "unit-12")
	input.RentAmount = decimal.NewFromInt(300000)
	require.NoError(t, uc.EditLease(context.Background(), lease.ID, input))

	assert.True(t, s.leases[lease.ID].RentAmount.Equal(decimal.NewFromInt(300000)))
	assert.True(t, s.units["unit-12"].RentAmount.Equal(decimal.NewFromInt(300000)),
		"la renta derivada de la unidad debe actualizarse")
}

// Caso heredado: al cambiar de unidad, la anterior NO vuelve a 'vacant'.
func TestEditLease_CambioDeUnidadNoDesocupaLaAnterior(t *testing.T) {
	s := newMemStore()
	seedTenantWithUser(s, "t-5", "u-5", "maria", "Maria Lopez")
	seedVacantUnit(s, "unit-12", "A-12")
	seedVacantUnit(s, "unit-13", "A-13")
	uc := newTestUseCase(s)

	lease, err := uc.CreateLease(context.Background(), validLeaseInput("t-5", "unit-12"))
	require.NoError(t, err)
	require.Equal(t, entity.OccupancyOccupied, s.units["unit-12"].OccupancyStatus)

	require.NoError(t, uc.EditLease(context.Background(), lease.ID, validLeaseInput("t-5", "unit-13")))

	assert.Equal(t, "unit-13", s.leases[lease.ID].UnitID)
	assert.Equal(t, entity.OccupancyOccupied, s.units["unit-12"].OccupancyStatus,
		"la unidad anterior nunca se auto-desocupa")
}

func TestEditLease_LeaseInexistenteNotFound(t *testing.T) {
	s := newMemStore()
	seedTenantWithUser(s, "t-5", "u-5", "maria", "Maria Lopez")
	seedVacantUnit(s, "unit-12", "A-12")
	uc := newTestUseCase(s)

	err := uc.EditLease(context.Background(), "no-existe", validLeaseInput("t-5", "unit-12"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// DeleteLease
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteLease_ConPagosFallaYConserva(t *testing.T) {
	s := newMemStore()
	seedTenantWithUser(s, "t-5", "u-5", "maria", "Maria Lopez")
	seedVacantUnit(s, "unit-12", "A-12")
	uc := newTestUseCase(s)

	lease, err := uc.CreateLease(context.Background(), validLeaseInput("t-5", "unit-12"))
	require.NoError(t, err)

	s.payments[lease.ID] = []*entity.RentPayment{{
		ID: "p-1", LeaseID: lease.ID, TenantID: "t-5",
		Amount: decimal.NewFromInt(250000), Status: entity.PaymentCompleted,
	}}

	err = uc.DeleteLease(context.Background(), lease.ID)
	require.ErrorIs(t, err, domain.ErrLeaseHasPayments)
	assert.Equal(t, "Cannot delete lease with associated payments.", err.Error(),
		"el mensaje al usuario debe preservarse tal cual")
	assert.Contains(t, s.leases, lease.ID, "el lease debe seguir presente")
}

func TestDeleteLease_SinPagosElimina(t *testing.T) {
	s := newMemStore()
	seedTenantWithUser(s, "t-5", "u-5", "maria", "Maria Lopez")
	seedVacantUnit(s, "unit-12", "A-12")
	uc := newTestUseCase(s)

	lease, err := uc.CreateLease(context.Background(), validLeaseInput("t-5", "unit-12"))
	require.NoError(t, err)

	require.NoError(t, uc.DeleteLease(context.Background(), lease.ID))
	assert.NotContains(t, s.leases, lease.ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// EditTenant
// ──────────────────────────────────────────────────────────────────────────────

func TestEditTenant_ActualizaCuentaYPerfil(t *testing.T) {
	s := newMemStore()
	seedTenantWithUser(s, "t-5", "u-5", "maria", "Maria Lopez")
	uc := newTestUseCase(s)

	err := uc.EditTenant(context.Background(), "t-5", occupancy.TenantInput{
		FullName: "Maria Fernanda Lopez",
		Email:    "maria.f@example.com",
		Phone:    "+255700000001",
		Username: "mariaf",
		Password: "nuevo-secreto",
	})
	require.NoError(t, err)

	user := s.users["u-5"]
	assert.Equal(t, "mariaf", user.Username)
	assert.Equal(t, "maria.f@example.com", user.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("nuevo-secreto")),
		"la nueva contraseña debe quedar hasheada con bcrypt")

	tenant := s.tenants["t-5"]
	assert.Equal(t, "Maria Fernanda Lopez", tenant.FullName)
	assert.Equal(t, "+255700000001", tenant.Phone)
}

func TestEditTenant_PasswordVacioConservaHash(t *testing.T) {
	s := newMemStore()
	seedTenantWithUser(s, "t-5", "u-5", "maria", "Maria Lopez")
	s.users["u-5"].PasswordHash = "hash-original"
	uc := newTestUseCase(s)

	err := uc.EditTenant(context.Background(), "t-5", occupancy.TenantInput{
		FullName: "Maria Lopez",
		Email:    "maria@example.com",
		Username: "maria",
	})
	require.NoError(t, err)
	assert.Equal(t, "hash-original", s.users["u-5"].PasswordHash,
		"sin contraseña nueva el hash no debe cambiar")
}

func TestEditTenant_UsernameCortoFalla(t *testing.T) {
	s := newMemStore()
	seedTenantWithUser(s, "t-5", "u-5", "maria", "Maria Lopez")
	uc := newTestUseCase(s)

	err := uc.EditTenant(context.Background(), "t-5", occupancy.TenantInput{
		FullName: "Maria Lopez",
		Email:    "maria@example.com",
		Username: "ma",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "Username must be at least 3 characters.", err.Error())
}

func TestEditTenant_PasswordCortoFalla(t *testing.T) {
	s := newMemStore()
	seedTenantWithUser(s, "t-5", "u-5", "maria", "Maria Lopez")
	uc := newTestUseCase(s)

	err := uc.EditTenant(context.Background(), "t-5", occupancy.TenantInput{
		FullName: "Maria Lopez",
		Email:    "maria@example.com",
		Username: "maria",
		Password: "12345",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "Password must be at least 6 characters.", err.Error())
}

func TestEditTenant_UsernameAjenoColisiona(t *testing.T) {
	s := newMemStore()
	seedTenantWithUser(s, "t-5", "u-5", "maria", "Maria Lopez")
	seedTenantWithUser(s, "t-6", "u-6", "pedro", "Pedro Gomez")
	uc := newTestUseCase(s)

	err := uc.EditTenant(context.Background(), "t-5", occupancy.TenantInput{
		FullName: "Maria Lopez",
		Email:    "maria@example.com",
		Username: "pedro",
	})
	require.ErrorIs(t, err, domain.ErrUsernameTaken)
	assert.Equal(t, "Username already exists.", err.Error())
	assert.Equal(t, "maria", s.users["u-5"].Username, "la cuenta no debe modificarse")
}

// El username propio sin cambios no cuenta como colisión.
func TestEditTenant_UsernamePropioNoColisiona(t *testing.T) {
	s := newMemStore()
	seedTenantWithUser(s, "t-5", "u-5", "maria", "Maria Lopez")
	uc := newTestUseCase(s)

	err := uc.EditTenant(context.Background(), "t-5", occupancy.TenantInput{
		FullName: "Maria Lopez",
		Email:    "maria@example.com",
		Username: "maria",
	})
	assert.NoError(t, err)
}

func TestEditTenant_InexistenteNotFound(t *testing.T) {
	s := newMemStore()
	uc := newTestUseCase(s)

	err := uc.EditTenant(context.Background(), "no-existe", occupancy.TenantInput{
		FullName: "X Y",
		Email:    "x@example.com",
		Username: "xyz",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// DeleteTenant
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteTenant_ConLeasesFallaYConservaFilas(t *testing.T) {
	s := newMemStore()
	seedTenantWithUser(s, "t-5", "u-5", "maria", "Maria Lopez")
	seedVacantUnit(s, "unit-12", "A-12")
	uc := newTestUseCase(s)

	_, err := uc.CreateLease(context.Background(), validLeaseInput("t-5", "unit-12"))
	require.NoError(t, err)

	err = uc.DeleteTenant(context.Background(), "t-5")
	require.ErrorIs(t, err, domain.ErrTenantHasLeases)
	assert.Equal(t, "Cannot delete tenant with active leases.", err.Error())

	assert.Contains(t, s.tenants, "t-5", "el perfil debe seguir intacto")
	assert.Contains(t, s.users, "u-5", "la cuenta debe seguir intacta")
}

func TestDeleteTenant_SinLeasesEliminaPerfilYCuenta(t *testing.T) {
	s := newMemStore()
	seedTenantWithUser(s, "t-5", "u-5", "maria", "Maria Lopez")
	uc := newTestUseCase(s)

	require.NoError(t, uc.DeleteTenant(context.Background(), "t-5"))
	assert.NotContains(t, s.tenants, "t-5")
	assert.NotContains(t, s.users, "u-5", "perfil y cuenta se eliminan juntos")
}
