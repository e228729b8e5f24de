package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/cvargas/propiedades-api/internal/domain"
	"github.com/cvargas/propiedades-api/internal/domain/entity"
	"github.com/cvargas/propiedades-api/internal/domain/repository"
)

var _ repository.TenantRepository = (*TenantRepo)(nil)

// TenantRepo implementación del puerto TenantRepository sobre PostgreSQL (usable con pool o tx).
type TenantRepo struct {
	q Querier
}

// NewTenantRepository construye el adaptador de persistencia para inquilinos. Pasar pool o tx (Querier).
func NewTenantRepository(q Querier) *TenantRepo {
	return &TenantRepo{q: q}
}

// Create persiste un perfil de inquilino.
func (r *TenantRepo) Create(t *entity.Tenant) error {
	query := `
		INSERT INTO tenants (id, user_id, full_name, email, phone, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.UserID, t.FullName, t.Email, t.Phone, t.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tenant: %w", err)
	}
	return nil
}

// GetByID obtiene un perfil por ID; nil si no existe.
func (r *TenantRepo) GetByID(id string) (*entity.Tenant, error) {
	return r.getOne(`SELECT id, user_id, full_name, email, phone, created_at FROM tenants WHERE id = $1`, id)
}

// GetByUserID obtiene el perfil asociado a una cuenta; nil si no existe.
func (r *TenantRepo) GetByUserID(userID string) (*entity.Tenant, error) {
	return r.getOne(`SELECT id, user_id, full_name, email, phone, created_at FROM tenants WHERE user_id = $1`, userID)
}

func (r *TenantRepo) getOne(query string, arg any) (*entity.Tenant, error) {
	var t entity.Tenant
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&t.ID, &t.UserID, &t.FullName, &t.Email, &t.Phone, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	return &t, nil
}

// List devuelve todos los perfiles.
func (r *TenantRepo) List() ([]*entity.Tenant, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, user_id, full_name, email, phone, created_at FROM tenants ORDER BY full_name`)
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	defer rows.Close()

	var out []*entity.Tenant
	for rows.Next() {
		var t entity.Tenant
		if err := rows.Scan(&t.ID, &t.UserID, &t.FullName, &t.Email, &t.Phone, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan tenant: %w", err)
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}

// ListAccounts une tenants con users para el listado de administración.
func (r *TenantRepo) ListAccounts() ([]*repository.TenantAccount, error) {
	query := `
		SELECT t.id, t.user_id, t.full_name, t.email, t.phone, t.created_at,
		       u.username, u.email
		FROM tenants t
		JOIN users u ON u.id = t.user_id
		ORDER BY t.full_name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list tenant accounts: %w", err)
	}
	defer rows.Close()

	var out []*repository.TenantAccount
	for rows.Next() {
		var acc repository.TenantAccount
		if err := rows.Scan(
			&acc.ID, &acc.UserID, &acc.FullName, &acc.Email, &acc.Phone, &acc.CreatedAt,
			&acc.Username, &acc.UserEmail,
		); err != nil {
			return nil, fmt.Errorf("scan tenant account: %w", err)
		}
		out = append(out, &acc)
	}
	return out, rows.Err()
}

// Update actualiza el perfil.
func (r *TenantRepo) Update(t *entity.Tenant) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE tenants SET full_name = $2, email = $3, phone = $4 WHERE id = $1`,
		t.ID, t.FullName, t.Email, t.Phone,
	)
	if err != nil {
		return fmt.Errorf("update tenant: %w", err)
	}
	return nil
}

// Delete elimina el perfil.
func (r *TenantRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM tenants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tenant: %w", err)
	}
	return nil
}

// CountByFullName cuenta perfiles con ese full_name exacto (resolución de colisiones del sync).
func (r *TenantRepo) CountByFullName(fullName string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM tenants WHERE full_name = $1`, fullName,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count tenants by name: %w", err)
	}
	return n, nil
}
