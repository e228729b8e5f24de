package occupancy_test

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cvargas/propiedades-api/internal/domain/entity"
	"github.com/cvargas/propiedades-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: un memStore compartido por los repos fake, con snapshot y
// restore para simular el rollback de la transacción.
// ──────────────────────────────────────────────────────────────────────────────

var errDBDown = errors.New("db down")

type memStore struct {
	tenants  map[string]*entity.Tenant
	users    map[string]*entity.User
	units    map[string]*entity.Unit
	leases   map[string]*entity.Lease
	payments map[string][]*entity.RentPayment // por lease_id

	failMarkOccupied bool
}

func newMemStore() *memStore {
	return &memStore{
		tenants:  map[string]*entity.Tenant{},
		users:    map[string]*entity.User{},
		units:    map[string]*entity.Unit{},
		leases:   map[string]*entity.Lease{},
		payments: map[string][]*entity.RentPayment{},
	}
}

type memSnapshot struct {
	tenants map[string]*entity.Tenant
	users   map[string]*entity.User
	units   map[string]*entity.Unit
	leases  map[string]*entity.Lease
}

func (s *memStore) snapshot() memSnapshot {
	snap := memSnapshot{
		tenants: map[string]*entity.Tenant{},
		users:   map[string]*entity.User{},
		units:   map[string]*entity.Unit{},
		leases:  map[string]*entity.Lease{},
	}
	for k, v := range s.tenants {
		c := *v
		snap.tenants[k] = &c
	}
	for k, v := range s.users {
		c := *v
		snap.users[k] = &c
	}
	for k, v := range s.units {
		c := *v
		snap.units[k] = &c
	}
	for k, v := range s.leases {
		c := *v
		snap.leases[k] = &c
	}
	return snap
}

func (s *memStore) restore(snap memSnapshot) {
	s.tenants = snap.tenants
	s.users = snap.users
	s.units = snap.units
	s.leases = snap.leases
}

// memTxRunner llama a fn con repos atados al store; si fn falla, restaura el
// estado previo (equivalente al ROLLBACK real).
type memTxRunner struct{ s *memStore }

func (r *memTxRunner) Run(ctx context.Context, fn func(
	leaseRepo repository.LeaseRepository,
	unitRepo repository.UnitRepository,
	tenantRepo repository.TenantRepository,
	userRepo repository.UserRepository,
	paymentRepo repository.RentPaymentRepository,
) error) error {
	snap := r.s.snapshot()
	err := fn(
		&fakeLeaseRepo{r.s},
		&fakeUnitRepo{r.s},
		&fakeTenantRepo{r.s},
		&fakeUserRepo{r.s},
		&fakePaymentRepo{r.s},
	)
	if err != nil {
		r.s.restore(snap)
	}
	return err
}

// ── Tenant ────────────────────────────────────────────────────────────────────

type fakeTenantRepo struct{ s *memStore }

func (r *fakeTenantRepo) Create(t *entity.Tenant) error {
	c := *t
	r.s.tenants[t.ID] = &c
	return nil
}

func (r *fakeTenantRepo) GetByID(id string) (*entity.Tenant, error) {
	t, ok := r.s.tenants[id]
	if !ok {
		return nil, nil
	}
	c := *t
	return &c, nil
}

func (r *fakeTenantRepo) GetByUserID(userID string) (*entity.Tenant, error) {
	for _, t := range r.s.tenants {
		if t.UserID == userID {
			c := *t
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeTenantRepo) List() ([]*entity.Tenant, error) {
	out := make([]*entity.Tenant, 0, len(r.s.tenants))
	for _, t := range r.s.tenants {
		c := *t
		out = append(out, &c)
	}
	return out, nil
}

func (r *fakeTenantRepo) ListAccounts() ([]*repository.TenantAccount, error) {
	out := make([]*repository.TenantAccount, 0, len(r.s.tenants))
	for _, t := range r.s.tenants {
		acc := &repository.TenantAccount{Tenant: *t}
		if u, ok := r.s.users[t.UserID]; ok {
			acc.Username = u.Username
			acc.UserEmail = u.Email
		}
		out = append(out, acc)
	}
	return out, nil
}

func (r *fakeTenantRepo) Update(t *entity.Tenant) error {
	c := *t
	r.s.tenants[t.ID] = &c
	return nil
}

func (r *fakeTenantRepo) Delete(id string) error {
	delete(r.s.tenants, id)
	return nil
}

func (r *fakeTenantRepo) CountByFullName(fullName string) (int, error) {
	n := 0
	for _, t := range r.s.tenants {
		if t.FullName == fullName {
			n++
		}
	}
	return n, nil
}

// ── User ──────────────────────────────────────────────────────────────────────

type fakeUserRepo struct{ s *memStore }

func (r *fakeUserRepo) Create(u *entity.User) error {
	c := *u
	r.s.users[u.ID] = &c
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.Username == username {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	for _, u := range r.s.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) IsUsernameTaken(username, excludeUserID string) (bool, error) {
	for _, u := range r.s.users {
		if u.Username == username && u.ID != excludeUserID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	c := *u
	r.s.users[u.ID] = &c
	return nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		c := *u
		out = append(out, &c)
	}
	return out, nil
}

func (r *fakeUserRepo) ListByRoles(roles ...string) ([]*entity.User, error) {
	want := map[string]bool{}
	for _, role := range roles {
		want[role] = true
	}
	var out []*entity.User
	for _, u := range r.s.users {
		if want[u.Role] {
			c := *u
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.s.users, id)
	return nil
}

// ── Unit ──────────────────────────────────────────────────────────────────────

type fakeUnitRepo struct{ s *memStore }

func (r *fakeUnitRepo) Create(u *entity.Unit) error {
	c := *u
	r.s.units[u.ID] = &c
	return nil
}

func (r *fakeUnitRepo) GetByID(id string) (*entity.Unit, error) {
	u, ok := r.s.units[id]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}

func (r *fakeUnitRepo) GetForUpdate(id string) (*entity.Unit, error) {
	return r.GetByID(id)
}

func (r *fakeUnitRepo) ListByProperty(propertyID string) ([]*entity.Unit, error) {
	var out []*entity.Unit
	for _, u := range r.s.units {
		if u.PropertyID == propertyID {
			c := *u
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeUnitRepo) ListVacant() ([]*entity.Unit, error) {
	var out []*entity.Unit
	for _, u := range r.s.units {
		if u.OccupancyStatus == entity.OccupancyVacant {
			c := *u
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeUnitRepo) Update(u *entity.Unit) error {
	c := *u
	r.s.units[u.ID] = &c
	return nil
}

func (r *fakeUnitRepo) MarkOccupied(id string, rent decimal.Decimal) error {
	if r.s.failMarkOccupied {
		return errDBDown
	}
	u, ok := r.s.units[id]
	if !ok {
		return errDBDown
	}
	u.OccupancyStatus = entity.OccupancyOccupied
	u.RentAmount = rent
	return nil
}

func (r *fakeUnitRepo) UpdateRent(id string, rent decimal.Decimal) error {
	u, ok := r.s.units[id]
	if !ok {
		return errDBDown
	}
	u.RentAmount = rent
	return nil
}

func (r *fakeUnitRepo) Delete(id string) error {
	delete(r.s.units, id)
	return nil
}

// ── Lease ─────────────────────────────────────────────────────────────────────

type fakeLeaseRepo struct{ s *memStore }

func (r *fakeLeaseRepo) Create(l *entity.Lease) error {
	c := *l
	r.s.leases[l.ID] = &c
	return nil
}

func (r *fakeLeaseRepo) GetByID(id string) (*entity.Lease, error) {
	l, ok := r.s.leases[id]
	if !ok {
		return nil, nil
	}
	c := *l
	return &c, nil
}

func (r *fakeLeaseRepo) Update(l *entity.Lease) error {
	c := *l
	r.s.leases[l.ID] = &c
	return nil
}

func (r *fakeLeaseRepo) Delete(id string) error {
	delete(r.s.leases, id)
	return nil
}

func (r *fakeLeaseRepo) CountByTenant(tenantID string) (int, error) {
	n := 0
	for _, l := range r.s.leases {
		if l.TenantID == tenantID {
			n++
		}
	}
	return n, nil
}

func (r *fakeLeaseRepo) ListDetailed() ([]*repository.LeaseDetail, error) {
	var out []*repository.LeaseDetail
	for _, l := range r.s.leases {
		d := &repository.LeaseDetail{Lease: *l}
		if t, ok := r.s.tenants[l.TenantID]; ok {
			d.TenantName = t.FullName
		}
		if u, ok := r.s.units[l.UnitID]; ok {
			d.UnitName = u.UnitName
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *fakeLeaseRepo) GetContract(leaseID string) (*repository.LeaseContract, error) {
	l, ok := r.s.leases[leaseID]
	if !ok {
		return nil, nil
	}
	c := &repository.LeaseContract{
		LeaseID:    l.ID,
		LeaseStart: l.LeaseStart,
		LeaseEnd:   l.LeaseEnd,
		RentAmount: l.RentAmount,
	}
	if t, ok := r.s.tenants[l.TenantID]; ok {
		c.TenantName = t.FullName
	}
	if u, ok := r.s.units[l.UnitID]; ok {
		c.UnitName = u.UnitName
	}
	return c, nil
}

func (r *fakeLeaseRepo) ListForReminders() ([]*repository.LeaseReminderRow, error) {
	var out []*repository.LeaseReminderRow
	for _, l := range r.s.leases {
		row := &repository.LeaseReminderRow{
			LeaseID:    l.ID,
			TenantID:   l.TenantID,
			UnitID:     l.UnitID,
			RentAmount: l.RentAmount,
			LeaseStart: l.LeaseStart,
			LeaseEnd:   l.LeaseEnd,
		}
		if t, ok := r.s.tenants[l.TenantID]; ok {
			row.UserID = t.UserID
			row.FullName = t.FullName
			row.Phone = t.Phone
		}
		if u, ok := r.s.units[l.UnitID]; ok {
			row.UnitName = u.UnitName
		}
		out = append(out, row)
	}
	return out, nil
}

// ── RentPayment ───────────────────────────────────────────────────────────────

type fakePaymentRepo struct{ s *memStore }

func (r *fakePaymentRepo) Create(p *entity.RentPayment) error {
	c := *p
	r.s.payments[p.LeaseID] = append(r.s.payments[p.LeaseID], &c)
	return nil
}

func (r *fakePaymentRepo) CountByLease(leaseID string) (int, error) {
	return len(r.s.payments[leaseID]), nil
}

func (r *fakePaymentRepo) ListRecent(limit int) ([]*repository.PaymentDetail, error) {
	return nil, nil
}

func (r *fakePaymentRepo) LastCompletedByLease() (map[string]time.Time, error) {
	out := map[string]time.Time{}
	for leaseID, list := range r.s.payments {
		for _, p := range list {
			if p.Status == entity.PaymentCompleted && p.PaymentDate.After(out[leaseID]) {
				out[leaseID] = p.PaymentDate
			}
		}
	}
	return out, nil
}
