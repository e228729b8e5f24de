package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cvargas/propiedades-api/internal/application/dto"
	"github.com/cvargas/propiedades-api/internal/domain"
	"github.com/cvargas/propiedades-api/internal/domain/entity"
	"github.com/cvargas/propiedades-api/internal/domain/repository"
)

// PaymentUseCase registro y consulta de pagos de renta.
type PaymentUseCase struct {
	paymentRepo repository.RentPaymentRepository
	leaseRepo   repository.LeaseRepository
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(paymentRepo repository.RentPaymentRepository, leaseRepo repository.LeaseRepository) *PaymentUseCase {
	return &PaymentUseCase{paymentRepo: paymentRepo, leaseRepo: leaseRepo}
}

// Create registra un pago contra un lease. collectedBy es el usuario
// autenticado que lo asienta en caja.
func (uc *PaymentUseCase) Create(collectedBy string, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if in.LeaseID == "" || in.PaymentDate == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.Status != entity.PaymentPending && in.Status != entity.PaymentCompleted {
		return nil, domain.ErrInvalidInput
	}
	paymentDate, err := time.Parse("2006-01-02", in.PaymentDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	lease, err := uc.leaseRepo.GetByID(in.LeaseID)
	if err != nil {
		return nil, err
	}
	if lease == nil {
		return nil, domain.ErrNotFound
	}

	p := &entity.RentPayment{
		ID:          uuid.New().String(),
		LeaseID:     lease.ID,
		TenantID:    lease.TenantID,
		Amount:      in.Amount,
		PaymentDate: paymentDate,
		Status:      in.Status,
		CollectedBy: collectedBy,
		CreatedAt:   time.Now(),
	}
	if err := uc.paymentRepo.Create(p); err != nil {
		return nil, err
	}
	return toPaymentResponse(&repository.PaymentDetail{RentPayment: *p}), nil
}

// ListRecent devuelve los últimos pagos con nombres resueltos.
func (uc *PaymentUseCase) ListRecent(limit int) ([]*dto.PaymentResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := uc.paymentRepo.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PaymentResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, toPaymentResponse(r))
	}
	return out, nil
}

func toPaymentResponse(r *repository.PaymentDetail) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:          r.ID,
		LeaseID:     r.LeaseID,
		TenantID:    r.TenantID,
		TenantName:  r.TenantName,
		UnitName:    r.UnitName,
		Amount:      r.Amount,
		PaymentDate: r.PaymentDate,
		Status:      r.Status,
		CollectedBy: r.CollectedBy,
		CreatedAt:   r.CreatedAt,
	}
}
