// Package contracts genera el contrato de arrendamiento en PDF.
package contracts

import (
	"context"

	"github.com/cvargas/propiedades-api/internal/domain"
	"github.com/cvargas/propiedades-api/internal/domain/repository"
)

// ContractPDFGenerator puerto de salida hacia el motor de PDF.
// El adaptador concreto (Maroto) vive en infrastructure.
type ContractPDFGenerator interface {
	GenerateContractPDF(ctx context.Context, contract *repository.LeaseContract) ([]byte, error)
}

// UseCase obtiene los datos del contrato y delega el render al generador.
type UseCase struct {
	leaseRepo repository.LeaseRepository
	generator ContractPDFGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(leaseRepo repository.LeaseRepository, generator ContractPDFGenerator) *UseCase {
	return &UseCase{leaseRepo: leaseRepo, generator: generator}
}

// GetContractPDF devuelve los bytes del PDF del contrato del lease indicado.
func (uc *UseCase) GetContractPDF(ctx context.Context, leaseID string) ([]byte, error) {
	contract, err := uc.leaseRepo.GetContract(leaseID)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, domain.ErrNotFound
	}
	return uc.generator.GenerateContractPDF(ctx, contract)
}
