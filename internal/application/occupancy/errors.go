package occupancy

import "github.com/cvargas/propiedades-api/internal/domain"

// opError lleva el mensaje que se muestra al usuario y envuelve el sentinel
// de dominio para que errors.Is siga funcionando en los handlers.
type opError struct {
	kind error
	msg  string
}

func (e *opError) Error() string { return e.msg }
func (e *opError) Unwrap() error { return e.kind }

func validationErr(msg string) error {
	return &opError{kind: domain.ErrInvalidInput, msg: msg}
}

func conflictErr(kind error, msg string) error {
	return &opError{kind: kind, msg: msg}
}

// Errores con los mensajes exactos que ve el usuario final.
var (
	ErrMissingFields      = validationErr("All fields are required.")
	ErrInvalidDate        = validationErr("Invalid date format.")
	ErrStartNotBeforeEnd  = validationErr("Lease start date must be before end date.")
	ErrRentNotPositive    = validationErr("Rent amount must be greater than zero.")
	ErrUsernameTooShort   = validationErr("Username must be at least 3 characters.")
	ErrPasswordTooShort   = validationErr("Password must be at least 6 characters.")
	ErrUsernameExists     = conflictErr(domain.ErrUsernameTaken, "Username already exists.")
	ErrTenantActiveLeases = conflictErr(domain.ErrTenantHasLeases, "Cannot delete tenant with active leases.")
	ErrLeasePayments      = conflictErr(domain.ErrLeaseHasPayments, "Cannot delete lease with associated payments.")
)

// Mensajes de confirmación de las operaciones de escritura.
const (
	MsgLeaseAdded    = "Lease added successfully."
	MsgLeaseUpdated  = "Lease updated successfully."
	MsgLeaseDeleted  = "Lease deleted successfully."
	MsgTenantUpdated = "Tenant updated successfully."
	MsgTenantDeleted = "Tenant deleted successfully."
)
