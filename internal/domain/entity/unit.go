package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de ocupación de una unidad.
const (
	OccupancyVacant   = "vacant"
	OccupancyOccupied = "occupied"
)

// Unit unidad rentable dentro de una Property.
// OccupancyStatus y RentAmount son campos derivados: los muta el ciclo de vida
// del Lease, no son autoritativos por sí mismos.
type Unit struct {
	ID              string
	PropertyID      string
	UnitName        string
	RentAmount      decimal.Decimal
	OccupancyStatus string // vacant, occupied
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
