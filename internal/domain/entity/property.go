package entity

import "time"

// Property inmueble administrado (edificio o conjunto de unidades).
type Property struct {
	ID          string
	Name        string
	Address     string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
