package entity

import "time"

// Tenant perfil de inquilino. Pertenece a exactamente un User (user_id).
// Eliminar el Tenant arrastra a su User solo si ningún Lease lo referencia;
// esa precondición se verifica en el workflow, no por FK en cascada.
type Tenant struct {
	ID        string
	UserID    string
	FullName  string
	Email     string
	Phone     string
	CreatedAt time.Time
}
