package entity

import "time"

// Warehouse representa una bodega o almacén físico donde se guarda inventario.
type Warehouse struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
