package entity

import "time"

// WarehouseProduct representa la cantidad de un producto en una bodega
// específica. Una fila por par (bodega, producto); se crea perezosamente la
// primera vez que llega stock a esa bodega.
type WarehouseProduct struct {
	WarehouseID string
	ProductID   string
	Quantity    int64
	UpdatedAt   time.Time
}
