package entity

import "time"

// Razones estándar de movimiento de inventario.
const (
	MovementReasonSale     = "venta"
	MovementReasonTransfer = "traslado"
)

// InventoryMovement es el registro de auditoría inmutable de un cambio de
// cantidad: delta con signo, razón y fecha. Solo se inserta, nunca se
// modifica ni se borra.
type InventoryMovement struct {
	ID          string
	ProductID   string
	WarehouseID string // vacío para movimientos de stock global
	Quantity    int64  // positivo entrada, negativo salida
	Reason      string
	CreatedAt   time.Time
}
