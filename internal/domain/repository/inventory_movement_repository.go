package repository

import "github.com/salesphere/salesphere-api/internal/domain/entity"

// InventoryMovementRepository define el puerto de persistencia para el
// registro de auditoría de movimientos. Solo inserción y lectura: los
// movimientos son inmutables.
type InventoryMovementRepository interface {
	Create(movement *entity.InventoryMovement) error
	ListByProduct(productID string, limit, offset int) ([]*entity.InventoryMovement, error)
}
