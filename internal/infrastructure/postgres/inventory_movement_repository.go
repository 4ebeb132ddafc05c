package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/salesphere/salesphere-api/internal/domain/entity"
	"github.com/salesphere/salesphere-api/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

// InventoryMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
// La tabla es de solo inserción: sin UPDATE ni DELETE.
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

// Create persiste un movimiento de inventario.
func (r *InventoryMovementRepo) Create(movement *entity.InventoryMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_movements (id, product_id, warehouse_id, quantity, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	warehouseID := (*string)(nil)
	if movement.WarehouseID != "" {
		warehouseID = &movement.WarehouseID
	}
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, warehouseID,
		movement.Quantity, movement.Reason, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create inventory movement: %w", err)
	}
	return nil
}

// ListByProduct lista los movimientos de un producto, más recientes primero.
func (r *InventoryMovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.InventoryMovement, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, reason, created_at
		FROM inventory_movements WHERE product_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements by product: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryMovement
	for rows.Next() {
		var m entity.InventoryMovement
		var warehouseID *string
		if err := rows.Scan(&m.ID, &m.ProductID, &warehouseID, &m.Quantity, &m.Reason, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if warehouseID != nil {
			m.WarehouseID = *warehouseID
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
