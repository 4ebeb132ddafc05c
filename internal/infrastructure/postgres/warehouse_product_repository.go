package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/salesphere/salesphere-api/internal/domain/entity"
	"github.com/salesphere/salesphere-api/internal/domain/repository"
)

var _ repository.WarehouseProductRepository = (*WarehouseProductRepo)(nil)

// WarehouseProductRepo implementación del stock por bodega+producto sobre
// PostgreSQL (usable con pool o tx).
type WarehouseProductRepo struct {
	q Querier
}

// NewWarehouseProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWarehouseProductRepository(q Querier) *WarehouseProductRepo {
	return &WarehouseProductRepo{q: q}
}

// Get obtiene la fila (bodega, producto). Devuelve (nil, nil) si no existe.
func (r *WarehouseProductRepo) Get(warehouseID, productID string) (*entity.WarehouseProduct, error) {
	query := `
		SELECT warehouse_id, product_id, quantity, updated_at
		FROM warehouse_products WHERE warehouse_id = $1 AND product_id = $2`
	return scanWarehouseProduct(r.q.QueryRow(context.Background(), query, warehouseID, productID), "get warehouse product")
}

// GetForUpdate obtiene la fila bloqueándola (SELECT FOR UPDATE). Devuelve
// (nil, nil) si no existe. Usar solo dentro de una transacción.
func (r *WarehouseProductRepo) GetForUpdate(warehouseID, productID string) (*entity.WarehouseProduct, error) {
	query := `
		SELECT warehouse_id, product_id, quantity, updated_at
		FROM warehouse_products WHERE warehouse_id = $1 AND product_id = $2
		FOR UPDATE`
	return scanWarehouseProduct(r.q.QueryRow(context.Background(), query, warehouseID, productID), "get warehouse product for update")
}

// Upsert inserta o actualiza la cantidad para el par (bodega, producto).
func (r *WarehouseProductRepo) Upsert(wp *entity.WarehouseProduct) error {
	query := `
		INSERT INTO warehouse_products (warehouse_id, product_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (warehouse_id, product_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, wp.WarehouseID, wp.ProductID, wp.Quantity)
	if err != nil {
		return fmt.Errorf("upsert warehouse product: %w", err)
	}
	return nil
}

func scanWarehouseProduct(row pgx.Row, op string) (*entity.WarehouseProduct, error) {
	var wp entity.WarehouseProduct
	err := row.Scan(&wp.WarehouseID, &wp.ProductID, &wp.Quantity, &wp.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &wp, nil
}
