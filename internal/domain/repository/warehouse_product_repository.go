package repository

import "github.com/salesphere/salesphere-api/internal/domain/entity"

// WarehouseProductRepository define el puerto para el stock por bodega+producto.
// Get y GetForUpdate devuelven (nil, nil) si no existe fila para el par:
// el caller decide si eso es ErrNotFound (origen de un traslado) o si crea
// la fila perezosamente (destino de un traslado).
type WarehouseProductRepository interface {
	Get(warehouseID, productID string) (*entity.WarehouseProduct, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE). Usar solo dentro de una tx.
	GetForUpdate(warehouseID, productID string) (*entity.WarehouseProduct, error)
	Upsert(wp *entity.WarehouseProduct) error
}
