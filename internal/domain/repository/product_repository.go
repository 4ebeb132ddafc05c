package repository

import (
	"time"

	"github.com/salesphere/salesphere-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE). Usar solo
	// dentro de una transacción.
	GetForUpdate(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock actualiza solo la cantidad global de stock (usado por el ledger).
	UpdateStock(productID string, quantity int64) error
	// UpdateAvailability actualiza solo el estado de disponibilidad.
	UpdateAvailability(productID string, availability string) error
	List(limit, offset int) ([]*entity.Product, error)
	// ListWithLowStock devuelve los productos con stock_quantity < minimum_quantity.
	ListWithLowStock() ([]*entity.Product, error)
	// ListExpiringBefore devuelve los productos con fecha de vencimiento anterior
	// o igual a la fecha dada (excluye los ya marcados EXPIRING_SOON).
	ListExpiringBefore(date time.Time) ([]*entity.Product, error)
	Delete(id string) error
}
