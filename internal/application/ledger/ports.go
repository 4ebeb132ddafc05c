package ledger

import (
	"context"

	"github.com/salesphere/salesphere-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para las mutaciones del
// ledger: o se ven todos los escritos, o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		stockRepo repository.WarehouseProductRepository,
		movRepo repository.InventoryMovementRepository,
	) error) error

	// RunSale abre una transacción con los repositorios necesarios para
	// persistir una venta y descontar su stock en el mismo commit.
	RunSale(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movRepo repository.InventoryMovementRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
