package ledger

import (
	"context"
	"sort"
	"time"

	"github.com/salesphere/salesphere-api/internal/domain"
	"github.com/salesphere/salesphere-api/internal/domain/entity"
	"github.com/salesphere/salesphere-api/internal/domain/repository"
)

// StockLedger es el dueño de todas las mutaciones de cantidad y sus
// invariantes: ajuste puntual, traslado entre bodegas y descuento por venta.
// Cada operación corre en una transacción con bloqueo de fila
// (SELECT FOR UPDATE) para que la secuencia leer-verificar-escribir quede
// serializada frente a mutadores concurrentes de las mismas filas.
type StockLedger struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewStockLedger construye el caso de uso.
func NewStockLedger(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *StockLedger {
	return &StockLedger{
		txRunner:      txRunner,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// SaleItemInput es un par (producto, cantidad vendida) dentro de una venta.
type SaleItemInput struct {
	ProductID string
	Quantity  int64
}

// Adjust aplica un delta (positivo o negativo) al stock global de un producto
// y registra el movimiento de auditoría con la razón dada. Un resultado
// negativo se rechaza con ErrInsufficientStock sin escribir nada.
func (l *StockLedger) Adjust(ctx context.Context, productID string, delta int64, reason string) error {
	if productID == "" || delta == 0 {
		return domain.ErrInvalidInput
	}

	now := time.Now()
	return l.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.WarehouseProductRepository,
		movRepo repository.InventoryMovementRepository,
	) error {
		// Bloquea la fila del producto para serializar frente a ventas y
		// ajustes concurrentes sobre el mismo producto.
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		newQuantity := product.StockQuantity + delta
		if newQuantity < 0 {
			return domain.ErrInsufficientStock
		}
		if err := productRepo.UpdateStock(productID, newQuantity); err != nil {
			return err
		}

		return movRepo.Create(&entity.InventoryMovement{
			ProductID: productID,
			Quantity:  delta,
			Reason:    reason,
			CreatedAt: now,
		})
	})
}

// Transfer mueve quantity unidades de un producto entre dos bodegas.
// Origen y destino se actualizan en la misma transacción: la suma de ambas
// filas se conserva o la operación falla completa.
func (l *StockLedger) Transfer(ctx context.Context, productID, fromWarehouseID, toWarehouseID string, quantity int64) error {
	if productID == "" || fromWarehouseID == "" || toWarehouseID == "" {
		return domain.ErrInvalidInput
	}
	if fromWarehouseID == toWarehouseID || quantity <= 0 {
		return domain.ErrInvalidInput
	}

	// Validar que producto y bodegas existan antes de abrir la transacción.
	product, err := l.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	fromWh, err := l.warehouseRepo.GetByID(fromWarehouseID)
	if err != nil {
		return err
	}
	toWh, err := l.warehouseRepo.GetByID(toWarehouseID)
	if err != nil {
		return err
	}
	if fromWh == nil || toWh == nil {
		return domain.ErrNotFound
	}

	now := time.Now()
	return l.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		stockRepo repository.WarehouseProductRepository,
		movRepo repository.InventoryMovementRepository,
	) error {
		// Bloquea la fila de la bodega origen; sin fila no hay stock que mover.
		origin, err := stockRepo.GetForUpdate(fromWarehouseID, productID)
		if err != nil {
			return err
		}
		if origin == nil {
			return domain.ErrNotFound
		}
		if origin.Quantity < quantity {
			return domain.ErrInsufficientStock
		}

		dest, err := stockRepo.Get(toWarehouseID, productID)
		if err != nil {
			return err
		}
		if dest == nil {
			// Primera llegada de este producto a la bodega destino.
			dest = &entity.WarehouseProduct{WarehouseID: toWarehouseID, ProductID: productID}
		}

		origin.Quantity -= quantity
		dest.Quantity += quantity
		origin.UpdatedAt = now
		dest.UpdatedAt = now

		if err := stockRepo.Upsert(origin); err != nil {
			return err
		}
		if err := stockRepo.Upsert(dest); err != nil {
			return err
		}

		// Dos registros de auditoría: salida en origen, entrada en destino.
		if err := movRepo.Create(&entity.InventoryMovement{
			ProductID:   productID,
			WarehouseID: fromWarehouseID,
			Quantity:    -quantity,
			Reason:      entity.MovementReasonTransfer,
			CreatedAt:   now,
		}); err != nil {
			return err
		}
		return movRepo.Create(&entity.InventoryMovement{
			ProductID:   productID,
			WarehouseID: toWarehouseID,
			Quantity:    quantity,
			Reason:      entity.MovementReasonTransfer,
			CreatedAt:   now,
		})
	})
}

// DeductForSale descuenta el stock global de cada ítem de una venta en una
// sola transacción. Si cualquier ítem dejaría stock negativo, el lote entero
// se revierte sin descuento parcial visible.
func (l *StockLedger) DeductForSale(ctx context.Context, items []SaleItemInput) error {
	if err := validateSaleItems(items); err != nil {
		return err
	}
	now := time.Now()
	return l.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.WarehouseProductRepository,
		movRepo repository.InventoryMovementRepository,
	) error {
		return l.DeductForSaleInTx(productRepo, movRepo, items, now)
	})
}

// DeductForSaleInTx ejecuta el descuento usando los repositorios del caller
// (misma transacción). Lo usa el caso de uso de ventas para que la venta y su
// descuento de stock compartan commit.
func (l *StockLedger) DeductForSaleInTx(
	productRepo repository.ProductRepository,
	movRepo repository.InventoryMovementRepository,
	items []SaleItemInput,
	now time.Time,
) error {
	// Orden determinista de bloqueo para evitar deadlocks entre ventas
	// concurrentes que comparten productos.
	sorted := make([]SaleItemInput, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ProductID < sorted[j].ProductID })

	for _, item := range sorted {
		product, err := productRepo.GetForUpdate(item.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		newQuantity := product.StockQuantity - item.Quantity
		if newQuantity < 0 {
			return domain.ErrInsufficientStock
		}
		if err := productRepo.UpdateStock(item.ProductID, newQuantity); err != nil {
			return err
		}
		if err := movRepo.Create(&entity.InventoryMovement{
			ProductID: item.ProductID,
			Quantity:  -item.Quantity,
			Reason:    entity.MovementReasonSale,
			CreatedAt: now,
		}); err != nil {
			return err
		}
	}
	return nil
}

func validateSaleItems(items []SaleItemInput) error {
	if len(items) == 0 {
		return domain.ErrInvalidInput
	}
	for _, item := range items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return domain.ErrInvalidInput
		}
	}
	return nil
}
