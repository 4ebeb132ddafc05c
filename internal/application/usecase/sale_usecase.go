package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salesphere/salesphere-api/internal/application/dto"
	"github.com/salesphere/salesphere-api/internal/application/ledger"
	"github.com/salesphere/salesphere-api/internal/domain"
	"github.com/salesphere/salesphere-api/internal/domain/entity"
	"github.com/salesphere/salesphere-api/internal/domain/repository"
)

// SaleUseCase registra ventas. La cabecera, los ítems y el descuento de
// stock de cada producto comparten una sola transacción: si un ítem no tiene
// stock suficiente, la venta completa se revierte.
type SaleUseCase struct {
	txRunner    ledger.TxRunner
	stockLedger *ledger.StockLedger
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	txRunner ledger.TxRunner,
	stockLedger *ledger.StockLedger,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, stockLedger: stockLedger, productRepo: productRepo, saleRepo: saleRepo}
}

// Create registra la venta y descuenta el stock de todos los ítems. Si la
// petición trae un descuento, se aplica al precio unitario de cada ítem.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	discount, err := resolveDiscount(in.Discount)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:       uuid.New().String(),
		SaleDate: now,
	}

	deductions := make([]ledger.SaleItemInput, 0, len(in.Items))
	total := decimal.Zero
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		// Los precios se cotizan fuera de la transacción con el valor vigente
		// al armar la venta; el stock sí se revalida FOR UPDATE dentro.
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}

		price := product.SalePrice
		if item.SalePrice != nil {
			price = *item.SalePrice
		}
		if discount != nil {
			price = discount.Apply(price)
		}

		saleItem := entity.SaleItem{
			ID:           uuid.New().String(),
			SaleID:       sale.ID,
			ProductID:    item.ProductID,
			Quantity:     item.Quantity,
			PricePerUnit: price,
		}
		sale.Items = append(sale.Items, saleItem)
		total = total.Add(saleItem.TotalPrice())

		deductions = append(deductions, ledger.SaleItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	sale.TotalAmount = total

	err = uc.txRunner.RunSale(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.InventoryMovementRepository,
		saleRepo repository.SaleRepository,
	) error {
		if err := uc.stockLedger.DeductForSaleInTx(productRepo, movRepo, deductions, now); err != nil {
			return err
		}
		return saleRepo.Create(sale)
	})
	if err != nil {
		return nil, err
	}

	return &dto.SaleResponse{
		ID:          sale.ID,
		SaleDate:    sale.SaleDate.Format(time.RFC3339),
		TotalAmount: sale.TotalAmount,
		ItemCount:   len(sale.Items),
	}, nil
}

// GetByID obtiene una venta registrada. Devuelve ErrNotFound si no existe.
func (uc *SaleUseCase) GetByID(id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.SaleResponse{
		ID:          sale.ID,
		SaleDate:    sale.SaleDate.Format(time.RFC3339),
		TotalAmount: sale.TotalAmount,
		ItemCount:   len(sale.Items),
	}, nil
}
