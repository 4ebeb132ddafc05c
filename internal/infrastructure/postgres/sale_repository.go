package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/salesphere/salesphere-api/internal/domain/entity"
	"github.com/salesphere/salesphere-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta y sus ítems. Se asume que el caller
// la invoca dentro de una transacción junto con el descuento de stock.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, sale_date, total_amount)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, sale.ID, sale.SaleDate, sale.TotalAmount)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}

	itemQuery := `
		INSERT INTO sale_items (id, sale_id, product_id, quantity, price_per_unit)
		VALUES ($1, $2, $3, $4, $5)`
	for _, item := range sale.Items {
		_, err := r.q.Exec(context.Background(), itemQuery,
			item.ID, item.SaleID, item.ProductID, item.Quantity, item.PricePerUnit,
		)
		if err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una venta con sus ítems.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT id, sale_date, total_amount FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(&s.ID, &s.SaleDate, &s.TotalAmount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}

	itemQuery := `
		SELECT id, sale_id, product_id, quantity, price_per_unit
		FROM sale_items WHERE sale_id = $1`
	rows, err := r.q.Query(context.Background(), itemQuery, id)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item entity.SaleItem
		if err := rows.Scan(&item.ID, &item.SaleID, &item.ProductID, &item.Quantity, &item.PricePerUnit); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		s.Items = append(s.Items, item)
	}
	return &s, rows.Err()
}
