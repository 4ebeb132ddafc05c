package repository

import "github.com/salesphere/salesphere-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para ventas (cabecera + ítems).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
}
