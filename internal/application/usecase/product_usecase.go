package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/salesphere/salesphere-api/internal/application/dto"
	"github.com/salesphere/salesphere-api/internal/domain"
	"github.com/salesphere/salesphere-api/internal/domain/entity"
	"github.com/salesphere/salesphere-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock global solo se
// modifica a través del ledger (ajustes y ventas), nunca por aquí más allá
// del valor inicial en la creación.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto con su stock inicial.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, err := uc.repo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.PurchasePrice.IsNegative() || in.SalePrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	availability := entity.AvailabilityAvailable
	if in.StockQuantity == 0 {
		availability = entity.AvailabilityOutOfStock
	}

	now := time.Now()
	product := &entity.Product{
		ID:              uuid.New().String(),
		SKU:             in.SKU,
		Name:            in.Name,
		Description:     in.Description,
		Brand:           in.Brand,
		Category:        in.Category,
		PurchasePrice:   in.PurchasePrice,
		SalePrice:       in.SalePrice,
		StockQuantity:   in.StockQuantity,
		MinimumQuantity: in.MinimumQuantity,
		Availability:    availability,
		ExpirationDate:  in.ExpirationDate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación y un filtro opcional por nombre.
func (uc *ProductUseCase) List(limit, offset int, search string) ([]*dto.ProductResponse, error) {
	products, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toProductResponses(filterByName(products, search)), nil
}

// filterByName deja solo los productos cuyo nombre contiene la consulta, sin
// distinguir mayúsculas. Consulta vacía devuelve la lista intacta.
func filterByName(products []*entity.Product, query string) []*entity.Product {
	if query == "" {
		return products
	}
	q := strings.ToLower(query)
	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}

// ListLowStock devuelve los productos con stock por debajo del mínimo.
func (uc *ProductUseCase) ListLowStock() ([]*dto.ProductResponse, error) {
	products, err := uc.repo.ListWithLowStock()
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// Update reemplaza los campos editables de un producto (PUT).
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	product.Name = in.Name
	product.Description = in.Description
	product.Brand = in.Brand
	product.Category = in.Category
	product.PurchasePrice = in.PurchasePrice
	product.SalePrice = in.SalePrice
	product.MinimumQuantity = in.MinimumQuantity
	product.ExpirationDate = in.ExpirationDate
	product.UpdatedAt = time.Now()

	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Patch aplica una actualización parcial con el conjunto cerrado de campos
// opcionales de dto.ProductPatch: nil = no tocar. Sin lookups por nombre de
// campo en runtime ni coerción de tipos.
func (uc *ProductUseCase) Patch(id string, in dto.ProductPatch) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Brand != nil {
		product.Brand = *in.Brand
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.PurchasePrice != nil {
		product.PurchasePrice = *in.PurchasePrice
	}
	if in.SalePrice != nil {
		product.SalePrice = *in.SalePrice
	}
	if in.MinimumQuantity != nil {
		product.MinimumQuantity = *in.MinimumQuantity
	}
	if in.ExpirationDate != nil {
		product.ExpirationDate = in.ExpirationDate
	}
	product.UpdatedAt = time.Now()

	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:              p.ID,
		SKU:             p.SKU,
		Name:            p.Name,
		Description:     p.Description,
		Brand:           p.Brand,
		Category:        p.Category,
		PurchasePrice:   p.PurchasePrice,
		SalePrice:       p.SalePrice,
		StockQuantity:   p.StockQuantity,
		MinimumQuantity: p.MinimumQuantity,
		Availability:    p.Availability,
		ExpirationDate:  p.ExpirationDate,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func toProductResponses(products []*entity.Product) []*dto.ProductResponse {
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}
