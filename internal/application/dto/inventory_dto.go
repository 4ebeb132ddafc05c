package dto

// AdjustInventoryRequest entrada para un ajuste puntual de stock global.
// Quantity puede ser positiva o negativa; un resultado negativo se rechaza.
type AdjustInventoryRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required"`
	Reason    string `json:"reason" validate:"required,min=1,max=200"`
}

// TransferProductRequest entrada para un traslado entre bodegas.
type TransferProductRequest struct {
	ProductID       string `json:"product_id" validate:"required"`
	FromWarehouseID string `json:"from_warehouse_id" validate:"required"`
	ToWarehouseID   string `json:"to_warehouse_id" validate:"required"`
	Quantity        int64  `json:"quantity" validate:"required,gt=0"`
}

// MovementResponse salida de un movimiento de inventario.
type MovementResponse struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	WarehouseID string `json:"warehouse_id,omitempty"`
	Quantity    int64  `json:"quantity"`
	Reason      string `json:"reason"`
	CreatedAt   string `json:"created_at"`
}
