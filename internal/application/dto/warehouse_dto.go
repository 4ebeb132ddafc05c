package dto

// CreateWarehouseRequest entrada para registrar una bodega.
type CreateWarehouseRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=120"`
	Address string `json:"address" validate:"max=250"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address,omitempty"`
	CreatedAt string `json:"created_at"`
}
