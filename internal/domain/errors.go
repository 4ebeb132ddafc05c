package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// DeliveryError indica un fallo al entregar el correo de alerta (composición,
// generación de adjuntos o transporte SMTP). A diferencia del broadcast por
// WebSocket, este error nunca se traga: siempre llega al caller.
type DeliveryError struct {
	Stage string // "compose", "render-pdf", "render-xlsx", "send"
	Err   error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("entrega de alerta fallida en etapa %s: %v", e.Stage, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// NewDeliveryError construye un DeliveryError con la etapa que falló.
func NewDeliveryError(stage string, err error) *DeliveryError {
	return &DeliveryError{Stage: stage, Err: err}
}

// IsDeliveryError indica si err (o su cadena) es un fallo de entrega de alerta.
func IsDeliveryError(err error) bool {
	var de *DeliveryError
	return errors.As(err, &de)
}
