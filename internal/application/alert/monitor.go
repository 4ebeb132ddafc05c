package alert

import (
	"context"
	"fmt"
	"time"

	"github.com/salesphere/salesphere-api/internal/domain/entity"
	"github.com/salesphere/salesphere-api/internal/domain/repository"
	"github.com/salesphere/salesphere-api/pkg/logger"
)

// Monitor es el detector programado de stock bajo. Cada tick consulta los
// productos por debajo de su mínimo y, si hay alguno, dispara el fanout.
// No hay supresión ni deduplicación: una condición no resuelta vuelve a
// alertar en cada tick.
type Monitor struct {
	productRepo  repository.ProductRepository
	notifier     Notifier
	expiryWindow time.Duration
	log          *logger.Logger
}

// NewMonitor construye el monitor. expiryWindowDays define la ventana del
// chequeo diario de vencimientos.
func NewMonitor(productRepo repository.ProductRepository, notifier Notifier, expiryWindowDays int, log *logger.Logger) *Monitor {
	return &Monitor{
		productRepo:  productRepo,
		notifier:     notifier,
		expiryWindow: time.Duration(expiryWindowDays) * 24 * time.Hour,
		log:          log,
	}
}

// CheckStock ejecuta un ciclo del detector: consulta, y notifica si hay
// productos bajo el umbral. Es la misma lógica que dispara el scheduler y el
// endpoint de chequeo manual.
func (m *Monitor) CheckStock(ctx context.Context) error {
	products, err := m.productRepo.ListWithLowStock()
	if err != nil {
		return fmt.Errorf("consultar productos con stock bajo: %w", err)
	}
	if len(products) == 0 {
		m.log.Debug().Msg("chequeo de stock: sin productos bajo el umbral")
		return nil
	}

	m.log.Info().Int("productos", len(products)).Msg("stock bajo detectado, notificando")
	return m.notifier.Notify(ctx, products)
}

// CheckExpiry es la variante diaria: productos que vencen dentro de la
// ventana configurada reciben el mismo resumen y quedan marcados como
// EXPIRING_SOON para no reprocesarlos al día siguiente.
func (m *Monitor) CheckExpiry(ctx context.Context) error {
	deadline := time.Now().Add(m.expiryWindow)
	products, err := m.productRepo.ListExpiringBefore(deadline)
	if err != nil {
		return fmt.Errorf("consultar productos por vencer: %w", err)
	}
	if len(products) == 0 {
		return nil
	}

	m.log.Info().Int("productos", len(products)).Msg("productos por vencer detectados, notificando")
	if err := m.notifier.Notify(ctx, products); err != nil {
		return err
	}

	for _, p := range products {
		if err := m.productRepo.UpdateAvailability(p.ID, entity.AvailabilityExpiringSoon); err != nil {
			return fmt.Errorf("marcar producto %s como por vencer: %w", p.ID, err)
		}
	}
	return nil
}
