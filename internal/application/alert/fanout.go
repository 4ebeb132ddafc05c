package alert

import (
	"context"

	"github.com/salesphere/salesphere-api/internal/domain"
	"github.com/salesphere/salesphere-api/internal/domain/entity"
	"github.com/salesphere/salesphere-api/pkg/logger"
)

// Nombres de los adjuntos del correo de resumen.
const (
	pdfAttachmentName  = "reporte_stock_bajo.pdf"
	xlsxAttachmentName = "reporte_stock_bajo.xlsx"

	digestSubject = "Alerta de Stock Bajo"
)

// Fanout entrega las alertas de stock bajo por sus dos canales: broadcast
// best-effort a las sesiones conectadas y correo de resumen con adjuntos,
// cuya entrega debe fallar de forma visible.
type Fanout struct {
	registry SessionRegistry
	renderer ReportRenderer
	mailer   Mailer
	to       string
	log      *logger.Logger
}

// NewFanout construye el notificador. to es el destinatario del resumen.
func NewFanout(registry SessionRegistry, renderer ReportRenderer, mailer Mailer, to string, log *logger.Logger) *Fanout {
	return &Fanout{
		registry: registry,
		renderer: renderer,
		mailer:   mailer,
		to:       to,
		log:      log,
	}
}

// Broadcast envía el mensaje a cada sesión abierta. El fallo de una sesión se
// loguea y no impide el envío a las demás; este método nunca devuelve error.
func (f *Fanout) Broadcast(message string) {
	for _, session := range f.registry.Snapshot() {
		if !session.IsOpen() {
			continue
		}
		if err := session.Send(message); err != nil {
			f.log.Warn().
				Str("session_id", session.ID()).
				Err(err).
				Msg("fallo al enviar broadcast a la sesión")
		}
	}
}

// SendDigest compone el cuerpo HTML, genera los reportes PDF y de hoja de
// cálculo y envía el correo con ambos adjuntos. Cualquier fallo se envuelve
// en un DeliveryError y se devuelve: nunca se traga.
func (f *Fanout) SendDigest(ctx context.Context, products []*entity.Product) error {
	body := ComposeDigestHTML(products)

	pdfBytes, err := f.renderer.RenderPDF(ctx, products)
	if err != nil {
		return domain.NewDeliveryError("render-pdf", err)
	}
	xlsxBytes, err := f.renderer.RenderSpreadsheet(ctx, products)
	if err != nil {
		return domain.NewDeliveryError("render-xlsx", err)
	}

	attachments := []Attachment{
		{Filename: pdfAttachmentName, Content: pdfBytes},
		{Filename: xlsxAttachmentName, Content: xlsxBytes},
	}
	if err := f.mailer.Send(f.to, digestSubject, body, attachments); err != nil {
		return domain.NewDeliveryError("send", err)
	}
	return nil
}

// Notify difunde el resumen corto a las sesiones y luego envía el correo.
// Son canales independientes: el broadcast nunca falla hacia afuera, el
// resultado del correo es el resultado de la llamada.
func (f *Fanout) Notify(ctx context.Context, products []*entity.Product) error {
	f.Broadcast(SummaryMessage(products))
	return f.SendDigest(ctx, products)
}
