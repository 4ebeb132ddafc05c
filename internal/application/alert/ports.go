package alert

import (
	"context"

	"github.com/salesphere/salesphere-api/internal/domain/entity"
)

// Session es una conexión viva de actualizaciones en tiempo real. El registro
// es dueño del ciclo de vida del handle, no del transporte subyacente.
type Session interface {
	ID() string
	IsOpen() bool
	Send(message string) error
}

// SessionRegistry expone una copia estable de las sesiones conectadas para
// iterar sin sostener locks durante el envío.
type SessionRegistry interface {
	Snapshot() []Session
}

// Attachment es un adjunto de correo ya generado en memoria.
type Attachment struct {
	Filename string
	Content  []byte
}

// Mailer es el transporte de correo saliente.
type Mailer interface {
	Send(to, subject, htmlBody string, attachments []Attachment) error
}

// ReportRenderer genera los reportes adjuntos del resumen de stock bajo.
type ReportRenderer interface {
	RenderPDF(ctx context.Context, products []*entity.Product) ([]byte, error)
	RenderSpreadsheet(ctx context.Context, products []*entity.Product) ([]byte, error)
}

// Notifier es lo que el monitor necesita del fanout.
type Notifier interface {
	Notify(ctx context.Context, products []*entity.Product) error
}
