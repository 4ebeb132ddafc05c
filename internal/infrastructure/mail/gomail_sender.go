// Package mail implementa el transporte SMTP de las alertas usando gomail.
package mail

import (
	"fmt"
	"io"

	gomail "gopkg.in/gomail.v2"

	"github.com/salesphere/salesphere-api/internal/application/alert"
	"github.com/salesphere/salesphere-api/pkg/config"
)

var _ alert.Mailer = (*GomailSender)(nil)

// GomailSender envía correos HTML con adjuntos vía SMTP.
type GomailSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewGomailSender construye el sender con la configuración SMTP.
func NewGomailSender(cfg config.SMTPConfig) *GomailSender {
	return &GomailSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// Send arma el mensaje con cuerpo HTML y adjuntos en memoria y lo envía.
func (s *GomailSender) Send(to, subject, htmlBody string, attachments []alert.Attachment) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	for _, att := range attachments {
		content := att.Content
		m.Attach(att.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}))
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("enviar correo a %s: %w", to, err)
	}
	return nil
}
