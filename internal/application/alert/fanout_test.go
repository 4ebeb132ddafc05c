package alert_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesphere/salesphere-api/internal/application/alert"
	"github.com/salesphere/salesphere-api/internal/domain"
	"github.com/salesphere/salesphere-api/internal/domain/entity"
	"github.com/salesphere/salesphere-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeSession struct {
	id       string
	open     bool
	sendErr  error
	received []string
}

func (s *fakeSession) ID() string   { return s.id }
func (s *fakeSession) IsOpen() bool { return s.open }

func (s *fakeSession) Send(m string) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.received = append(s.received, m)
	return nil
}

type fakeRegistry struct{ sessions []alert.Session }

func (r *fakeRegistry) Snapshot() []alert.Session { return r.sessions }

type fakeRenderer struct {
	pdfErr  error
	xlsxErr error
}

func (r *fakeRenderer) RenderPDF(_ context.Context, _ []*entity.Product) ([]byte, error) {
	if r.pdfErr != nil {
		return nil, r.pdfErr
	}
	return []byte("%PDF"), nil
}

func (r *fakeRenderer) RenderSpreadsheet(_ context.Context, _ []*entity.Product) ([]byte, error) {
	if r.xlsxErr != nil {
		return nil, r.xlsxErr
	}
	return []byte("PK"), nil
}

type fakeMailer struct {
	err         error
	sent        int
	to, subject string
	body        string
	attachments []alert.Attachment
}

func (m *fakeMailer) Send(to, subject, htmlBody string, attachments []alert.Attachment) error {
	if m.err != nil {
		return m.err
	}
	m.sent++
	m.to, m.subject, m.body, m.attachments = to, subject, htmlBody, attachments
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// ──────────────────────────────────────────────────────────────────────────────
// Broadcast
// ──────────────────────────────────────────────────────────────────────────────

func TestBroadcast_EntregaATodasLasSesionesAbiertas(t *testing.T) {
	s1 := &fakeSession{id: "s1", open: true}
	s2 := &fakeSession{id: "s2", open: true}
	f := alert.NewFanout(&fakeRegistry{sessions: []alert.Session{s1, s2}}, &fakeRenderer{}, &fakeMailer{}, "x@y.z", testLogger())

	f.Broadcast("Café: 3 unidades")

	assert.Equal(t, []string{"Café: 3 unidades"}, s1.received)
	assert.Equal(t, []string{"Café: 3 unidades"}, s2.received)
}

func TestBroadcast_OmiteSesionesCerradas(t *testing.T) {
	closed := &fakeSession{id: "s1", open: false}
	open := &fakeSession{id: "s2", open: true}
	f := alert.NewFanout(&fakeRegistry{sessions: []alert.Session{closed, open}}, &fakeRenderer{}, &fakeMailer{}, "x@y.z", testLogger())

	f.Broadcast("hola")

	assert.Empty(t, closed.received, "una sesión cerrada no recibe nada")
	assert.Len(t, open.received, 1)
}

func TestBroadcast_UnaSesionFallidaNoBloqueaALasDemas(t *testing.T) {
	failing := &fakeSession{id: "s1", open: true, sendErr: errors.New("conexión rota")}
	healthy := &fakeSession{id: "s2", open: true}
	f := alert.NewFanout(&fakeRegistry{sessions: []alert.Session{failing, healthy}}, &fakeRenderer{}, &fakeMailer{}, "x@y.z", testLogger())

	f.Broadcast("hola")

	assert.Len(t, healthy.received, 1, "las demás sesiones siguen recibiendo")
}

// ──────────────────────────────────────────────────────────────────────────────
// SendDigest / Notify
// ──────────────────────────────────────────────────────────────────────────────

func TestSendDigest_EnviaCorreoConAmbosAdjuntos(t *testing.T) {
	mailer := &fakeMailer{}
	f := alert.NewFanout(&fakeRegistry{}, &fakeRenderer{}, mailer, "alertas@acme.co", testLogger())

	err := f.SendDigest(context.Background(), []*entity.Product{producto("Café", 3, 10)})
	require.NoError(t, err)

	assert.Equal(t, 1, mailer.sent)
	assert.Equal(t, "alertas@acme.co", mailer.to)
	assert.Equal(t, "Alerta de Stock Bajo", mailer.subject)
	assert.Contains(t, mailer.body, "<td>Café</td>")
	require.Len(t, mailer.attachments, 2, "PDF y hoja de cálculo")
	assert.Equal(t, "reporte_stock_bajo.pdf", mailer.attachments[0].Filename)
	assert.Equal(t, "reporte_stock_bajo.xlsx", mailer.attachments[1].Filename)
}

func TestSendDigest_FalloDeRenderSeEnvuelveEnDeliveryError(t *testing.T) {
	renderErr := errors.New("sin fuente")
	mailer := &fakeMailer{}
	f := alert.NewFanout(&fakeRegistry{}, &fakeRenderer{pdfErr: renderErr}, mailer, "x@y.z", testLogger())

	err := f.SendDigest(context.Background(), []*entity.Product{producto("Café", 3, 10)})

	require.Error(t, err)
	assert.True(t, domain.IsDeliveryError(err))
	assert.ErrorIs(t, err, renderErr, "la causa original debe preservarse")
	assert.Zero(t, mailer.sent, "sin adjuntos no se envía el correo")
}

func TestSendDigest_FalloSMTPSeEnvuelveEnDeliveryError(t *testing.T) {
	smtpErr := errors.New("connection refused")
	f := alert.NewFanout(&fakeRegistry{}, &fakeRenderer{}, &fakeMailer{err: smtpErr}, "x@y.z", testLogger())

	err := f.SendDigest(context.Background(), []*entity.Product{producto("Café", 3, 10)})

	require.Error(t, err)
	assert.True(t, domain.IsDeliveryError(err))
	assert.ErrorIs(t, err, smtpErr)
}

func TestNotify_BroadcastCorreYElErrorDeCorreoSePropaga(t *testing.T) {
	session := &fakeSession{id: "s1", open: true}
	smtpErr := errors.New("timeout")
	f := alert.NewFanout(&fakeRegistry{sessions: []alert.Session{session}}, &fakeRenderer{}, &fakeMailer{err: smtpErr}, "x@y.z", testLogger())

	err := f.Notify(context.Background(), []*entity.Product{producto("Café", 3, 10)})

	require.Error(t, err, "el fallo del correo siempre se propaga")
	assert.True(t, domain.IsDeliveryError(err))
	assert.Len(t, session.received, 1, "el broadcast corre aunque el correo falle")
	assert.Equal(t, "Café: 3 unidades", session.received[0])
}
