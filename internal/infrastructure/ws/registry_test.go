package ws_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesphere/salesphere-api/internal/application/alert"
	"github.com/salesphere/salesphere-api/internal/infrastructure/ws"
)

type stubSession struct {
	id   string
	open bool
}

func (s *stubSession) ID() string        { return s.id }
func (s *stubSession) IsOpen() bool      { return s.open }
func (s *stubSession) Send(string) error { return nil }

func TestRegistry_AddRemoveCount(t *testing.T) {
	r := ws.NewRegistry()
	require.Zero(t, r.Count())

	r.Add(&stubSession{id: "s1", open: true})
	r.Add(&stubSession{id: "s2", open: true})
	assert.Equal(t, 2, r.Count())

	r.Remove("s1")
	assert.Equal(t, 1, r.Count())

	// Remove es idempotente
	r.Remove("s1")
	assert.Equal(t, 1, r.Count())
}

func TestRegistry_SnapshotEsUnaCopia(t *testing.T) {
	r := ws.NewRegistry()
	r.Add(&stubSession{id: "s1", open: true})

	snap := r.Snapshot()
	require.Len(t, snap, 1)

	r.Remove("s1")
	assert.Len(t, snap, 1, "la copia no cambia al modificar el registro")
	assert.Zero(t, r.Count())
}

func TestRegistry_AccesoConcurrente(t *testing.T) {
	r := ws.NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("s%d", n)
			r.Add(&stubSession{id: id, open: true})
			_ = r.Snapshot()
			r.Remove(id)
		}(i)
	}
	wg.Wait()

	assert.Zero(t, r.Count(), "todas las sesiones fueron removidas")
}

var _ alert.Session = (*stubSession)(nil)
