package ws

import (
	"sync"

	"github.com/salesphere/salesphere-api/internal/application/alert"
)

var _ alert.SessionRegistry = (*Registry)(nil)

// Registry guarda las sesiones vivas bajo un mutex. Add y Remove se llaman
// desde los handlers de conexión; Snapshot desde el fanout de alertas.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]alert.Session
}

// NewRegistry construye el registro vacío.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]alert.Session)}
}

// Add registra una sesión nueva.
func (r *Registry) Add(s alert.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID()] = s
}

// Remove elimina la sesión del registro. Es idempotente.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Snapshot devuelve una copia de las sesiones registradas. Los envíos
// posteriores operan sobre la copia, sin retener el lock.
func (r *Registry) Snapshot() []alert.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]alert.Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s)
	}
	return out
}

// Count devuelve cuántas sesiones hay registradas.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
