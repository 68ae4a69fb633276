package store

import (
	"sync"

	"github.com/PaulGerman23/motoshopV2/src/cart/domain/entity"
)

// SessionStore guarda el carrito de cada sesión en memoria.
// Un carrito por sesión; las mutaciones de una misma sesión se
// serializan con el mutex de la sesión, igual que en el navegador
// donde corren una a la vez hasta completarse.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

type session struct {
	mu   sync.Mutex
	cart *entity.Cart
}

// NewSessionStore crea un store vacío
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*session),
	}
}

func (s *SessionStore) get(sessionID string) *session {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok = s.sessions[sessionID]; ok {
		return sess
	}
	sess = &session{cart: entity.NewCart()}
	s.sessions[sessionID] = sess
	return sess
}

// WithCart ejecuta fn con el carrito de la sesión bajo lock. El carrito
// se crea vacío en el primer uso. Si fn retorna error, cualquier
// decisión de rollback es responsabilidad de fn (las mutaciones del
// aggregate ya fallan sin efectos parciales).
func (s *SessionStore) WithCart(sessionID string, fn func(cart *entity.Cart) error) error {
	sess := s.get(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return fn(sess.cart)
}

// Replace reemplaza el carrito completo de la sesión (recuperación de ticket)
func (s *SessionStore) Replace(sessionID string, cart *entity.Cart) {
	sess := s.get(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.cart = cart
}

// Delete descarta la sesión
func (s *SessionStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// Count retorna la cantidad de sesiones activas
func (s *SessionStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
