package cart

import "sync"

// SessionStore はセッションIDごとのカート置き場。
// カートの持ち主は1セッションだけ。mapの出し入れのみロックで守る。
type SessionStore struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewSessionStore() *SessionStore {
	return &SessionStore{carts: make(map[string]*Cart)}
}

// Get はセッションのカートを返す。無ければ空カートを作る。
func (s *SessionStore) Get(sessionID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[sessionID]
	if !ok {
		c = New()
		s.carts[sessionID] = c
	}
	return c
}

// Clear はセッションのカートを破棄する（セッション終了時）。
func (s *SessionStore) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

// Len は保持中のセッション数。
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.carts)
}
