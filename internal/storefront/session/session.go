package session

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/soul/laptopkade/internal/storefront/models"
)

const (
	CookieName = "session_id"
	contextKey = "session"
)

// Session holds the per-visitor state: the cart keyed by laptop id, the
// logged-in storefront user and the admin principal. Each session is only
// touched by the requests of its own cookie, but the lock keeps concurrent
// requests from the same browser safe.
type Session struct {
	mu    sync.Mutex
	Cart  map[uint]*models.CartItem
	User  *models.User
	Admin string
}

func (s *Session) Do(fn func(*Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s)
}

// AddToCart merges a laptop into the cart: an already-present line gets
// its quantity incremented, one line per laptop id.
func (s *Session) AddToCart(l *models.Laptop, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item, ok := s.Cart[l.ID]; ok {
		item.Quantity += quantity
		return
	}
	s.Cart[l.ID] = &models.CartItem{
		LaptopID: l.ID,
		Name:     l.Name,
		Brand:    l.Brand,
		Price:    l.Price,
		ImageURL: l.ImageURL,
		Quantity: quantity,
	}
}

// RemoveFromCart drops the whole line regardless of quantity. Removing a
// missing line is a no-op.
func (s *Session) RemoveFromCart(laptopID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Cart, laptopID)
}

func (s *Session) CartItems() []*models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]*models.CartItem, 0, len(s.Cart))
	for _, item := range s.Cart {
		items = append(items, item)
	}
	return items
}

func (s *Session) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, item := range s.Cart {
		total += item.Total()
	}
	return total
}

func (s *Session) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Cart = make(map[uint]*models.CartItem)
}

func (s *Session) LoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.User != nil || s.Admin != ""
}

func (s *Session) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Admin != ""
}

// Manager owns all live sessions, keyed by the uuid value of the session
// cookie.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

func (m *Manager) get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

func (m *Manager) create() (string, *Session) {
	id := uuid.NewString()
	s := &Session{Cart: make(map[uint]*models.CartItem)}

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()

	return id, s
}

// Middleware attaches the visitor's session to the echo context, creating
// one (and setting the cookie) on first contact.
func (m *Manager) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if cookie, err := c.Cookie(CookieName); err == nil {
			if s, ok := m.get(cookie.Value); ok {
				c.Set(contextKey, s)
				return next(c)
			}
		}

		id, s := m.create()
		c.SetCookie(&http.Cookie{
			Name:     CookieName,
			Value:    id,
			Path:     "/",
			Expires:  time.Now().Add(24 * time.Hour),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		c.Set(contextKey, s)
		return next(c)
	}
}

// FromContext returns the session attached by Middleware.
func FromContext(c echo.Context) *Session {
	s, _ := c.Get(contextKey).(*Session)
	return s
}
