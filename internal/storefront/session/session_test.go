package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soul/laptopkade/internal/storefront/models"
)

func newSession() *Session {
	return &Session{Cart: make(map[uint]*models.CartItem)}
}

func TestSession_AddToCart_MergesQuantity(t *testing.T) {
	t.Parallel()

	s := newSession()
	laptop := &models.Laptop{ID: 1, Name: "XPS 13", Brand: "Dell", Price: "$999"}

	s.AddToCart(laptop, 1)
	s.AddToCart(laptop, 2)

	items := s.CartItems()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, uint(1), items[0].LaptopID)
}

func TestSession_RemoveFromCart_DropsWholeLine(t *testing.T) {
	t.Parallel()

	s := newSession()
	s.AddToCart(&models.Laptop{ID: 1, Name: "XPS 13", Price: "$999"}, 5)

	s.RemoveFromCart(1)

	assert.Empty(t, s.CartItems())
}

func TestSession_RemoveFromCart_MissingLineIsNoOp(t *testing.T) {
	t.Parallel()

	s := newSession()
	s.AddToCart(&models.Laptop{ID: 1, Name: "XPS 13", Price: "$999"}, 1)

	s.RemoveFromCart(42)

	assert.Len(t, s.CartItems(), 1)
}

func TestSession_CartTotal(t *testing.T) {
	t.Parallel()

	s := newSession()
	s.AddToCart(&models.Laptop{ID: 1, Name: "XPS 13", Price: "$999"}, 2)
	s.AddToCart(&models.Laptop{ID: 2, Name: "MacBook Air", Price: "$1,199.00"}, 1)

	assert.Equal(t, float64(999*2+1199), s.CartTotal())
}

func TestSession_ClearCart(t *testing.T) {
	t.Parallel()

	s := newSession()
	s.AddToCart(&models.Laptop{ID: 1, Name: "XPS 13", Price: "$999"}, 1)

	s.ClearCart()

	assert.Empty(t, s.CartItems())
	assert.Zero(t, s.CartTotal())
}

func TestSession_Principals(t *testing.T) {
	t.Parallel()

	s := newSession()
	assert.False(t, s.LoggedIn())
	assert.False(t, s.IsAdmin())

	s.Do(func(s *Session) { s.User = &models.User{ID: 1, Username: "alice"} })
	assert.True(t, s.LoggedIn())
	assert.False(t, s.IsAdmin())

	s.Do(func(s *Session) { s.User = nil; s.Admin = "admin" })
	assert.True(t, s.LoggedIn())
	assert.True(t, s.IsAdmin())
}

func TestManager_Middleware_ReusesSessionByCookie(t *testing.T) {
	t.Parallel()

	m := NewManager()
	e := echo.New()

	var first *Session
	handler := m.Middleware(func(c echo.Context) error {
		first = FromContext(c)
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	require.NotNil(t, first)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	var sessionCookie *http.Cookie
	for _, ck := range cookies {
		if ck.Name == CookieName {
			sessionCookie = ck
		}
	}
	require.NotNil(t, sessionCookie)

	var second *Session
	handler2 := m.Middleware(func(c echo.Context) error {
		second = FromContext(c)
		return c.NoContent(http.StatusOK)
	})

	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.AddCookie(sessionCookie)
	require.NoError(t, handler2(e.NewContext(req2, httptest.NewRecorder())))

	assert.Same(t, first, second)
}

func TestManager_Middleware_UnknownCookieGetsFreshSession(t *testing.T) {
	t.Parallel()

	m := NewManager()
	e := echo.New()

	var got *Session
	handler := m.Middleware(func(c echo.Context) error {
		got = FromContext(c)
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "stale-id"})
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))

	require.NotNil(t, got)
	assert.Empty(t, got.CartItems())
}
