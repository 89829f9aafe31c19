package httpserver

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/soul/laptopkade/internal/storefront/models"
	"github.com/soul/laptopkade/internal/storefront/repo"
	"github.com/soul/laptopkade/internal/storefront/session"
)

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	H  *StorefrontHTTP
	DB *gorm.DB
}

func initTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Laptop{},
		&models.User{},
		&models.Admin{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return db
}

func newTestEnv(t *testing.T) *testEnv {
	db := initTestDB(t)

	e := echo.New()
	renderer, err := NewRenderer("../../../web/templates/*.html")
	if err != nil {
		t.Fatalf("failed to parse templates: %v", err)
	}
	e.Renderer = renderer

	return &testEnv{
		T: t,
		E: e,
		H: &StorefrontHTTP{
			Repo:      &repo.GormRepo{DB: db},
			UploadDir: t.TempDir(),
		},
		DB: db,
	}
}

func newSession() *session.Session {
	return &session.Session{Cart: make(map[uint]*models.CartItem)}
}

// doFormRequest builds an echo context carrying a url-encoded form body and
// the given session.
func (env *testEnv) doFormRequest(method, path string, form url.Values, sess *session.Session) (*httptest.ResponseRecorder, echo.Context) {
	var body string
	if form != nil {
		body = form.Encode()
	}
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	c.Set("session", sess)
	return rec, c
}

func (env *testEnv) doGetRequest(path string, sess *session.Session) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	c.Set("session", sess)
	return rec, c
}
