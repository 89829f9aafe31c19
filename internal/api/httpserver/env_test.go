package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apijwt "github.com/soul/laptopkade/internal/api/jwt"
	"github.com/soul/laptopkade/internal/api/models"
	"github.com/soul/laptopkade/internal/api/repo"
	"github.com/soul/laptopkade/internal/api/service"
)

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := db.AutoMigrate(&models.Laptop{}, &models.User{}, &models.Token{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	store := &repo.GormRepo{DB: db}
	provider := &apijwt.Provider{
		Secret:     []byte("test-jwt-secret"),
		Expiration: 24 * time.Hour,
	}

	e := echo.New()
	Register(e, &Deps{
		Auth:    &AuthHTTP{Svc: &service.AuthService{Repo: store, Provider: provider}},
		Laptops: &LaptopHTTP{Svc: &service.LaptopService{Repo: store}},
	})

	return &testEnv{T: t, E: e, DB: db}
}

// doJSON drives a request through the full router, error handler included.
func (env *testEnv) doJSON(method, path string, body interface{}, headers ...http.Header) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, h := range headers {
		for k, vs := range h {
			for _, v := range vs {
				req.Header.Add(k, v)
			}
		}
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

// bytesTrim drops the trailing newline c.JSON appends.
func bytesTrim(b []byte) []byte {
	return bytes.TrimSpace(b)
}

func bearer(token string) http.Header {
	h := http.Header{}
	h.Set(echo.HeaderAuthorization, "Bearer "+token)
	return h
}

func (env *testEnv) signup(t *testing.T) {
	t.Helper()

	rec := env.doJSON(http.MethodPost, "/api/auth/signup", map[string]string{
		"username":        "alice",
		"email":           "alice@example.com",
		"password":        "secret123",
		"confirmPassword": "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
}

func (env *testEnv) login(t *testing.T) string {
	t.Helper()

	env.signup(t)

	rec := env.doJSON(http.MethodPost, "/api/auth/login", map[string]string{
		"username": "alice",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}
