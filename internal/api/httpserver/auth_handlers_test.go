package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soul/laptopkade/internal/api/models"
)

func TestSignup_CreatedAndConflictPayload(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t)

	rec := env.doJSON(http.MethodPost, "/api/auth/signup", map[string]string{
		"username":        "alice",
		"email":           "other@example.com",
		"password":        "secret123",
		"confirmPassword": "secret123",
	})
	require.Equal(t, http.StatusConflict, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusConflict, resp.Status)
	assert.Contains(t, resp.Message, "username already exists")
	assert.Equal(t, "/api/auth/signup", resp.Path)
	assert.False(t, resp.Timestamp.IsZero())
}

func TestSignup_ShortPasswordIsBadRequest(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodPost, "/api/auth/signup", map[string]string{
		"username":        "alice",
		"email":           "alice@example.com",
		"password":        "12345",
		"confirmPassword": "12345",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "at least 6 characters")
}

func TestLogin_WrongPasswordIsUnauthorized(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t)

	rec := env.doJSON(http.MethodPost, "/api/auth/login", map[string]string{
		"username": "alice",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestValidate_MissingHeaderIsBadRequest(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodPost, "/api/auth/validate", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "false", string(bytesTrim(rec.Body.Bytes())))
}

func TestValidate_TokenLifecycle(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	rec := env.doJSON(http.MethodPost, "/api/auth/validate", nil, bearer(token))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "true", string(bytesTrim(rec.Body.Bytes())))

	rec = env.doJSON(http.MethodPost, "/api/auth/validate", nil, bearer("garbage"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "false", string(bytesTrim(rec.Body.Bytes())))
}

// Revoking a token does not stop it passing the structural validate check;
// only the stored flag records the revocation.
func TestLogout_RevokedTokenStillPassesValidate(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	rec := env.doJSON(http.MethodPost, "/api/auth/logout", nil, bearer(token))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Token revoked successfully", rec.Body.String())

	var stored models.Token
	require.NoError(t, env.DB.Where("token_value = ?", token).First(&stored).Error)
	assert.True(t, stored.Revoked)

	rec = env.doJSON(http.MethodPost, "/api/auth/validate", nil, bearer(token))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "true", string(bytesTrim(rec.Body.Bytes())))
}

func TestLogout_UnknownTokenIsNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodPost, "/api/auth/logout", nil, bearer("unknown"))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetUser(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t)

	rec := env.doJSON(http.MethodGet, "/api/auth/user/alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "alice", user.Username)
	assert.NotContains(t, rec.Body.String(), "PasswordHash")

	rec = env.doJSON(http.MethodGet, "/api/auth/user/mallory", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetUserTokens_OnlyActiveOnes(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	var user models.User
	require.NoError(t, env.DB.Where("username = ?", "alice").First(&user).Error)

	rec := env.doJSON(http.MethodGet, "/api/auth/user/1/tokens", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var tokens []models.Token
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tokens))
	require.Len(t, tokens, 1)
	assert.Equal(t, token, tokens[0].TokenValue)

	rec = env.doJSON(http.MethodPost, "/api/auth/logout", nil, bearer(token))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.doJSON(http.MethodGet, "/api/auth/user/1/tokens", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tokens))
	assert.Empty(t, tokens)
}

func TestAuthHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodGet, "/api/auth/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Auth API is running", rec.Body.String())
}
