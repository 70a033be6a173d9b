package delivery_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"notes-backend/internal/auth/delivery"
	"notes-backend/internal/auth/token"
	"notes-backend/internal/auth/usecase"
	"notes-backend/internal/testutil"
	"notes-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthEngine(t *testing.T) *gin.Engine {
	t.Helper()
	cfg := testutil.TestConfig()
	userRepo := testutil.NewMemoryUserRepository()
	tokens := token.NewService(cfg)
	resolver := delivery.NewIdentityResolver(tokens, userRepo)
	authUc := usecase.NewAuthUsecase(userRepo, tokens, cfg)
	handler := delivery.NewAuthHandler(authUc, resolver, cfg)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(delivery.Gate(delivery.DefaultGateConfig(), tokens))
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", handler.Register)
		auth.POST("/login", handler.Login)
		auth.POST("/refresh", handler.Refresh)
		auth.POST("/logout", handler.Logout)
		auth.GET("/me", handler.Me)
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Envelope {
	t.Helper()
	var env response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func cookieByName(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func registerRequest() map[string]string {
	return map[string]string{
		"username": "alice",
		"email":    "alice@x.com",
		"fullname": "Alice Example",
		"password": "pw",
	}
}

func TestRegisterEndpoint(t *testing.T) {
	r := newAuthEngine(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", registerRequest(), nil)

	require.Equal(t, http.StatusCreated, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, http.StatusCreated, env.StatusCode)
	assert.True(t, env.Success)
	assert.NotContains(t, w.Body.String(), `"password"`)
	assert.NotContains(t, w.Body.String(), `"refreshToken":""`)

	resp := w.Result()
	access := cookieByName(resp, delivery.CookieAccessToken)
	refresh := cookieByName(resp, delivery.CookieRefreshToken)
	require.NotNil(t, access)
	require.NotNil(t, refresh)
	assert.NotEmpty(t, access.Value)
	assert.True(t, access.HttpOnly)
	assert.Equal(t, "/", access.Path)
	assert.Equal(t, http.SameSiteLaxMode, access.SameSite)
	assert.False(t, access.Secure) // not production
	assert.NotEmpty(t, refresh.Value)
}

func TestRegisterEndpointValidation(t *testing.T) {
	r := newAuthEngine(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", map[string]string{"username": "alice"}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
}

func TestRegisterEndpointConflict(t *testing.T) {
	r := newAuthEngine(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", registerRequest(), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/register", registerRequest(), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, http.StatusConflict, env.StatusCode)
	assert.False(t, env.Success)
}

func TestLoginEndpointWrongPassword(t *testing.T) {
	r := newAuthEngine(t)
	doJSON(t, r, http.MethodPost, "/api/auth/register", registerRequest(), nil)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "alice",
		"password": "wrong",
	}, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	env := decodeEnvelope(t, w)
	assert.Contains(t, env.Message, "Invalid user credentials")
	assert.Nil(t, cookieByName(w.Result(), delivery.CookieAccessToken))
	assert.Nil(t, cookieByName(w.Result(), delivery.CookieRefreshToken))
}

func TestRefreshEndpointRotates(t *testing.T) {
	r := newAuthEngine(t)
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", registerRequest(), nil)
	require.Equal(t, http.StatusCreated, w.Code)
	refresh := cookieByName(w.Result(), delivery.CookieRefreshToken)
	require.NotNil(t, refresh)

	w = doJSON(t, r, http.MethodPost, "/api/auth/refresh", nil, []*http.Cookie{refresh})
	require.Equal(t, http.StatusOK, w.Code)
	rotated := cookieByName(w.Result(), delivery.CookieRefreshToken)
	require.NotNil(t, rotated)
	assert.NotEqual(t, refresh.Value, rotated.Value)

	// Replaying the rotated-out token fails.
	w = doJSON(t, r, http.MethodPost, "/api/auth/refresh", nil, []*http.Cookie{refresh})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	env := decodeEnvelope(t, w)
	assert.Contains(t, env.Message, "expired or already used")

	// The current one succeeds.
	w = doJSON(t, r, http.MethodPost, "/api/auth/refresh", nil, []*http.Cookie{rotated})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRefreshEndpointWithoutToken(t *testing.T) {
	r := newAuthEngine(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/refresh", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutEndpointClearsSession(t *testing.T) {
	r := newAuthEngine(t)
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", registerRequest(), nil)
	require.Equal(t, http.StatusCreated, w.Code)
	access := cookieByName(w.Result(), delivery.CookieAccessToken)
	refresh := cookieByName(w.Result(), delivery.CookieRefreshToken)

	w = doJSON(t, r, http.MethodPost, "/api/auth/logout", nil, []*http.Cookie{access, refresh})
	require.Equal(t, http.StatusOK, w.Code)

	clearedAccess := cookieByName(w.Result(), delivery.CookieAccessToken)
	require.NotNil(t, clearedAccess)
	assert.Empty(t, clearedAccess.Value)

	// The revoked refresh token can no longer mint a session.
	w = doJSON(t, r, http.MethodPost, "/api/auth/refresh", nil, []*http.Cookie{refresh})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeEndpoint(t *testing.T) {
	r := newAuthEngine(t)

	w := doJSON(t, r, http.MethodGet, "/api/auth/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"isLoggedIn":false`)

	reg := doJSON(t, r, http.MethodPost, "/api/auth/register", registerRequest(), nil)
	access := cookieByName(reg.Result(), delivery.CookieAccessToken)

	w = doJSON(t, r, http.MethodGet, "/api/auth/me", nil, []*http.Cookie{access})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"isLoggedIn":true`)
	assert.Contains(t, w.Body.String(), `"isAdmin":false`)
}
