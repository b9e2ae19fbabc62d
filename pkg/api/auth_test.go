package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splunk-genie/genie/pkg/config"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		Enabled:     true,
		DefaultUser: "dev",
		DevPassword: "hunter2",
		SecretKey:   "test-secret",
		TokenExpiry: time.Hour,
	}
}

func TestAuthenticator(t *testing.T) {
	t.Run("accepts correct credentials", func(t *testing.T) {
		a := newAuthenticator(testAuthConfig())
		assert.True(t, a.checkCredentials("dev", "hunter2"))
	})

	t.Run("rejects wrong password and unknown user", func(t *testing.T) {
		a := newAuthenticator(testAuthConfig())
		assert.False(t, a.checkCredentials("dev", "wrong"))
		assert.False(t, a.checkCredentials("admin", "hunter2"))
	})

	t.Run("rejects everything without a configured password", func(t *testing.T) {
		cfg := testAuthConfig()
		cfg.DevPassword = ""
		a := newAuthenticator(cfg)
		assert.False(t, a.checkCredentials("dev", ""))
	})

	t.Run("token round trip", func(t *testing.T) {
		a := newAuthenticator(testAuthConfig())
		token, err := a.issueToken("dev")
		require.NoError(t, err)

		subject, err := a.parseToken(token)
		require.NoError(t, err)
		assert.Equal(t, "dev", subject)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		cfg := testAuthConfig()
		cfg.TokenExpiry = -time.Minute
		a := newAuthenticator(cfg)
		token, err := a.issueToken("dev")
		require.NoError(t, err)

		_, err = a.parseToken(token)
		assert.ErrorIs(t, err, errInvalidToken)
	})

	t.Run("rejects token signed with another secret", func(t *testing.T) {
		other := testAuthConfig()
		other.SecretKey = "different-secret"
		token, err := newAuthenticator(other).issueToken("dev")
		require.NoError(t, err)

		_, err = newAuthenticator(testAuthConfig()).parseToken(token)
		assert.ErrorIs(t, err, errInvalidToken)
	})

	t.Run("rejects garbage token", func(t *testing.T) {
		a := newAuthenticator(testAuthConfig())
		_, err := a.parseToken("not.a.token")
		assert.ErrorIs(t, err, errInvalidToken)
	})

	t.Run("disabled auth resolves to default user", func(t *testing.T) {
		cfg := testAuthConfig()
		cfg.Enabled = false
		a := newAuthenticator(cfg)

		user, err := a.resolveUser("")
		require.NoError(t, err)
		assert.Equal(t, "dev", user)
	})

	t.Run("enabled auth requires bearer header", func(t *testing.T) {
		a := newAuthenticator(testAuthConfig())
		_, err := a.resolveUser("")
		assert.ErrorIs(t, err, errInvalidToken)
		_, err = a.resolveUser("Basic dXNlcjpwYXNz")
		assert.ErrorIs(t, err, errInvalidToken)
	})
}

func TestLoginHandler(t *testing.T) {
	newServer := func() *Server {
		return &Server{auth: newAuthenticator(testAuthConfig())}
	}

	doLogin := func(t *testing.T, s *Server, body string) (*httptest.ResponseRecorder, error) {
		t.Helper()
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		return rec, s.loginHandler(c)
	}

	t.Run("issues token for correct credentials", func(t *testing.T) {
		s := newServer()
		rec, err := doLogin(t, s, `{"username":"dev","password":"hunter2"}`)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp TokenResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "bearer", resp.TokenType)

		subject, err := s.auth.parseToken(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "dev", subject)
	})

	t.Run("rejects bad credentials", func(t *testing.T) {
		_, err := doLogin(t, newServer(), `{"username":"dev","password":"wrong"}`)
		require.IsType(t, &echo.HTTPError{}, err)
		assert.Equal(t, http.StatusUnauthorized, err.(*echo.HTTPError).Code)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		_, err := doLogin(t, newServer(), `{"username":"dev"}`)
		require.IsType(t, &echo.HTTPError{}, err)
		assert.Equal(t, http.StatusBadRequest, err.(*echo.HTTPError).Code)
	})
}

func TestMeHandler(t *testing.T) {
	s := &Server{auth: newAuthenticator(testAuthConfig())}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(userContextKey, "dev")

	require.NoError(t, s.meHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp MeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "dev", resp.Username)
}
