package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	echo "github.com/labstack/echo/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/splunk-genie/genie/pkg/config"
)

// userContextKey is the echo context key holding the authenticated
// username.
const userContextKey = "user"

var errInvalidToken = errors.New("invalid token")

// authenticator issues and validates HS256 access tokens for the dev
// user table: a single configured user with a bcrypt password hash.
// With auth disabled it resolves every request to the default user.
type authenticator struct {
	enabled     bool
	defaultUser string
	secret      []byte
	expiry      time.Duration

	// passwordHash is computed once at startup so login pays only the
	// bcrypt compare.
	passwordHash []byte
}

func newAuthenticator(cfg config.AuthConfig) *authenticator {
	a := &authenticator{
		enabled:     cfg.Enabled,
		defaultUser: cfg.DefaultUser,
		secret:      []byte(cfg.SecretKey),
		expiry:      cfg.TokenExpiry,
	}
	if a.defaultUser == "" {
		a.defaultUser = "dev"
	}
	if a.expiry <= 0 {
		a.expiry = 30 * time.Minute
	}
	if cfg.DevPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.DevPassword), bcrypt.DefaultCost)
		if err == nil {
			a.passwordHash = hash
		}
	}
	return a
}

// checkCredentials verifies username and password against the dev user
// table.
func (a *authenticator) checkCredentials(username, password string) bool {
	if username != a.defaultUser || len(a.passwordHash) == 0 {
		return false
	}
	return bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)) == nil
}

// issueToken mints an HS256 token with the username as subject.
func (a *authenticator) issueToken(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.expiry)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// parseToken validates a token and returns its subject. Expired,
// malformed, or wrongly signed tokens all map to errInvalidToken.
func (a *authenticator) parseToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", errInvalidToken
	}
	if claims.Subject == "" {
		return "", errInvalidToken
	}
	return claims.Subject, nil
}

// resolveUser determines the request's user from the Authorization
// header. With auth disabled every request runs as the default user.
func (a *authenticator) resolveUser(authorization string) (string, error) {
	if !a.enabled {
		return a.defaultUser, nil
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		return "", errInvalidToken
	}
	return a.parseToken(strings.TrimPrefix(authorization, prefix))
}

// requireUser returns middleware that authenticates the request and
// stores the username in the context.
func (s *Server) requireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			username, err := s.auth.resolveUser(c.Request().Header.Get("Authorization"))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing token")
			}
			c.Set(userContextKey, username)
			return next(c)
		}
	}
}

// currentUser returns the authenticated username set by requireUser.
func currentUser(c *echo.Context) string {
	if u, ok := c.Get(userContextKey).(string); ok && u != "" {
		return u
	}
	return "api-client"
}

// loginHandler handles POST /auth/login. Accepts JSON or form bodies.
func (s *Server) loginHandler(c *echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid login request")
	}
	if req.Username == "" {
		req.Username = c.Request().FormValue("username")
		req.Password = c.Request().FormValue("password")
	}
	if req.Username == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and password are required")
	}

	if !s.auth.checkCredentials(req.Username, req.Password) {
		return echo.NewHTTPError(http.StatusUnauthorized, "incorrect username or password")
	}

	token, err := s.auth.issueToken(req.Username)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to issue token")
	}
	return c.JSON(http.StatusOK, &TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// meHandler handles GET /auth/me.
func (s *Server) meHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, &MeResponse{Username: currentUser(c)})
}
