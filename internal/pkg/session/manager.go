package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Manager binds a Store to the browser via a signed cookie. The cookie value
// is an HS256 JWT whose subject is the session token; a malformed, expired or
// forged cookie is treated as "no session".
type Manager struct {
	store      Store
	secret     []byte
	cookieName string
	ttl        time.Duration
}

// contextTokenKey caches the resolved session token on the gin context so
// several Set calls within one request share the token minted by the first.
const contextTokenKey = "sessionToken"

// ManagerConfig holds signed-cookie settings
type ManagerConfig struct {
	Secret     string
	CookieName string
	TTL        time.Duration
}

// NewManager creates a session manager over the given store
func NewManager(store Store, cfg ManagerConfig) *Manager {
	return &Manager{
		store:      store,
		secret:     []byte(cfg.Secret),
		cookieName: cfg.CookieName,
		ttl:        cfg.TTL,
	}
}

// CookieName returns the name of the session cookie
func (m *Manager) CookieName() string {
	return m.cookieName
}

// SignToken wraps a session token in a signed cookie value
func (m *Manager) SignToken(token string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   token,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// VerifyCookie extracts the session token from a signed cookie value
func (m *Manager) VerifyCookie(value string) (string, error) {
	token, err := jwt.ParseWithClaims(value, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return claims.Subject, nil
}

// Token returns the session token for the request, either cached from an
// earlier Issue in the same request or carried by the request cookie.
func (m *Manager) Token(c *gin.Context) (string, bool) {
	if cached, ok := c.Get(contextTokenKey); ok {
		token, _ := cached.(string)
		return token, token != ""
	}

	value, err := c.Cookie(m.cookieName)
	if err != nil || value == "" {
		return "", false
	}

	token, err := m.VerifyCookie(value)
	if err != nil {
		return "", false
	}

	c.Set(contextTokenKey, token)
	return token, true
}

// Issue mints a fresh session token and sets the signed cookie on the
// response. An existing valid session is reused.
func (m *Manager) Issue(c *gin.Context) (string, error) {
	if token, ok := m.Token(c); ok {
		return token, nil
	}

	token := uuid.New().String()
	signed, err := m.SignToken(token)
	if err != nil {
		return "", fmt.Errorf("failed to sign session cookie: %w", err)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, signed, int(m.ttl.Seconds()), "/", "", false, true)
	c.Set(contextTokenKey, token)
	return token, nil
}

// Set stores a session attribute, issuing a session if the request has none
func (m *Manager) Set(c *gin.Context, key, value string) error {
	token, err := m.Issue(c)
	if err != nil {
		return err
	}
	m.store.Set(token, key, value)
	return nil
}

// Get returns a session attribute for the request, if a session exists
func (m *Manager) Get(c *gin.Context, key string) (string, bool) {
	token, ok := m.Token(c)
	if !ok {
		return "", false
	}
	return m.store.Get(token, key)
}

// PopFlag consumes a one-shot session flag, reporting whether it was set
func (m *Manager) PopFlag(c *gin.Context, key string) bool {
	token, ok := m.Token(c)
	if !ok {
		return false
	}
	if _, set := m.store.Get(token, key); !set {
		return false
	}
	m.store.Delete(token, key)
	return true
}

// Clear drops all session state and expires the cookie
func (m *Manager) Clear(c *gin.Context) {
	if token, ok := m.Token(c); ok {
		m.store.Clear(token)
	}
	c.Set(contextTokenKey, "")
	c.SetCookie(m.cookieName, "", -1, "/", "", false, true)
}
