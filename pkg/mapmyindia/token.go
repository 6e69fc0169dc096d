package mapmyindia

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"time"

	"github.com/akshat7606/QuickC/pkg/faillog"
	"github.com/tidwall/gjson"
)

const (
	// TokenSafetyMargin is how long before expiry a token stops being served.
	TokenSafetyMargin = 30 * time.Second

	// MinTokenLifetime floors the lifetime reported by the provider so a
	// zero or tiny expires_in cannot make every request refresh.
	MinTokenLifetime = 60 * time.Second
)

// TokenSource hands out bearer tokens for the OAuth scheme.
type TokenSource interface {
	Acquire(ctx context.Context) (string, error)
	Invalidate(token string)
}

// TokenCache holds at most one bearer token obtained with the
// client-credentials grant. Readers share a read lock; a refresh holds the
// write lock so only one token exchange is ever in flight.
type TokenCache struct {
	caller       *Caller
	tokenURL     string
	clientID     string
	clientSecret string
	redactor     *faillog.Redactor
	now          func() time.Time

	mu        sync.RWMutex
	token     string
	expiresAt time.Time
}

var _ TokenSource = (*TokenCache)(nil)

// NewTokenCache returns a cache that exchanges creds at tokenURL. Every
// token it stores is registered with redactor.
func NewTokenCache(caller *Caller, tokenURL string, creds Credentials, redactor *faillog.Redactor) *TokenCache {
	return &TokenCache{
		caller:       caller,
		tokenURL:     tokenURL,
		clientID:     creds.ClientID,
		clientSecret: creds.ClientSecret,
		redactor:     redactor,
		now:          time.Now,
	}
}

// Acquire returns a token valid for at least TokenSafetyMargin, refreshing
// it when needed.
func (c *TokenCache) Acquire(ctx context.Context) (string, error) {
	if c.clientID == "" || c.clientSecret == "" {
		return "", ErrCredentialsUnavailable
	}

	c.mu.RLock()
	if c.validLocked() {
		token := c.token
		c.mu.RUnlock()
		return token, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check: whoever held the lock before us may have refreshed.
	if c.validLocked() {
		return c.token, nil
	}

	token, lifetime, err := c.exchange(ctx)
	if err != nil {
		return "", err
	}

	c.redactor.Add(token)
	c.token = token
	c.expiresAt = c.now().Add(max(lifetime, MinTokenLifetime))
	return token, nil
}

// Invalidate drops token if it is still the cached one, so the next Acquire
// refreshes. A token another request already replaced is left alone.
func (c *TokenCache) Invalidate(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if token == "" || c.token != token {
		return
	}
	c.token = ""
	c.expiresAt = time.Time{}
}

// ExpiresAt returns the expiry of the cached token, zero when empty.
func (c *TokenCache) ExpiresAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.expiresAt
}

func (c *TokenCache) validLocked() bool {
	return c.token != "" && c.now().Before(c.expiresAt.Add(-TokenSafetyMargin))
}

func (c *TokenCache) exchange(ctx context.Context) (string, time.Duration, error) {
	res, err := c.caller.PostForm(ctx, c.tokenURL, url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
	})
	if err != nil {
		return "", 0, &ExchangeError{Cause: err}
	}
	if !res.OK() {
		return "", 0, &ExchangeError{Status: res.Status}
	}

	token := gjson.GetBytes(res.Raw, "access_token").String()
	if token == "" {
		return "", 0, &ExchangeError{Status: res.Status, Cause: errors.New("response missing access_token")}
	}
	lifetime := time.Duration(gjson.GetBytes(res.Raw, "expires_in").Int()) * time.Second

	return token, lifetime, nil
}
