package mapmyindia

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/akshat7606/QuickC/pkg/faillog"
	"github.com/stretchr/testify/require"
)

var oauthOnly = Credentials{ClientID: "client-id", ClientSecret: "client-secret"}

func newTestCache(p *fakeProvider, creds Credentials, clock *fakeClock) *TokenCache {
	cache := NewTokenCache(NewCaller(p.srv.Client()), p.srv.URL+"/token", creds, faillog.NewRedactor())
	if clock != nil {
		cache.now = clock.Now
	}
	return cache
}

func TestTokenCacheRequiresClientCredentials(t *testing.T) {
	p := newFakeProvider(t)

	for _, creds := range []Credentials{
		{},
		{ClientID: "only-id"},
		{ClientSecret: "only-secret"},
		{StaticKey: "key"},
	} {
		_, err := newTestCache(p, creds, nil).Acquire(t.Context())
		require.ErrorIs(t, err, ErrCredentialsUnavailable)
	}
	require.Zero(t, p.tokenCalls.Load())
}

func TestTokenCacheReusesValidToken(t *testing.T) {
	p := newFakeProvider(t)
	cache := newTestCache(p, oauthOnly, newFakeClock())

	first, err := cache.Acquire(t.Context())
	require.NoError(t, err)
	second, err := cache.Acquire(t.Context())
	require.NoError(t, err)

	require.Equal(t, "tok-1", first)
	require.Equal(t, first, second)
	require.EqualValues(t, 1, p.tokenCalls.Load())
}

func TestTokenCacheLifetimeFloorAndSafetyMargin(t *testing.T) {
	p := newFakeProvider(t)
	p.set(func(p *fakeProvider) { p.tokenLifetime = 10 })
	clock := newFakeClock()
	cache := newTestCache(p, oauthOnly, clock)

	acquiredAt := clock.Now()
	token, err := cache.Acquire(t.Context())
	require.NoError(t, err)
	require.Equal(t, "tok-1", token)
	require.Equal(t, acquiredAt.Add(MinTokenLifetime), cache.ExpiresAt(), "10s lifetime is floored to 60s")

	// Still outside the 30s margin.
	clock.Advance(29 * time.Second)
	token, err = cache.Acquire(t.Context())
	require.NoError(t, err)
	require.Equal(t, "tok-1", token)
	require.EqualValues(t, 1, p.tokenCalls.Load())

	// Exactly 30s before expiry the token is no longer served.
	clock.Advance(1 * time.Second)
	token, err = cache.Acquire(t.Context())
	require.NoError(t, err)
	require.Equal(t, "tok-2", token)
	require.EqualValues(t, 2, p.tokenCalls.Load())
}

func TestTokenCacheZeroLifetime(t *testing.T) {
	p := newFakeProvider(t)
	p.set(func(p *fakeProvider) { p.tokenLifetime = 0 })
	clock := newFakeClock()
	cache := newTestCache(p, oauthOnly, clock)

	_, err := cache.Acquire(t.Context())
	require.NoError(t, err)
	require.Equal(t, clock.Now().Add(MinTokenLifetime), cache.ExpiresAt())

	_, err = cache.Acquire(t.Context())
	require.NoError(t, err)
	require.EqualValues(t, 1, p.tokenCalls.Load(), "floored token must not thrash")
}

func TestTokenCacheConcurrentAcquireSingleExchange(t *testing.T) {
	p := newFakeProvider(t)
	p.set(func(p *fakeProvider) { p.tokenDelay = 50 * time.Millisecond })
	cache := newTestCache(p, oauthOnly, nil)

	const callers = 64
	var (
		wg     sync.WaitGroup
		start  = make(chan struct{})
		tokens = make([]string, callers)
		errs   = make([]error, callers)
	)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			tokens[i], errs[i] = cache.Acquire(t.Context())
		}()
	}
	close(start)
	wg.Wait()

	require.EqualValues(t, 1, p.tokenCalls.Load())
	for i := range callers {
		require.NoError(t, errs[i])
		require.Equal(t, "tok-1", tokens[i])
	}
}

func TestTokenCacheExchangeFailure(t *testing.T) {
	t.Run("non-200 from token endpoint", func(t *testing.T) {
		p := newFakeProvider(t)
		p.set(func(p *fakeProvider) { p.tokenStatus = http.StatusUnauthorized })

		_, err := newTestCache(p, oauthOnly, nil).Acquire(t.Context())
		require.ErrorIs(t, err, ErrTokenExchangeFailed)
		require.Equal(t, http.StatusUnauthorized, UpstreamStatus(err))
	})

	t.Run("unreachable token endpoint", func(t *testing.T) {
		p := newFakeProvider(t)
		cache := newTestCache(p, oauthOnly, nil)
		p.srv.Close()

		_, err := cache.Acquire(t.Context())
		require.ErrorIs(t, err, ErrTokenExchangeFailed)
		require.ErrorIs(t, err, ErrUpstreamUnreachable)
		require.Zero(t, UpstreamStatus(err))
	})

	t.Run("failure is not cached", func(t *testing.T) {
		p := newFakeProvider(t)
		p.set(func(p *fakeProvider) { p.tokenStatus = http.StatusInternalServerError })
		cache := newTestCache(p, oauthOnly, nil)

		_, err := cache.Acquire(t.Context())
		require.Error(t, err)

		p.set(func(p *fakeProvider) { p.tokenStatus = http.StatusOK })
		token, err := cache.Acquire(t.Context())
		require.NoError(t, err)
		require.Equal(t, "tok-2", token)
	})
}

func TestTokenCacheInvalidate(t *testing.T) {
	p := newFakeProvider(t)
	cache := newTestCache(p, oauthOnly, nil)

	first, err := cache.Acquire(t.Context())
	require.NoError(t, err)
	cache.Invalidate(first)
	require.True(t, cache.ExpiresAt().IsZero())

	token, err := cache.Acquire(t.Context())
	require.NoError(t, err)
	require.Equal(t, "tok-2", token)
}

func TestTokenCacheInvalidateIgnoresReplacedToken(t *testing.T) {
	p := newFakeProvider(t)
	cache := newTestCache(p, oauthOnly, nil)

	stale, err := cache.Acquire(t.Context())
	require.NoError(t, err)
	cache.Invalidate(stale)

	fresh, err := cache.Acquire(t.Context())
	require.NoError(t, err)
	require.Equal(t, "tok-2", fresh)

	// A late 401 for the old token must not evict its replacement.
	cache.Invalidate(stale)
	cache.Invalidate("")
	require.False(t, cache.ExpiresAt().IsZero())

	token, err := cache.Acquire(t.Context())
	require.NoError(t, err)
	require.Equal(t, "tok-2", token)
	require.EqualValues(t, 2, p.tokenCalls.Load())
}
