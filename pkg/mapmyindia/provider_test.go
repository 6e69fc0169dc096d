package mapmyindia

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// fakeProvider stands in for the three MapMyIndia hosts on one server:
//
//	GET  /rest/{key}/{op}   static-key API
//	GET  /atlas/...         bearer API
//	POST /token             client-credentials grant
type fakeProvider struct {
	srv *httptest.Server

	mu            sync.Mutex
	staticStatus  int
	staticBody    string
	bearerStatus  int
	bearerBody    string
	tokenStatus   int
	tokenLifetime int
	tokenDelay    time.Duration
	echoHeaders   map[string]string
	lastBearer    string
	lastStaticKey string

	staticCalls atomic.Int32
	bearerCalls atomic.Int32
	tokenCalls  atomic.Int32
}

func newFakeProvider(t *testing.T) *fakeProvider {
	t.Helper()
	p := &fakeProvider{
		staticStatus:  http.StatusOK,
		staticBody:    `{"suggestedLocations":[{"placeName":"static"}]}`,
		bearerStatus:  http.StatusOK,
		bearerBody:    `{"suggestedLocations":[{"placeName":"bearer"}]}`,
		tokenStatus:   http.StatusOK,
		tokenLifetime: 3600,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /rest/{key}/{op}", func(w http.ResponseWriter, r *http.Request) {
		p.staticCalls.Add(1)
		p.mu.Lock()
		p.lastStaticKey = r.PathValue("key")
		status, body := p.staticStatus, p.staticBody
		p.writeHeadersLocked(w)
		p.mu.Unlock()
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
	mux.HandleFunc("GET /atlas/", func(w http.ResponseWriter, r *http.Request) {
		p.bearerCalls.Add(1)
		p.mu.Lock()
		p.lastBearer = r.Header.Get("Authorization")
		status, body := p.bearerStatus, p.bearerBody
		p.writeHeadersLocked(w)
		p.mu.Unlock()
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
	mux.HandleFunc("POST /token", func(w http.ResponseWriter, r *http.Request) {
		n := p.tokenCalls.Add(1)
		p.mu.Lock()
		status, lifetime, delay := p.tokenStatus, p.tokenLifetime, p.tokenDelay
		p.mu.Unlock()
		if delay > 0 {
			time.Sleep(delay)
		}
		if err := r.ParseForm(); err != nil || r.PostForm.Get("grant_type") != "client_credentials" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status == http.StatusOK {
			_, _ = fmt.Fprintf(w, `{"access_token":"tok-%d","token_type":"bearer","expires_in":%d}`, n, lifetime)
			return
		}
		_, _ = w.Write([]byte(`{"error":"invalid_client"}`))
	})

	p.srv = httptest.NewServer(mux)
	t.Cleanup(p.srv.Close)
	return p
}

func (p *fakeProvider) writeHeadersLocked(w http.ResponseWriter) {
	for k, v := range p.echoHeaders {
		w.Header().Set(k, v)
	}
}

func (p *fakeProvider) set(fn func(p *fakeProvider)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn(p)
}

func (p *fakeProvider) bearerHeader() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastBearer
}

func (p *fakeProvider) config(creds Credentials) Config {
	return Config{
		Credentials:  creds,
		RestBaseURL:  p.srv.URL + "/rest",
		AtlasBaseURL: p.srv.URL + "/atlas",
		TokenURL:     p.srv.URL + "/token",
		HTTPClient:   p.srv.Client(),
	}
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
