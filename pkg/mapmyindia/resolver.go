// Package mapmyindia proxies MapMyIndia geocoding calls. It authenticates
// with a static REST key when one is configured and falls back to an OAuth
// bearer token when the provider refuses the key, recording every failed
// attempt in a sanitized failure log.
package mapmyindia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/akshat7606/QuickC/pkg/faillog"
	"github.com/akshat7606/QuickC/pkg/slogx"
)

const (
	DefaultRestBaseURL  = "https://apis.mapmyindia.com/advancedmaps/v1"
	DefaultAtlasBaseURL = "https://atlas.mapmyindia.com/api/places"
	DefaultTokenURL     = "https://outpost.mapmyindia.com/api/security/oauth/token"
)

// Credentials are the provider secrets, read once at startup.
type Credentials struct {
	StaticKey    string
	ClientID     string
	ClientSecret string
}

func (c Credentials) HasStaticKey() bool { return strings.TrimSpace(c.StaticKey) != "" }

func (c Credentials) HasOAuth() bool {
	return strings.TrimSpace(c.ClientID) != "" && strings.TrimSpace(c.ClientSecret) != ""
}

// Usable reports whether at least one auth scheme is configured.
func (c Credentials) Usable() bool { return c.HasStaticKey() || c.HasOAuth() }

// Secrets returns the values that must never reach a log.
func (c Credentials) Secrets() []string {
	return []string{c.StaticKey, c.ClientSecret}
}

// FailureLog receives one entry per failed upstream attempt.
type FailureLog interface {
	Append(ctx context.Context, e faillog.Entry)
}

type Config struct {
	Credentials  Credentials
	RestBaseURL  string
	AtlasBaseURL string
	TokenURL     string
	HTTPClient   *http.Client
	// Debug keeps redacted upstream bodies on RejectedError.
	Debug bool
}

// Resolver runs the credential fallback for each geocoding operation.
type Resolver struct {
	creds        Credentials
	restBaseURL  string
	atlasBaseURL string
	debug        bool

	caller   *Caller
	tokens   TokenSource
	failures FailureLog
	redactor *faillog.Redactor
}

// New wires a Resolver, its Caller and TokenCache from cfg.
func New(cfg Config, failures FailureLog, redactor *faillog.Redactor) *Resolver {
	caller := NewCaller(cfg.HTTPClient)
	tokenURL := orDefault(cfg.TokenURL, DefaultTokenURL)

	return &Resolver{
		creds:        cfg.Credentials,
		restBaseURL:  strings.TrimSuffix(orDefault(cfg.RestBaseURL, DefaultRestBaseURL), "/"),
		atlasBaseURL: strings.TrimSuffix(orDefault(cfg.AtlasBaseURL, DefaultAtlasBaseURL), "/"),
		debug:        cfg.Debug,
		caller:       caller,
		tokens:       NewTokenCache(caller, tokenURL, cfg.Credentials, redactor),
		failures:     failures,
		redactor:     redactor,
	}
}

// Autocomplete resolves place suggestions for query.
func (r *Resolver) Autocomplete(ctx context.Context, query string) (json.RawMessage, error) {
	q := url.Values{"query": {query}}
	return r.resolve(ctx, operation{
		name:       "autocomplete",
		params:     map[string]string{"query": query},
		staticPath: "autosuggest",
		bearerPath: "search/json",
		query:      q,
	})
}

// Reverse resolves the address at lat, lng.
func (r *Resolver) Reverse(ctx context.Context, lat, lng float64) (json.RawMessage, error) {
	latS := strconv.FormatFloat(lat, 'f', -1, 64)
	lngS := strconv.FormatFloat(lng, 'f', -1, 64)
	return r.resolve(ctx, operation{
		name:       "reverse geocode",
		params:     map[string]string{"lat": latS, "lng": lngS},
		staticPath: "rev_geocode",
		bearerPath: "rev_geocode",
		query:      url.Values{"lat": {latS}, "lng": {lngS}},
	})
}

type operation struct {
	name       string
	params     map[string]string // non-secret, logged as-is
	staticPath string
	bearerPath string
	query      url.Values
}

func (r *Resolver) resolve(ctx context.Context, op operation) (json.RawMessage, error) {
	log := slogx.FromContext(ctx).With("operation", op.name)

	if !r.creds.Usable() {
		return nil, ErrCredentialsUnavailable
	}

	var lastErr error
	attempts := 0

	if r.creds.HasStaticKey() {
		attempts++
		staticURL := r.restBaseURL + "/" + url.PathEscape(r.creds.StaticKey) + "/" + op.staticPath
		res, err := r.caller.Get(ctx, staticURL, op.query, nil)

		switch {
		case err != nil:
			r.logFailure(ctx, op, "via static key", Result{}, "static-key path failed: "+err.Error())
			log.Warn("static-key call unreachable, trying oauth", "error", err)
			lastErr = err
		case res.OK():
			return res.Body, nil
		case fallbackAllowed(res.Status):
			r.logFailure(ctx, op, "via static key", res, "static-key path failed")
			log.Warn("static key refused by upstream", "status", res.Status)
			lastErr = r.rejected(op, res)
		default:
			r.logFailure(ctx, op, "via static key", res, "static-key path failed")
			log.Warn("upstream rejected request", "status", res.Status)
			return nil, r.rejected(op, res)
		}
	}

	if !r.creds.HasOAuth() {
		return nil, lastErr
	}
	attempts++

	token, err := r.tokens.Acquire(ctx)
	if err != nil {
		status := UpstreamStatus(err)
		r.logFailure(ctx, op, "via oauth", Result{Status: status}, "oauth fallback failed: token exchange failed")
		log.Warn("token exchange failed", "status", status)
		return nil, r.final(attempts, err)
	}

	res, err := r.caller.Get(ctx, r.atlasBaseURL+"/"+op.bearerPath, op.query, map[string]string{
		"Authorization": "Bearer " + token,
	})
	if err != nil {
		r.logFailure(ctx, op, "via oauth", Result{}, "oauth fallback failed: "+err.Error())
		log.Warn("oauth call unreachable", "error", err)
		return nil, r.final(attempts, err)
	}
	if res.OK() {
		return res.Body, nil
	}

	if res.Status == http.StatusUnauthorized {
		r.tokens.Invalidate(token)
	}
	r.logFailure(ctx, op, "via oauth", res, "oauth fallback failed")
	log.Warn("oauth call rejected by upstream", "status", res.Status)
	return nil, r.final(attempts, r.rejected(op, res))
}

// final marks err as exhausting every scheme when more than one was tried.
func (r *Resolver) final(attempts int, err error) error {
	if attempts > 1 {
		return fmt.Errorf("%w: %w", ErrAllAuthMethodsFailed, err)
	}
	return err
}

func (r *Resolver) rejected(op operation, res Result) *RejectedError {
	e := &RejectedError{Operation: op.name, Status: res.Status}
	if r.debug {
		e.Body = truncateRunes(r.redactor.Redact(string(res.Raw)), faillog.MaxBodyExcerpt)
	}
	return e
}

func (r *Resolver) logFailure(ctx context.Context, op operation, via string, res Result, note string) {
	if r.failures == nil {
		return
	}
	r.failures.Append(ctx, faillog.Entry{
		Endpoint:    op.name + " " + via,
		Params:      op.params,
		Status:      res.Status,
		Headers:     res.Headers,
		Note:        note,
		BodyExcerpt: string(res.Raw),
	})
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
