package faillog

import (
	"cmp"
	"slices"
	"strings"
	"sync"
)

// Redacted replaces every secret value found in a log field.
const Redacted = "[REDACTED]"

// maxDynamicSecrets bounds how many rotating values (bearer tokens) the
// redactor remembers. Older tokens have long expired by the time they are
// evicted.
const maxDynamicSecrets = 16

// Redactor scrubs credential material out of strings before they are
// persisted. Static secrets (API key, client secret) are fixed at startup;
// dynamic secrets (bearer tokens) are registered as they are minted.
type Redactor struct {
	mu       sync.RWMutex
	static   []string
	dynamic  []string
	replacer *strings.Replacer
}

// NewRedactor returns a redactor for the given static secrets. Empty values
// are ignored.
func NewRedactor(secrets ...string) *Redactor {
	r := &Redactor{}
	for _, s := range secrets {
		if strings.TrimSpace(s) != "" {
			r.static = append(r.static, s)
		}
	}
	r.rebuildLocked()
	return r
}

// Add registers a rotating secret such as a freshly issued bearer token.
func (r *Redactor) Add(secret string) {
	if r == nil || strings.TrimSpace(secret) == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.dynamic = append(r.dynamic, secret)
	if len(r.dynamic) > maxDynamicSecrets {
		r.dynamic = r.dynamic[len(r.dynamic)-maxDynamicSecrets:]
	}
	r.rebuildLocked()
}

// rebuildLocked orders secrets longest first so a secret containing another
// is replaced whole.
func (r *Redactor) rebuildLocked() {
	secrets := slices.Concat(r.static, r.dynamic)
	slices.SortStableFunc(secrets, func(a, b string) int { return cmp.Compare(len(b), len(a)) })
	secrets = slices.Compact(secrets)

	pairs := make([]string, 0, 2*len(secrets))
	for _, secret := range secrets {
		pairs = append(pairs, secret, Redacted)
	}
	r.replacer = strings.NewReplacer(pairs...)
}

// Redact returns s with every known secret replaced by Redacted.
func (r *Redactor) Redact(s string) string {
	if r == nil || s == "" {
		return s
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.replacer == nil {
		return s
	}
	return r.replacer.Replace(s)
}

// RedactMap returns a redacted copy of m.
func (r *Redactor) RedactMap(m map[string]string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = r.Redact(v)
	}
	return out
}
