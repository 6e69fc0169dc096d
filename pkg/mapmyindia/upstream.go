package mapmyindia

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// DefaultTimeout bounds every outbound call.
const DefaultTimeout = 10 * time.Second

// maxBodyBytes caps how much of an upstream body is buffered.
const maxBodyBytes = 4 << 20

// ForwardedHeaders is the allow-list of upstream response headers kept in
// results and failure logs.
var ForwardedHeaders = []string{"X-Cache", "Via", "X-Request-Id", "Server"}

// Result is the normalized outcome of one upstream call.
type Result struct {
	Status int
	// Body is the response as JSON: verbatim when it parses, otherwise the
	// raw text encoded as a JSON string.
	Body    json.RawMessage
	Raw     []byte
	Headers map[string]string
}

// OK reports a 200 response.
func (r Result) OK() bool { return r.Status == http.StatusOK }

// Caller performs single requests against the provider. A non-2xx response
// is a normal Result, only transport failures are errors.
type Caller struct {
	HTTPClient *http.Client
	Timeout    time.Duration
}

// NewCaller returns a Caller using client, or a default client when nil.
func NewCaller(client *http.Client) *Caller {
	if client == nil {
		client = &http.Client{}
	}
	return &Caller{HTTPClient: client, Timeout: DefaultTimeout}
}

// Get issues a GET to rawURL with query merged into its query string.
func (c *Caller) Get(
	ctx context.Context,
	rawURL string,
	query url.Values,
	headers map[string]string,
) (Result, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		// The URL may embed the static key, so never echo it back.
		return Result{}, errors.New("mapmyindia: invalid upstream url")
	}
	if len(query) > 0 {
		q := u.Query()
		for k, vs := range query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	return c.do(ctx, http.MethodGet, u.String(), nil, headers)
}

// PostForm issues a form-encoded POST, used for the OAuth token endpoint.
func (c *Caller) PostForm(ctx context.Context, rawURL string, form url.Values) (Result, error) {
	return c.do(ctx, http.MethodPost, rawURL, strings.NewReader(form.Encode()), map[string]string{
		"Content-Type": "application/x-www-form-urlencoded",
	})
}

func (c *Caller) do(
	ctx context.Context,
	method, rawURL string,
	body io.Reader,
	headers map[string]string,
) (Result, error) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return Result{}, errors.New("mapmyindia: failed to build upstream request")
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return Result{}, unreachable(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Result{}, unreachable(err)
	}

	return Result{
		Status:  resp.StatusCode,
		Body:    normalizeBody(raw),
		Raw:     raw,
		Headers: forwardedHeaders(resp.Header),
	}, nil
}

// unreachable strips the request URL from transport errors before wrapping
// them; *url.Error prints the full URL, which carries the static key.
func unreachable(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		err = urlErr.Err
	}
	return fmt.Errorf("%w: %w", ErrUpstreamUnreachable, err)
}

func normalizeBody(raw []byte) json.RawMessage {
	if len(raw) > 0 && gjson.ValidBytes(raw) {
		return json.RawMessage(raw)
	}
	// Keep HTML error pages readable for the frontend.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(string(raw))
	return json.RawMessage(bytes.TrimRight(buf.Bytes(), "\n"))
}

func forwardedHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(ForwardedHeaders))
	for _, name := range ForwardedHeaders {
		if v := h.Get(name); v != "" {
			out[name] = v
		}
	}
	return out
}
