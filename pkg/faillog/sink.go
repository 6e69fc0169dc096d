// Package faillog persists sanitized records of failed upstream calls as
// JSON lines and serves the most recent ones back to administrators.
package faillog

import (
	"bufio"
	"bytes"
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/akshat7606/QuickC/pkg/slogx"
)

// MaxBodyExcerpt is the longest body excerpt (in characters) kept in debug mode.
const MaxBodyExcerpt = 1000

var (
	ErrLoggingDisabled   = errors.New("faillog: log access disabled, no admin token configured")
	ErrInvalidAdminToken = errors.New("faillog: invalid admin token")
)

// Entry is one sanitized failure record.
type Entry struct {
	Timestamp   time.Time         `json:"ts"`
	Endpoint    string            `json:"endpoint"`
	Params      map[string]string `json:"params,omitempty"`
	Status      int               `json:"status"`
	Headers     map[string]string `json:"headers,omitempty"`
	Note        string            `json:"note,omitempty"`
	BodyExcerpt string            `json:"body_excerpt,omitempty"`
}

type Config struct {
	Path       string // JSONL file, created on first append
	AdminToken string // empty disables read access entirely
	Debug      bool   // keep truncated body excerpts
}

// Sink is an append-only failure log. Appends are best-effort: a write
// failure is reported on the slog side channel and never returned.
type Sink struct {
	path       string
	adminToken string
	debug      bool
	redactor   *Redactor
	now        func() time.Time

	// mu keeps each line whole when several requests fail at once and
	// excludes appends while Trim rewrites the file.
	mu sync.Mutex
}

// NewSink returns a sink writing to cfg.Path. The redactor is applied to
// every string field of every entry; it may be nil only in tests.
func NewSink(cfg Config, redactor *Redactor) *Sink {
	return &Sink{
		path:       cfg.Path,
		adminToken: cfg.AdminToken,
		debug:      cfg.Debug,
		redactor:   redactor,
		now:        time.Now,
	}
}

// Path returns the backing file path.
func (s *Sink) Path() string { return s.path }

// Append sanitizes e and writes it as one line.
func (s *Sink) Append(ctx context.Context, e Entry) {
	log := slogx.FromContext(ctx)

	line, err := json.Marshal(s.sanitize(e))
	if err != nil {
		log.Error("failed to encode failure log entry", "error", err, "endpoint", e.Endpoint)
		return
	}
	line = append(line, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		log.Error("failed to open failure log", "error", err, "path", s.path)
		return
	}
	defer f.Close()

	if _, err := f.Write(line); err != nil {
		log.Error("failed to write failure log entry", "error", err, "path", s.path)
	}
}

func (s *Sink) sanitize(e Entry) Entry {
	out := Entry{
		Timestamp: e.Timestamp,
		Endpoint:  s.redactor.Redact(e.Endpoint),
		Params:    s.redactor.RedactMap(e.Params),
		Status:    e.Status,
		Headers:   s.redactor.RedactMap(e.Headers),
		Note:      s.redactor.Redact(e.Note),
	}
	if out.Timestamp.IsZero() {
		out.Timestamp = s.now().UTC()
	}
	if s.debug && e.BodyExcerpt != "" {
		// Redact before truncating so a secret cut in half cannot survive.
		out.BodyExcerpt = truncate(s.redactor.Redact(e.BodyExcerpt), MaxBodyExcerpt)
	}
	return out
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}

// Authorize checks an admin token against the configured secret.
func (s *Sink) Authorize(adminToken string) error {
	if s.adminToken == "" {
		return ErrLoggingDisabled
	}
	if subtle.ConstantTimeCompare([]byte(adminToken), []byte(s.adminToken)) != 1 {
		return ErrInvalidAdminToken
	}
	return nil
}

// Read is ReadLast gated by Authorize.
func (s *Sink) Read(adminToken string, n int) ([]Entry, error) {
	if err := s.Authorize(adminToken); err != nil {
		return nil, err
	}
	return s.ReadLast(n)
}

// ReadLast returns up to the last n entries in chronological order. Lines
// that do not decode are skipped. A missing file reads as empty.
func (s *Sink) ReadLast(n int) ([]Entry, error) {
	if n <= 0 {
		return []Entry{}, nil
	}

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Entry{}, nil
		}
		return nil, fmt.Errorf("open failure log: %w", err)
	}
	defer f.Close()

	ring := make([]Entry, 0, n)
	err = eachLine(f, func(line []byte) {
		var e Entry
		if err := json.Unmarshal(line, &e); err != nil {
			return
		}
		if len(ring) == n {
			copy(ring, ring[1:])
			ring = ring[:n-1]
		}
		ring = append(ring, e)
	})
	if err != nil {
		return nil, fmt.Errorf("read failure log: %w", err)
	}
	return ring, nil
}

// Trim rewrites the log keeping only the last max lines and returns how
// many lines were dropped.
func (s *Sink) Trim(max int) (int, error) {
	if max <= 0 {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("read failure log: %w", err)
	}

	var lines [][]byte
	_ = eachLine(bytes.NewReader(data), func(line []byte) {
		lines = append(lines, bytes.Clone(line))
	})
	if len(lines) <= max {
		return 0, nil
	}
	dropped := len(lines) - max
	lines = lines[dropped:]

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".faillog-*")
	if err != nil {
		return 0, fmt.Errorf("create temp log: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	for _, line := range lines {
		_, _ = w.Write(line)
		_ = w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		_ = tmp.Close()
		return 0, fmt.Errorf("write temp log: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return 0, fmt.Errorf("chmod temp log: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("close temp log: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return 0, fmt.Errorf("replace failure log: %w", err)
	}
	return dropped, nil
}

// Writable verifies the log file can be opened for appending.
func (s *Sink) Writable() error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	return f.Close()
}

// eachLine calls fn for every non-empty line of r, including a final line
// with no trailing newline. Lines of any length are accepted.
func eachLine(r io.Reader, fn func(line []byte)) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadBytes('\n')
		if trimmed := bytes.TrimSpace(line); len(trimmed) > 0 {
			fn(trimmed)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}
