package faillog_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/akshat7606/QuickC/pkg/faillog"
	"github.com/stretchr/testify/require"
)

func newSink(t *testing.T, cfg faillog.Config, secrets ...string) *faillog.Sink {
	t.Helper()
	if cfg.Path == "" {
		cfg.Path = filepath.Join(t.TempDir(), "failures.log")
	}
	return faillog.NewSink(cfg, faillog.NewRedactor(secrets...))
}

func TestReadLast(t *testing.T) {
	t.Run("fewer entries than requested", func(t *testing.T) {
		sink := newSink(t, faillog.Config{})
		for i := range 3 {
			sink.Append(t.Context(), faillog.Entry{Endpoint: fmt.Sprintf("e%d", i), Status: 401})
		}

		entries, err := sink.ReadLast(5)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		for i, e := range entries {
			require.Equal(t, fmt.Sprintf("e%d", i), e.Endpoint)
			require.False(t, e.Timestamp.IsZero())
		}
	})

	t.Run("keeps only the tail in order", func(t *testing.T) {
		sink := newSink(t, faillog.Config{})
		for i := range 10 {
			sink.Append(t.Context(), faillog.Entry{Endpoint: fmt.Sprintf("e%d", i)})
		}

		entries, err := sink.ReadLast(3)
		require.NoError(t, err)
		require.Equal(t, []string{"e7", "e8", "e9"}, endpoints(entries))
	})

	t.Run("skips corrupt lines", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "failures.log")
		content := strings.Join([]string{
			`{"ts":"2026-01-01T00:00:00Z","endpoint":"a","status":401}`,
			`{"ts":"2026-01-01T00:00:01Z","endpoint":"b","status":412}`,
			`{"ts":"2026-01-01T00:00:02Z","endpoint":"c",`,
			`{"ts":"2026-01-01T00:00:03Z","endpoint":"d","status":500}`,
			`{"ts":"2026-01-01T00:00:04Z","endpoint":"e","status":0}`,
		}, "\n") + "\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		sink := newSink(t, faillog.Config{Path: path})
		entries, err := sink.ReadLast(5)
		require.NoError(t, err)
		require.Equal(t, []string{"a", "b", "d", "e"}, endpoints(entries))
	})

	t.Run("partial trailing line is ignored", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "failures.log")
		content := `{"endpoint":"a","status":401}` + "\n" + `{"endpoint":"b","sta`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		entries, err := newSink(t, faillog.Config{Path: path}).ReadLast(10)
		require.NoError(t, err)
		require.Equal(t, []string{"a"}, endpoints(entries))
	})

	t.Run("missing file reads empty", func(t *testing.T) {
		entries, err := newSink(t, faillog.Config{}).ReadLast(10)
		require.NoError(t, err)
		require.Empty(t, entries)
	})
}

func TestAuthorize(t *testing.T) {
	t.Run("disabled without admin token", func(t *testing.T) {
		sink := newSink(t, faillog.Config{})
		require.ErrorIs(t, sink.Authorize(""), faillog.ErrLoggingDisabled)
		require.ErrorIs(t, sink.Authorize("anything"), faillog.ErrLoggingDisabled)

		_, err := sink.Read("", 5)
		require.ErrorIs(t, err, faillog.ErrLoggingDisabled)
	})

	t.Run("rejects mismatch", func(t *testing.T) {
		sink := newSink(t, faillog.Config{AdminToken: "s3cret-admin"})
		require.ErrorIs(t, sink.Authorize("wrong"), faillog.ErrInvalidAdminToken)
		require.ErrorIs(t, sink.Authorize(""), faillog.ErrInvalidAdminToken)
	})

	t.Run("accepts match", func(t *testing.T) {
		sink := newSink(t, faillog.Config{AdminToken: "s3cret-admin"})
		sink.Append(t.Context(), faillog.Entry{Endpoint: "autocomplete via static key"})

		entries, err := sink.Read("s3cret-admin", 5)
		require.NoError(t, err)
		require.Len(t, entries, 1)
	})
}

func TestAppendSanitizes(t *testing.T) {
	const (
		staticKey    = "static-key-abc123"
		clientSecret = "client-secret-xyz789"
		bearer       = "bearer-token-qwerty"
	)

	t.Run("drops body excerpt without debug", func(t *testing.T) {
		sink := newSink(t, faillog.Config{}, staticKey)
		sink.Append(t.Context(), faillog.Entry{Endpoint: "x", BodyExcerpt: "upstream said no"})

		entries, err := sink.ReadLast(1)
		require.NoError(t, err)
		require.Empty(t, entries[0].BodyExcerpt)
	})

	t.Run("redacts every field including debug excerpts", func(t *testing.T) {
		redactor := faillog.NewRedactor(staticKey, clientSecret)
		redactor.Add(bearer)
		path := filepath.Join(t.TempDir(), "failures.log")
		sink := faillog.NewSink(faillog.Config{Path: path, Debug: true}, redactor)

		sink.Append(t.Context(), faillog.Entry{
			Endpoint:    "autocomplete via static key",
			Params:      map[string]string{"query": "delhi " + staticKey},
			Headers:     map[string]string{"Via": "proxy " + bearer},
			Note:        "failed with " + clientSecret,
			BodyExcerpt: `{"key":"` + staticKey + `","token":"` + bearer + `","secret":"` + clientSecret + `"}`,
		})

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		for _, secret := range []string{staticKey, clientSecret, bearer} {
			require.NotContains(t, string(raw), secret)
		}
		require.Contains(t, string(raw), faillog.Redacted)
	})

	t.Run("truncates debug excerpts", func(t *testing.T) {
		sink := newSink(t, faillog.Config{Debug: true})
		sink.Append(t.Context(), faillog.Entry{Endpoint: "x", BodyExcerpt: strings.Repeat("é", 3000)})

		entries, err := sink.ReadLast(1)
		require.NoError(t, err)
		require.Equal(t, faillog.MaxBodyExcerpt, len([]rune(entries[0].BodyExcerpt)))
	})
}

func TestAppendFailureIsSwallowed(t *testing.T) {
	// A directory cannot be opened for appending.
	sink := newSink(t, faillog.Config{Path: t.TempDir()})

	require.NotPanics(t, func() {
		sink.Append(t.Context(), faillog.Entry{Endpoint: "x"})
	})
	require.Error(t, sink.Writable())
}

func TestTrim(t *testing.T) {
	sink := newSink(t, faillog.Config{})
	for i := range 8 {
		sink.Append(t.Context(), faillog.Entry{Endpoint: fmt.Sprintf("e%d", i), Timestamp: time.Unix(int64(i), 0).UTC()})
	}

	dropped, err := sink.Trim(3)
	require.NoError(t, err)
	require.Equal(t, 5, dropped)

	entries, err := sink.ReadLast(10)
	require.NoError(t, err)
	require.Equal(t, []string{"e5", "e6", "e7"}, endpoints(entries))

	dropped, err = sink.Trim(3)
	require.NoError(t, err)
	require.Zero(t, dropped)

	// Appends keep working against the rewritten file.
	sink.Append(t.Context(), faillog.Entry{Endpoint: "e8"})
	entries, err = sink.ReadLast(10)
	require.NoError(t, err)
	require.Equal(t, []string{"e5", "e6", "e7", "e8"}, endpoints(entries))
}

func endpoints(entries []faillog.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Endpoint
	}
	return out
}
