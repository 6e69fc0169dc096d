package service

import (
	"errors"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/akshat7606/QuickC/pkg/faillog"
	"github.com/akshat7606/QuickC/pkg/slogx"
	"github.com/stretchr/testify/require"
)

type trimFunc func(max int) (int, error)

func (f trimFunc) Trim(max int) (int, error) { return f(max) }

func TestHousekeepingTrimsFailureLog(t *testing.T) {
	sink := faillog.NewSink(faillog.Config{Path: filepath.Join(t.TempDir(), "failures.log")}, faillog.NewRedactor())
	for i := range 12 {
		sink.Append(t.Context(), faillog.Entry{Endpoint: "autocomplete via static key", Status: 400 + i})
	}

	h := NewHousekeepingService(sink, 5, slogx.Discard(), time.Hour)
	h.Start()
	require.Eventually(t, func() bool {
		entries, err := sink.ReadLast(100)
		return err == nil && len(entries) == 5
	}, time.Second, 10*time.Millisecond)
	h.Stop()

	entries, err := sink.ReadLast(100)
	require.NoError(t, err)
	require.Equal(t, 407, entries[0].Status, "oldest entries are dropped")
	require.Equal(t, 411, entries[4].Status)
}

func TestHousekeepingRunsOnInterval(t *testing.T) {
	var calls atomic.Int32
	h := NewHousekeepingService(trimFunc(func(max int) (int, error) {
		if max != 3 {
			t.Errorf("trim limit = %d, want 3", max)
		}
		calls.Add(1)
		return 0, errors.New("read-only filesystem")
	}), 3, slogx.Discard(), 10*time.Millisecond)

	h.Start()
	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	h.Stop()
}

func TestHousekeepingDisabledWithoutLimit(t *testing.T) {
	h := NewHousekeepingService(trimFunc(func(int) (int, error) {
		t.Error("trim must not run without a limit")
		return 0, nil
	}), 0, slogx.Discard(), 0)
	require.Equal(t, time.Hour, h.Interval)

	h.Start()
	h.Stop()
}
