package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/golazo/mock"
	golazoslog "github.com/fwojciec/golazo/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogger(buf *bytes.Buffer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level}))
}

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs successful fetch at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "<table>ok</table>", nil
			},
		}

		fetcher := golazoslog.NewLoggingFetcher(inner, newLogger(&buf, slog.LevelDebug))
		html, err := fetcher.Fetch(context.Background(), "https://www.promiedos.com.ar/ayer")

		require.NoError(t, err)
		assert.Equal(t, "<table>ok</table>", html)
		output := buf.String()
		assert.Contains(t, output, "level=DEBUG")
		assert.Contains(t, output, "msg=fetch")
		assert.Contains(t, output, "url=https://www.promiedos.com.ar/ayer")
		assert.Contains(t, output, "bytes=17")
		assert.Contains(t, output, "duration=")
	})

	t.Run("successful fetch is quiet at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "ok", nil
			},
		}

		_, err := golazoslog.NewLoggingFetcher(inner, newLogger(&buf, slog.LevelInfo)).Fetch(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})

	t.Run("logs failure as warning", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "", errors.New("network error")
			},
		}

		fetcher := golazoslog.NewLoggingFetcher(inner, newLogger(&buf, slog.LevelInfo))
		_, err := fetcher.Fetch(context.Background(), "https://www.promiedos.com.ar/")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "err=\"network error\"")
	})
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	closeCalled := false
	inner := &mock.Fetcher{
		CloseFn: func() error {
			closeCalled = true
			return nil
		},
	}

	var buf bytes.Buffer
	err := golazoslog.NewLoggingFetcher(inner, newLogger(&buf, slog.LevelDebug)).Close()

	require.NoError(t, err)
	assert.True(t, closeCalled)
}
