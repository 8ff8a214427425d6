//go:build integration && !windows

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"syscall"
	"testing"
	"time"

	"github.com/fwojciec/golazo"
	"github.com/fwojciec/golazo/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns rendered HTML", func(t *testing.T) {
		t.Parallel()

		srv := serve(t, `<!DOCTYPE html><html><body>
<div class="card-container"></div>
<script>
document.querySelector('.card-container').innerHTML = '<div class="card"><a href="/en-vivo/espn">ESPN</a></div>';
</script>
</body></html>`)

		fetcher, err := rod.NewFetcher()
		require.NoError(t, err)
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Contains(t, html, `<a href="/en-vivo/espn">ESPN</a>`)
	})

	t.Run("waits for late player iframe", func(t *testing.T) {
		t.Parallel()

		srv := serve(t, `<!DOCTYPE html><html><body>
<script>
setTimeout(function () {
	var f = document.createElement('iframe');
	f.id = 'videoFrame';
	f.src = 'about:blank#player';
	document.body.appendChild(f);
}, 300);
</script>
</body></html>`)

		fetcher, err := rod.NewFetcher(rod.WithWaitSelector("iframe#videoFrame"), rod.WithFetchTimeout(5*time.Second))
		require.NoError(t, err)
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Contains(t, html, `id="videoFrame"`)
	})

	t.Run("honors canceled context", func(t *testing.T) {
		t.Parallel()

		fetcher, err := rod.NewFetcher()
		require.NoError(t, err)
		defer fetcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = fetcher.Fetch(ctx, "http://127.0.0.1:1")

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("times out slow pages", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(500 * time.Millisecond)
			_, _ = w.Write([]byte(`<html><body>tarde</body></html>`))
		}))
		defer srv.Close()

		fetcher, err := rod.NewFetcher(rod.WithFetchTimeout(100 * time.Millisecond))
		require.NoError(t, err)
		defer fetcher.Close()

		_, err = fetcher.Fetch(context.Background(), srv.URL)

		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("keeps working across browser recycling", func(t *testing.T) {
		t.Parallel()

		srv := serve(t, `<html><body>ok</body></html>`)

		fetcher, err := rod.NewFetcher(rod.WithMaxPages(1))
		require.NoError(t, err)
		defer fetcher.Close()

		first := fetcher.LauncherPID()
		for range 3 {
			html, err := fetcher.Fetch(context.Background(), srv.URL)
			require.NoError(t, err)
			assert.Contains(t, html, "ok")
		}
		assert.NotEqual(t, first, fetcher.LauncherPID())
	})
}

func TestFetcher_Close(t *testing.T) {
	t.Parallel()

	t.Run("is idempotent and stops later fetches", func(t *testing.T) {
		t.Parallel()

		fetcher, err := rod.NewFetcher()
		require.NoError(t, err)

		require.NoError(t, fetcher.Close())
		require.NoError(t, fetcher.Close())

		_, err = fetcher.Fetch(context.Background(), "http://example.com")
		assert.Equal(t, golazo.EINTERNAL, golazo.ErrorCode(err))
		assert.Zero(t, fetcher.LauncherPID())
	})

	t.Run("kills the browser process", func(t *testing.T) {
		t.Parallel()

		fetcher, err := rod.NewFetcher()
		require.NoError(t, err)

		pid := fetcher.LauncherPID()
		require.NotZero(t, pid)
		require.NoError(t, syscall.Kill(pid, syscall.Signal(0)))

		require.NoError(t, fetcher.Close())
		time.Sleep(100 * time.Millisecond)

		assert.Error(t, syscall.Kill(pid, syscall.Signal(0)))
	})
}
