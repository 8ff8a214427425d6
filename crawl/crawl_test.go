package crawl_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/fwojciec/golazo"
	"github.com/fwojciec/golazo/crawl"
	"github.com/fwojciec/golazo/goquery"
	"github.com/fwojciec/golazo/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	baseURL   = "https://www.promiedos.com.ar/"
	streamURL = "https://rojadirectaenhd.net/"
)

func newScraper(f golazo.Fetcher) *crawl.Scraper {
	return &crawl.Scraper{
		Fetcher:     f,
		Parser:      goquery.NewParser(baseURL),
		StreamURL:   streamURL,
		Concurrency: 2,
	}
}

const resultsPage = `<table>
<tr class="tituloin"><td><a>Liga Profesional</a><img src="/images/ligas/arg.png"></td></tr>
<tr name="vp">
	<td><a href="/ficha=abc123">ficha</a></td>
	<td class="game-fin">Final</td>
	<td class="game-t1"><span class="datoequipo">Boca</span></td>
	<td class="game-r1"><span>2</span></td>
	<td class="game-r2"><span>1</span></td>
	<td class="game-t1"><span class="datoequipo">River</span></td>
</tr>
</table>`

func TestScraper_FindMatches(t *testing.T) {
	t.Parallel()

	t.Run("fetches the front page for an empty day", func(t *testing.T) {
		t.Parallel()

		s := newScraper(mock.Pages(map[string]string{baseURL: resultsPage}))

		matches, err := s.FindMatches(context.Background(), "")

		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "abc123", matches[0].ID)
		require.NotNil(t, matches[0].LeagueTitle)
		assert.Equal(t, "Liga Profesional", *matches[0].LeagueTitle)
		assert.Equal(t, "Finalizado", matches[0].GameState)
	})

	t.Run("fetches the day path", func(t *testing.T) {
		t.Parallel()

		var got string
		s := newScraper(&mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				got = url
				return "<p>sin partidos</p>", nil
			},
		})

		matches, err := s.FindMatches(context.Background(), "ayer")

		require.NoError(t, err)
		assert.Empty(t, matches)
		assert.Equal(t, baseURL+"ayer", got)
	})

	t.Run("reports fetch failure as upstream error", func(t *testing.T) {
		t.Parallel()

		s := newScraper(&mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "", errors.New("connection refused")
			},
		})

		_, err := s.FindMatches(context.Background(), "")

		assert.Equal(t, golazo.EUPSTREAM, golazo.ErrorCode(err))
	})
}

func TestScraper_FindFicha(t *testing.T) {
	t.Parallel()

	t.Run("fetches the boxscore page of the match", func(t *testing.T) {
		t.Parallel()

		s := newScraper(mock.Pages(map[string]string{
			baseURL + "ficha=abc123": `<div id="usoficha">Entretiempo</div><div id="ficha-estadisticas"></div>`,
		}))

		ficha, err := s.FindFicha(context.Background(), "abc123")

		require.NoError(t, err)
		assert.Equal(t, "Entretiempo", ficha.Status)
	})

	t.Run("returns not found without boxscore region", func(t *testing.T) {
		t.Parallel()

		s := newScraper(mock.Pages(map[string]string{baseURL + "ficha=x": `<p>nada</p>`}))

		_, err := s.FindFicha(context.Background(), "x")

		assert.Equal(t, golazo.ENOTFOUND, golazo.ErrorCode(err))
	})

	t.Run("returns upstream error when page is unavailable", func(t *testing.T) {
		t.Parallel()

		s := newScraper(mock.Pages(nil))

		_, err := s.FindFicha(context.Background(), "x")

		assert.Equal(t, golazo.EUPSTREAM, golazo.ErrorCode(err))
	})

	t.Run("rejects empty id", func(t *testing.T) {
		t.Parallel()

		s := newScraper(mock.Pages(nil))

		_, err := s.FindFicha(context.Background(), "")

		assert.Equal(t, golazo.EINVALID, golazo.ErrorCode(err))
	})
}

// recorder is a concurrency-safe log of fetched URLs.
type recorder struct {
	mu   sync.Mutex
	urls []string
}

func (r *recorder) wrap(f golazo.Fetcher) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			r.mu.Lock()
			r.urls = append(r.urls, url)
			r.mu.Unlock()
			return f.Fetch(ctx, url)
		},
	}
}
