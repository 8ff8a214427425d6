package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/golazo"
	"github.com/fwojciec/golazo/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title and main text of a channel page", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>ESPN en vivo por internet</title>
<meta property="og:title" content="ESPN en vivo">
</head>
<body>
<nav><a href="/">Inicio</a><a href="/agenda">Agenda</a></nav>
<article>
<h1>ESPN en vivo</h1>
<p>Mirá ESPN en vivo por internet con la programación completa de fútbol argentino, Copa Libertadores y la Premier League.</p>
<p>La señal se actualiza automáticamente antes de cada partido para que no te pierdas ningún gol de la fecha.</p>
</article>
<footer>Todos los derechos reservados</footer>
</body>
</html>`

		result, err := trafilatura.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
		assert.Contains(t, result.Text, "programación completa de fútbol argentino")
		assert.NotContains(t, result.Text, "Todos los derechos reservados")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := trafilatura.NewExtractor().Extract("  \n")

		require.Error(t, err)
		assert.Equal(t, golazo.EINVALID, golazo.ErrorCode(err))
	})
}
