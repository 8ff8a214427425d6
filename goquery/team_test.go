package goquery_test

import (
	"testing"

	"github.com/fwojciec/golazo"
	"github.com/fwojciec/golazo/goquery"
	"github.com/stretchr/testify/assert"
)

func TestParser_ExtractTeamDetails(t *testing.T) {
	t.Parallel()

	t.Run("extracts labeled fields", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<div class="clubizq">
<strong>Boca Juniors</strong>
<p><b>Nombre completo:</b><br>Club Atlético Boca Juniors</p>
<p><b>Fundación:</b><br> 3 de abril de 1905 (119 años) </p>
<p><b>Apodo:</b><br>Xeneize</p>
<p><b>Estadio local:</b><br><i>La Bombonera</i></p>
</div>
<div class="clubder"><img src=" https://www.promiedos.com.ar/images/escudos/boca.png "></div>`)
		p := goquery.NewParser(baseURL)

		details := p.ExtractTeamDetails(doc)

		assert.Equal(t, &golazo.TeamDetails{
			Name:     "Boca Juniors",
			FullName: "Club Atlético Boca Juniors",
			Founded:  "3 de abril de 1905",
			Nickname: "Xeneize",
			Stadium:  "La Bombonera",
			Image:    "https://www.promiedos.com.ar/images/escudos/boca.png",
		}, details)
	})

	t.Run("missing labels fall back independently", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<strong>Sin Datos FC</strong>
<p><b>Apodo:</b><br>El Misterioso</p>`)
		p := goquery.NewParser(baseURL)

		details := p.ExtractTeamDetails(doc)

		assert.Equal(t, "Sin Datos FC", details.Name)
		assert.Equal(t, golazo.NotFound, details.FullName)
		assert.Equal(t, golazo.NotFound, details.Founded)
		assert.Equal(t, "El Misterioso", details.Nickname)
		assert.Equal(t, golazo.NotFound, details.Stadium)
		assert.Equal(t, golazo.NoImage, details.Image)
	})

	t.Run("crest container without image has no image", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<div class="clubder"><span>sin escudo</span></div>`)
		p := goquery.NewParser(baseURL)

		details := p.ExtractTeamDetails(doc)

		assert.Equal(t, "", details.Name)
		assert.Equal(t, golazo.NoImage, details.Image)
	})

	t.Run("label inside running text reads the next line", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<p>Fundación: <br>1 de mayo de 1899<br>Apodo:<br>La Academia</p>`)
		p := goquery.NewParser(baseURL)

		details := p.ExtractTeamDetails(doc)

		assert.Equal(t, "1 de mayo de 1899", details.Founded)
		// The label's parent is the whole paragraph, so the first <br> after
		// its start is used for every label inside it.
		assert.Equal(t, "1 de mayo de 1899", details.Nickname)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<strong>Racing Club</strong>
<p><b>Apodo:</b><br>La Academia</p>
<div class="clubder"><img src="images/escudos/racing.png"></div>`)
		p := goquery.NewParser(baseURL)

		assert.Equal(t, p.ExtractTeamDetails(doc), p.ExtractTeamDetails(doc))
	})
}
