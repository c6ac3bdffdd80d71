package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/provinv"
	"github.com/fwojciec/provinv/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements provinv.Converter at compile time.
var _ provinv.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts basic paragraph", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>Dr. Roe practices at three locations.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "Dr. Roe practices at three locations.")
	})

	t.Run("converts headings", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<h1>Jane Roe, MD</h1><h2>Education</h2>`)

		require.NoError(t, err)
		assert.Contains(t, md, "# Jane Roe, MD")
		assert.Contains(t, md, "## Education")
	})

	t.Run("converts lists", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<ul><li>Leukemia</li><li>Lymphoma</li></ul>`)

		require.NoError(t, err)
		assert.Contains(t, md, "- Leukemia")
		assert.Contains(t, md, "- Lymphoma")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<tr><th>Location</th><th>Phone</th></tr>
<tr><td>South Lake Union Clinic</td><td>206-555-0100</td></tr>
</table>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "South Lake Union Clinic")
		assert.Contains(t, md, "206-555-0100")
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("   ")

		require.Error(t, err)
		assert.Equal(t, provinv.EINVALID, provinv.ErrorCode(err))
	})
}
