package readability_test

import (
	"testing"

	"github.com/rgolab/artid"
	"github.com/rgolab/artid/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor()
	_, err := ext.Extract("")

	require.Error(t, err)
	assert.Equal(t, artid.EINVALID, artid.ErrorCode(err))
}

func TestExtractor_Method(t *testing.T) {
	t.Parallel()

	assert.Equal(t, artid.MethodReadability, readability.NewExtractor().Method())
}

func TestExtractor_ExtractsTitleAndText(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Senate Passes Bill</title></head>
<body><article><p>The senate passed the bill on Tuesday after a long debate over the amendments.</p></article></body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.Equal(t, "Senate Passes Bill", result.Title)
	assert.Contains(t, result.Content, "passed the bill on Tuesday")
}

func TestExtractor_RemovesBoilerplate(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/home">Home Nav Link</a><a href="/world">World Nav Link</a></nav>
<article><p>This is the main article content that should be preserved in the output.</p></article>
<footer><p>Footer copyright text 2024</p></footer>
</body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.NotContains(t, result.Content, "Home Nav Link")
	assert.NotContains(t, result.Content, "Footer copyright text")
	assert.Contains(t, result.Content, "main article content")
}
