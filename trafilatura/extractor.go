// Package trafilatura extracts article content using go-trafilatura.
// It is an alternate extraction method; the fingerprint builder hashes
// readability output, but archive records may carry either method tag.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/rgolab/artid"
	"golang.org/x/net/html"
)

// Ensure Extractor implements artid.Extractor at compile time.
var _ artid.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract the main article from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Method returns the extraction method tag.
func (e *Extractor) Method() string {
	return artid.MethodTrafilatura
}

// Extract processes raw HTML and returns the main article content.
func (e *Extractor) Extract(rawHTML string) (*artid.Extraction, error) {
	if rawHTML == "" {
		return nil, artid.Errorf(artid.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &artid.Extraction{
		Title:   result.Metadata.Title,
		Content: result.ContentText,
		HTML:    contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
