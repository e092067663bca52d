// Package readability extracts article content using go-readability.
// This is the default extraction method for fingerprinting.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/rgolab/artid"
)

// Ensure Extractor implements artid.Extractor at compile time.
var _ artid.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the main article from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Method returns the extraction method tag.
func (e *Extractor) Method() string {
	return artid.MethodReadability
}

// Extract processes raw HTML and returns the main article content.
func (e *Extractor) Extract(rawHTML string) (*artid.Extraction, error) {
	if rawHTML == "" {
		return nil, artid.Errorf(artid.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &artid.Extraction{
		Title:   article.Title,
		Content: article.TextContent,
		HTML:    article.Content,
	}, nil
}
