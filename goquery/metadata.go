// Package goquery extracts structured page metadata from article HTML.
// It reads Schema.org JSON-LD, Open Graph tags, and the canonical link,
// producing the hints record consumed by the identity resolver.
package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rgolab/artid"
)

// Ensure Extractor implements artid.MetadataExtractor at compile time.
var _ artid.MetadataExtractor = (*Extractor)(nil)

// Extractor parses article HTML for declared metadata.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractMetadata extracts metadata from HTML. Source precedence within a
// field is first-present wins: Schema.org JSON-LD, then Open Graph, then
// document fallbacks. Provenance flags record which source kinds the page
// declared. A malformed JSON-LD block is skipped, never fatal.
func (e *Extractor) ExtractMetadata(rawHTML, url string) (*artid.Metadata, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, artid.Errorf(artid.EINVALID, "parsing HTML: %s", err)
	}

	md := &artid.Metadata{
		URL:          url,
		CanonicalURL: url,
	}

	e.extractJSONLD(doc, md)
	e.extractOpenGraph(doc, md)
	e.extractCanonical(doc, md, url)

	// Fallback title from the document <title>.
	if md.Title == "" {
		md.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if md.Title == "" {
		md.Title = "Unknown"
	}

	return md, nil
}

// articleLD is the subset of a Schema.org Article block the resolver needs.
type articleLD struct {
	Type          any    `json:"@type"`
	Headline      string `json:"headline"`
	DatePublished string `json:"datePublished"`
	DateModified  string `json:"dateModified"`
	Author        any    `json:"author"`
}

func (e *Extractor) extractJSONLD(doc *goquery.Document, md *artid.Metadata) {
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		var block articleLD
		if err := json.Unmarshal([]byte(s.Text()), &block); err != nil {
			return
		}
		if !isArticleType(block.Type) {
			return
		}

		md.HasSchemaOrg = true
		if md.Title == "" {
			md.Title = block.Headline
		}
		if md.PublishDate == "" {
			md.PublishDate = block.DatePublished
		}
		if md.ModifiedDate == "" {
			md.ModifiedDate = block.DateModified
		}
		md.Authors = append(md.Authors, authorNames(block.Author)...)
	})
}

// isArticleType reports whether a JSON-LD @type names an Article variant
// (Article, NewsArticle, ReportageNewsArticle, ...). @type may be a string
// or a list of strings.
func isArticleType(t any) bool {
	switch v := t.(type) {
	case string:
		return strings.Contains(v, "Article")
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && strings.Contains(s, "Article") {
				return true
			}
		}
	}
	return false
}

// authorNames flattens the JSON-LD author field, which may be a single
// Person object or a list of them.
func authorNames(author any) []string {
	var names []string

	appendName := func(v any) {
		obj, ok := v.(map[string]any)
		if !ok {
			return
		}
		if name, ok := obj["name"].(string); ok && name != "" {
			names = append(names, name)
		}
	}

	switch v := author.(type) {
	case map[string]any:
		appendName(v)
	case []any:
		for _, item := range v {
			appendName(item)
		}
	}

	return names
}

func (e *Extractor) extractOpenGraph(doc *goquery.Document, md *artid.Metadata) {
	if title, ok := findMetaProperty(doc, "og:title"); ok {
		md.HasOpenGraph = true
		if md.Title == "" {
			md.Title = title
		}
	}
	if published, ok := findMetaProperty(doc, "article:published_time"); ok && md.PublishDate == "" {
		md.PublishDate = published
	}
	if modified, ok := findMetaProperty(doc, "article:modified_time"); ok && md.ModifiedDate == "" {
		md.ModifiedDate = modified
	}
}

func findMetaProperty(doc *goquery.Document, property string) (string, bool) {
	sel := doc.Find(`meta[property="` + property + `"]`).First()
	if sel.Length() == 0 {
		return "", false
	}
	return sel.AttrOr("content", ""), true
}

func (e *Extractor) extractCanonical(doc *goquery.Document, md *artid.Metadata, url string) {
	sel := doc.Find(`link[rel="canonical"]`).First()
	if sel.Length() == 0 {
		return
	}
	md.HasCanonical = true
	md.CanonicalURL = sel.AttrOr("href", url)
}
