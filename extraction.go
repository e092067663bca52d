package artid

// Extraction method tags. The tag names the upstream tool that produced the
// raw text; the normalizer keys its extractor quirk layer on it and the
// fingerprint record carries it verbatim.
const (
	MethodReadability = "readability"
	MethodNewspaper   = "newspaper"
	MethodGoose       = "goose"
	MethodTrafilatura = "trafilatura"
)

// Extraction holds the article content produced by an upstream extractor.
// The core only reads it; quality gatekeeping (minimum title/content length)
// happens before the pipeline is invoked.
type Extraction struct {
	// Title is the article title as reported by the extractor.
	Title string

	// Content is the article body as plain text. This is the only field
	// the fingerprint pipeline hashes.
	Content string

	// HTML is the cleaned article HTML, when the extractor provides it.
	// Never hashed; kept for display and debugging.
	HTML string
}

// Validate returns an error if the extraction contains invalid fields.
func (e *Extraction) Validate() error {
	if e.Content == "" {
		return Errorf(EINVALID, "extraction content required")
	}
	return nil
}

// Extractor extracts the main article from raw HTML, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main article content
	// as plain text (plus cleaned HTML when available).
	Extract(html string) (*Extraction, error)

	// Method returns the extraction method tag (e.g., MethodReadability).
	Method() string
}
