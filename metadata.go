package artid

// Metadata describes the resolved identity of an article page. It is built
// once per fingerprinting call and never mutated afterward.
//
// Fields may come from heterogeneous sources (Schema.org JSON-LD, Open
// Graph, URL-derived fallbacks); the provenance flags record which source
// kinds were present in the page.
type Metadata struct {
	URL          string   `json:"url"`
	CanonicalURL string   `json:"canonical_url"`
	Title        string   `json:"title"`
	Authors      []string `json:"authors"`
	PublishDate  string   `json:"publish_date"`
	ModifiedDate string   `json:"modified_date"`
	HasSchemaOrg bool     `json:"has_schema_org"`
	HasOpenGraph bool     `json:"has_opengraph"`
	HasCanonical bool     `json:"has_canonical"`
}

// MetadataExtractor extracts structured page metadata from raw HTML.
// The result is used as hints for the identity resolver; a nil result
// with nil error is not valid — extractors return a complete record with
// zero values for anything the page does not declare.
type MetadataExtractor interface {
	ExtractMetadata(html, url string) (*Metadata, error)
}
