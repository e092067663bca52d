package artid

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode/utf8"
)

// Version is the fingerprint record schema version. It changes only on
// breaking changes to field semantics; additive fields do not bump it.
const Version = "1.0"

// articleIDLen is the number of hex characters kept from the article-id
// digest. Truncation is a plain substring of the hex digest, not a re-hash.
const articleIDLen = 16

// Fingerprint identifies an article two ways: ContentHash is exact
// normalized-content identity, ArticleID is logical-article identity.
// The same article re-published with edited text keeps its ArticleID but
// gets a new ContentHash; that difference is how edits are detected.
type Fingerprint struct {
	ArticleID        string `json:"article_id"`
	ContentHash      string `json:"content_hash"`
	ExtractionMethod string `json:"extraction_method"`
	WordCount        int    `json:"word_count"`
	CharCount        int    `json:"char_count"`
	Version          string `json:"version"`
}

// Result is the complete output of one fingerprinting call: the fingerprint
// plus the resolved identity and the normalized text it was computed from.
// This shape is the serialization compatibility contract; existing archives
// join on it.
type Result struct {
	Fingerprint   Fingerprint `json:"fingerprint"`
	Metadata      *Metadata   `json:"metadata"`
	ProcessedText string      `json:"processed_text"`
}

// Builder produces fingerprint records from raw extractions. It is pure:
// identical inputs yield byte-identical results across calls and process
// restarts, which is what makes external caching layers correct. A single
// Builder may be shared by any number of goroutines.
type Builder struct {
	resolver *Resolver
	method   string
}

// NewBuilder creates a Builder that normalizes with the given extraction
// method tag and resolves identity with the given resolver. A nil resolver
// gets the defaults; an empty method defaults to MethodReadability.
func NewBuilder(resolver *Resolver, method string) *Builder {
	if resolver == nil {
		resolver = NewResolver()
	}
	if method == "" {
		method = MethodReadability
	}
	return &Builder{resolver: resolver, method: method}
}

// Method returns the extraction method tag the builder normalizes for.
func (b *Builder) Method() string {
	return b.method
}

// Build runs the full pipeline: normalize, hash, resolve identity, derive
// the article id. Returns ENOCONTENT when the normalizer rejects the input;
// there is no partial record, a call either yields a complete Result or a
// single typed failure.
func (b *Builder) Build(ext *Extraction, rawURL string, hints *Metadata) (*Result, error) {
	if ext == nil {
		return nil, Errorf(ENOCONTENT, "empty or missing extraction")
	}

	text, err := Normalize(ext.Content, b.method, rawURL)
	if err != nil {
		return nil, err
	}

	md := b.resolver.Resolve(rawURL, hints)

	// Content identity: SHA-256 over the UTF-8 bytes of the normalized
	// text. Lowercase hex, zero-padded per byte.
	contentSum := sha256.Sum256([]byte(text))

	// Logical-article identity: pipe-joined post-resolution fields, each
	// an empty string when unset, never a rendered nil.
	idSource := md.CanonicalURL + "|" + md.PublishDate + "|" + md.Title
	idSum := sha256.Sum256([]byte(idSource))

	return &Result{
		Fingerprint: Fingerprint{
			ArticleID:        hex.EncodeToString(idSum[:])[:articleIDLen],
			ContentHash:      hex.EncodeToString(contentSum[:]),
			ExtractionMethod: b.method,
			WordCount:        len(strings.Fields(text)),
			CharCount:        utf8.RuneCountInString(text),
			Version:          Version,
		},
		Metadata:      md,
		ProcessedText: text,
	}, nil
}
