package artid

import (
	"net/url"
	"regexp"
	"strings"
)

// DefaultTrackingParams is the denylist of query parameters stripped during
// URL canonicalization. Matching is by exact key.
var DefaultTrackingParams = []string{
	"utm_source", "utm_medium", "utm_campaign", "utm_term", "utm_content",
	"fbclid", "gclid", "mc_cid", "mc_eid", "_ga", "ref",
}

// DefaultOutletNames lists publishers whose name is commonly appended to
// page titles as " | Outlet" or " - Outlet".
var DefaultOutletNames = []string{
	"Fox News", "CNN", "CNN Politics", "Reuters", "Bloomberg",
	"The New York Times", "The Washington Post", "BBC News", "BBC",
	"NPR", "Politico", "The Guardian", "Associated Press", "AP News",
}

// urlDatePattern matches a /YYYY/MM/DD/ segment in a URL path.
var urlDatePattern = regexp.MustCompile(`/(\d{4})/(\d{2})/(\d{2})/`)

// Resolver derives the canonical identity of an article from its URL and
// optional page-metadata hints. It is pure and deterministic given its
// inputs; all configuration is immutable after construction.
type Resolver struct {
	tracking map[string]bool
	outlets  []string
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithTrackingParams replaces the tracking-parameter denylist.
func WithTrackingParams(params []string) ResolverOption {
	return func(r *Resolver) {
		r.tracking = make(map[string]bool, len(params))
		for _, p := range params {
			r.tracking[p] = true
		}
	}
}

// WithOutletNames replaces the outlet-name list used for title cleanup.
func WithOutletNames(names []string) ResolverOption {
	return func(r *Resolver) {
		r.outlets = names
	}
}

// NewResolver creates a Resolver with the default tracking-parameter and
// outlet-name tables.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{}
	WithTrackingParams(DefaultTrackingParams)(r)
	WithOutletNames(DefaultOutletNames)(r)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// CanonicalURL strips denylisted tracking parameters from a URL, preserving
// all other query parameters and their relative order. On parse failure the
// original string is returned verbatim; a malformed URL is still a usable
// join key, just not a cleanable one.
func (r *Resolver) CanonicalURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	if u.RawQuery != "" {
		// url.Values would lose parameter order, so the query is split
		// by hand and rebuilt from the surviving pairs.
		pairs := strings.Split(u.RawQuery, "&")
		kept := pairs[:0]
		for _, pair := range pairs {
			key := pair
			if i := strings.IndexByte(pair, '='); i >= 0 {
				key = pair[:i]
			}
			if r.tracking[key] {
				continue
			}
			kept = append(kept, pair)
		}
		u.RawQuery = strings.Join(kept, "&")
	}

	return u.String()
}

// PublishDateFromURL extracts a YYYY-MM-DD date from a /YYYY/MM/DD/ path
// segment. Returns "" when the path carries no date. This is a fallback
// source; metadata hints take precedence in Resolve.
func PublishDateFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	m := urlDatePattern.FindStringSubmatch(u.Path)
	if m == nil {
		return ""
	}
	return m[1] + "-" + m[2] + "-" + m[3]
}

// CleanTitle strips a trailing " | Outlet" or " - Outlet" suffix for known
// outlets. Anchored to the end of the string only; an outlet name in the
// middle of a headline stays put.
func (r *Resolver) CleanTitle(title string) string {
	for _, outlet := range r.outlets {
		for _, sep := range []string{" | ", " - "} {
			if strings.HasSuffix(title, sep+outlet) {
				return strings.TrimSuffix(title, sep+outlet)
			}
		}
	}
	return title
}

// Resolve merges URL-derived identity fields with optional metadata hints.
// Precedence is first-non-empty: explicit hint fields win over URL-derived
// fallbacks, which win over the literal "Unknown" title default. With nil
// hints the provenance flags stay false and the record is still complete.
func (r *Resolver) Resolve(rawURL string, hints *Metadata) *Metadata {
	md := &Metadata{
		URL:          rawURL,
		CanonicalURL: r.CanonicalURL(rawURL),
	}

	if hints != nil {
		md.CanonicalURL = firstNonEmpty(hints.CanonicalURL, md.CanonicalURL)
		md.Title = hints.Title
		md.PublishDate = hints.PublishDate
		md.ModifiedDate = hints.ModifiedDate
		md.Authors = append(md.Authors, hints.Authors...)
		md.HasSchemaOrg = hints.HasSchemaOrg
		md.HasOpenGraph = hints.HasOpenGraph
		md.HasCanonical = hints.HasCanonical
	}

	md.PublishDate = firstNonEmpty(md.PublishDate, PublishDateFromURL(rawURL))
	md.Title = firstNonEmpty(r.CleanTitle(md.Title), "Unknown")

	return md
}

// firstNonEmpty returns the first non-empty value from an ordered list of
// sources. It is the single merge primitive for optional fields coming from
// heterogeneous origins, keeping precedence auditable in one place.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
