// Package artid derives stable, content-based identities for web articles.
// Two fetches of the same article, possibly extracted by different tools on
// different days with different tracking parameters in the URL, collapse to
// the same identifier; genuinely different content produces a different one.
//
// The core is a three-stage pipeline: a layered text normalizer that strips
// incidental noise (whitespace, smart typography, extractor artifacts, site
// boilerplate), an identity resolver that derives a canonical URL and
// publish date, and a fingerprint builder that hashes both into a content
// hash and a logical article identifier.
//
// This package contains domain types, interfaces, and the pure pipeline
// logic following Ben Johnson's Standard Package Layout. Implementations
// of the boundary interfaces live in subdirectories named after their
// primary dependency (e.g., readability/, goquery/, sqlite/).
package artid
