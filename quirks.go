package artid

import (
	"regexp"
	"strings"
)

// Normalize rewrites extracted article text so that incidental differences
// between fetches (whitespace, smart typography, extractor artifacts, site
// boilerplate) disappear before hashing. Three ordered layers are applied:
// a universal layer, an extractor layer keyed by the method tag, and a site
// layer keyed by the URL's host.
//
// Returns an ENOCONTENT error when there is nothing to fingerprint: the
// text is empty, carries an upstream error marker, or matched an explicit
// exclusion rule (live blogs). Callers must treat ENOCONTENT as "do not
// fingerprint", not as a retryable failure.
//
// The universal and extractor layers are idempotent: feeding their output
// back through Normalize with the same tag and URL is a no-op. Rule behavior
// is part of the hash contract; known misfires (e.g. "U.S.Government"
// gaining a space after each period) are kept as-is because changing a rule
// changes every stored content hash.
func Normalize(text, extractor, rawURL string) (string, error) {
	if text == "" {
		return "", Errorf(ENOCONTENT, "empty or missing extraction")
	}
	if strings.HasPrefix(text, errorMarker) {
		return "", Errorf(ENOCONTENT, "extraction failed upstream")
	}

	text = universalQuirks(text)
	text = extractorQuirks(text, extractor)
	return siteQuirks(text, rawURL)
}

// errorMarker prefixes text produced by a failed upstream extraction.
const errorMarker = "ERROR:"

var (
	// Zero-width characters are stripped; non-breaking space becomes an
	// ordinary space. All other Unicode passes through untouched.
	invisibleReplacer = strings.NewReplacer(
		"\u200b", "", // zero width space
		"\u200c", "", // zero width non-joiner
		"\u200d", "", // zero width joiner
		"\ufeff", "", // byte order mark
		"\u00a0", " ", // non-breaking space
	)

	// The curly-quote and dash families map to their ASCII equivalents.
	typographyReplacer = strings.NewReplacer(
		"‘", "'", "’", "'", "‛", "'", "′", "'",
		"“", `"`, "”", `"`, "″", `"`,
		"—", "-", "–", "-", "−", "-",
	)

	spaceBeforePunct = regexp.MustCompile(`\s+([.,!?;:])`)
	punctThenLetter  = regexp.MustCompile(`([.,!?;:])([A-Za-z])`)
	sentenceBoundary = regexp.MustCompile(`\.([A-Z])`)
)

// universalQuirks is the first layer, applied to every extraction
// regardless of source. Rule order matters and is fixed.
func universalQuirks(text string) string {
	// Collapse all whitespace runs, including newlines, to single spaces.
	text = strings.Join(strings.Fields(text), " ")

	text = invisibleReplacer.Replace(text)

	// "word ." -> "word."
	text = spaceBeforePunct.ReplaceAllString(text, "$1")
	// "word.Next" -> "word. Next"
	text = punctThenLetter.ReplaceAllString(text, "$1 $2")

	text = typographyReplacer.Replace(text)

	// Sentence-boundary repair for periods that survived the punctuation
	// pass (e.g. a period introduced by the typography mapping).
	text = sentenceBoundary.ReplaceAllString(text, ". $1")

	return strings.TrimSpace(strings.Join(strings.Fields(text), " "))
}

// rewriteRule is one (matcher, replacement) pair in a quirk table.
type rewriteRule struct {
	pattern *regexp.Regexp
	repl    string
}

func applyRules(text string, rules []rewriteRule) string {
	for _, r := range rules {
		text = r.pattern.ReplaceAllString(text, r.repl)
	}
	return text
}

// extractorRules fixes idiosyncrasies of specific extraction tools.
// Tables are ordered; unrecognized tags pass through unchanged.
var extractorRules = map[string][]rewriteRule{
	// newspaper prepends a dateline header ("Oct. 15, 2024 ... 3:04 PM ET").
	MethodNewspaper: {
		{regexp.MustCompile(`(?i)^(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\.?\s+\d{1,2},\s+\d{4}.*?(?:ET|EST|PST|CST)\s*`), ""},
	},
	// readability leaves stray whitespace around double quotes.
	MethodReadability: {
		{regexp.MustCompile(`"\s+`), `"`},
		{regexp.MustCompile(`\s+"`), `"`},
	},
	// goose keeps parenthetical wire-service photo credits.
	MethodGoose: {
		{regexp.MustCompile(`(?i)\(.*?(?:Getty Images|Reuters|AFP|AP|Bloomberg)\)`), ""},
	},
}

// extractorQuirks is the second layer, keyed by the extraction method tag.
func extractorQuirks(text, extractor string) string {
	return strings.TrimSpace(applyRules(text, extractorRules[extractor]))
}

// siteRule describes the quirk table for one publisher. Host matching is a
// case-insensitive substring match against the article URL. Anchoring in
// the rule patterns is deliberate: boilerplate is only stripped at the
// start or end of the text, never on a mid-text coincidental match.
type siteRule struct {
	host string

	// excludePaths flag whole content classes as non-fingerprintable
	// (live blogs); a URL containing any of them yields ENOCONTENT.
	excludePaths []string

	rules []rewriteRule
}

var siteRules = []siteRule{
	{
		host: "foxnews.com",
		rules: []rewriteRule{
			{regexp.MustCompile(`(?i)^NEW You can now listen to Fox News articles!?\s*`), ""},
			{regexp.MustCompile(`(?i)CLICK HERE TO (?:GET|DOWNLOAD) (?:THE )?FOX NEWS APP\s*`), ""},
			{regexp.MustCompile(`(?i)Fox News['\s]+[\w\s]+contributed to this report\.?\s*$`), ""},
			{regexp.MustCompile(`(?i)[\w\s]+ is a (?:reporter|correspondent|anchor) with Fox News Digital.*?$`), ""},
			{regexp.MustCompile(`(?i)Send tips to [\w.@]+,?\s*or on (?:X|Twitter):\s*@[\w_]+\.?\s*$`), ""},
		},
	},
	{
		host:         "cnn.com",
		excludePaths: []string{"live-news", "live-updates"},
	},
}

// siteQuirks is the third layer, keyed by the article's host. Unmatched
// hosts pass through with only trimming applied.
func siteQuirks(text, rawURL string) (string, error) {
	lowered := strings.ToLower(rawURL)

	for _, site := range siteRules {
		if !strings.Contains(lowered, site.host) {
			continue
		}
		for _, p := range site.excludePaths {
			if strings.Contains(rawURL, p) {
				return "", Errorf(ENOCONTENT, "excluded content class (live/rolling coverage): %s", rawURL)
			}
		}
		text = applyRules(text, site.rules)
		break
	}

	return strings.TrimSpace(text), nil
}
