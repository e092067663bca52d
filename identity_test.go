package artid_test

import (
	"testing"

	"github.com/rgolab/artid"
	"github.com/stretchr/testify/assert"
)

func TestResolver_CanonicalURL_StripsTrackingParams(t *testing.T) {
	t.Parallel()

	r := artid.NewResolver()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"utm parameters removed",
			"https://example.com/story?utm_source=tw&utm_medium=social&utm_campaign=spring",
			"https://example.com/story",
		},
		{
			"other parameters kept in order",
			"https://example.com/story?id=3&utm_source=x&page=2&fbclid=abc123",
			"https://example.com/story?id=3&page=2",
		},
		{
			"click identifiers removed",
			"https://example.com/a?gclid=1&mc_cid=2&mc_eid=3&_ga=4&ref=homepage",
			"https://example.com/a",
		},
		{
			"values of kept parameters preserved verbatim",
			"https://example.com/s?q=utm_source&utm_term=x",
			"https://example.com/s?q=utm_source",
		},
		{
			"no query untouched",
			"https://example.com/plain/path",
			"https://example.com/plain/path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, r.CanonicalURL(tt.in))
		})
	}
}

func TestResolver_CanonicalURL_MalformedURLReturnedVerbatim(t *testing.T) {
	t.Parallel()

	r := artid.NewResolver()
	raw := "http://exa mple.com/bad url?utm_source=x"

	assert.Equal(t, raw, r.CanonicalURL(raw))
}

func TestResolver_CanonicalURL_CustomDenylist(t *testing.T) {
	t.Parallel()

	r := artid.NewResolver(artid.WithTrackingParams([]string{"session"}))

	assert.Equal(t, "https://example.com/a?utm_source=x",
		r.CanonicalURL("https://example.com/a?session=9&utm_source=x"))
}

func TestPublishDateFromURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"dated path", "https://x/2024/01/15/foo", "2024-01-15"},
		{"undated path", "https://x/foo", ""},
		{"date must be a path segment", "https://x/archive?d=2024/01/15/", ""},
		{"deep dated path", "https://www.cnn.com/2023/12/01/politics/story-slug/index.html", "2023-12-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, artid.PublishDateFromURL(tt.in))
		})
	}
}

func TestResolver_CleanTitle(t *testing.T) {
	t.Parallel()

	r := artid.NewResolver()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"pipe suffix stripped", "Senate passes the bill | Fox News", "Senate passes the bill"},
		{"dash suffix stripped", "Election results - CNN", "Election results"},
		{"outlet mid-title kept", "Why Fox News | viewers changed channels", "Why Fox News | viewers changed channels"},
		{"unknown outlet kept", "Local story | Smallville Gazette", "Local story | Smallville Gazette"},
		{"no suffix untouched", "Plain headline", "Plain headline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, r.CleanTitle(tt.in))
		})
	}
}

func TestResolver_Resolve_URLFallbacksOnly(t *testing.T) {
	t.Parallel()

	r := artid.NewResolver()

	md := r.Resolve("https://example.com/2024/01/15/foo?utm_source=x", nil)

	assert.Equal(t, "https://example.com/2024/01/15/foo?utm_source=x", md.URL)
	assert.Equal(t, "https://example.com/2024/01/15/foo", md.CanonicalURL)
	assert.Equal(t, "2024-01-15", md.PublishDate)
	assert.Equal(t, "Unknown", md.Title)
	assert.Empty(t, md.Authors)
	assert.False(t, md.HasSchemaOrg)
	assert.False(t, md.HasOpenGraph)
	assert.False(t, md.HasCanonical)
}

func TestResolver_Resolve_HintsWin(t *testing.T) {
	t.Parallel()

	r := artid.NewResolver()
	hints := &artid.Metadata{
		CanonicalURL: "https://example.com/canonical",
		Title:        "Declared Headline | Fox News",
		PublishDate:  "2023-06-02T10:00:00Z",
		ModifiedDate: "2023-06-03T08:00:00Z",
		Authors:      []string{"Jane Doe"},
		HasSchemaOrg: true,
		HasCanonical: true,
	}

	md := r.Resolve("https://example.com/2024/01/15/foo", hints)

	assert.Equal(t, "https://example.com/canonical", md.CanonicalURL)
	assert.Equal(t, "Declared Headline", md.Title)
	assert.Equal(t, "2023-06-02T10:00:00Z", md.PublishDate)
	assert.Equal(t, "2023-06-03T08:00:00Z", md.ModifiedDate)
	assert.Equal(t, []string{"Jane Doe"}, md.Authors)
	assert.True(t, md.HasSchemaOrg)
	assert.False(t, md.HasOpenGraph)
	assert.True(t, md.HasCanonical)
}

func TestResolver_Resolve_PartialHintsFallBack(t *testing.T) {
	t.Parallel()

	r := artid.NewResolver()
	hints := &artid.Metadata{Title: "Only a Title"}

	md := r.Resolve("https://example.com/2022/11/30/story", hints)

	assert.Equal(t, "Only a Title", md.Title)
	assert.Equal(t, "2022-11-30", md.PublishDate)
	assert.Equal(t, "https://example.com/2022/11/30/story", md.CanonicalURL)
}
