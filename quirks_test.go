package artid_test

import (
	"testing"

	"github.com/rgolab/artid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plainURL = "https://example.com/2024/01/15/story"

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	t.Parallel()

	got, err := artid.Normalize("First  line\n\nsecond\tline", artid.MethodReadability, plainURL)

	require.NoError(t, err)
	assert.Equal(t, "First line second line", got)
}

func TestNormalize_Scenario_PunctuationAndDash(t *testing.T) {
	t.Parallel()

	got, err := artid.Normalize("Hello world . Test—dash", artid.MethodReadability, plainURL)

	require.NoError(t, err)
	assert.Equal(t, "Hello world. Test-dash", got)
}

func TestNormalize_SmartTypography(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"curly single quotes", "It’s ‘fine’", "It's 'fine'"},
		{"curly double quotes", "“Quoted” words", `"Quoted" words`},
		{"em and en dashes", "a—b–c", "a-b-c"},
		{"minus sign", "minus−one", "minus-one"},
		{"prime marks", "5′9″", `5'9"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := artid.Normalize(tt.in, artid.MethodGoose, plainURL)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_InvisibleCharacters(t *testing.T) {
	t.Parallel()

	got, err := artid.Normalize("zero\u200bwidth\ufeff and\u00a0nbsp", artid.MethodReadability, plainURL)

	require.NoError(t, err)
	assert.Equal(t, "zerowidth and nbsp", got)
}

func TestNormalize_SentenceBoundaryRepair(t *testing.T) {
	t.Parallel()

	got, err := artid.Normalize("First sentence.Second sentence.", artid.MethodGoose, plainURL)

	require.NoError(t, err)
	assert.Equal(t, "First sentence. Second sentence.", got)
}

// Abbreviations misfire on purpose: splitting "U.S.Government" is baked into
// every stored content hash, so the behavior must not change.
func TestNormalize_AbbreviationMisfire(t *testing.T) {
	t.Parallel()

	got, err := artid.Normalize("U.S.Government", artid.MethodGoose, plainURL)

	require.NoError(t, err)
	assert.Equal(t, "U. S. Government", got)
}

func TestNormalize_PreservesNonASCII(t *testing.T) {
	t.Parallel()

	got, err := artid.Normalize("Café naïve 北京 żółć", artid.MethodReadability, plainURL)

	require.NoError(t, err)
	assert.Equal(t, "Café naïve 北京 żółć", got)
}

func TestNormalize_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := artid.Normalize("", artid.MethodReadability, plainURL)

	require.Error(t, err)
	assert.Equal(t, artid.ENOCONTENT, artid.ErrorCode(err))
}

func TestNormalize_ErrorMarkerInput(t *testing.T) {
	t.Parallel()

	_, err := artid.Normalize("ERROR: timeout fetching page", artid.MethodReadability, plainURL)

	require.Error(t, err)
	assert.Equal(t, artid.ENOCONTENT, artid.ErrorCode(err))
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Hello world . Test—dash",
		"She said “ yes ” twice.",
		"Multi   space text.And more",
	}

	for _, in := range inputs {
		once, err := artid.Normalize(in, artid.MethodReadability, plainURL)
		require.NoError(t, err)

		twice, err := artid.Normalize(once, artid.MethodReadability, plainURL)
		require.NoError(t, err)

		assert.Equal(t, once, twice, "input %q", in)
	}
}

func TestNormalize_ReadabilityQuoteSpacing(t *testing.T) {
	t.Parallel()

	got, err := artid.Normalize(`" Quoted text here "`, artid.MethodReadability, plainURL)

	require.NoError(t, err)
	assert.Equal(t, `"Quoted text here"`, got)
}

func TestNormalize_NewspaperDateline(t *testing.T) {
	t.Parallel()

	in := "Oct. 15, 2024 Updated 3:04 PM ET The story begins here."
	got, err := artid.Normalize(in, artid.MethodNewspaper, plainURL)

	require.NoError(t, err)
	assert.Equal(t, "The story begins here.", got)
}

func TestNormalize_GoosePhotoCredits(t *testing.T) {
	t.Parallel()

	in := "The mayor spoke at city hall. (Photo: John Doe/Getty Images)"
	got, err := artid.Normalize(in, artid.MethodGoose, plainURL)

	require.NoError(t, err)
	assert.Equal(t, "The mayor spoke at city hall.", got)
}

func TestNormalize_UnknownExtractorPassesThrough(t *testing.T) {
	t.Parallel()

	in := `He said " hello " once.`
	got, err := artid.Normalize(in, artid.MethodTrafilatura, plainURL)

	require.NoError(t, err)
	// No quote-spacing cleanup for tags without a quirk table.
	assert.Equal(t, `He said " hello " once.`, got)
}

func TestNormalize_FoxNewsBoilerplate(t *testing.T) {
	t.Parallel()

	in := "NEW You can now listen to Fox News articles! The senator voted on Tuesday. " +
		"CLICK HERE TO GET THE FOX NEWS APP The vote passed."
	got, err := artid.Normalize(in, artid.MethodReadability, "https://www.foxnews.com/politics/senate-vote")

	require.NoError(t, err)
	assert.Equal(t, "The senator voted on Tuesday. The vote passed.", got)
}

func TestNormalize_FoxNewsContributedCredit(t *testing.T) {
	t.Parallel()

	in := "The bill now heads to the House. Fox News' Jane Doe contributed to this report."
	got, err := artid.Normalize(in, artid.MethodReadability, "https://foxnews.com/politics/bill")

	require.NoError(t, err)
	assert.Equal(t, "The bill now heads to the House.", got)
}

func TestNormalize_MidTextCoincidenceNotStripped(t *testing.T) {
	t.Parallel()

	// The listen-prompt pattern is start-anchored; the same words mid-text
	// are article content and must survive.
	in := "Critics noted that NEW You can now listen to Fox News articles appeared as a banner."
	got, err := artid.Normalize(in, artid.MethodReadability, "https://foxnews.com/media/banner-story")

	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestNormalize_CNNLiveNewsExcluded(t *testing.T) {
	t.Parallel()

	urls := []string{
		"https://www.cnn.com/politics/live-news/election-results",
		"https://edition.cnn.com/world/live-updates/conflict-day-12",
	}

	for _, u := range urls {
		_, err := artid.Normalize("Perfectly good article text.", artid.MethodReadability, u)

		require.Error(t, err, u)
		assert.Equal(t, artid.ENOCONTENT, artid.ErrorCode(err))
	}
}

func TestNormalize_CNNRegularArticleKept(t *testing.T) {
	t.Parallel()

	got, err := artid.Normalize("Regular CNN article body.", artid.MethodReadability,
		"https://www.cnn.com/2024/01/15/politics/regular-story")

	require.NoError(t, err)
	assert.Equal(t, "Regular CNN article body.", got)
}
