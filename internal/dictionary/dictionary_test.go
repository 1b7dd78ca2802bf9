package dictionary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKnownPairs(t *testing.T) {
	for _, pair := range [][2]string{
		{"English", "Tamil"},
		{"Tamil", "English"},
		{"English", "Hindi"},
		{"Hindi", "English"},
	} {
		entries, ok := Lookup(pair[0], pair[1])
		require.True(t, ok, "pair %v", pair)
		assert.NotEmpty(t, entries)
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	entries, ok := Lookup("english", "TAMIL")
	require.True(t, ok)
	assert.NotEmpty(t, entries)
}

func TestLookupUnknownPair(t *testing.T) {
	_, ok := Lookup("English", "French")
	assert.False(t, ok)

	_, ok = Lookup("Tamil", "Hindi")
	assert.False(t, ok)
}

func TestPhrasesAreCaseFolded(t *testing.T) {
	for pair, entries := range tables {
		for _, e := range entries {
			assert.Equal(t, strings.ToLower(e.Phrase), e.Phrase, "pair %v", pair)
		}
	}
}

func TestLongerPhrasesComeFirst(t *testing.T) {
	entries, ok := Lookup("English", "Tamil")
	require.True(t, ok)

	index := func(phrase string) int {
		for i, e := range entries {
			if e.Phrase == phrase {
				return i
			}
		}
		t.Fatalf("phrase %q not found", phrase)
		return -1
	}

	assert.Less(t, index("i have headache"), index("headache"))
	assert.Less(t, index("i have fever"), index("fever"))
	assert.Less(t, index("take rest"), index("rest"))
}
