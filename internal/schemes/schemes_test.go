package schemes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupByKey(t *testing.T) {
	text, ok := Lookup("How do I apply for PM-Kisan?")
	require.True(t, ok)
	require.Contains(t, text, "PM-KISAN (Pradhan Mantri Kisan Samman Nidhi)")
	require.Contains(t, text, "₹6,000")
	require.Contains(t, text, "https://pmkisan.gov.in")
}

func TestLookupByTitleWord(t *testing.T) {
	text, ok := Lookup("is the Ayushman card free")
	require.True(t, ok)
	require.Contains(t, text, "Ayushman Bharat (PM-JAY)")
	require.Contains(t, text, "₹5 lakh")
}

func TestLookupCategoryNets(t *testing.T) {
	text, ok := Lookup("are there any schemes for farmers?")
	require.True(t, ok)
	require.Contains(t, text, "PM-KISAN")

	text, ok = Lookup("I need help with health insurance")
	require.True(t, ok)
	require.Contains(t, text, "Ayushman Bharat")
}

func TestLookupDirectMatchBeatsCategory(t *testing.T) {
	// "farmers" alone would hit the PM-KISAN net, but the direct
	// ayushman mention wins
	text, ok := Lookup("is ayushman useful for farmers")
	require.True(t, ok)
	require.Contains(t, text, "Ayushman Bharat")
}

func TestLookupMiss(t *testing.T) {
	for _, q := range []string{
		"what is the weather in Delhi",
		"who won the cricket match",
		"",
	} {
		text, ok := Lookup(q)
		require.False(t, ok, q)
		require.Empty(t, text, q)
	}
}

func TestLookupDeterministic(t *testing.T) {
	first, ok1 := Lookup("pm-kisan installment dates")
	second, ok2 := Lookup("pm-kisan installment dates")
	require.True(t, ok1)
	require.True(t, ok2)
	require.Equal(t, first, second)
}

func TestFormatBlockShape(t *testing.T) {
	text, ok := Lookup("pm-kisan")
	require.True(t, ok)

	lines := strings.Split(text, "\n")
	require.Len(t, lines, 5)
	require.True(t, strings.HasPrefix(lines[0], "1. **"))
	require.True(t, strings.HasPrefix(lines[1], "- Eligibility: "))
	require.True(t, strings.HasPrefix(lines[2], "- Benefits: "))
	require.True(t, strings.HasPrefix(lines[3], "- How to apply: "))
	require.True(t, strings.HasPrefix(lines[4], "- Website: "))
}
