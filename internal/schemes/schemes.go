// Package schemes is the tiny offline knowledge base used when no
// provider is reachable. It is deliberately small: a handful of
// flagship schemes, matched by plain substring rules.
package schemes

import (
	"fmt"
	"strings"
)

type Scheme struct {
	Key         string // canonical lookup token, lowercase
	Title       string
	Eligibility string
	Benefits    string
	Apply       string
	Website     string
}

var pmKisan = Scheme{
	Key:         "pm-kisan",
	Title:       "PM-KISAN (Pradhan Mantri Kisan Samman Nidhi)",
	Eligibility: "All landholding farmer families with cultivable land",
	Benefits:    "₹6,000 per year, paid in three installments of ₹2,000",
	Apply:       "Register at pmkisan.gov.in or at the nearest Common Service Centre",
	Website:     "https://pmkisan.gov.in",
}

var ayushmanBharat = Scheme{
	Key:         "ayushman",
	Title:       "Ayushman Bharat (PM-JAY)",
	Eligibility: "Economically weaker families listed in the SECC 2011 data",
	Benefits:    "Health cover of ₹5 lakh per family per year for hospital care",
	Apply:       "Check eligibility at pmjay.gov.in or visit an empanelled hospital",
	Website:     "https://pmjay.gov.in",
}

// Declaration order doubles as match precedence.
var catalog = []Scheme{pmKisan, ayushmanBharat}

// Lookup answers a question from the local catalog. The match is a
// substring scan over the lowercased query: scheme key, full title,
// then the title's first word, in catalog order. Two category nets
// catch broader phrasings. Misses return ok=false; Lookup never
// errors and never panics.
func Lookup(query string) (string, bool) {
	q := strings.ToLower(query)

	for _, s := range catalog {
		title := strings.ToLower(s.Title)
		first := firstWord(title)
		if strings.Contains(q, s.Key) ||
			strings.Contains(q, title) ||
			(first != "" && strings.Contains(q, first)) {
			return format(s), true
		}
	}

	switch {
	case strings.Contains(q, "farmer") || strings.Contains(q, "agriculture"):
		return format(pmKisan), true
	case strings.Contains(q, "health") || strings.Contains(q, "insurance"):
		return format(ayushmanBharat), true
	}

	return "", false
}

// format renders one scheme in the same markdown shape the system
// prompt asks the provider for.
func format(s Scheme) string {
	var b strings.Builder
	fmt.Fprintf(&b, "1. **%s**\n", s.Title)
	fmt.Fprintf(&b, "- Eligibility: %s\n", s.Eligibility)
	fmt.Fprintf(&b, "- Benefits: %s\n", s.Benefits)
	fmt.Fprintf(&b, "- How to apply: %s\n", s.Apply)
	fmt.Fprintf(&b, "- Website: %s", s.Website)
	return b.String()
}

func firstWord(s string) string {
	if fields := strings.Fields(s); len(fields) > 0 {
		return fields[0]
	}
	return ""
}
