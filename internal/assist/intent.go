package assist

import "strings"

// CreatorAnswer is returned verbatim whenever the user asks who made
// the assistant. It short-circuits before validation and the provider.
const CreatorAnswer = "I was created by the Yojana Mitra team to help people discover and understand Indian government welfare schemes."

var creatorPhrases = []string{
	"who created you",
	"who made you",
	"who built you",
	"who designed you",
	"who developed you",
	"your creator",
	"your developer",
	"your designer",
}

// isCreatorQuery reports whether the query asks about the assistant's
// origin. "invent" anywhere in the query disarms the match, so that
// questions like "who invented the telephone" still reach the provider.
func isCreatorQuery(query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(q, "invent") {
		return false
	}
	for _, phrase := range creatorPhrases {
		if strings.Contains(q, phrase) {
			return true
		}
	}
	return false
}
