package paramfile

import "strings"

// Parse runs the classifier over every line of text and builds the keyword
// map. It never fails: malformed lines and unknown syntax are skipped so a
// file written by a newer build still loads. Callers that want to reject
// foreign text entirely run SanityCheck first.
func Parse(text string) *KeywordMap {
	var c classifier
	rawLines := strings.Split(text, "\n")
	lines := make([]classified, 0, len(rawLines))
	for _, raw := range rawLines {
		lines = append(lines, c.classify(strings.TrimRight(raw, "\r")))
	}
	return buildKeywordMap(lines)
}
