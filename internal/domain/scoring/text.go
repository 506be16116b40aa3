package scoring

import (
	"regexp"
	"strings"
)

var wordRe = regexp.MustCompile(`[a-zA-Z0-9]+`)

// Normalize lowercases free text. Absent text normalizes to "".
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	return strings.ToLower(text)
}

// Tokenize splits text into a set of lowercase alphanumeric tokens.
// Punctuation, whitespace and any non-ASCII-alnum runes act as separators.
func Tokenize(text string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, m := range wordRe.FindAllString(text, -1) {
		out[strings.ToLower(m)] = struct{}{}
	}
	return out
}

// ContainsAny reports whether any keyword appears as a case-insensitive
// substring of text. Substring semantics are intentional: "java" matches
// "javascript".
func ContainsAny(text string, keywords []string) bool {
	t := Normalize(text)
	for _, k := range keywords {
		if strings.Contains(t, strings.ToLower(k)) {
			return true
		}
	}
	return false
}

// CountKeywords counts how many distinct keywords (lowercased) are present
// as exact members of the token set. A keyword with internal whitespace can
// never match a single-word token, so multi-word phrases always count as
// misses.
func CountKeywords(tokens map[string]struct{}, keywords []string) int {
	lowered := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		lowered[strings.ToLower(k)] = struct{}{}
	}

	n := 0
	for k := range lowered {
		if _, ok := tokens[k]; ok {
			n++
		}
	}
	return n
}
