package rules

import "regexp"

// Category is a compiled content-warning rule: a set of trigger phrases,
// an optional exclusion pattern, and the severity tier the category feeds.
type Category struct {
	Name    string
	Level   Level
	Matcher Matcher
	Exclude *regexp.Regexp
}

type Match struct {
	Category string
	Keyword  string
	Level    Level
}

type Result struct {
	Tags    []string
	Level   Level
	Matches []Match
}

// Matcher reports whether the text triggers a category and which phrase hit.
type Matcher interface {
	Match(text string) (bool, string)
}
