package rules

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// WordMatcher matches trigger phrases as whole words only, case
// insensitively. Multi-word phrases match as contiguous word sequences
// across any whitespace run.
type WordMatcher struct {
	keywords []string
	patterns []*regexp.Regexp
}

func NewWordMatcher(keywords []string) (*WordMatcher, error) {
	if len(keywords) == 0 {
		return nil, errors.New("keywords are required")
	}

	m := &WordMatcher{}
	for _, keyword := range keywords {
		keyword = strings.TrimSpace(keyword)
		if keyword == "" {
			continue
		}
		re, err := regexp.Compile(wordPattern(keyword))
		if err != nil {
			return nil, fmt.Errorf("keyword %q: %w", keyword, err)
		}
		m.keywords = append(m.keywords, keyword)
		m.patterns = append(m.patterns, re)
	}
	if len(m.patterns) == 0 {
		return nil, errors.New("no non-empty keywords")
	}
	return m, nil
}

func wordPattern(keyword string) string {
	parts := strings.Fields(keyword)
	for i, part := range parts {
		parts[i] = regexp.QuoteMeta(part)
	}
	return `(?i)\b` + strings.Join(parts, `\s+`) + `\b`
}

// Match returns the first trigger phrase found. A category match is
// binary, so the scan stops at the first hit.
func (m *WordMatcher) Match(text string) (bool, string) {
	for i, re := range m.patterns {
		if re.MatchString(text) {
			return true, m.keywords[i]
		}
	}
	return false, ""
}
