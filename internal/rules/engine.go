package rules

import "strings"

// Engine evaluates every category against a card text. Categories keep
// their configured order, so tags come out in category-priority order
// regardless of where the triggers sit in the text.
type Engine struct {
	Categories []Category
}

func (e *Engine) Evaluate(text string) Result {
	result := Result{Level: LevelBasic}
	if strings.TrimSpace(text) == "" {
		return result
	}

	for _, category := range e.Categories {
		if category.Exclude != nil && category.Exclude.MatchString(text) {
			continue
		}
		matched, keyword := category.Matcher.Match(text)
		if !matched {
			continue
		}
		result.Tags = append(result.Tags, category.Name)
		result.Matches = append(result.Matches, Match{
			Category: category.Name,
			Keyword:  keyword,
			Level:    category.Level,
		})
		if category.Level > result.Level {
			result.Level = category.Level
		}
	}

	return result
}
