package tagger

import (
	"github.com/deckward/deckward/internal/rules"
)

const levelColumn = "Level"

// RowOutcome describes one classified card.
type RowOutcome struct {
	Row     int // 1-based input row index, header excluded by being row 0
	Text    string
	Level   rules.Level
	Tags    []string
	Matches []rules.Match
}

type Table struct {
	Rows     [][]string
	Outcomes []RowOutcome
}

// Transform classifies every card row and rebuilds the table in the
// text, level, tag-columns schema. Rows that are empty or have an empty
// first cell are dropped. Level and tags derive only from the card text,
// so transforming the transformer's own output reproduces it.
func Transform(rows [][]string, eng *rules.Engine, tagCols int) Table {
	var out Table
	if len(rows) == 0 {
		return out
	}

	out.Rows = append(out.Rows, rewriteHeader(rows[0], tagCols))

	for i, row := range rows[1:] {
		if len(row) == 0 || row[0] == "" {
			continue
		}

		text := row[0]
		result := eng.Evaluate(text)

		tags := result.Tags
		if len(tags) > tagCols {
			tags = tags[:tagCols]
		}

		outRow := make([]string, 0, 2+tagCols)
		outRow = append(outRow, text, result.Level.String())
		outRow = append(outRow, tags...)
		for len(outRow) < 2+tagCols {
			outRow = append(outRow, "")
		}
		out.Rows = append(out.Rows, outRow)

		out.Outcomes = append(out.Outcomes, RowOutcome{
			Row:     i + 1,
			Text:    text,
			Level:   result.Level,
			Tags:    tags,
			Matches: result.Matches,
		})
	}

	return out
}

// rewriteHeader keeps the card-text column name, inserts Level, and
// re-sources prior tag-column names. An existing Level column is skipped
// so tagging already-tagged output leaves the header unchanged.
func rewriteHeader(header []string, tagCols int) []string {
	name := "Card text"
	if len(header) > 0 && header[0] != "" {
		name = header[0]
	}

	var prior []string
	if len(header) > 1 {
		prior = header[1:]
		if prior[0] == levelColumn {
			prior = prior[1:]
		}
	}

	out := make([]string, 0, 2+tagCols)
	out = append(out, name, levelColumn)
	for i := 0; i < tagCols; i++ {
		if i < len(prior) {
			out = append(out, prior[i])
		} else {
			out = append(out, "")
		}
	}
	return out
}
