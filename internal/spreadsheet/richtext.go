package spreadsheet

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// runsToMarkdown flattens rich text runs into markdown. Underline has no
// markdown form, so it stays as an HTML tag.
func runsToMarkdown(runs []excelize.RichTextRun) string {
	var b strings.Builder
	for _, run := range runs {
		b.WriteString(decorate(run.Text, run.Font))
	}
	return b.String()
}

func decorate(text string, font *excelize.Font) string {
	if font == nil || text == "" {
		return text
	}
	if font.Bold {
		text = "**" + text + "**"
	}
	if font.Italic {
		text = "*" + text + "*"
	}
	if font.Underline != "" && font.Underline != "none" {
		text = "<u>" + text + "</u>"
	}
	return text
}
