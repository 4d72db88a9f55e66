package spreadsheet

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"regexp"
	"strings"
)

// ODS cells carry plain text only: paragraphs join with newlines, line
// breaks and space elements fold to their text forms, remaining markup
// is dropped.

type odsContent struct {
	Tables []odsTable `xml:"body>spreadsheet>table"`
}

type odsTable struct {
	Rows []odsRow `xml:"table-row"`
}

type odsRow struct {
	Cells []odsCell `xml:"table-cell"`
}

type odsCell struct {
	Repeated   int      `xml:"number-columns-repeated,attr"`
	Paragraphs []odsPar `xml:"p"`
}

type odsPar struct {
	Inner string `xml:",innerxml"`
}

func ReadODS(path string) ([][]string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = zr.Close() }()

	data, err := readZipFile(&zr.Reader, "content.xml")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var doc odsContent
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse content.xml: %w", err)
	}
	if len(doc.Tables) == 0 {
		return nil, fmt.Errorf("no sheets in %s", path)
	}

	sheet := doc.Tables[0]
	rows := make([][]string, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		var cells []string
		for _, cell := range row.Cells {
			text := cellString(cell)
			repeat := cell.Repeated
			// Trailing empties are repeated thousands of times; one is enough.
			if repeat < 1 || text == "" {
				repeat = 1
			}
			for i := 0; i < repeat; i++ {
				cells = append(cells, text)
			}
		}
		for len(cells) > 0 && cells[len(cells)-1] == "" {
			cells = cells[:len(cells)-1]
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

func readZipFile(zr *zip.Reader, name string) ([]byte, error) {
	for _, file := range zr.File {
		if file.Name != name {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer func() { _ = rc.Close() }()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("missing %s", name)
}

var (
	odsSpace = regexp.MustCompile(`<text:s\b[^>]*/>`)
	odsTag   = regexp.MustCompile(`<[^>]+>`)
)

func cellString(cell odsCell) string {
	parts := make([]string, 0, len(cell.Paragraphs))
	for _, p := range cell.Paragraphs {
		inner := p.Inner
		inner = strings.ReplaceAll(inner, "<text:line-break/>", "\n")
		inner = strings.ReplaceAll(inner, "<text:tab/>", "\t")
		inner = odsSpace.ReplaceAllString(inner, " ")
		inner = odsTag.ReplaceAllString(inner, "")
		parts = append(parts, html.UnescapeString(inner))
	}
	return strings.Join(parts, "\n")
}
