package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/deckward/deckward/internal/normalize"
)

const (
	KindPrompt   = "prompt"
	KindResponse = "response"

	deckTagColumns = 10
)

// DeckRow is one extracted card with its source row for progress output.
type DeckRow struct {
	Row  int // 1-based spreadsheet row
	Kind string
	Text string
}

type Decks struct {
	Rows []DeckRow
}

func (d Decks) Prompts() []string   { return d.cards(KindPrompt) }
func (d Decks) Responses() []string { return d.cards(KindResponse) }

func (d Decks) cards(kind string) []string {
	var cards []string
	for _, row := range d.Rows {
		if row.Kind == kind {
			cards = append(cards, row.Text)
		}
	}
	return cards
}

// Read loads a spreadsheet by extension.
func Read(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return ReadXLSX(path)
	case ".ods":
		return ReadODS(path)
	default:
		return nil, fmt.Errorf("unsupported format %q (supported: .xlsx, .ods)", filepath.Ext(path))
	}
}

// SplitDecks routes rows by the label in the first column. Labels vary in
// case and decoration on real sheets, so matching is a loose contains.
// The second column is the card text; a third column, when present, is
// appended. Rows without card text are dropped.
func SplitDecks(rows [][]string) Decks {
	var decks Decks
	for i, row := range rows {
		if len(row) < 2 {
			continue
		}

		label := strings.ToLower(strings.TrimSpace(row[0]))
		text := normalize.SmartStrip(row[1])
		if text == "" {
			continue
		}

		if len(row) > 2 {
			if extra := normalize.SmartStrip(row[2]); extra != "" {
				if strings.HasSuffix(text, "\n") {
					text += extra
				} else {
					text += " " + extra
				}
			}
		}

		switch {
		case strings.Contains(label, KindPrompt):
			decks.Rows = append(decks.Rows, DeckRow{Row: i + 1, Kind: KindPrompt, Text: text})
		case strings.Contains(label, KindResponse):
			decks.Rows = append(decks.Rows, DeckRow{Row: i + 1, Kind: KindResponse, Text: text})
		}
	}
	return decks
}

// WriteDeck writes one card per row under the tagger's input header.
// An empty deck writes nothing.
func WriteDeck(path string, cards []string) error {
	if len(cards) == 0 {
		return nil
	}

	header := make([]string, 0, 1+deckTagColumns)
	header = append(header, "Card Text")
	for i := 1; i <= deckTagColumns; i++ {
		header = append(header, fmt.Sprintf("Tag%d", i))
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, card := range cards {
		if err := writer.Write([]string{card}); err != nil {
			return err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
