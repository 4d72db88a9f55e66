package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSplitDecks(t *testing.T) {
	rows := [][]string{
		{"label", "text"},
		{"Prompt", "  What is _____?  "},
		{"response", "A bad idea", " (obviously) "},
		{"RESPONSE (draft)", "Another card"},
		{"prompt", "   "},
		{"note", "ignored"},
		{"response"},
	}

	decks := SplitDecks(rows)
	if len(decks.Rows) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(decks.Rows))
	}

	prompts := decks.Prompts()
	if !reflect.DeepEqual(prompts, []string{"What is _____?"}) {
		t.Fatalf("unexpected prompts %v", prompts)
	}

	responses := decks.Responses()
	want := []string{"A bad idea (obviously)", "Another card"}
	if !reflect.DeepEqual(responses, want) {
		t.Fatalf("unexpected responses %v", responses)
	}

	if decks.Rows[0].Row != 2 || decks.Rows[0].Kind != KindPrompt {
		t.Fatalf("unexpected first deck row %+v", decks.Rows[0])
	}
}

func TestWriteDeck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.csv")
	if err := WriteDeck(path, []string{"Card one", "Card, with a comma"}); err != nil {
		t.Fatalf("WriteDeck error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read deck: %v", err)
	}
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("parse deck: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Card Text" || rows[0][10] != "Tag10" {
		t.Fatalf("unexpected header %v", rows[0])
	}
	if rows[2][0] != "Card, with a comma" {
		t.Fatalf("unexpected card %v", rows[2])
	}
}

func TestWriteDeckEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := WriteDeck(path, nil); err != nil {
		t.Fatalf("WriteDeck error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no file for an empty deck")
	}
}

func TestReadUnsupportedFormat(t *testing.T) {
	if _, err := Read("deck.numbers"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}
