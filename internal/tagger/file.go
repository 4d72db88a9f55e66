package tagger

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/deckward/deckward/internal/rules"
)

// TagFile rewrites a card CSV in place. The whole table is read and
// transformed before a single write, so a failed run never leaves a
// partially tagged file behind.
func TagFile(path string, eng *rules.Engine, tagCols int) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("read %s: %w", path, err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("parse %s: %w", path, err)
	}

	table := Transform(rows, eng, tagCols)

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.WriteAll(table.Rows); err != nil {
		return Table{}, fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return Table{}, fmt.Errorf("write %s: %w", path, err)
	}

	return table, nil
}
