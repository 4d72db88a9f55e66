package tagger

import (
	"reflect"
	"testing"

	"github.com/deckward/deckward/internal/config"
	"github.com/deckward/deckward/internal/rules"
)

func defaultEngine(t *testing.T) *rules.Engine {
	t.Helper()
	eng, err := rules.BuildEngine(config.Default(), "")
	if err != nil {
		t.Fatalf("build engine: %v", err)
	}
	return eng
}

func TestTransform(t *testing.T) {
	eng := defaultEngine(t)

	rows := [][]string{
		{"Card Text", "Tag1", "Tag2", "Tag3", "Tag4", "Tag5", "Tag6", "Tag7", "Tag8", "Tag9", "Tag10"},
		{"I love my dog"},
		{},
		{"", "stray"},
		{"What the hell is going on"},
	}

	table := Transform(rows, eng, 10)

	if len(table.Rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(table.Rows))
	}

	wantHeader := []string{"Card Text", "Level", "Tag1", "Tag2", "Tag3", "Tag4", "Tag5", "Tag6", "Tag7", "Tag8", "Tag9", "Tag10"}
	if !reflect.DeepEqual(table.Rows[0], wantHeader) {
		t.Fatalf("unexpected header %v", table.Rows[0])
	}

	clean := table.Rows[1]
	if clean[0] != "I love my dog" || clean[1] != "basic" {
		t.Fatalf("unexpected clean row %v", clean)
	}
	for _, cell := range clean[2:] {
		if cell != "" {
			t.Fatalf("expected empty tag columns, got %v", clean)
		}
	}

	flagged := table.Rows[2]
	if flagged[1] != "mild" || flagged[2] != "Profanity" {
		t.Fatalf("unexpected flagged row %v", flagged)
	}
	if len(flagged) != 12 {
		t.Fatalf("expected 12 columns, got %d", len(flagged))
	}

	if len(table.Outcomes) != 2 {
		t.Fatalf("expected 2 outcomes, got %d", len(table.Outcomes))
	}
	if table.Outcomes[1].Level != rules.LevelMild {
		t.Fatalf("unexpected outcome level %v", table.Outcomes[1].Level)
	}
}

func TestTransformIdempotent(t *testing.T) {
	eng := defaultEngine(t)

	rows := [][]string{
		{"Card Text", "Tag1", "Tag2", "Tag3", "Tag4", "Tag5", "Tag6", "Tag7", "Tag8", "Tag9", "Tag10"},
		{"He got drunk and started a fight"},
		{"fuck, they kill people"},
		{"Chicken breast for dinner"},
	}

	first := Transform(rows, eng, 10)
	second := Transform(first.Rows, eng, 10)

	if !reflect.DeepEqual(first.Rows, second.Rows) {
		t.Fatalf("transform is not idempotent:\nfirst:  %v\nsecond: %v", first.Rows, second.Rows)
	}
}

func TestTransformTruncatesTags(t *testing.T) {
	eng := defaultEngine(t)

	table := Transform([][]string{
		{"Card Text"},
		{"fuck kill drugs"},
	}, eng, 2)

	row := table.Rows[1]
	if len(row) != 4 {
		t.Fatalf("expected 4 columns with tagCols=2, got %v", row)
	}
	if row[2] != "Profanity" || row[3] != "Violence" {
		t.Fatalf("expected first two tags kept, got %v", row)
	}
	if row[1] != "severe" {
		t.Fatalf("expected severe even with truncated tags, got %v", row)
	}
}

func TestRewriteHeader(t *testing.T) {
	got := rewriteHeader([]string{"Card Text", "Tag1", "Tag2"}, 3)
	want := []string{"Card Text", "Level", "Tag1", "Tag2", ""}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	// An already tagged header must come back unchanged.
	again := rewriteHeader(got, 3)
	if !reflect.DeepEqual(again, got) {
		t.Fatalf("header rewrite not idempotent: %v -> %v", got, again)
	}

	got = rewriteHeader(nil, 2)
	want = []string{"Card text", "Level", "", ""}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected default header %v, got %v", want, got)
	}
}

func TestTransformEmptyInput(t *testing.T) {
	table := Transform(nil, defaultEngine(t), 10)
	if len(table.Rows) != 0 || len(table.Outcomes) != 0 {
		t.Fatalf("expected empty table, got %v", table)
	}
}
