package report

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/deckward/deckward/internal/logging"
	"github.com/deckward/deckward/internal/normalize"
	"github.com/deckward/deckward/internal/rules"
)

const (
	maxSamples    = 10
	samplePreview = 55
)

type Summary struct {
	Total         int         `json:"total"`
	Flagged       int         `json:"flagged"`
	Start         time.Time   `json:"start"`
	End           time.Time   `json:"end"`
	Levels        []CountItem `json:"levels"`
	TopCategories []CountItem `json:"top_categories"`
	Samples       []Sample    `json:"samples"`
}

type CountItem struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

type Sample struct {
	Card  string   `json:"card"`
	Level string   `json:"level"`
	Tags  []string `json:"tags,omitempty"`
}

type Reader struct {
	Since time.Time
}

func (r *Reader) Read(path string) ([]logging.Decision, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var decisions []logging.Decision
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var d logging.Decision
		if err := json.Unmarshal([]byte(line), &d); err != nil {
			return nil, err
		}
		if !r.Since.IsZero() && d.Timestamp.Before(r.Since) {
			continue
		}
		decisions = append(decisions, d)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return decisions, nil
}

func Summarize(decisions []logging.Decision) Summary {
	var summary Summary
	if len(decisions) == 0 {
		return summary
	}

	summary.Start = decisions[0].Timestamp
	summary.End = decisions[0].Timestamp

	levelCounts := map[string]int{}
	categoryCounts := map[string]int{}

	for _, d := range decisions {
		summary.Total++
		if d.Timestamp.Before(summary.Start) {
			summary.Start = d.Timestamp
		}
		if d.Timestamp.After(summary.End) {
			summary.End = d.Timestamp
		}

		levelCounts[d.Level]++
		for _, tag := range d.Tags {
			categoryCounts[tag]++
		}

		if !flagged(d) {
			continue
		}
		summary.Flagged++
		if len(summary.Samples) < maxSamples {
			summary.Samples = append(summary.Samples, Sample{
				Card:  normalize.Preview(d.Card, samplePreview),
				Level: d.Level,
				Tags:  append([]string(nil), d.Tags...),
			})
		}
	}

	summary.Levels = levelItems(levelCounts)
	summary.TopCategories = topCounts(categoryCounts, 5)

	return summary
}

func flagged(d logging.Decision) bool {
	return d.Level != rules.LevelBasic.String() || len(d.Tags) > 0
}

// levelItems orders level counts by severity, highest first.
func levelItems(counts map[string]int) []CountItem {
	items := make([]CountItem, 0, len(counts))
	for key, count := range counts {
		items = append(items, CountItem{Key: key, Count: count})
	}
	if len(items) == 0 {
		return nil
	}
	sort.Slice(items, func(i, j int) bool {
		li, _ := rules.ParseLevel(items[i].Key)
		lj, _ := rules.ParseLevel(items[j].Key)
		if li == lj {
			return items[i].Key < items[j].Key
		}
		return li > lj
	})
	return items
}

func topCounts(counts map[string]int, n int) []CountItem {
	items := make([]CountItem, 0, len(counts))
	for key, count := range counts {
		items = append(items, CountItem{Key: key, Count: count})
	}
	if len(items) == 0 {
		return nil
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Key < items[j].Key
		}
		return items[i].Count > items[j].Count
	})

	if len(items) > n {
		items = items[:n]
	}
	return items
}

func RenderText(summary Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Cards: %d\n", summary.Total)
	fmt.Fprintf(&b, "Flagged: %d\n", summary.Flagged)

	writeCounts(&b, "Levels", summary.Levels)
	writeCounts(&b, "Top categories", summary.TopCategories)
	writeSamples(&b, summary.Samples)

	return b.String()
}

func RenderMarkdown(summary Summary) string {
	var b strings.Builder
	b.WriteString("# Deckward Report\n\n")
	b.WriteString("## Totals\n\n")
	fmt.Fprintf(&b, "- Cards: %d\n", summary.Total)
	fmt.Fprintf(&b, "- Flagged: %d\n\n", summary.Flagged)

	writeCountsMarkdown(&b, "Levels", summary.Levels)
	writeCountsMarkdown(&b, "Top categories", summary.TopCategories)

	b.WriteString("## Samples\n\n")
	if len(summary.Samples) == 0 {
		b.WriteString("- none\n")
	}
	for _, sample := range summary.Samples {
		fmt.Fprintf(&b, "- %s -> %s\n", sample.Card, sampleTags(sample))
	}

	return b.String()
}

func RenderJSON(summary Summary) ([]byte, error) {
	return json.MarshalIndent(summary, "", "  ")
}

func writeCounts(b *strings.Builder, title string, items []CountItem) {
	if len(items) == 0 {
		fmt.Fprintf(b, "%s: none\n", title)
		return
	}
	fmt.Fprintf(b, "%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s: %d\n", item.Key, item.Count)
	}
}

func writeCountsMarkdown(b *strings.Builder, title string, items []CountItem) {
	b.WriteString("## ")
	b.WriteString(title)
	b.WriteString("\n\n")
	if len(items) == 0 {
		b.WriteString("- none\n\n")
		return
	}
	for _, item := range items {
		fmt.Fprintf(b, "- %s: %d\n", item.Key, item.Count)
	}
	b.WriteString("\n")
}

func writeSamples(b *strings.Builder, samples []Sample) {
	if len(samples) == 0 {
		b.WriteString("Samples: none\n")
		return
	}
	b.WriteString("Samples:\n")
	for _, sample := range samples {
		fmt.Fprintf(b, "- %s -> %s\n", sample.Card, sampleTags(sample))
	}
}

func sampleTags(sample Sample) string {
	if len(sample.Tags) == 0 {
		return sample.Level
	}
	return sample.Level + " [" + strings.Join(sample.Tags, " ") + "]"
}

func WriteOutput(path string, content []byte) error {
	if path == "" {
		_, err := io.Copy(os.Stdout, bytes.NewReader(content))
		return err
	}
	return os.WriteFile(path, content, 0o600)
}
