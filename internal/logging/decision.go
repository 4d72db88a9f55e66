package logging

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"time"
)

const maxCardPreview = 64

// Decision is written as a single JSON object per classified card.
type Decision struct {
	Timestamp time.Time        `json:"ts"`
	RunID     string           `json:"run_id"`
	File      string           `json:"file"`
	Row       int              `json:"row"`
	Card      string           `json:"card"`
	Level     string           `json:"level"`
	Tags      []string         `json:"tags,omitempty"`
	Matches   []MatchedKeyword `json:"matched_keywords,omitempty"`
}

type MatchedKeyword struct {
	Category string `json:"category"`
	Keyword  string `json:"keyword"`
}

type DecisionLogger struct {
	w io.Writer
}

func NewDecisionLogger(w io.Writer) *DecisionLogger {
	return &DecisionLogger{w: w}
}

func OpenDecisionLog(path string) (*DecisionLogger, func() error, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, err
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, err
	}
	return NewDecisionLogger(file), file.Close, nil
}

func (l *DecisionLogger) Write(decision Decision) error {
	if len(decision.Card) > maxCardPreview {
		decision.Card = decision.Card[:maxCardPreview]
	}

	data, err := json.Marshal(decision)
	if err != nil {
		return err
	}
	_, err = l.w.Write(append(data, '\n'))
	return err
}
