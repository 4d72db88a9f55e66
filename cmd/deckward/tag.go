package main

import (
	"fmt"
	"time"

	"github.com/deckward/deckward/internal/config"
	"github.com/deckward/deckward/internal/logging"
	"github.com/deckward/deckward/internal/observability"
	"github.com/deckward/deckward/internal/report"
	"github.com/deckward/deckward/internal/rules"
	"github.com/deckward/deckward/internal/tagger"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var defaultDeckFiles = []string{"data/prompt_cards.csv", "data/response_cards.csv"}

func newTagCmd() *cobra.Command {
	var configPath string
	var logPath string
	var metricsOut string
	var format string
	var outPath string

	cmd := &cobra.Command{
		Use:   "tag [files...]",
		Short: "Tag card CSV files in place with content levels and warning tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			eng, err := rules.BuildEngine(cfg, cfg.BaseDir())
			if err != nil {
				return err
			}

			files := args
			if len(files) == 0 {
				files = defaultDeckFiles
			}
			if logPath == "" {
				logPath = cfg.ResolvePath(cfg.Logging.DecisionLog)
			}
			if metricsOut == "" {
				metricsOut = cfg.ResolvePath(cfg.Metrics.Textfile)
			}

			var logger *logging.DecisionLogger
			if logPath != "" {
				opened, closer, err := logging.OpenDecisionLog(logPath)
				if err != nil {
					return err
				}
				defer func() { _ = closer() }()
				logger = opened
			}

			var reg *prometheus.Registry
			var metrics *observability.Metrics
			if metricsOut != "" {
				reg = prometheus.NewRegistry()
				metrics = observability.NewMetrics(reg)
			}

			runID := uuid.NewString()
			var decisions []logging.Decision

			for _, file := range files {
				fmt.Fprintf(cmd.OutOrStdout(), "processing %s\n", file)
				table, err := tagger.TagFile(file, eng, cfg.Output.TagColumns)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "tagged %d cards\n", len(table.Outcomes))

				for _, outcome := range table.Outcomes {
					decision := logging.Decision{
						Timestamp: time.Now(),
						RunID:     runID,
						File:      file,
						Row:       outcome.Row,
						Card:      outcome.Text,
						Level:     outcome.Level.String(),
						Tags:      outcome.Tags,
					}
					for _, match := range outcome.Matches {
						decision.Matches = append(decision.Matches, logging.MatchedKeyword{
							Category: match.Category,
							Keyword:  match.Keyword,
						})
					}

					if logger != nil {
						if err := logger.Write(decision); err != nil {
							return err
						}
					}
					metrics.Observe(decision)
					decisions = append(decisions, decision)
				}
			}

			if metrics != nil {
				if err := observability.WriteTextfile(reg, metricsOut); err != nil {
					return err
				}
			}

			summary := report.Summarize(decisions)
			switch format {
			case "", "text":
				return report.WriteOutput(outPath, []byte(report.RenderText(summary)))
			case "md":
				return report.WriteOutput(outPath, []byte(report.RenderMarkdown(summary)))
			case "json":
				data, err := report.RenderJSON(summary)
				if err != nil {
					return err
				}
				return report.WriteOutput(outPath, data)
			default:
				return fmt.Errorf("unknown format %q", format)
			}
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to rules config file (built-in rules when unset)")
	cmd.Flags().StringVar(&logPath, "log", "", "Append per-card decisions to this JSONL file")
	cmd.Flags().StringVar(&metricsOut, "metrics-out", "", "Write textfile-collector metrics to this path")
	cmd.Flags().StringVar(&format, "format", "text", "Summary format: text|md|json")
	cmd.Flags().StringVar(&outPath, "out", "", "Summary output path (default stdout)")

	return cmd
}
