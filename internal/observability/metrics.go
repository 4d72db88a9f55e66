package observability

import (
	"bytes"
	"os"

	"github.com/deckward/deckward/internal/logging"
	"github.com/deckward/deckward/internal/rules"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

type Metrics struct {
	cardsTotal      *prometheus.CounterVec
	flaggedTotal    *prometheus.CounterVec
	categoryMatches *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		cardsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "deckward_cards_total", Help: "Total cards classified"},
			[]string{"file", "level"},
		),
		flaggedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "deckward_cards_flagged_total", Help: "Cards with a non-basic level or any tag"},
			[]string{"file"},
		),
		categoryMatches: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "deckward_category_matches_total", Help: "Total category matches"},
			[]string{"category"},
		),
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.cardsTotal,
		m.flaggedTotal,
		m.categoryMatches,
	)

	return m
}

func (m *Metrics) Observe(decision logging.Decision) {
	if m == nil {
		return
	}

	m.cardsTotal.WithLabelValues(decision.File, decision.Level).Inc()

	if decision.Level != rules.LevelBasic.String() || len(decision.Tags) > 0 {
		m.flaggedTotal.WithLabelValues(decision.File).Inc()
	}

	for _, tag := range decision.Tags {
		m.categoryMatches.WithLabelValues(tag).Inc()
	}
}

// WriteTextfile dumps the registry in the text exposition format for the
// node_exporter textfile collector. A one-shot run has nothing to
// scrape, so the metrics land on disk instead.
func WriteTextfile(reg *prometheus.Registry, path string) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(&buf, family); err != nil {
			return err
		}
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
