package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"testhelper/internal/domain"
)

const namespace = "testhelper"

const (
	outcomePass = "pass"
	outcomeFail = "fail"
)

// PromObserver counts comparisons and finished cases by outcome
type PromObserver struct {
	comparisonsTotal *prometheus.CounterVec
	casesTotal       *prometheus.CounterVec
	panicsTotal      prometheus.Counter
}

// NewPromObserver registers the counters on reg
func NewPromObserver(reg prometheus.Registerer) *PromObserver {
	return &PromObserver{
		comparisonsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "comparisons_total",
				Help:      "number of expected-vs-actual comparisons by outcome (pass, fail)",
			},
			[]string{"outcome"},
		),
		casesTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cases_total",
				Help:      "number of finished test cases by outcome (pass, fail)",
			},
			[]string{"outcome"},
		),
		panicsTotal: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "panics_total",
				Help:      "number of test cases that panicked",
			},
		),
	}
}

// ObserveComparison implements reporter.Observer
func (p *PromObserver) ObserveComparison(c domain.Comparison) {
	p.comparisonsTotal.WithLabelValues(outcome(c.Passed)).Inc()
}

// ObserveCase implements reporter.Observer
func (p *PromObserver) ObserveCase(s domain.CaseSummary) {
	p.casesTotal.WithLabelValues(outcome(s.OK())).Inc()
	if s.Panic != "" {
		p.panicsTotal.Inc()
	}
}

// WriteTextfile writes every metric gathered from g in the text exposition
// format, for node_exporter's textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

func outcome(ok bool) string {
	if ok {
		return outcomePass
	}
	return outcomeFail
}
