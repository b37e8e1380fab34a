package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"testhelper/internal/domain"
)

func TestPromObserver(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs := NewPromObserver(reg)

	obs.ObserveComparison(domain.Comparison{Passed: true})
	obs.ObserveComparison(domain.Comparison{Passed: true})
	obs.ObserveComparison(domain.Comparison{Passed: false})
	obs.ObserveCase(domain.CaseSummary{Passed: 2})
	obs.ObserveCase(domain.CaseSummary{Failed: 1, Panic: "boom"})

	assert.Equal(t, 2.0, testutil.ToFloat64(obs.comparisonsTotal.WithLabelValues("pass")))
	assert.Equal(t, 1.0, testutil.ToFloat64(obs.comparisonsTotal.WithLabelValues("fail")))
	assert.Equal(t, 1.0, testutil.ToFloat64(obs.casesTotal.WithLabelValues("pass")))
	assert.Equal(t, 1.0, testutil.ToFloat64(obs.casesTotal.WithLabelValues("fail")))
	assert.Equal(t, 1.0, testutil.ToFloat64(obs.panicsTotal))
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs := NewPromObserver(reg)
	obs.ObserveComparison(domain.Comparison{Passed: true})

	path := filepath.Join(t.TempDir(), "testhelper.prom")
	require.NoError(t, WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `testhelper_comparisons_total{outcome="pass"} 1`)
}
