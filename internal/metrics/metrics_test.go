package metrics_test

import (
	"strings"
	"testing"

	"github.com/Egor213/RosoutDiag/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters_Inc(t *testing.T) {
	reg := prometheus.NewRegistry()
	cnt := metrics.NewCountersWithRegistry(reg)

	cnt.RecordResults.Inc(metrics.ResultPublished)
	cnt.RecordResults.Inc(metrics.ResultPublished)
	cnt.RecordResults.Inc(metrics.ResultFiltered)

	expected := `
# HELP rosout_diagnostics_record_results_total Outcome of processing a rosout record
# TYPE rosout_diagnostics_record_results_total counter
rosout_diagnostics_record_results_total{result="filtered"} 1
rosout_diagnostics_record_results_total{result="published"} 2
`
	err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "rosout_diagnostics_record_results_total")
	require.NoError(t, err)
}

func TestNewTestCounters_Isolated(t *testing.T) {
	first := metrics.NewTestCounters()
	second := metrics.NewTestCounters()

	assert.NotPanics(t, func() {
		first.RecordsReceived.Inc("WARN")
		second.RecordsReceived.Inc("WARN")
		first.ReportsDropped.Inc("queue_full")
	})
}
