package metrics

import "github.com/prometheus/client_golang/prometheus"

//go:generate mockgen -source=metrics.go -destination=../mocks/counters/mock.go -package=countermocks

type Counter interface {
	Inc(labels ...string)
}

const (
	ResultPublished = "published"
	ResultFiltered  = "filtered"
	ResultFailed    = "failed"
)

type Counters struct {
	RecordsReceived Counter
	RecordResults   Counter
	ReportsDropped  Counter
}

type PrometheusCounter struct {
	counter *prometheus.CounterVec
}

func newCounter(name, help string, labels []string) *PrometheusCounter {
	return &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rosout_diagnostics",
			Name:      name,
			Help:      help,
		}, labels),
	}
}

func NewPrometheusCounter(name, help string, labels []string) *PrometheusCounter {
	c := newCounter(name, help, labels)
	prometheus.MustRegister(c.counter)
	return c
}

func (p *PrometheusCounter) Inc(labels ...string) {
	p.counter.WithLabelValues(labels...).Inc()
}

func New() *Counters {
	return &Counters{
		RecordsReceived: NewPrometheusCounter(
			"records_received_total",
			"Number of rosout records received, by severity",
			[]string{"severity"},
		),
		RecordResults: NewPrometheusCounter(
			"record_results_total",
			"Outcome of processing a rosout record",
			[]string{"result"},
		),
		ReportsDropped: NewPrometheusCounter(
			"reports_dropped_total",
			"Diagnostic reports discarded by the outbound queue",
			[]string{"reason"},
		),
	}
}

func NewTestCounters() *Counters {
	return NewCountersWithRegistry(prometheus.NewRegistry())
}

func NewCountersWithRegistry(reg prometheus.Registerer) *Counters {
	received := newCounter("records_received_total", "Number of rosout records received, by severity", []string{"severity"})
	results := newCounter("record_results_total", "Outcome of processing a rosout record", []string{"result"})
	dropped := newCounter("reports_dropped_total", "Diagnostic reports discarded by the outbound queue", []string{"reason"})

	reg.MustRegister(received.counter, results.counter, dropped.counter)

	return &Counters{
		RecordsReceived: received,
		RecordResults:   results,
		ReportsDropped:  dropped,
	}
}
