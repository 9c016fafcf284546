// Package metrics records what happened during a run in a private
// Prometheus registry: which steps ran, which errors were reported and the
// series values that were computed.
package metrics

import (
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "snippets"

// Recorder owns the run's collectors.
type Recorder struct {
	registry *prometheus.Registry
	steps    *prometheus.CounterVec
	errors   *prometheus.CounterVec
	series   *prometheus.GaugeVec
}

// NewRecorder creates a Recorder with its own registry, so recorders never
// collide with each other or with the default registerer.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Number of demo steps run.",
		}, []string{"step"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_reported_total",
			Help:      "Number of errors reported, by step and error kind.",
		}, []string{"step", "kind"}),
		series: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "series_value",
			Help:      "Last computed harmonic series value, by method.",
		}, []string{"method"}),
	}
	r.registry.MustRegister(r.steps, r.errors, r.series)
	return r
}

var _ prometheus.Gatherer = (*Recorder)(nil)

// Gather implements prometheus.Gatherer over the recorder's registry.
func (r *Recorder) Gather() ([]*dto.MetricFamily, error) {
	return r.registry.Gather()
}

// StepRun counts one execution of step.
func (r *Recorder) StepRun(step string) {
	r.steps.WithLabelValues(step).Inc()
}

// ErrorReported counts one reported error of kind during step.
func (r *Recorder) ErrorReported(step, kind string) {
	r.errors.WithLabelValues(step, kind).Inc()
}

// SeriesValue records the series value computed by method.
func (r *Recorder) SeriesValue(method string, v float64) {
	r.series.WithLabelValues(method).Set(v)
}

// Sample is one gathered metric value.
type Sample struct {
	Name   string
	Labels map[string]string
	Value  float64
}

// LabelString renders labels as k="v" pairs sorted by key.
func (s Sample) LabelString() string {
	keys := make([]string, 0, len(s.Labels))
	for k := range s.Labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+`="`+s.Labels[k]+`"`)
	}
	return strings.Join(parts, ",")
}

// Snapshot gathers every counter and gauge in the registry.
func (r *Recorder) Snapshot() ([]Sample, error) {
	families, err := r.Gather()
	if err != nil {
		return nil, err
	}
	var samples []Sample
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			s := Sample{Name: mf.GetName(), Labels: make(map[string]string, len(m.GetLabel()))}
			for _, lp := range m.GetLabel() {
				s.Labels[lp.GetName()] = lp.GetValue()
			}
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				s.Value = m.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				s.Value = m.GetGauge().GetValue()
			default:
				continue
			}
			samples = append(samples, s)
		}
	}
	return samples, nil
}
