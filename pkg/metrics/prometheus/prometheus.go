package prometheus

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"io"
	"regexp"
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/common/expfmt"
	"github.com/sirupsen/logrus"

	"github.com/Azure/azure-servicefabric-go/pkg/metrics"
)

var invalidNameChars = regexp.MustCompile(`[^a-zA-Z0-9_]`)

// Registry is a metrics.Emitter backed by a Prometheus registry. Gauges
// hold the last value emitted; floats are observed into histograms. The
// label names of a metric are fixed by its first emission, and later
// emissions with different dimensions are dropped.
type Registry struct {
	log       *logrus.Entry
	namespace string
	r         *prometheus.Registry

	mu         sync.Mutex
	gauges     map[string]*vec[*prometheus.GaugeVec]
	histograms map[string]*vec[*prometheus.HistogramVec]
}

type vec[T any] struct {
	labels []string
	v      T
}

var _ metrics.Emitter = (*Registry)(nil)

// New returns a Registry whose metric names are prefixed with namespace.
// If withRuntime is set, the standard Go runtime and process collectors are
// registered too.
func New(log *logrus.Entry, namespace string, withRuntime bool) (*Registry, error) {
	r := &Registry{
		log:        log,
		namespace:  namespace,
		r:          prometheus.NewRegistry(),
		gauges:     map[string]*vec[*prometheus.GaugeVec]{},
		histograms: map[string]*vec[*prometheus.HistogramVec]{},
	}

	if withRuntime {
		if err := r.r.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
			return nil, err
		}

		if err := r.r.Register(collectors.NewGoCollector()); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// EmitGauge sets the gauge m to value.
func (r *Registry) EmitGauge(m string, value int64, dims map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := metricName(m)
	g, ok := r.gauges[name]
	if !ok {
		g = &vec[*prometheus.GaugeVec]{labels: labelNames(dims)}
		g.v = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: r.namespace,
			Name:      name,
			Help:      m,
		}, g.labels)
		if err := r.r.Register(g.v); err != nil {
			r.log.Warnf("registering %s: %v", m, err)
			return
		}
		r.gauges[name] = g
	}

	labels, ok := labelValues(g.labels, dims)
	if !ok {
		r.log.Warnf("dropping %s: unexpected dimensions", m)
		return
	}
	g.v.WithLabelValues(labels...).Set(float64(value))
}

// EmitFloat observes value in the histogram m.
func (r *Registry) EmitFloat(m string, value float64, dims map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := metricName(m)
	h, ok := r.histograms[name]
	if !ok {
		h = &vec[*prometheus.HistogramVec]{labels: labelNames(dims)}
		h.v = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: r.namespace,
			Name:      name,
			Help:      m,
			Buckets:   prometheus.DefBuckets,
		}, h.labels)
		if err := r.r.Register(h.v); err != nil {
			r.log.Warnf("registering %s: %v", m, err)
			return
		}
		r.histograms[name] = h
	}

	labels, ok := labelValues(h.labels, dims)
	if !ok {
		r.log.Warnf("dropping %s: unexpected dimensions", m)
		return
	}
	h.v.WithLabelValues(labels...).Observe(value)
}

// Gatherer returns the underlying registry, for example to serve it with
// promhttp.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.r
}

// WriteText writes the current state of the registry to w in the
// Prometheus text exposition format.
func (r *Registry) WriteText(w io.Writer) error {
	families, err := r.r.Gather()
	if err != nil {
		return err
	}

	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return err
		}
	}

	return nil
}

func metricName(m string) string {
	return invalidNameChars.ReplaceAllString(m, "_")
}

func labelNames(dims map[string]string) []string {
	labels := make([]string, 0, len(dims))
	for k := range dims {
		labels = append(labels, metricName(k))
	}
	sort.Strings(labels)

	return labels
}

func labelValues(labels []string, dims map[string]string) ([]string, bool) {
	if len(labels) != len(dims) {
		return nil, false
	}

	sanitized := make(map[string]string, len(dims))
	for k, v := range dims {
		sanitized[metricName(k)] = v
	}

	values := make([]string, 0, len(labels))
	for _, l := range labels {
		v, ok := sanitized[l]
		if !ok {
			return nil, false
		}
		values = append(values, v)
	}

	return values, true
}
