// Package metrics holds the client's Prometheus counters. They live on a
// private registry (there is no scrape endpoint) and are read back through
// Snapshot for the REPL "stats" command.
//
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "foorum"

// Label values for AuthAttempt.
const (
	OpLogin  = "login"
	OpSignup = "signup"

	ResultSuccess = "success"
	ResultFailure = "failure"
)

type Metrics struct {
	registry *prometheus.Registry

	// authAttempts counts login/signup outcomes.
	// Labels: op (login|signup), result (success|failure).
	authAttempts *prometheus.CounterVec

	// postsCreated counts posts written through the composer.
	postsCreated prometheus.Counter

	// corruptState counts persisted records that failed to decode and were
	// treated as absent. Label: key.
	corruptState *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		authAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_attempts_total",
			Help:      "Login and signup attempts by outcome.",
		}, []string{"op", "result"}),
		postsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "posts_created_total",
			Help:      "Posts created by this client.",
		}),
		corruptState: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "corrupt_state_total",
			Help:      "Stored records that could not be decoded and were treated as absent.",
		}, []string{"key"}),
	}
	m.registry.MustRegister(m.authAttempts, m.postsCreated, m.corruptState)
	return m
}

func (m *Metrics) AuthAttempt(op, result string) {
	if m == nil {
		return
	}
	m.authAttempts.WithLabelValues(op, result).Inc()
}

func (m *Metrics) PostCreated() {
	if m == nil {
		return
	}
	m.postsCreated.Inc()
}

func (m *Metrics) CorruptState(key string) {
	if m == nil {
		return
	}
	m.corruptState.WithLabelValues(key).Inc()
}

// Sample is one counter value, labels rendered as k="v" pairs.
type Sample struct {
	Name   string
	Labels string
	Value  float64
}

func (s Sample) String() string {
	if s.Labels == "" {
		return fmt.Sprintf("%s %g", s.Name, s.Value)
	}
	return fmt.Sprintf("%s{%s} %g", s.Name, s.Labels, s.Value)
}

// Snapshot gathers every recorded counter, sorted by name then labels.
func (m *Metrics) Snapshot() ([]Sample, error) {
	if m == nil {
		return nil, nil
	}
	families, err := m.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}

	var out []Sample
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			out = append(out, Sample{
				Name:   mf.GetName(),
				Labels: renderLabels(metric.GetLabel()),
				Value:  metric.GetCounter().GetValue(),
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Labels < out[j].Labels
	})
	return out, nil
}

func renderLabels(pairs []*dto.LabelPair) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%q", p.GetName(), p.GetValue()))
	}
	return strings.Join(parts, ",")
}
