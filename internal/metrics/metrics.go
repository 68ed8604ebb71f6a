// Package metrics exports simulation counters to Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records board activity. It satisfies session.Recorder.
type Collector struct {
	generations prometheus.Counter
	population  prometheus.Gauge
	edits       *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		generations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "life",
			Name:      "generations_total",
			Help:      "Number of generations stepped.",
		}),
		population: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "life",
			Name:      "population",
			Help:      "Alive cells after the last change to the board.",
		}),
		edits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "life",
			Name:      "edits_total",
			Help:      "User edits to the board by kind.",
		}, []string{"kind"}),
	}
	for _, col := range []prometheus.Collector{c.generations, c.population, c.edits} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Stepped records one generation and the resulting population.
func (c *Collector) Stepped(population int) {
	c.generations.Inc()
	c.population.Set(float64(population))
}

// Edited records a user edit of the given kind ("paint", "randomize", "clear")
// and the population afterwards.
func (c *Collector) Edited(kind string, population int) {
	c.edits.WithLabelValues(kind).Inc()
	c.population.Set(float64(population))
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
