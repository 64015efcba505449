package store

import "github.com/prometheus/client_golang/prometheus"

var recordsDesc = prometheus.NewDesc(
	"caseboard_store_records",
	"Number of records held per collection",
	[]string{"collection"},
	nil,
)

// Collector exposes record counts of a Store to Prometheus
type Collector struct {
	store *Store
}

// NewCollector returns a collector reading counts from s on every scrape
func NewCollector(s *Store) *Collector {
	return &Collector{store: s}
}

// Describe implements prometheus.Collector
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- recordsDesc
}

// Collect implements prometheus.Collector
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.store.Stats()
	counts := map[string]int{
		"clients":   stats.Clients,
		"cases":     stats.Cases,
		"notes":     stats.Notes,
		"documents": stats.Documents,
	}
	for name, n := range counts {
		ch <- prometheus.MustNewConstMetric(recordsDesc, prometheus.GaugeValue, float64(n), name)
	}
}
