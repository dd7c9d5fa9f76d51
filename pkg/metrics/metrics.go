package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CollectionMetrics records mutation traffic on the shopper collections.
type CollectionMetrics struct {
	mutations       *prometheus.CounterVec
	persistFailures *prometheus.CounterVec
	items           *prometheus.GaugeVec
}

// NewCollectionMetrics registers the collection metrics on the provided
// registerer.
func NewCollectionMetrics(reg prometheus.Registerer) *CollectionMetrics {
	if reg == nil {
		return &CollectionMetrics{}
	}
	mutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "collection_mutations_total",
		Help: "Mutating operations applied to a shopper collection.",
	}, []string{"collection", "op"})
	persistFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "collection_persist_failures_total",
		Help: "Slot writes that failed after a collection mutation.",
	}, []string{"collection"})
	items := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "collection_items",
		Help: "Current number of entries held by a shopper collection.",
	}, []string{"collection"})
	reg.MustRegister(mutations, persistFailures, items)
	return &CollectionMetrics{
		mutations:       mutations,
		persistFailures: persistFailures,
		items:           items,
	}
}

// IncMutation counts one mutating operation on the named collection.
func (c *CollectionMetrics) IncMutation(collection, op string) {
	if c == nil || c.mutations == nil {
		return
	}
	c.mutations.WithLabelValues(normalizeLabel(collection), normalizeLabel(op)).Inc()
}

// IncPersistFailure counts a failed slot write for the named collection.
func (c *CollectionMetrics) IncPersistFailure(collection string) {
	if c == nil || c.persistFailures == nil {
		return
	}
	c.persistFailures.WithLabelValues(normalizeLabel(collection)).Inc()
}

// SetItems records the collection's current entry count.
func (c *CollectionMetrics) SetItems(collection string, count int) {
	if c == nil || c.items == nil {
		return
	}
	c.items.WithLabelValues(normalizeLabel(collection)).Set(float64(count))
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
