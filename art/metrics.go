package art

import "github.com/prometheus/client_golang/prometheus"

// metricsSet bundles the counters a Tree reports through when
// constructed with NewTreeWithMetrics. It mirrors the teacher's use of a
// prometheus.Observer per operation (txnkv/transaction/write_intent.go):
// one counter per logical operation plus counters for the node-grow and
// node-shrink transitions of §4.8's state machine. A nil *metricsSet
// (the default from NewTree) makes every call below a no-op.
type metricsSet struct {
	inserts    prometheus.Counter
	lookups    prometheus.Counter
	erases     prometheus.Counter
	nodeGrows  *prometheus.CounterVec
	nodeShrink *prometheus.CounterVec
}

// NewMetrics registers a fresh metricsSet on reg and returns it for use
// with NewTreeWithMetrics. Passing the same registerer twice panics, as
// with any prometheus collector; callers that construct multiple trees
// against one registry should share a single metricsSet.
func NewMetrics(reg prometheus.Registerer) *metricsSet {
	m := &metricsSet{
		inserts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "art",
			Name:      "inserts_total",
			Help:      "Number of Insert calls.",
		}),
		lookups: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "art",
			Name:      "lookups_total",
			Help:      "Number of Lookup and LookupPessimistic calls.",
		}),
		erases: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "art",
			Name:      "erases_total",
			Help:      "Number of Erase calls.",
		}),
		nodeGrows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "art",
			Name:      "node_grows_total",
			Help:      "Number of node promotions, by destination variant.",
		}, []string{"to"}),
		nodeShrink: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "art",
			Name:      "node_shrinks_total",
			Help:      "Number of node demotions, by destination variant.",
		}, []string{"to"}),
	}
	reg.MustRegister(m.inserts, m.lookups, m.erases, m.nodeGrows, m.nodeShrink)
	return m
}

func (m *metricsSet) observeInsert() {
	if m != nil {
		m.inserts.Inc()
	}
}

func (m *metricsSet) observeLookup() {
	if m != nil {
		m.lookups.Inc()
	}
}

func (m *metricsSet) observeErase() {
	if m != nil {
		m.erases.Inc()
	}
}

func (m *metricsSet) observeGrow(to string) {
	if m != nil {
		m.nodeGrows.WithLabelValues(to).Inc()
	}
}

func (m *metricsSet) observeShrink(to string) {
	if m != nil {
		m.nodeShrink.WithLabelValues(to).Inc()
	}
}
