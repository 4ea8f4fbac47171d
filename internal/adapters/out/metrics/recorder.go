// Package metrics exports port activity to Prometheus.
package metrics

import (
	"errors"
	"strconv"

	"seaport/internal/adapters/out/postgres"
	"seaport/internal/core/domain/model/operation"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder implements postgres.CommitObserver and collects HTTP and capacity
// figures.
type Recorder struct {
	writes      *prometheus.CounterVec
	requests    *prometheus.CounterVec
	efficiency  prometheus.Histogram
	berths      prometheus.Gauge
	berthsInUse prometheus.Gauge
	utilization prometheus.Gauge
}

// NewRecorder registers the port collectors on reg, or on the default
// registerer when reg is nil. Collectors that are already registered are
// reused.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	writes, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "seaport_aggregate_writes_total",
		Help: "Aggregates written by committed transactions",
	}, []string{"kind"}))
	if err != nil {
		return nil, err
	}
	requests, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "seaport_http_requests_total",
		Help: "HTTP requests by route and status code",
	}, []string{"route", "code"}))
	if err != nil {
		return nil, err
	}
	efficiency, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "seaport_operation_efficiency",
		Help:    "Efficiency scores of completed cargo operations",
		Buckets: []float64{25, 50, 75, 90, 100, 110, 125, 150, 200},
	}))
	if err != nil {
		return nil, err
	}
	berths, err := register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "seaport_berths_total",
		Help: "Registered berths",
	}))
	if err != nil {
		return nil, err
	}
	berthsInUse, err := register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "seaport_berths_in_use",
		Help: "Berths holding a vessel",
	}))
	if err != nil {
		return nil, err
	}
	utilization, err := register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "seaport_berth_utilization_percent",
		Help: "Share of berths holding a vessel",
	}))
	if err != nil {
		return nil, err
	}

	return &Recorder{
		writes:      writes,
		requests:    requests,
		efficiency:  efficiency,
		berths:      berths,
		berthsInUse: berthsInUse,
		utilization: utilization,
	}, nil
}

// Committed counts the aggregates of a committed unit of work and observes
// the efficiency of operations it completed.
func (r *Recorder) Committed(aggregates []postgres.TrackedAggregate) {
	for _, a := range aggregates {
		r.writes.WithLabelValues(a.Kind).Inc()

		op, ok := a.Aggregate.(*operation.Operation)
		if ok && op.Status() == operation.Completed {
			r.efficiency.Observe(op.Efficiency())
		}
	}
}

// RecordRequest counts one HTTP request.
func (r *Recorder) RecordRequest(route string, code int) {
	r.requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

// RecordCapacity publishes a port capacity snapshot.
func (r *Recorder) RecordCapacity(totalBerths int, inUse int64, utilization float64) {
	r.berths.Set(float64(totalBerths))
	r.berthsInUse.Set(float64(inUse))
	r.utilization.Set(utilization)
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return c, err
		}
		existing, ok := are.ExistingCollector.(C)
		if !ok {
			return c, err
		}
		return existing, nil
	}
	return c, nil
}
