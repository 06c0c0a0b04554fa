package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Saga Metrics
var (
	SagaExecutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSagaExecutions,
			Help: HelpTextSagaExecutions,
		},
		[]string{LabelSaga, LabelOutcome},
	)

	SagaCompensations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSagaCompensations,
			Help: HelpTextSagaCompensations,
		},
		[]string{LabelSaga, LabelStep, LabelOutcome},
	)

	SagaDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameSagaDuration,
			Help:    HelpTextSagaDuration,
			Buckets: SagaLatencyBuckets,
		},
		[]string{LabelSaga},
	)
)

// Business Metrics
var (
	EnergyTransfers = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEnergyTransfers,
			Help: HelpTextEnergyTransfers,
		},
		[]string{LabelDirection, LabelOutcome},
	)

	EnergyUnits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEnergyUnits,
			Help: HelpTextEnergyUnits,
		},
		[]string{LabelDirection},
	)

	HarvestersDeployed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHarvestersDeployed,
			Help: HelpTextHarvestersDeployed,
		},
	)

	HarvestersReclaimed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHarvestersReclaimed,
			Help: HelpTextHarvestersReclaimed,
		},
	)

	OperationsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameOperationsCreated,
			Help: HelpTextOperationsCreated,
		},
	)

	ResourcesCollected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameResourcesCollected,
			Help: HelpTextResourcesCollected,
		},
		[]string{LabelResource},
	)

	ScanCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameScanCacheLookups,
			Help: HelpTextScanCacheLookups,
		},
		[]string{LabelResult},
	)
)
