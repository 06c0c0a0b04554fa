package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Saga metric names
const (
	MetricNameSagaExecutions    = "saga_executions_total"
	MetricNameSagaCompensations = "saga_compensations_total"
	MetricNameSagaDuration      = "saga_duration_seconds"
)

// Harvester metric names
const (
	MetricNameEnergyTransfers     = "harvester_energy_transfers_total"
	MetricNameEnergyUnits         = "harvester_energy_units_total"
	MetricNameHarvestersDeployed  = "harvesters_deployed_total"
	MetricNameHarvestersReclaimed = "harvesters_reclaimed_total"
	MetricNameOperationsCreated   = "harvest_operations_created_total"
	MetricNameResourcesCollected  = "harvest_resources_collected_total"
	MetricNameScanCacheLookups    = "scan_cache_lookups_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Saga metric help text
const (
	HelpTextSagaExecutions    = "Total number of saga executions by outcome"
	HelpTextSagaCompensations = "Total number of saga step compensations by outcome"
	HelpTextSagaDuration      = "Saga execution latency in seconds"
)

// Harvester metric help text
const (
	HelpTextEnergyTransfers     = "Total number of energy transfers by direction and outcome"
	HelpTextEnergyUnits         = "Total energy units moved into or out of harvesters"
	HelpTextHarvestersDeployed  = "Total number of harvesters deployed"
	HelpTextHarvestersReclaimed = "Total number of harvesters reclaimed"
	HelpTextOperationsCreated   = "Total number of harvest operations created on deploy"
	HelpTextResourcesCollected  = "Total resource units credited to inventories by collect"
	HelpTextScanCacheLookups    = "Total grid disk cache lookups by result"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelSaga      = "saga"
	LabelStep      = "step"
	LabelOutcome   = "outcome"
	LabelDirection = "direction"
	LabelResource  = "resource"
	LabelResult    = "result"
)

// Label values
const (
	OutcomeSuccess     = "success"
	OutcomeCompensated = "compensated"
	OutcomeFailed      = "failed"

	DirectionAdd      = "add"
	DirectionWithdraw = "withdraw"

	ResultHit  = "hit"
	ResultMiss = "miss"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// SagaLatencyBuckets covers in-transaction sagas, which stay well under a second
var SagaLatencyBuckets = []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1}
