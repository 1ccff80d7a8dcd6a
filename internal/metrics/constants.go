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

// Mining metric names
const (
	MetricNameMiningHits      = "mining_hits_total"
	MetricNameBlocksDestroyed = "blocks_destroyed_total"
	MetricNameBonusCaches     = "bonus_caches_destroyed_total"
	MetricNameTrainingHits    = "training_hits_total"
	MetricNameRebirths        = "rebirths_total"
	MetricNameResourcesSold   = "resources_sold_total"
	MetricNameGoldEarned      = "gold_earned_total"
	MetricNameGemsEarned      = "gems_earned_total"
)

// Session metric names
const (
	MetricNameSessionsLive    = "sessions_live"
	MetricNameSessionsLoaded  = "sessions_loaded_total"
	MetricNameSessionsEvicted = "sessions_evicted_total"
	MetricNameSaveFlushes     = "save_flushes_total"
	MetricNameSaveErrors      = "save_errors_total"
	MetricNameCorruptRecords  = "corrupt_records_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"

	HelpTextMiningHits      = "Total mining hits applied"
	HelpTextBlocksDestroyed = "Total ore blocks destroyed, by resource"
	HelpTextBonusCaches     = "Total bonus caches destroyed"
	HelpTextTrainingHits    = "Total training hits applied"
	HelpTextRebirths        = "Total rebirths purchased"
	HelpTextResourcesSold   = "Total resources sold, by resource"
	HelpTextGoldEarned      = "Total gold credited from sales"
	HelpTextGemsEarned      = "Total gems credited from bonus caches"

	HelpTextSessionsLive    = "Player sessions currently held in memory"
	HelpTextSessionsLoaded  = "Total player sessions loaded from storage"
	HelpTextSessionsEvicted = "Total player sessions evicted from the cache"
	HelpTextSaveFlushes     = "Total dirty-session flushes to storage"
	HelpTextSaveErrors      = "Total failed save attempts"
	HelpTextCorruptRecords  = "Total persisted records that failed validation on load"
)

// Label names
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelWorld    = "world"
	LabelResource = "resource"
)

// HTTPLatencyBuckets covers the expected latency range of hit-path
// endpoints, from sub-millisecond to a few seconds.
var HTTPLatencyBuckets = []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
