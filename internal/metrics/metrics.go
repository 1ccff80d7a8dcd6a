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

// Mining Metrics
var (
	MiningHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMiningHits,
			Help: HelpTextMiningHits,
		},
		[]string{LabelWorld},
	)

	BlocksDestroyed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBlocksDestroyed,
			Help: HelpTextBlocksDestroyed,
		},
		[]string{LabelWorld, LabelResource},
	)

	BonusCachesDestroyed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBonusCaches,
			Help: HelpTextBonusCaches,
		},
		[]string{LabelWorld},
	)

	TrainingHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTrainingHits,
			Help: HelpTextTrainingHits,
		},
		[]string{LabelWorld},
	)

	Rebirths = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRebirths,
			Help: HelpTextRebirths,
		},
	)

	ResourcesSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameResourcesSold,
			Help: HelpTextResourcesSold,
		},
		[]string{LabelResource},
	)

	GoldEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGoldEarned,
			Help: HelpTextGoldEarned,
		},
	)

	GemsEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGemsEarned,
			Help: HelpTextGemsEarned,
		},
	)
)

// Session Metrics
var (
	SessionsLive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSessionsLive,
			Help: HelpTextSessionsLive,
		},
	)

	SessionsLoaded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionsLoaded,
			Help: HelpTextSessionsLoaded,
		},
	)

	SessionsEvicted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionsEvicted,
			Help: HelpTextSessionsEvicted,
		},
	)

	SaveFlushes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSaveFlushes,
			Help: HelpTextSaveFlushes,
		},
	)

	SaveErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSaveErrors,
			Help: HelpTextSaveErrors,
		},
	)

	CorruptRecords = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCorruptRecords,
			Help: HelpTextCorruptRecords,
		},
	)
)
