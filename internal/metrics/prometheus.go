package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	AnswersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "placement_bot_answers_total",
			Help: "Answers produced, labelled by pipeline tier",
		},
		[]string{"tier"},
	)

	ResponseDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "placement_bot_response_duration_seconds",
			Help:    "End-to-end response time in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
		},
	)

	ConfidenceScore = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "placement_bot_confidence_score",
			Help:    "Confidence of returned answers",
			Buckets: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
		},
	)

	IndexChunks = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "placement_bot_index_chunks",
			Help: "Chunks in the current retrieval index (0 when retrieval is unavailable)",
		},
	)

	GeneratorRejections = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "placement_bot_generator_rejections_total",
			Help: "Generator completions rejected by the language validator",
		},
	)
)

func Register() {
	prometheus.MustRegister(
		AnswersTotal,
		ResponseDuration,
		ConfidenceScore,
		IndexChunks,
		GeneratorRejections,
	)
}

func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
