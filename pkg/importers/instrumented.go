package importers

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/malhotra1432/rasa-1/pkg/ports"
	"github.com/malhotra1432/rasa-1/pkg/training"
)

// InstrumentedImporter decorates an importer with Prometheus counters and
// latency histograms, labeled by operation.
type InstrumentedImporter struct {
	importer   ports.TrainingDataImporter
	operations *prometheus.CounterVec
	durations  *prometheus.HistogramVec
}

// NewInstrumentedImporter registers the importer metrics on reg and returns
// the decorated importer.
func NewInstrumentedImporter(importer ports.TrainingDataImporter, reg prometheus.Registerer) *InstrumentedImporter {
	operations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "training_importer_operations_total",
			Help: "Total importer operations by result.",
		},
		[]string{"operation", "status"},
	)
	durations := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "training_importer_operation_duration_seconds",
			Help:    "Importer operation latency in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
	reg.MustRegister(operations, durations)

	return &InstrumentedImporter{
		importer:   importer,
		operations: operations,
		durations:  durations,
	}
}

func (i *InstrumentedImporter) GetDomain(ctx context.Context) (training.Domain, error) {
	start := time.Now()
	domain, err := i.importer.GetDomain(ctx)
	i.observe("get_domain", start, err)
	return domain, err
}

func (i *InstrumentedImporter) GetStories(ctx context.Context, opts ...ports.StoryOption) (training.StoryGraph, error) {
	start := time.Now()
	stories, err := i.importer.GetStories(ctx, opts...)
	i.observe("get_stories", start, err)
	return stories, err
}

func (i *InstrumentedImporter) GetConfig(ctx context.Context) (training.Config, error) {
	start := time.Now()
	config, err := i.importer.GetConfig(ctx)
	i.observe("get_config", start, err)
	return config, err
}

func (i *InstrumentedImporter) GetNLUData(ctx context.Context, language string) (training.Data, error) {
	start := time.Now()
	data, err := i.importer.GetNLUData(ctx, language)
	i.observe("get_nlu_data", start, err)
	return data, err
}

func (i *InstrumentedImporter) observe(operation string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	i.operations.WithLabelValues(operation, status).Inc()
	i.durations.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
