// Package telemetry records generation runs as Prometheus metrics and writes
// them in the node_exporter textfile format, so batch invocations can be
// scraped after the process has exited.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/erraggy/dtogen/pipeline"
)

// Recorder holds the metrics of one process. Each Recorder owns its registry.
type Recorder struct {
	registry *prometheus.Registry

	RunsTotal            *prometheus.CounterVec
	RunDuration          prometheus.Gauge
	StageDuration        *prometheus.GaugeVec
	Schemas              prometheus.Gauge
	MissingTypes         prometheus.Gauge
	LastSuccessTimestamp prometheus.Gauge
}

// NewRecorder creates a Recorder with every metric registered.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Recorder{
		registry: reg,
		RunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dtogen_runs_total",
				Help: "Total number of generation runs by result.",
			},
			[]string{"result"},
		),
		RunDuration: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "dtogen_run_duration_seconds",
				Help: "Wall time of the most recent generation run.",
			},
		),
		StageDuration: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "dtogen_stage_duration_seconds",
				Help: "Wall time of each stage of the most recent successful run.",
			},
			[]string{"stage"},
		),
		Schemas: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "dtogen_schemas",
				Help: "Number of schema declarations in the most recent models file.",
			},
		),
		MissingTypes: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "dtogen_manifest_missing_types",
				Help: "Number of re-export manifest names not declared in the models file.",
			},
		),
		LastSuccessTimestamp: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "dtogen_last_success_timestamp_seconds",
				Help: "Unix time of the most recent successful run.",
			},
		),
	}
}

// Registry returns the registry the metrics live in.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveSuccess records a successful run.
func (r *Recorder) ObserveSuccess(res *pipeline.Result, now time.Time) {
	r.RunsTotal.WithLabelValues("success").Inc()
	r.RunDuration.Set(res.TotalTime.Seconds())
	r.StageDuration.WithLabelValues("load").Set(res.LoadTime.Seconds())
	r.StageDuration.WithLabelValues("translate").Set(res.TranslateTime.Seconds())
	r.StageDuration.WithLabelValues("write").Set(res.WriteTime.Seconds())
	r.Schemas.Set(float64(res.SchemaCount))
	r.MissingTypes.Set(float64(len(res.MissingTypes)))
	r.LastSuccessTimestamp.Set(float64(now.Unix()))
}

// ObserveFailure records a failed run that took elapsed.
func (r *Recorder) ObserveFailure(elapsed time.Duration) {
	r.RunsTotal.WithLabelValues("failure").Inc()
	r.RunDuration.Set(elapsed.Seconds())
}

// WriteTextfile writes the current metrics to path.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
