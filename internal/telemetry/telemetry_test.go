package telemetry

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/dtogen/pipeline"
)

func TestRecorder_WriteTextfile(t *testing.T) {
	r := NewRecorder()
	r.ObserveSuccess(&pipeline.Result{
		SchemaCount:   5,
		MissingTypes:  []string{"Gone"},
		LoadTime:      250 * time.Millisecond,
		TranslateTime: 500 * time.Millisecond,
		WriteTime:     250 * time.Millisecond,
		TotalTime:     2 * time.Second,
	}, time.Unix(1714564800, 0))
	r.ObserveFailure(time.Second)

	path := filepath.Join(t.TempDir(), "dtogen.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "# TYPE dtogen_runs_total counter")
	assert.Contains(t, text, `dtogen_runs_total{result="success"} 1`)
	assert.Contains(t, text, `dtogen_runs_total{result="failure"} 1`)
	assert.Contains(t, text, "dtogen_run_duration_seconds 1\n")
	assert.Contains(t, text, `dtogen_stage_duration_seconds{stage="translate"} 0.5`)
	assert.Contains(t, text, "dtogen_schemas 5\n")
	assert.Contains(t, text, "dtogen_manifest_missing_types 1\n")
	assert.Contains(t, text, "dtogen_last_success_timestamp_seconds 1.7145648e+09\n")
}

func TestRecorder_IndependentRegistries(t *testing.T) {
	a := NewRecorder()
	b := NewRecorder()
	a.ObserveFailure(time.Second)

	families, err := b.Registry().Gather()
	require.NoError(t, err)
	for _, mf := range families {
		assert.NotEqual(t, "dtogen_runs_total", mf.GetName(), "counter vec without observations should not be gathered")
	}
}
