package obs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := NewMetrics()
	m.IncCycleRun()
	m.IncCycleRun()
	m.IncCycleSkipped()
	m.IncSubmissionOK()
	m.IncSubmissionFailed()
	m.IncStreamApplied()
	m.IncStreamError()

	snapshot := m.Snapshot()
	assert.Equal(t, uint64(2), snapshot.CyclesRun)
	assert.Equal(t, uint64(1), snapshot.CyclesSkipped)
	assert.Equal(t, uint64(1), snapshot.SubmissionsOK)
	assert.Equal(t, uint64(1), snapshot.SubmissionsFailed)
	assert.Equal(t, uint64(1), snapshot.StreamApplied)
	assert.Equal(t, uint64(1), snapshot.StreamErrors)
}

func TestMetricsNilReceiver(t *testing.T) {
	var m *Metrics
	m.IncCycleRun()
	m.IncStreamError()
	assert.Equal(t, Snapshot{}, m.Snapshot())
}
