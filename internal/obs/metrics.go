package obs

import "sync/atomic"

// Metrics collects lightweight counters for the agent's hot paths. All
// methods are safe for concurrent use and tolerate a nil receiver so wiring
// stays optional in tests.
type Metrics struct {
	cyclesRun         uint64
	cyclesSkipped     uint64
	submissionsOK     uint64
	submissionsFailed uint64
	streamApplied     uint64
	streamErrors      uint64
}

// Snapshot is a point-in-time view of the counters.
type Snapshot struct {
	CyclesRun         uint64
	CyclesSkipped     uint64
	SubmissionsOK     uint64
	SubmissionsFailed uint64
	StreamApplied     uint64
	StreamErrors      uint64
}

// NewMetrics allocates a metrics container.
func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) IncCycleRun() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.cyclesRun, 1)
}

func (m *Metrics) IncCycleSkipped() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.cyclesSkipped, 1)
}

func (m *Metrics) IncSubmissionOK() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.submissionsOK, 1)
}

func (m *Metrics) IncSubmissionFailed() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.submissionsFailed, 1)
}

func (m *Metrics) IncStreamApplied() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.streamApplied, 1)
}

func (m *Metrics) IncStreamError() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.streamErrors, 1)
}

// Snapshot captures the current counter values.
func (m *Metrics) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	return Snapshot{
		CyclesRun:         atomic.LoadUint64(&m.cyclesRun),
		CyclesSkipped:     atomic.LoadUint64(&m.cyclesSkipped),
		SubmissionsOK:     atomic.LoadUint64(&m.submissionsOK),
		SubmissionsFailed: atomic.LoadUint64(&m.submissionsFailed),
		StreamApplied:     atomic.LoadUint64(&m.streamApplied),
		StreamErrors:      atomic.LoadUint64(&m.streamErrors),
	}
}
