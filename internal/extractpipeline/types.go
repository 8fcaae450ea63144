package extractpipeline

import "time"

// Stage describes a phase of the extraction pipeline.
type Stage string

const (
	// StageLoad is reading and normalizing a source file.
	StageLoad Stage = "load"
	// StageTokenize is lexing the file into tokens.
	StageTokenize Stage = "tokenize"
	// StageExtract is scanning tokens for definition headers.
	StageExtract Stage = "extract"
	// StageRender is reconstructing source text for the captured headers.
	StageRender Stage = "render"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the file is waiting to start.
	StatusQueued Status = "queued"
	// StatusWorking indicates the file is being processed.
	StatusWorking Status = "working"
	// StatusDone indicates the file finished successfully.
	StatusDone Status = "done"
	// StatusError indicates the file failed.
	StatusError Status = "error"
)

// Event reports progress for a file, or for the whole run when File is
// empty.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events.
type ProgressSink interface {
	OnEvent(Event)
}

// Timings holds per-stage durations accumulated across files.
type Timings struct {
	stages map[Stage]time.Duration
}

func (t *Timings) ensure() {
	if t.stages == nil {
		t.stages = make(map[Stage]time.Duration)
	}
}

// Add accumulates a duration for the given stage.
func (t *Timings) Add(stage Stage, dur time.Duration) {
	if t == nil {
		return
	}
	t.ensure()
	t.stages[stage] += dur
}

// Get returns the accumulated duration for a stage.
func (t *Timings) Get(stage Stage) time.Duration {
	if t == nil || t.stages == nil {
		return 0
	}
	return t.stages[stage]
}

// Total sums every stage.
func (t *Timings) Total() time.Duration {
	if t == nil {
		return 0
	}
	var total time.Duration
	for _, d := range t.stages {
		total += d
	}
	return total
}
