package driver

// Stage is a step of the per-file pipeline, reported to progress observers.
type Stage uint8

const (
	StageQueued Stage = iota
	StageExtract
	StageParse
	StageRender
	StageReinject
	StageVerify
	StageDone
	StageFailed
)

var stageNames = [...]string{
	StageQueued:   "queued",
	StageExtract:  "extract",
	StageParse:    "parse",
	StageRender:   "render",
	StageReinject: "reinject",
	StageVerify:   "verify",
	StageDone:     "done",
	StageFailed:   "failed",
}

func (s Stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return "unknown"
}

// Final reports whether no further events follow for the file.
func (s Stage) Final() bool {
	return s == StageDone || s == StageFailed
}

// ProgressEvent describes one stage boundary of one file in a batch.
type ProgressEvent struct {
	Path    string
	Stage   Stage
	Changed bool
	Cached  bool
	Err     error
}

// ProgressFunc receives batch progress; it is called from worker goroutines.
type ProgressFunc func(ProgressEvent)
