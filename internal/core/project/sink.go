package project

// Stage identifies one step of the generation pipeline.
type Stage string

const (
	StageCheckTarget Stage = "check-target"
	StageMaterialize Stage = "materialize"
	StageCopy        Stage = "copy"
	StageDescriptor  Stage = "descriptor"
	StageInstall     Stage = "install"
)

// Stages returns every stage in execution order.
func Stages() []Stage {
	return []Stage{StageCheckTarget, StageMaterialize, StageCopy, StageDescriptor, StageInstall}
}

// Title returns a short human label for the stage.
func (s Stage) Title() string {
	switch s {
	case StageCheckTarget:
		return "Checking target directory"
	case StageMaterialize:
		return "Creating project structure"
	case StageCopy:
		return "Copying template files"
	case StageDescriptor:
		return "Updating package.json"
	case StageInstall:
		return "Installing dependencies"
	default:
		return string(s)
	}
}

// ProgressSink receives stage lifecycle events from the pipeline.
// Every Started is followed by exactly one Succeeded or Failed for the
// same stage. Skipped stages are never Started. A run cancelled between
// stages reports Failed for the next stage without a Started.
type ProgressSink interface {
	Started(stage Stage)
	Succeeded(stage Stage, summary string)
	Failed(stage Stage, err error)
	Skipped(stage Stage, reason string)
}

// NopSink discards all progress events.
type NopSink struct{}

func (NopSink) Started(Stage)           {}
func (NopSink) Succeeded(Stage, string) {}
func (NopSink) Failed(Stage, error)     {}
func (NopSink) Skipped(Stage, string)   {}
