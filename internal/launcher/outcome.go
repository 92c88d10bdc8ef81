package launcher

// Phase is a step of a single launch.
type Phase int

const (
	PhaseInit Phase = iota
	PhaseValidating
	PhaseEnsuringContainer
	PhaseExecuting
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "init"
	case PhaseValidating:
		return "validating"
	case PhaseEnsuringContainer:
		return "ensuring-container"
	case PhaseExecuting:
		return "executing"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome classifies how a launch ended.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	// OutcomeInvalidPath means the working directory was rejected before
	// the engine was contacted.
	OutcomeInvalidPath
	OutcomeContainerUnavailable
	OutcomeCommandNotFound
	OutcomeUserCancelled
	// OutcomeToolExited means the tool ran and exited non-zero.
	OutcomeToolExited
	OutcomeUnexpectedError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeInvalidPath:
		return "invalid-path"
	case OutcomeContainerUnavailable:
		return "container-unavailable"
	case OutcomeCommandNotFound:
		return "command-not-found"
	case OutcomeUserCancelled:
		return "user-cancelled"
	case OutcomeToolExited:
		return "tool-exited"
	case OutcomeUnexpectedError:
		return "unexpected-error"
	default:
		return "unknown"
	}
}

// Process exit codes the launcher produces itself. Tool exit codes are
// passed through unchanged.
const (
	ExitSuccess         = 0
	ExitFailure         = 1
	ExitCannotExecute   = 126
	ExitCommandNotFound = 127
	ExitUserCancelled   = 130
)

// Result is the terminal state of a launch.
type Result struct {
	Outcome  Outcome
	ExitCode int
	Err      error
	// Remediation is one concrete next step for the user, if any.
	Remediation string
}
