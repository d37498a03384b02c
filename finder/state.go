package finder

// State is the position of a Finder in its run.
type State uint8

const (
	// StateInit is before Run.
	StateInit State = iota

	// StateConfirm is while waiting for the operator to approve the run.
	StateConfirm

	// StateClear is while resetting the bitmap for the next primary ID.
	StateClear

	// StatePopulate is while marking the secondary IDs a primary ID reaches.
	StatePopulate

	// StateReport is while emitting the gaps of a primary ID.
	StateReport

	// StateDone is after every primary ID has been reported.
	StateDone

	// StateFailed is after the run was declined or aborted by an error.
	StateFailed
)

// IsRunning reports whether the per-primary loop is in progress.
func (s State) IsRunning() bool {
	switch s {
	case StateClear, StatePopulate, StateReport:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether s can no longer change.
func (s State) IsTerminal() bool {
	switch s {
	case StateDone, StateFailed:
		return true
	default:
		return false
	}
}

func (s State) String() string {
	switch s {
	case StateInit:
		return "StateInit"
	case StateConfirm:
		return "StateConfirm"
	case StateClear:
		return "StateClear"
	case StatePopulate:
		return "StatePopulate"
	case StateReport:
		return "StateReport"
	case StateDone:
		return "StateDone"
	case StateFailed:
		return "StateFailed"
	default:
		return ""
	}
}
