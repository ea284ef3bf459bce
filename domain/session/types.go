package session

import (
	"errors"
	"image"
)

// PendingCap bounds the pending list; a capture session accumulates at most
// this many sticker numbers before a commit is required.
const PendingCap = 8

// State enumerates finite states of a capture session.
type State int

const (
	// StateIdle: session active, no candidate awaiting judgment.
	StateIdle State = iota
	// StateCandidate: a detect produced a candidate awaiting accept/re-detect.
	StateCandidate
	// StateFull: pending list reached PendingCap; detect is disabled.
	StateFull
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCandidate:
		return "candidate"
	case StateFull:
		return "full"
	default:
		return "unknown"
	}
}

// Action enumerates the operator actions driving the session.
type Action int

const (
	ActionDetect Action = iota
	ActionAccept
	ActionClear
	ActionCommit
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionDetect:
		return "detect"
	case ActionAccept:
		return "accept"
	case ActionClear:
		return "clear"
	case ActionCommit:
		return "commit"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Recognizer converts the scan region into a sticker number. Implementations
// must be synchronous and free of side effects on session state.
type Recognizer interface {
	Recognize(region image.Image) (int, error)
}

// Committer receives the pending list in one call and increments quantities
// for each submitted number, repeats included. The returned mapping holds
// post-commit quantities of the submitted numbers.
type Committer interface {
	Add(numbers []int) (map[int]int, error)
}

// TransitionListener is called on each state change.
type TransitionListener func(prev, next State)

// Operator-facing no-op and refusal conditions. They never mutate state.
var (
	// ErrNoCandidate: accept with nothing to accept.
	ErrNoCandidate = errors.New("no candidate detected")
	// ErrPendingFull: accept at the pending cap.
	ErrPendingFull = errors.New("pending list is full")
	// ErrDetectDisabled: detect while the pending list is full.
	ErrDetectDisabled = errors.New("detect disabled until commit or clear")
)
