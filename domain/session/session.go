// Package session implements the capture session state machine: frames in,
// validated sticker numbers accumulated into a bounded pending list, bulk
// commit out. Transitions happen synchronously on the caller's goroutine;
// one session serves one operator.
package session

import (
	"fmt"
	"image"
	"log/slog"
)

// Transition is the pure state-transition core. Given the current state, the
// attempted action, whether its effect succeeded, and the pending length
// after the action, it returns the next state. Failed actions never change
// state.
func Transition(cur State, act Action, ok bool, pendingLen int) State {
	if !ok {
		return cur
	}
	switch act {
	case ActionDetect:
		if cur == StateFull {
			return cur
		}
		return StateCandidate
	case ActionAccept:
		if pendingLen >= PendingCap {
			return StateFull
		}
		return StateIdle
	case ActionClear, ActionCommit:
		return StateIdle
	default:
		return cur
	}
}

// Session drives one capture workflow against a Recognizer and a Committer.
// Not safe for concurrent use; all methods must run on the same goroutine.
type Session struct {
	albumSize int
	rec       Recognizer
	store     Committer
	logger    *slog.Logger

	state        State
	pending      []int
	candidate    int
	hasCandidate bool
	listeners    []TransitionListener
}

// New returns an idle session with an empty pending list. albumSize is the
// upper bound of valid sticker numbers.
func New(albumSize int, rec Recognizer, store Committer, logger *slog.Logger) *Session {
	return &Session{albumSize: albumSize, rec: rec, store: store, logger: logger, state: StateIdle}
}

// State returns the current machine state.
func (s *Session) State() State { return s.state }

// Pending returns a copy of the pending list.
func (s *Session) Pending() []int {
	out := make([]int, len(s.pending))
	copy(out, s.pending)
	return out
}

// Candidate returns the unconfirmed recognition result, if any.
func (s *Session) Candidate() (int, bool) { return s.candidate, s.hasCandidate }

// AddListener registers a transition listener.
func (s *Session) AddListener(l TransitionListener) {
	if l != nil {
		s.listeners = append(s.listeners, l)
	}
}

// Detect runs the Recognizer on the scan region. A recognized number inside
// [1, albumSize] becomes the candidate, replacing any previous one. Failures
// (recognizer error or out-of-range value) leave state and candidate intact.
// Disabled while the pending list is full.
func (s *Session) Detect(region image.Image) (int, error) {
	if s.state == StateFull {
		return 0, ErrDetectDisabled
	}
	n, err := s.rec.Recognize(region)
	if err != nil {
		s.advance(ActionDetect, false)
		return 0, fmt.Errorf("recognize: %w", err)
	}
	if n < 1 || n > s.albumSize {
		s.advance(ActionDetect, false)
		return 0, fmt.Errorf("recognized %d outside valid range [1, %d]", n, s.albumSize)
	}
	s.candidate = n
	s.hasCandidate = true
	s.advance(ActionDetect, true)
	if s.logger != nil {
		s.logger.Info("sticker detected", "number", n)
	}
	return n, nil
}

// Accept appends the candidate to the pending list and clears it. A no-op
// returning an error when no candidate is set or the list is at capacity.
func (s *Session) Accept() (int, error) {
	if !s.hasCandidate {
		s.advance(ActionAccept, false)
		return 0, ErrNoCandidate
	}
	if len(s.pending) >= PendingCap {
		s.advance(ActionAccept, false)
		return 0, ErrPendingFull
	}
	n := s.candidate
	s.pending = append(s.pending, n)
	s.candidate = 0
	s.hasCandidate = false
	s.advance(ActionAccept, true)
	if s.logger != nil {
		s.logger.Info("sticker accepted", "number", n, "pending", len(s.pending))
	}
	return n, nil
}

// Clear empties the pending list and discards the candidate from any state.
func (s *Session) Clear() {
	s.pending = s.pending[:0]
	s.candidate = 0
	s.hasCandidate = false
	s.advance(ActionClear, true)
	if s.logger != nil {
		s.logger.Info("pending list cleared")
	}
}

// Commit submits the full pending list to the store in one call. On success
// the list empties and the candidate is discarded; on store failure both are
// preserved so the operator can retry. An empty commit succeeds as a no-op.
func (s *Session) Commit() (map[int]int, error) {
	if len(s.pending) == 0 {
		s.advance(ActionCommit, true)
		return map[int]int{}, nil
	}
	committed, err := s.store.Add(s.pending)
	if err != nil {
		s.advance(ActionCommit, false)
		return nil, fmt.Errorf("commit pending list: %w", err)
	}
	count := len(s.pending)
	s.pending = s.pending[:0]
	s.candidate = 0
	s.hasCandidate = false
	s.advance(ActionCommit, true)
	if s.logger != nil {
		s.logger.Info("pending list committed", "count", count)
	}
	return committed, nil
}

func (s *Session) advance(act Action, ok bool) {
	prev := s.state
	next := Transition(prev, act, ok, len(s.pending))
	if next == prev {
		return
	}
	s.state = next
	if s.logger != nil {
		s.logger.Debug("session state transition", "from", prev.String(), "to", next.String(), "action", act.String())
	}
	for _, l := range s.listeners {
		l(prev, next)
	}
}
