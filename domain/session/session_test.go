package session

import (
	"errors"
	"image"
	"testing"
)

// stubRecognizer returns scripted readings in order, then repeats the last.
type stubRecognizer struct {
	numbers []int
	err     error
	calls   int
}

func (r *stubRecognizer) Recognize(region image.Image) (int, error) {
	r.calls++
	if r.err != nil {
		return 0, r.err
	}
	if len(r.numbers) == 0 {
		return 0, errors.New("no reading scripted")
	}
	i := r.calls - 1
	if i >= len(r.numbers) {
		i = len(r.numbers) - 1
	}
	return r.numbers[i], nil
}

// memStore counts quantities in memory; failing toggles commit errors.
type memStore struct {
	counts  map[int]int
	failing bool
	adds    int
}

func newMemStore() *memStore { return &memStore{counts: make(map[int]int)} }

func (m *memStore) Add(numbers []int) (map[int]int, error) {
	m.adds++
	if m.failing {
		return nil, errors.New("store unavailable")
	}
	out := make(map[int]int, len(numbers))
	for _, n := range numbers {
		m.counts[n]++
	}
	for _, n := range numbers {
		out[n] = m.counts[n]
	}
	return out, nil
}

var testRegion = image.NewRGBA(image.Rect(0, 0, 10, 10))

func newTestSession(rec Recognizer, store Committer) *Session {
	return New(720, rec, store, nil)
}

func TestSession_DetectAcceptCommitDuplicates(t *testing.T) {
	store := newMemStore()
	s := newTestSession(&stubRecognizer{numbers: []int{7, 7}}, store)

	if n, err := s.Detect(testRegion); err != nil || n != 7 {
		t.Fatalf("detect: n=%d err=%v", n, err)
	}
	if s.State() != StateCandidate {
		t.Fatalf("state after detect = %v", s.State())
	}
	if _, err := s.Accept(); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if s.State() != StateIdle {
		t.Fatalf("state after accept = %v", s.State())
	}
	if _, err := s.Detect(testRegion); err != nil {
		t.Fatalf("second detect: %v", err)
	}
	if _, err := s.Accept(); err != nil {
		t.Fatalf("second accept: %v", err)
	}
	if got := s.Pending(); len(got) != 2 || got[0] != 7 || got[1] != 7 {
		t.Fatalf("pending = %v", got)
	}

	committed, err := s.Commit()
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if committed[7] != 2 || store.counts[7] != 2 {
		t.Fatalf("quantity for 7 = %d (committed %v)", store.counts[7], committed)
	}
	if len(s.Pending()) != 0 || s.State() != StateIdle {
		t.Fatalf("expected empty idle session, pending=%v state=%v", s.Pending(), s.State())
	}
}

func TestSession_PendingNeverExceedsCap(t *testing.T) {
	s := newTestSession(&stubRecognizer{numbers: []int{5}}, newMemStore())
	for i := 0; i < 3*PendingCap; i++ {
		_, _ = s.Detect(testRegion)
		_, _ = s.Accept()
		if n := len(s.Pending()); n > PendingCap {
			t.Fatalf("pending length %d exceeds cap", n)
		}
	}
	if s.State() != StateFull {
		t.Fatalf("state = %v, want full", s.State())
	}
}

func TestSession_DetectDisabledWhenFull(t *testing.T) {
	s := newTestSession(&stubRecognizer{numbers: []int{9}}, newMemStore())
	for i := 0; i < PendingCap; i++ {
		if _, err := s.Detect(testRegion); err != nil {
			t.Fatalf("detect %d: %v", i, err)
		}
		if _, err := s.Accept(); err != nil {
			t.Fatalf("accept %d: %v", i, err)
		}
	}
	if s.State() != StateFull {
		t.Fatalf("state = %v, want full", s.State())
	}
	if _, err := s.Detect(testRegion); !errors.Is(err, ErrDetectDisabled) {
		t.Fatalf("detect at cap: err=%v, want ErrDetectDisabled", err)
	}
	if _, ok := s.Candidate(); ok {
		t.Fatalf("candidate produced while full")
	}
	if _, err := s.Accept(); !errors.Is(err, ErrNoCandidate) {
		t.Fatalf("accept at cap without candidate: err=%v", err)
	}
	if len(s.Pending()) != PendingCap {
		t.Fatalf("pending mutated by refused accept: %v", s.Pending())
	}

	// Commit drains the list and re-enables detect.
	if _, err := s.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if len(s.Pending()) != 0 || s.State() != StateIdle {
		t.Fatalf("post-commit pending=%v state=%v", s.Pending(), s.State())
	}
	if _, err := s.Detect(testRegion); err != nil {
		t.Fatalf("detect after commit: %v", err)
	}
}

func TestSession_AcceptWithoutCandidateIsNoop(t *testing.T) {
	s := newTestSession(&stubRecognizer{numbers: []int{4}}, newMemStore())
	if _, err := s.Accept(); !errors.Is(err, ErrNoCandidate) {
		t.Fatalf("err = %v, want ErrNoCandidate", err)
	}
	if len(s.Pending()) != 0 || s.State() != StateIdle {
		t.Fatalf("session mutated: pending=%v state=%v", s.Pending(), s.State())
	}
}

func TestSession_ClearAlwaysYieldsEmptyIdle(t *testing.T) {
	s := newTestSession(&stubRecognizer{numbers: []int{3}}, newMemStore())
	_, _ = s.Detect(testRegion)
	_, _ = s.Accept()
	_, _ = s.Detect(testRegion)

	s.Clear()
	if len(s.Pending()) != 0 {
		t.Fatalf("pending after clear = %v", s.Pending())
	}
	if _, ok := s.Candidate(); ok {
		t.Fatalf("candidate survived clear")
	}
	if s.State() != StateIdle {
		t.Fatalf("state after clear = %v", s.State())
	}
}

func TestSession_EmptyCommitIsNoopSuccess(t *testing.T) {
	store := newMemStore()
	s := newTestSession(&stubRecognizer{numbers: []int{2}}, store)
	committed, err := s.Commit()
	if err != nil {
		t.Fatalf("empty commit: %v", err)
	}
	if len(committed) != 0 {
		t.Fatalf("committed = %v, want empty", committed)
	}
	if store.adds != 0 {
		t.Fatalf("store touched by empty commit (%d adds)", store.adds)
	}
}

func TestSession_OutOfRangeReadingsAreFailures(t *testing.T) {
	for _, n := range []int{0, 721} {
		s := newTestSession(&stubRecognizer{numbers: []int{n}}, newMemStore())
		if _, err := s.Detect(testRegion); err == nil {
			t.Fatalf("reading %d: expected failure", n)
		}
		if _, ok := s.Candidate(); ok {
			t.Fatalf("reading %d: candidate set", n)
		}
		if s.State() != StateIdle {
			t.Fatalf("reading %d: state = %v", n, s.State())
		}
	}
}

func TestSession_RecognizerErrorLeavesStateUnchanged(t *testing.T) {
	rec := &stubRecognizer{numbers: []int{6}}
	s := newTestSession(rec, newMemStore())
	if _, err := s.Detect(testRegion); err != nil {
		t.Fatalf("detect: %v", err)
	}
	rec.err = errors.New("no number found")
	if _, err := s.Detect(testRegion); err == nil {
		t.Fatalf("expected recognition failure")
	}
	// Previous candidate survives a failed re-detect.
	if n, ok := s.Candidate(); !ok || n != 6 {
		t.Fatalf("candidate = (%d, %v), want (6, true)", n, ok)
	}
	if s.State() != StateCandidate {
		t.Fatalf("state = %v", s.State())
	}
}

func TestSession_RedetectReplacesCandidate(t *testing.T) {
	s := newTestSession(&stubRecognizer{numbers: []int{11, 42}}, newMemStore())
	_, _ = s.Detect(testRegion)
	if _, err := s.Detect(testRegion); err != nil {
		t.Fatalf("re-detect: %v", err)
	}
	if n, _ := s.Candidate(); n != 42 {
		t.Fatalf("candidate = %d, want 42", n)
	}
	if s.State() != StateCandidate {
		t.Fatalf("state = %v", s.State())
	}
}

func TestSession_StoreFailurePreservesPending(t *testing.T) {
	store := newMemStore()
	store.failing = true
	s := newTestSession(&stubRecognizer{numbers: []int{13}}, store)
	_, _ = s.Detect(testRegion)
	_, _ = s.Accept()

	if _, err := s.Commit(); err == nil {
		t.Fatalf("expected commit failure")
	}
	if got := s.Pending(); len(got) != 1 || got[0] != 13 {
		t.Fatalf("pending lost on failed commit: %v", got)
	}

	// Retry succeeds without re-capturing.
	store.failing = false
	committed, err := s.Commit()
	if err != nil {
		t.Fatalf("retry commit: %v", err)
	}
	if committed[13] != 1 {
		t.Fatalf("committed = %v", committed)
	}
}

func TestSession_ListenersSeeTransitions(t *testing.T) {
	s := newTestSession(&stubRecognizer{numbers: []int{1}}, newMemStore())
	var seq []State
	s.AddListener(func(prev, next State) { seq = append(seq, next) })
	_, _ = s.Detect(testRegion)
	_, _ = s.Accept()
	want := []State{StateCandidate, StateIdle}
	if len(seq) != len(want) || seq[0] != want[0] || seq[1] != want[1] {
		t.Fatalf("transitions = %v, want %v", seq, want)
	}
}

func TestTransition_FailedActionsKeepState(t *testing.T) {
	for _, st := range []State{StateIdle, StateCandidate, StateFull} {
		for _, act := range []Action{ActionDetect, ActionAccept, ActionCommit} {
			if next := Transition(st, act, false, 3); next != st {
				t.Fatalf("failed %v in %v moved to %v", act, st, next)
			}
		}
	}
	if Transition(StateFull, ActionClear, true, 0) != StateIdle {
		t.Fatalf("clear from full should idle")
	}
	if Transition(StateCandidate, ActionAccept, true, PendingCap) != StateFull {
		t.Fatalf("accept filling the list should enter full")
	}
}
