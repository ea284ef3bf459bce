package capture

import (
	"image"
	"log/slog"
	"sync/atomic"
	"time"
)

const (
	statsLogInterval = 5 * time.Second
	// frameInterval paces the grab loop; the scanner preview does not need
	// more than ~30 frames per second.
	frameInterval = 33 * time.Millisecond
)

// Service continuously grabs the configured screen region (or the full
// screen when no selection is set) and exposes the latest frame alongside
// instrumentation data. Use NewService to construct an instance.
type Service interface {
	FrameSource
	Lifecycle
	SetSelectionProvider(func() *image.Rectangle)
	Stats() Stats
}

type service struct {
	running      atomic.Bool
	latest       atomic.Pointer[FrameSnapshot]
	selFn        func() *image.Rectangle
	logger       *slog.Logger
	captures     atomic.Uint64
	skipped      atomic.Uint64
	captureNanos atomic.Uint64
	sequence     atomic.Uint64
}

// NewService constructs a frame service. selectionFn may return nil to
// capture the full screen.
func NewService(logger *slog.Logger, selectionFn func() *image.Rectangle) Service {
	return &service{selFn: selectionFn, logger: logger}
}

func (s *service) SetSelectionProvider(fn func() *image.Rectangle) { s.selFn = fn }

func (s *service) LatestFrame() FrameSnapshot {
	snap := s.latest.Load()
	if snap == nil {
		return FrameSnapshot{}
	}
	return *snap
}

func (s *service) Running() bool { return s.running.Load() }

func (s *service) Stats() Stats {
	captures := s.captures.Load()
	total := s.captureNanos.Load()
	var avg time.Duration
	if captures > 0 && total > 0 {
		avg = time.Duration(total / captures)
	}
	snapshot := s.LatestFrame()
	age := time.Duration(0)
	if !snapshot.CapturedAt.IsZero() {
		age = time.Since(snapshot.CapturedAt)
	}
	return Stats{
		Captures:       captures,
		Skipped:        s.skipped.Load(),
		AvgCapture:     avg,
		LastCapture:    snapshot.CapturedAt,
		LatestFrameAge: age,
		Sequence:       snapshot.Sequence,
	}
}

func (s *service) Start() {
	if s.running.Load() {
		return
	}
	s.running.Store(true)
	go s.loop()
}

func (s *service) Stop() {
	if !s.running.Load() {
		return
	}
	s.running.Store(false)
}

func (s *service) loop() {
	logTicker := time.NewTicker(statsLogInterval)
	defer logTicker.Stop()
	for s.running.Load() {
		start := time.Now()
		var img *image.RGBA

		if s.selFn != nil {
			if r := s.selFn(); r != nil && !r.Empty() {
				if out, err := GrabSelection(*r); err == nil {
					img = out
				} else if s.logger != nil {
					s.logger.Error("capture selection", "error", err)
				}
			}
		}

		if img == nil {
			if full, err := Grab(); err != nil {
				if s.logger != nil {
					s.logger.Error("capture full", "error", err)
				}
			} else {
				img = full
			}
		}

		if img == nil {
			s.skipped.Add(1)
			time.Sleep(frameInterval)
			continue
		}

		elapsed := time.Since(start)
		s.captureNanos.Add(uint64(elapsed.Nanoseconds()))
		s.captures.Add(1)
		seq := s.sequence.Add(1)
		s.latest.Store(&FrameSnapshot{Image: img, CapturedAt: time.Now(), Sequence: seq})

		select {
		case <-logTicker.C:
			s.logStats()
		default:
		}

		if elapsed < frameInterval {
			time.Sleep(frameInterval - elapsed)
		}
	}
}

func (s *service) logStats() {
	if s.logger == nil {
		return
	}
	stats := s.Stats()
	s.logger.Debug("capture.stats",
		"captures", stats.Captures,
		"skipped", stats.Skipped,
		"avg_capture", stats.AvgCapture,
		"age", stats.LatestFrameAge,
	)
}
