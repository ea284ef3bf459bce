package presenter

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"strconv"
	"strings"

	"github.com/soocke/sticker-scan-go/capture"
	"github.com/soocke/sticker-scan-go/config"
	"github.com/soocke/sticker-scan-go/domain/session"
	"github.com/soocke/sticker-scan-go/ui/model"
)

// SessionControl narrows what the presenter needs from the capture session.
type SessionControl interface {
	Detect(region image.Image) (int, error)
	Accept() (int, error)
	Clear()
	Commit() (map[int]int, error)
	State() session.State
	Pending() []int
	Candidate() (int, bool)
}

// ScanView describes the UI surface updated by the presenter.
type ScanView interface {
	UpdateCapture(img image.Image)
	UpdateDetection(img image.Image)
	SetStateLabel(text string)
	SetCandidate(text string)
	SetPending(text string)
	SetStatus(text string)
}

// ScanPresenter maps the five operator actions onto the capture session and
// reflects session state into the view. All methods run on the UI thread.
type ScanPresenter struct {
	Enabled func() bool
	Source  capture.FrameSource
	Session SessionControl
	View    ScanView
	Config  *config.Config
	Model   *model.ROIModel
	logger  *slog.Logger

	lastPreviewSeq uint64
}

// NewScanPresenter constructs a scan presenter.
func NewScanPresenter(enabled func() bool, source capture.FrameSource, sess SessionControl, view ScanView, cfg *config.Config, roi *model.ROIModel, logger *slog.Logger) *ScanPresenter {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &ScanPresenter{Enabled: enabled, Source: source, Session: sess, View: view, Config: cfg, Model: roi, logger: logger}
}

// ProcessFrame refreshes the live preview with the latest captured frame.
func (p *ScanPresenter) ProcessFrame() {
	if p == nil || p.Enabled == nil || p.Source == nil || p.View == nil {
		return
	}
	if !p.Enabled() || !p.Source.Running() {
		return
	}
	snapshot := p.Source.LatestFrame()
	if snapshot.Image == nil || snapshot.Sequence == p.lastPreviewSeq {
		return
	}
	p.lastPreviewSeq = snapshot.Sequence
	p.View.UpdateCapture(snapshot.Image)
}

// Detect runs recognition on the centered scan rectangle of the latest
// frame, falling back to the full enhanced frame when the rectangle yields
// nothing.
func (p *ScanPresenter) Detect() {
	if p == nil || p.Session == nil || p.View == nil || p.Source == nil {
		return
	}
	snapshot := p.Source.LatestFrame()
	frame := snapshot.Image
	if frame == nil {
		p.View.SetStatus("No frame available. Enable capture first.")
		return
	}
	p.View.SetStatus("Processing...")

	roi, rect, err := capture.CenterROI(frame, p.Config.ROIFraction)
	if err != nil {
		p.report(fmt.Errorf("extract scan region: %w", err))
		return
	}
	if p.Model != nil {
		p.Model.SetRect(rect)
	}
	enhanced := capture.EnhanceForOCR(roi)
	p.View.UpdateDetection(enhanced)

	n, err := p.Session.Detect(enhanced)
	if err != nil && !errors.Is(err, session.ErrDetectDisabled) {
		// The centered rectangle missed; try the whole frame once.
		n, err = p.Session.Detect(capture.EnhanceForOCR(frame))
	}
	if err != nil {
		if errors.Is(err, session.ErrDetectDisabled) {
			p.View.SetStatus("Pending list full. Commit [A] or clear [C] first.")
		} else {
			p.View.SetStatus("No number detected. Adjust lighting or position.")
			if p.logger != nil {
				p.logger.Info("detection failed", "error", err)
			}
		}
		p.refresh()
		return
	}
	p.View.SetStatus(fmt.Sprintf("Detected sticker number %d. Accept with [N].", n))
	p.refresh()
}

// Accept confirms the candidate into the pending list.
func (p *ScanPresenter) Accept() {
	if p == nil || p.Session == nil || p.View == nil {
		return
	}
	n, err := p.Session.Accept()
	switch {
	case errors.Is(err, session.ErrNoCandidate):
		p.View.SetStatus("No number detected to add. Use [D] to detect first.")
	case errors.Is(err, session.ErrPendingFull):
		p.View.SetStatus(fmt.Sprintf("Maximum of %d numbers captured. Commit [A] or clear [C].", session.PendingCap))
	case err != nil:
		p.report(err)
	default:
		p.View.SetStatus(fmt.Sprintf("Added %d to pending list (%d/%d).", n, len(p.Session.Pending()), session.PendingCap))
	}
	p.refresh()
}

// Commit submits the pending list to the collection store.
func (p *ScanPresenter) Commit() {
	if p == nil || p.Session == nil || p.View == nil {
		return
	}
	pending := p.Session.Pending()
	committed, err := p.Session.Commit()
	if err != nil {
		p.View.SetStatus("Commit failed; pending list kept. Retry with [A].")
		if p.logger != nil {
			p.logger.Error("commit failed", "error", err)
		}
		p.refresh()
		return
	}
	if len(pending) == 0 {
		p.View.SetStatus("Nothing pending to commit.")
	} else {
		p.View.SetStatus(fmt.Sprintf("Committed %d sticker(s) to the collection.", len(pending)))
		if p.logger != nil {
			p.logger.Info("scan commit", "count", len(pending), "quantities", committed)
		}
	}
	p.refresh()
}

// Clear empties the pending list and discards the candidate.
func (p *ScanPresenter) Clear() {
	if p == nil || p.Session == nil || p.View == nil {
		return
	}
	p.Session.Clear()
	if p.Model != nil {
		p.Model.SetRect(image.Rectangle{})
	}
	p.View.SetStatus("Cleared pending list.")
	p.refresh()
}

// refresh pushes candidate, pending list and state to the view.
func (p *ScanPresenter) refresh() {
	if n, ok := p.Session.Candidate(); ok {
		p.View.SetCandidate(fmt.Sprintf("Detected: %d", n))
	} else {
		p.View.SetCandidate("Detected: <none>")
	}
	pending := p.Session.Pending()
	p.View.SetPending(formatPending(pending))
	p.View.SetStateLabel("State: " + p.Session.State().String())
}

func formatPending(pending []int) string {
	if len(pending) == 0 {
		return fmt.Sprintf("Captured: 0/%d", session.PendingCap)
	}
	parts := make([]string, 0, len(pending))
	for _, n := range pending {
		parts = append(parts, strconv.Itoa(n))
	}
	return fmt.Sprintf("Captured: %d/%d  [%s]", len(pending), session.PendingCap, strings.Join(parts, ", "))
}

func (p *ScanPresenter) report(err error) {
	if err == nil {
		return
	}
	p.View.SetStatus(err.Error())
	if p.logger != nil {
		p.logger.Error("scan", "error", err)
	}
}
