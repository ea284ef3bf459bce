package view

import (
	"image"
	"log/slog"
	"time"

	"github.com/soocke/sticker-scan-go/config"
	"github.com/soocke/sticker-scan-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level scanner layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	Session     SessionStats
	ConfigPanel ConfigPanel
	CapturePrev CapturePreview

	// Widgets
	StateLabel     *LabelWidget
	CandidateLabel *LabelWidget
	PendingLabel   *LabelWidget
	StatusLabel    *LabelWidget
	captureRow     int
}

// UI abstracts the subset of view operations needed by presenters, enabling
// decoupling from the concrete RootView implementation.
type UI interface {
	SetStateLabel(text string)
	SetConfigEditable(enabled bool)
	UpdateCapture(img image.Image)
	UpdateDetection(img image.Image)
	SetCandidate(text string)
	SetPending(text string)
	SetStatus(text string)
	SetSession(session, total time.Duration)
	PreviewReset()
	ConfigEditable(bool)
}

var _ UI = (*RootView)(nil)

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Handlers bundles the callbacks invoked on user actions. Key bindings for
// the same actions are installed by the app layer.
type Handlers struct {
	ToggleCapture func()
	Detect        func()
	Accept        func()
	Commit        func()
	Clear         func()
	Selection     func()
	Exit          func()
}

// Build constructs the layout.
func (rv *RootView) Build(h Handlers) {
	if rv == nil {
		return
	}
	// Row 0: session stats, state label, buttons frame.
	rv.Session = NewSessionStats(0, 0)
	rv.StateLabel = Label(Txt("State: idle"), Style(theme.StyleStateLabel))
	Grid(rv.StateLabel, Row(0), Column(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	btnFrame := Frame()
	Grid(btnFrame, Row(0), Column(4), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	makeBtn := func(row int, text, style string, cmd func()) {
		b := Button(Txt(text), Style(style), Command(cmd))
		Grid(b, In(btnFrame), Row(row), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	}
	makeBtn(0, "Toggle Capture [S]", theme.StylePrimaryButton, h.ToggleCapture)
	makeBtn(1, "Detect [D]", theme.StylePrimaryButton, h.Detect)
	makeBtn(2, "Accept [N]", theme.StylePrimaryButton, h.Accept)
	makeBtn(3, "Commit [A]", theme.StylePrimaryButton, h.Commit)
	makeBtn(4, "Clear [C]", theme.StyleDangerButton, h.Clear)
	makeBtn(5, "Capture Selection", theme.StylePrimaryButton, h.Selection)
	makeBtn(6, "Exit [Q]", theme.StyleDangerButton, h.Exit)

	// Row 1: candidate and pending list.
	rv.CandidateLabel = Label(Txt("Detected: <none>"), Style(theme.StyleAccentLabel))
	Grid(rv.CandidateLabel, Row(1), Column(0), Columnspan(2), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
	rv.PendingLabel = Label(Txt("Captured: 0/8"))
	Grid(rv.PendingLabel, Row(1), Column(2), Columnspan(2), Sticky("w"), Padx("0.4m"), Pady("0.15m"))

	// Row 2: status line.
	rv.StatusLabel = Label(Txt("Ready. Toggle capture with [S]."), Style(theme.StyleStatusLabel))
	Grid(rv.StatusLabel, Row(2), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.15m"))

	// Config panel rows.
	rv.ConfigPanel = NewConfigPanel(rv.cfg, rv.cfgPath, rv.logger)
	endRow := rv.ConfigPanel.Build(3)
	rv.captureRow = endRow

	// Capture preview placement.
	rv.CapturePrev = NewCapturePreview(rv.captureRow)
}

// SetStateLabel updates the state label text.
func (rv *RootView) SetStateLabel(text string) {
	if rv != nil && rv.StateLabel != nil {
		rv.StateLabel.Configure(Txt(text))
	}
}

// SetConfigEditable toggles config panel editability.
func (rv *RootView) SetConfigEditable(enabled bool) {
	if rv != nil && rv.ConfigPanel != nil {
		rv.ConfigPanel.SetEditable(enabled)
	}
}

// UpdateCapture proxies to the underlying capture preview view.
func (rv *RootView) UpdateCapture(img image.Image) {
	if rv != nil && rv.CapturePrev != nil {
		rv.CapturePrev.UpdateCapture(img)
	}
}

// UpdateDetection proxies to the underlying capture preview view.
func (rv *RootView) UpdateDetection(img image.Image) {
	if rv != nil && rv.CapturePrev != nil {
		rv.CapturePrev.UpdateDetection(img)
	}
}

// SetCandidate updates the detected number label.
func (rv *RootView) SetCandidate(text string) {
	if rv != nil && rv.CandidateLabel != nil {
		rv.CandidateLabel.Configure(Txt(text))
	}
}

// SetPending updates the pending list label.
func (rv *RootView) SetPending(text string) {
	if rv != nil && rv.PendingLabel != nil {
		rv.PendingLabel.Configure(Txt(text))
	}
}

// SetStatus updates the status line.
func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.StatusLabel != nil {
		rv.StatusLabel.Configure(Txt(text))
	}
}

// SetSession updates both session and total scan durations.
func (rv *RootView) SetSession(session, total time.Duration) {
	if rv == nil || rv.Session == nil {
		return
	}
	rv.Session.SetSession(session)
	rv.Session.SetTotal(total)
}

// PreviewReset clears the capture preview labels.
func (rv *RootView) PreviewReset() {
	if rv != nil && rv.CapturePrev != nil {
		rv.CapturePrev.Reset()
	}
}

// ConfigEditable redirects to SetConfigEditable to satisfy the capture
// presenter's view contract.
func (rv *RootView) ConfigEditable(b bool) { rv.SetConfigEditable(b) }
