package app

import (
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/sticker-scan-go/config"
	"github.com/soocke/sticker-scan-go/debug"
	"github.com/soocke/sticker-scan-go/ui/theme"
	"github.com/soocke/sticker-scan-go/ui/view"
)

const tick = 100 * time.Millisecond

// app owns the Tk main window and drives the presenter update loop.
type app struct {
	container *AppContainer
	afterID   string
	stopDebug func()
}

// NewApp sets up the main window and builds the component container.
func NewApp(title string, width, height int, cfg *config.Config, cfgPath string, logger *slog.Logger) *app {
	a := &app{}
	App.WmTitle(title)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))
	WmProtocol(App, "WM_DELETE_WINDOW", a.exit)

	a.container = BuildContainer(cfg, cfgPath, logger)
	return a
}

// Start builds the UI, installs key bindings and enters the Tk event loop.
// It blocks until the window is closed.
func (a *app) Start() {
	c := a.container
	theme.InitStyles()

	c.RootView.Build(view.Handlers{
		ToggleCapture: c.CapturePresenter.Toggle,
		Detect:        c.ScanPresenter.Detect,
		Accept:        c.ScanPresenter.Accept,
		Commit:        c.ScanPresenter.Commit,
		Clear:         c.ScanPresenter.Clear,
		Selection:     c.Overlay.OpenOrFocus,
		Exit:          a.exit,
	})

	// Keyboard shortcuts mirror the on-screen buttons.
	Bind(App, "<KeyPress-s>", Command(c.CapturePresenter.Toggle))
	Bind(App, "<KeyPress-d>", Command(c.ScanPresenter.Detect))
	Bind(App, "<KeyPress-n>", Command(c.ScanPresenter.Accept))
	Bind(App, "<KeyPress-a>", Command(c.ScanPresenter.Commit))
	Bind(App, "<KeyPress-c>", Command(c.ScanPresenter.Clear))
	Bind(App, "<KeyPress-q>", Command(a.exit))

	c.Loop.Schedule = a.schedule
	a.schedule()

	if c.Config.Debug {
		a.stopDebug = debug.StartRuntimeStats(c.Logger, 10*time.Second)
	}

	App.Wait()
}

// schedule queues the next presenter tick on Tk's event loop thread.
func (a *app) schedule() {
	a.afterID = TclAfter(tick, func() { a.container.Loop.Tick() })
}

func (a *app) exit() {
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
		a.afterID = ""
	}
	if a.stopDebug != nil {
		a.stopDebug()
		a.stopDebug = nil
	}
	if a.container != nil && a.container.CaptureSvc != nil {
		a.container.CaptureSvc.Stop()
	}
	Destroy(App)
}
