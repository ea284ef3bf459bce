package app

import (
	"log/slog"

	"github.com/soocke/sticker-scan-go/capture"
	"github.com/soocke/sticker-scan-go/collection"
	"github.com/soocke/sticker-scan-go/config"
	"github.com/soocke/sticker-scan-go/domain/session"
	"github.com/soocke/sticker-scan-go/recognize"
	"github.com/soocke/sticker-scan-go/ui/model"
	"github.com/soocke/sticker-scan-go/ui/presenter"
	"github.com/soocke/sticker-scan-go/ui/view"
)

// AppContainer assembles models, services, presenters and the root view.
type AppContainer struct {
	Config     *config.Config
	Logger     *slog.Logger
	Capture    *model.CaptureModel
	Session    *model.SessionModel
	ROI        *model.ROIModel
	Store      *collection.Store
	Scan       *session.Session
	CaptureSvc capture.Service
	Overlay    view.SelectionOverlay
	RootView   *view.RootView
	UI         view.UI

	// Presenters
	SessionPresenter *presenter.SessionPresenter
	ScanPresenter    *presenter.ScanPresenter
	CapturePresenter *presenter.CapturePresenter
	Loop             *presenter.Loop
}

// BuildContainer constructs all components. The capture service is created
// stopped; the capture presenter starts it on demand. The update loop's
// Schedule callback is wired by the app wrapper once the Tk event loop exists.
func BuildContainer(cfg *config.Config, cfgPath string, logger *slog.Logger) *AppContainer {
	c := &AppContainer{Config: cfg, Logger: logger}
	c.Capture = &model.CaptureModel{}
	c.Session = model.NewSessionModel()
	c.ROI = model.NewROIModel()

	c.Store = collection.NewStore(cfg.CollectionFile, logger)
	rec := recognize.NewTesseractRecognizer(cfg.OCRLanguage, logger)
	c.Scan = session.New(cfg.AlbumSize, rec, c.Store, logger)

	c.Overlay = view.NewSelectionOverlay(cfg, cfgPath, logger)
	c.CaptureSvc = capture.NewService(logger, c.Overlay.ActiveRect)

	c.RootView = view.NewRootView(cfg, cfgPath, logger)
	c.UI = c.RootView

	c.CapturePresenter = presenter.NewCapturePresenter(c.Capture, c.CaptureSvc, c.RootView)
	c.ScanPresenter = presenter.NewScanPresenter(c.Capture.Enabled, c.CaptureSvc, c.Scan, c.RootView, cfg, c.ROI, logger)
	c.SessionPresenter = presenter.NewSessionPresenter(c.Session, c.Capture, c.RootView)
	c.Loop = presenter.NewLoop(c.SessionPresenter, c.ScanPresenter, nil)
	return c
}
