package presenter

import (
	"testing"
)

type mockModel struct{ enabled bool }

func (m *mockModel) Enabled() bool     { return m.enabled }
func (m *mockModel) SetEnabled(b bool) { m.enabled = b }

type mockLifecycle struct{ started, stopped int }

func (s *mockLifecycle) Start() { s.started++ }
func (s *mockLifecycle) Stop()  { s.stopped++ }

type mockCaptureView struct {
	reset, editableCalls int
	lastEditable         bool
}

func (v *mockCaptureView) PreviewReset()         { v.reset++ }
func (v *mockCaptureView) ConfigEditable(b bool) { v.editableCalls++; v.lastEditable = b }

func TestCapturePresenter_EnableDisable_Idempotent(t *testing.T) {
	m := &mockModel{}
	svc := &mockLifecycle{}
	view := &mockCaptureView{}
	p := NewCapturePresenter(m, svc, view)

	p.Enable()
	if !m.Enabled() || svc.started != 1 || view.lastEditable || view.editableCalls != 1 {
		t.Fatalf("enable failed: enabled=%v started=%d editableCalls=%d lastEditable=%v", m.Enabled(), svc.started, view.editableCalls, view.lastEditable)
	}
	p.Enable()
	if svc.started != 1 {
		t.Fatalf("enable not idempotent: started=%d", svc.started)
	}

	p.Disable()
	if m.Enabled() || svc.stopped != 1 || view.reset != 1 || !view.lastEditable || view.editableCalls != 2 {
		t.Fatalf("disable failed: enabled=%v stopped=%d reset=%d editableCalls=%d lastEditable=%v", m.Enabled(), svc.stopped, view.reset, view.editableCalls, view.lastEditable)
	}
	p.Disable()
	if svc.stopped != 1 || view.reset != 1 {
		t.Fatalf("disable not idempotent: stopped=%d reset=%d", svc.stopped, view.reset)
	}
}

func TestCapturePresenter_Toggle(t *testing.T) {
	m := &mockModel{}
	svc := &mockLifecycle{}
	view := &mockCaptureView{}
	p := NewCapturePresenter(m, svc, view)
	p.Toggle()
	if !m.Enabled() || svc.started != 1 {
		t.Fatalf("toggle enable failed")
	}
	p.Toggle()
	if m.Enabled() || svc.stopped != 1 || view.reset != 1 {
		t.Fatalf("toggle disable failed")
	}
}
