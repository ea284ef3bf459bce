package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It calls Tick/ProcessFrame on the sub-presenters and invokes a
// scheduler callback. The zero value is usable (methods are nil-safe).
type Loop struct {
	Session  *SessionPresenter
	Scan     *ScanPresenter
	Schedule func()
}

func NewLoop(sess *SessionPresenter, scan *ScanPresenter, schedule func()) *Loop {
	return &Loop{Session: sess, Scan: scan, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	if l.Session != nil {
		l.Session.Tick(now)
	}
	if l.Scan != nil {
		l.Scan.ProcessFrame()
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
