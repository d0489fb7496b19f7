package cli

import (
	"testing"

	"github.com/alexanderramin/idlewage/internal/teatest"
)

// TestDriver wraps teatest.Driver with access to appModel internals such as
// the view stack and the tracker's focus.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel for app, sets a terminal size and
// drains Init().
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ActiveViewTitle returns the Title() of the top view on the stack.
func (d *TestDriver) ActiveViewTitle() string {
	m := d.appModel()
	if v := m.activeView(); v != nil {
		return v.Title()
	}
	return ""
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// Flash returns the transient message line.
func (d *TestDriver) Flash() string {
	return stripANSI(d.appModel().flash)
}

// Tracker returns the tracker view if it is on top of the stack.
func (d *TestDriver) Tracker() *trackerView {
	m := d.appModel()
	tv, _ := m.activeView().(*trackerView)
	return tv
}

// Log types a duration and description into the tracker and submits both.
func (d *TestDriver) Log(dur, desc string) {
	d.T.Helper()
	tv := d.Tracker()
	if tv == nil {
		d.T.Fatalf("tracker is not the active view")
	}
	if tv.focus == focusList {
		d.PressKey('t')
	}
	d.Type(dur)
	d.PressEnter()
	d.Type(desc)
	d.PressEnter()
}
