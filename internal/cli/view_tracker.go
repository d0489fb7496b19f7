package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/idlewage/internal/cli/formatter"
	"github.com/alexanderramin/idlewage/internal/domain"
	"github.com/alexanderramin/idlewage/internal/duration"
	"github.com/alexanderramin/idlewage/internal/session"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type trackerFocus int

const (
	focusDuration trackerFocus = iota
	focusDescription
	focusList
)

// trackerView is the main screen once setup is done: the rates, inputs for
// the pending activity, quick increments and the activity list.
type trackerView struct {
	state  *SharedState
	dur    textinput.Model
	desc   textinput.Model
	focus  trackerFocus
	cursor int
}

func newTrackerView(state *SharedState) *trackerView {
	dur := textinput.New()
	dur.Prompt = "› "
	dur.Placeholder = "1h 20m, 20:05 or 90"
	dur.CharLimit = 32

	desc := textinput.New()
	desc.Prompt = "› "
	desc.Placeholder = domain.DefaultDescription
	desc.CharLimit = 80

	v := &trackerView{state: state, dur: dur, desc: desc}
	v.syncFromState()
	v.cursor = max(state.App.State.ActivityCount()-1, 0)
	return v
}

func (v *trackerView) Init() tea.Cmd {
	return v.setFocus(focusDuration)
}

// editing reports whether a text input has focus.
func (v *trackerView) editing() bool {
	return v.focus != focusList
}

func (v *trackerView) session() *session.State {
	return v.state.App.State
}

// syncFromState copies the pending activity into the inputs.
func (v *trackerView) syncFromState() {
	s := v.session()
	if s.IdleSeconds() > 0 {
		v.dur.SetValue(s.FormattedIdle())
	} else {
		v.dur.SetValue("")
	}
	if d := s.Description(); d != domain.DefaultDescription {
		v.desc.SetValue(d)
	} else {
		v.desc.SetValue("")
	}
}

func (v *trackerView) setFocus(f trackerFocus) tea.Cmd {
	if v.focus == focusDuration && f != focusDuration {
		// Leaving the duration field normalises what was typed.
		v.session().SetIdleText(v.dur.Value())
		v.syncFromState()
	}
	v.focus = f
	v.dur.Blur()
	v.desc.Blur()
	switch f {
	case focusDuration:
		return v.dur.Focus()
	case focusDescription:
		return v.desc.Focus()
	}
	return nil
}

func (v *trackerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.syncFromState()
		v.clampCursor()
		return v, nil
	case tea.KeyMsg:
		if v.editing() {
			return v, v.updateEditing(msg)
		}
		return v, v.updateList(msg)
	}

	// Cursor blink and other input messages.
	var cmd tea.Cmd
	switch v.focus {
	case focusDuration:
		v.dur, cmd = v.dur.Update(msg)
	case focusDescription:
		v.desc, cmd = v.desc.Update(msg)
	}
	return v, cmd
}

func (v *trackerView) updateEditing(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyTab:
		return v.setFocus((v.focus + 1) % 3)
	case tea.KeyShiftTab:
		return v.setFocus((v.focus + 2) % 3)
	case tea.KeyEsc:
		return v.setFocus(focusList)
	case tea.KeyEnter:
		if v.focus == focusDuration {
			return v.setFocus(focusDescription)
		}
		return v.addActivity()
	}

	var cmd tea.Cmd
	switch v.focus {
	case focusDuration:
		v.dur, cmd = v.dur.Update(msg)
		v.session().SetIdleText(v.dur.Value())
	case focusDescription:
		v.desc, cmd = v.desc.Update(msg)
		v.session().SetDescription(v.desc.Value())
	}
	return cmd
}

func (v *trackerView) updateList(msg tea.KeyMsg) tea.Cmd {
	s := v.session()
	switch msg.String() {
	case "tab", "t":
		return v.setFocus(focusDuration)
	case "shift+tab", "d":
		return v.setFocus(focusDescription)
	case "up", "k":
		v.cursor = max(v.cursor-1, 0)
	case "down", "j":
		v.cursor = min(v.cursor+1, max(s.ActivityCount()-1, 0))
	case "1", "2", "3", "4":
		s.AddIdleSeconds(session.QuickIncrements[msg.Runes[0]-'1'])
		v.syncFromState()
	case "0":
		s.ClearIdle()
		v.syncFromState()
	case "a", "enter":
		return v.addActivity()
	case "x", "delete":
		return v.removeSelected()
	case "C":
		if s.ActivityCount() == 0 {
			return nil
		}
		return pushView(newClearConfirm(v.state))
	case "s":
		s.BackToSetup()
		return replaceView(newSetupWizard(v.state))
	}
	return nil
}

// addActivity logs the pending activity and resets the inputs.
func (v *trackerView) addActivity() tea.Cmd {
	s := v.session()
	if v.focus == focusDuration {
		s.SetIdleText(v.dur.Value())
	}
	secs := s.IdleSeconds()
	earned := s.IdleEarnings()

	added, err := s.AddActivity(context.Background())
	if err != nil {
		return flash(errorLine(err))
	}
	if !added {
		return flash(formatter.Dim("Enter a duration first."))
	}

	acts := s.Activities()
	v.cursor = len(acts) - 1
	v.syncFromState()
	return tea.Batch(
		v.setFocus(focusDuration),
		flash(fmt.Sprintf("%s Logged %s %s %s %s",
			formatter.Check(),
			formatter.Bold(acts[v.cursor].Description),
			duration.Format(secs),
			formatter.Dim("→"),
			formatter.StyleMoney.Render(v.state.App.money(earned)))),
	)
}

func (v *trackerView) removeSelected() tea.Cmd {
	s := v.session()
	acts := s.Activities()
	if v.cursor >= len(acts) {
		return nil
	}
	removed := acts[v.cursor]

	ok, err := s.RemoveActivity(context.Background(), v.cursor)
	if err != nil {
		return flash(errorLine(err))
	}
	if !ok {
		return nil
	}
	v.clampCursor()
	return flash(fmt.Sprintf("%s Removed %s", formatter.Check(), formatter.Bold(removed.Description)))
}

func (v *trackerView) clampCursor() {
	v.cursor = min(v.cursor, max(v.session().ActivityCount()-1, 0))
}

func (v *trackerView) View() string {
	s := v.session()
	app := v.state.App

	var b strings.Builder
	b.WriteString(formatter.FormatRates(app.Currency, s.Rates()))
	b.WriteString("\n\n")

	b.WriteString(v.fieldLabel("Duration", focusDuration) + v.dur.View() + "\n")
	b.WriteString(v.fieldLabel("Description", focusDescription) + v.desc.View() + "\n")
	fmt.Fprintf(&b, "%s%s %s\n",
		strings.Repeat(" ", 13),
		formatter.StyleMoney.Render(app.money(s.IdleEarnings())),
		formatter.Dim("for "+s.FormattedIdle()))
	b.WriteString(formatter.Dim("Quick: 1 +1m  2 +5m  3 +15m  4 +1h  0 reset") + "\n\n")

	selected := -1
	if v.focus == focusList {
		selected = v.cursor
	}
	b.WriteString(activityReport(app, selected))
	return b.String()
}

func (v *trackerView) fieldLabel(label string, f trackerFocus) string {
	padded := fmt.Sprintf("%-13s", label)
	if v.focus == f {
		return formatter.StyleHeader.Render(padded)
	}
	return formatter.Dim(padded)
}

func (v *trackerView) ID() ViewID    { return ViewTracker }
func (v *trackerView) Title() string { return "Tracker" }

func (v *trackerView) ShortHelp() []key.Binding {
	if v.editing() {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next/add")),
			key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "list")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "quick add")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove")),
		key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "setup")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}
