package cli

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/idlewage/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// idlewageHuhTheme returns a custom huh theme using the Gruvbox palette.
func idlewageHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// setupFields holds form-bound values for the setup wizard.
type setupFields struct {
	salary string
	days   string
	hours  string
}

// newSetupWizard creates the salary and schedule form. Fields start from the
// session's current schedule so returning to setup keeps earlier answers.
func newSetupWizard(state *SharedState) View {
	cfg := state.App.State.Config()
	f := &setupFields{
		days:  strconv.Itoa(cfg.WorkingDaysPerMonth),
		hours: formatNumber(cfg.WorkingHoursPerDay),
	}
	if cfg.MonthlySalary > 0 {
		f.salary = formatNumber(cfg.MonthlySalary)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Monthly Salary (%s)", state.App.Currency)).
				Placeholder("3000").
				Value(&f.salary).
				Validate(validateSalary),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Working Days per Month").
				Placeholder("26").
				Value(&f.days).
				Validate(validateNumber),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Working Hours per Day").
				Placeholder("8").
				Value(&f.hours).
				Validate(validateNumber),
		),
	).WithTheme(idlewageHuhTheme()).WithShowHelp(false)

	wv := newWizardView(state, "Setup", form, func() tea.Cmd {
		return applySetup(state, f)
	})
	wv.cancel = func() tea.Cmd { return resumeTracker(state) }
	return wv
}

// applySetup writes the wizard answers into the session and opens the
// tracker. Blank answers keep the current value.
func applySetup(state *SharedState, f *setupFields) tea.Cmd {
	s := state.App.State
	cfg := s.Config()
	s.SetMonthlySalary(parseNumber(f.salary, cfg.MonthlySalary))
	s.SetWorkingDays(parseNumber(f.days, float64(cfg.WorkingDaysPerMonth)))
	s.SetWorkingHours(parseNumber(f.hours, cfg.WorkingHoursPerDay))
	return resumeTracker(state)
}

// resumeTracker completes setup with the current schedule and swaps the
// wizard for the tracker. An incomplete schedule reopens the wizard.
func resumeTracker(state *SharedState) tea.Cmd {
	ok, err := state.App.State.CompleteSetup(context.Background())
	if err != nil {
		return tea.Batch(flash(errorLine(err)), replaceView(newSetupWizard(state)))
	}
	if !ok {
		return tea.Batch(
			flash(formatter.StyleYellow.Render("Enter a monthly salary above zero to continue.")),
			replaceView(newSetupWizard(state)),
		)
	}
	return replaceView(newTrackerView(state))
}

// newClearConfirm asks before deleting every logged activity.
func newClearConfirm(state *SharedState) View {
	n := state.App.State.ActivityCount()
	confirmed := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Clear %d %s?", n, pluralize(n, "activity", "activities"))).
				Affirmative("Clear").
				Negative("Keep").
				Value(&confirmed),
		),
	).WithTheme(idlewageHuhTheme()).WithShowHelp(false)

	return newWizardView(state, "Clear", form, func() tea.Cmd {
		if !confirmed {
			return flash(formatter.Dim("Kept all activities."))
		}
		if err := state.App.State.ClearActivities(context.Background()); err != nil {
			return flash(errorLine(err))
		}
		return flash(fmt.Sprintf("%s Cleared %d %s", formatter.Check(), n, pluralize(n, "activity", "activities")))
	})
}

func errorLine(err error) string {
	return formatter.StyleRed.Render("Error: " + err.Error())
}

// parseNumber parses s as a float, returning fallback if s is blank or not
// a number. Used after form validation, so fallback only covers blanks.
func parseNumber(s string, fallback float64) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return v
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// validateNumber accepts empty or a finite number.
func validateNumber(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.New("enter a number")
	}
	return nil
}

// validateSalary requires a number above zero.
func validateSalary(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("enter your monthly salary")
	}
	if err := validateNumber(s); err != nil {
		return err
	}
	if v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64); v <= 0 {
		return errors.New("salary must be above zero")
	}
	return nil
}
