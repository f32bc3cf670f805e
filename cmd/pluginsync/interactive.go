package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/graph-benchmarks/graph-benchmarks/internal/buildconfig"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

var errAborted = errors.New("user aborted")

// --- inputModel: bubbletea model for text input with validation ---

type inputModel struct {
	textInput textinput.Model
	title     string
	validate  func(string) error
	errMsg    string
	done      bool
	aborted   bool
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			if m.validate != nil {
				if err := m.validate(m.textInput.Value()); err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
			}
			m.done = true
			return m, tea.Quit
		}
	}
	m.errMsg = ""
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n")
	b.WriteString(m.textInput.View() + "\n")
	if m.errMsg != "" {
		b.WriteString(errStyle.Render(m.errMsg) + "\n")
	}
	return b.String()
}

// --- confirmModel: bubbletea model for yes/no confirmation ---

type confirmModel struct {
	title   string
	value   bool
	done    bool
	aborted bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			m.done = true
			return m, tea.Quit
		case "y", "Y":
			m.value = true
			m.done = true
			return m, tea.Quit
		case "n", "N":
			m.value = false
			m.done = true
			return m, tea.Quit
		case "left", "right", "tab", "h", "l":
			m.value = !m.value
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	yes, no := " Yes ", " No "
	if m.value {
		yes = selectedStyle.Render(yes)
	} else {
		no = selectedStyle.Render(no)
	}
	return fmt.Sprintf("%s %s / %s\n", titleStyle.Render(m.title), yes, no)
}

// --- prompt helpers ---

func promptInput(title, placeholder string, validate func(string) error) (string, error) {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	result, err := tea.NewProgram(inputModel{textInput: ti, title: title, validate: validate}).Run()
	if err != nil {
		return "", err
	}
	rm := result.(inputModel)
	if rm.aborted {
		return "", errAborted
	}
	return rm.textInput.Value(), nil
}

func promptConfirm(title string, def bool) (bool, error) {
	result, err := tea.NewProgram(confirmModel{title: title, value: def}).Run()
	if err != nil {
		return false, err
	}
	rm := result.(confirmModel)
	if rm.aborted {
		return false, errAborted
	}
	return rm.value, nil
}

// splitNames parses a comma or whitespace separated list of plugin names.
func splitNames(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, strings.TrimSpace(f))
	}
	return names
}

// namesValidator checks a prompt answer as one category's name list.
func namesValidator(cat buildconfig.Category) func(string) error {
	return func(s string) error {
		cfg := &buildconfig.Config{}
		cfg.SetNames(cat, splitNames(s))
		return buildconfig.Validate(cfg)
	}
}

// interactiveConfig asks for the provider and driver lists and confirms the
// result before it is written.
func interactiveConfig() (*buildconfig.Config, error) {
	cfg := &buildconfig.Config{}
	for _, cat := range []buildconfig.Category{buildconfig.CategoryProviders, buildconfig.CategoryDrivers} {
		answer, err := promptInput(
			fmt.Sprintf("Enter %s (comma-separated, empty for none)", cat),
			examplePlaceholder(cat),
			namesValidator(cat),
		)
		if err != nil {
			return nil, err
		}
		cfg.SetNames(cat, splitNames(answer))
	}

	fmt.Printf("  → providers: %s\n  → drivers: %s\n", listOrNone(cfg.Providers), listOrNone(cfg.Drivers))
	ok, err := promptConfirm("Write this build config?", true)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errAborted
	}
	return cfg, nil
}

func examplePlaceholder(cat buildconfig.Category) string {
	if cat == buildconfig.CategoryDrivers {
		return "graphx, pregel"
	}
	return "neo4j, postgres"
}

func listOrNone(names []string) string {
	if len(names) == 0 {
		return "(none)"
	}
	return strings.Join(names, ", ")
}
