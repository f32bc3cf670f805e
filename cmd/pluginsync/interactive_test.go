package main

import (
	"reflect"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/graph-benchmarks/graph-benchmarks/internal/buildconfig"
)

func TestSplitNames(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{}},
		{"pg", []string{"pg"}},
		{"pg, neo4j", []string{"pg", "neo4j"}},
		{" pg,,neo4j  memgraph ", []string{"pg", "neo4j", "memgraph"}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := splitNames(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitNames(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNamesValidator(t *testing.T) {
	validate := namesValidator(buildconfig.CategoryProviders)
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"", false},
		{"pg, neo4j", false},
		{"pg, pg", true},
		{"../pg", true},
		{"a/b", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := validate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestConfirmModel_keys(t *testing.T) {
	tests := []struct {
		key     tea.KeyMsg
		start   bool
		want    bool
		aborted bool
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}, false, true, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}, true, false, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, true, true, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, true, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			m, _ := confirmModel{title: "ok?", value: tt.start}.Update(tt.key)
			got := m.(confirmModel)
			if got.value != tt.want || got.aborted != tt.aborted {
				t.Errorf("Update(%s) = value %v aborted %v, want %v %v", tt.key, got.value, got.aborted, tt.want, tt.aborted)
			}
		})
	}
}

func TestInputModel_validation(t *testing.T) {
	ti := textinput.New()
	ti.SetValue("pg, pg")
	m := inputModel{textInput: ti, title: "Providers", validate: namesValidator(buildconfig.CategoryProviders)}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := next.(inputModel)
	if got.done {
		t.Error("model should not finish with an invalid answer")
	}
	if got.errMsg == "" {
		t.Error("expected a validation message")
	}
}
