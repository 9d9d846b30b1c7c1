package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chris-regnier/diarycal/internal/diary"
)

type confirmModel struct {
	prompt    string
	confirmed bool
	done      bool
	theme     Theme
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch strings.ToLower(msg.String()) {
		case "y":
			m.confirmed = true
			m.done = true
			return m, tea.Quit
		case "n", "enter", "esc", "ctrl+c":
			m.confirmed = false
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s",
		m.theme.HeaderStyle().Render(m.prompt),
		m.theme.DangerStyle().Render("[y/N]"),
	) + " "
}

// Confirm shows an interactive confirmation prompt and returns true if the user confirms.
func Confirm(prompt string, theme Theme) (bool, error) {
	m := confirmModel{prompt: prompt, theme: theme}
	p := tea.NewProgram(m)
	result, err := p.Run()
	if err != nil {
		return false, err
	}
	return result.(confirmModel).confirmed, nil
}

// PromptConfirmer is a diary.Confirmer that asks on the terminal.
type PromptConfirmer struct {
	Theme Theme
}

var _ diary.Confirmer = PromptConfirmer{}

// Confirm implements diary.Confirmer.
func (p PromptConfirmer) Confirm(prompt string) (bool, error) {
	return Confirm(prompt, p.Theme)
}
