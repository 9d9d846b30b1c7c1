package ui

import (
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chris-regnier/diarycal/internal/diary"
	"github.com/chris-regnier/diarycal/internal/entry"
	"github.com/chris-regnier/diarycal/internal/storage"
)

// focusArea is the pane receiving key presses.
type focusArea int

const (
	focusCalendar focusArea = iota
	focusEditor
)

// Editor pane limits
const (
	minEditorWidth  = 30
	minEditorHeight = 5
	sideBySideWidth = 80
)

// AppConfig configures the interactive calendar.
type AppConfig struct {
	Theme       Theme
	MondayFirst bool
	Logger      *log.Logger
	Now         func() time.Time // defaults to time.Now
}

// appModel is the Bubble Tea model for the calendar diary. It is used by
// pointer so the controller can hold it as its diary.Display.
type appModel struct {
	ctrl *diary.Controller
	cfg  AppConfig

	selected   time.Time
	today      time.Time
	highlights map[string]bool
	editor     textarea.Model
	focus      focusArea

	// loaded is the stored text last put in the editor and shown is what
	// the textarea made of it; the textarea rewrites tabs as spaces.
	loaded string
	shown  string

	confirm    *confirmModel // non-nil while the remove prompt is open
	helpActive bool

	status    string
	statusErr bool

	width  int
	height int
}

var _ diary.Display = (*appModel)(nil)

func newAppModel(store storage.Store, cfg AppConfig) *appModel {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard, "", 0)
	}

	ta := textarea.New()
	ta.Placeholder = "No entry for this day."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetWidth(minEditorWidth)
	ta.SetHeight(minEditorHeight + 5)

	today := entry.Day(cfg.Now())
	m := &appModel{
		cfg:        cfg,
		selected:   today,
		today:      today,
		highlights: map[string]bool{},
		editor:     ta,
		focus:      focusCalendar,
	}
	m.ctrl = diary.New(store, m, diary.WithLogger(cfg.Logger))
	return m
}

// SelectedDate implements diary.Display.
func (m *appModel) SelectedDate() time.Time { return m.selected }

// Text implements diary.Display. An unedited buffer yields the stored text
// as loaded.
func (m *appModel) Text() string {
	if v := m.editor.Value(); v != m.shown {
		return v
	}
	return m.loaded
}

// SetText implements diary.Display.
func (m *appModel) SetText(text string) {
	m.editor.SetValue(text)
	m.loaded = text
	m.shown = m.editor.Value()
}

// ClearHighlights implements diary.Display.
func (m *appModel) ClearHighlights() { m.highlights = map[string]bool{} }

// Highlight implements diary.Display.
func (m *appModel) Highlight(date time.Time) { m.highlights[entry.FormatDate(date)] = true }

// ReportError implements diary.Display.
func (m *appModel) ReportError(err error) {
	m.status = "Error: " + err.Error()
	m.statusErr = true
}

// ReportStatus implements diary.Display.
func (m *appModel) ReportStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *appModel) Init() tea.Cmd {
	m.ctrl.RecomputeHighlights()
	m.ctrl.OnDateSelected(m.selected)
	return nil
}

func (m *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		if m.helpActive {
			switch msg.String() {
			case "?", "esc", "q":
				m.helpActive = false
			}
			return m, nil
		}
		if m.confirm != nil {
			return m.updateConfirm(msg)
		}

		// Commands available from either pane
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+a":
			m.ctrl.OnAdd()
			return m, nil
		case "ctrl+u":
			m.ctrl.OnUpdate()
			return m, nil
		case "ctrl+s":
			m.ctrl.OnSave()
			return m, nil
		case "ctrl+r":
			m.confirm = &confirmModel{prompt: diary.RemovePrompt, theme: m.cfg.Theme}
			return m, nil
		}

		if m.focus == focusEditor {
			return m.updateEditor(msg)
		}
		return m.updateCalendar(msg)
	}

	if m.focus == focusEditor {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *appModel) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "?":
		m.helpActive = true
	case "left", "h":
		m.selectDate(m.selected.AddDate(0, 0, -1))
	case "right", "l":
		m.selectDate(m.selected.AddDate(0, 0, 1))
	case "up", "k":
		m.selectDate(m.selected.AddDate(0, 0, -7))
	case "down", "j":
		m.selectDate(m.selected.AddDate(0, 0, 7))
	case "[", "pgup":
		m.selectDate(addMonths(m.selected, -1))
	case "]", "pgdown":
		m.selectDate(addMonths(m.selected, 1))
	case "t":
		m.selectDate(m.today)
	case "tab", "enter", "i":
		m.focus = focusEditor
		return m, m.editor.Focus()
	}
	return m, nil
}

func (m *appModel) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "tab":
		m.focus = focusCalendar
		m.editor.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	updated, _ := m.confirm.Update(msg)
	answer := updated.(confirmModel)
	if !answer.done {
		return m, nil
	}
	m.confirm = nil
	m.ctrl.OnRemove(diary.ConfirmFunc(func(string) (bool, error) { return answer.confirmed, nil }))
	return m, nil
}

// selectDate moves the selection and loads that day's entry.
func (m *appModel) selectDate(d time.Time) {
	m.selected = entry.Day(d)
	m.ctrl.OnDateSelected(m.selected)
}

func (m *appModel) layout() {
	w, h := m.editorSize()
	m.editor.SetWidth(w)
	m.editor.SetHeight(h)
}

// editorSize fits the text pane next to (or under) the calendar.
func (m *appModel) editorSize() (int, int) {
	calWidth := cellWidth*7 + 4
	w, h := m.width-4, m.height-20
	if m.width >= sideBySideWidth {
		w, h = m.width-calWidth-6, m.height-6
	}
	return max(w, minEditorWidth), max(h, minEditorHeight)
}

func (m *appModel) View() string {
	t := m.cfg.Theme

	if m.helpActive {
		return m.helpView()
	}

	cal := t.RenderMonth(MonthView{
		Month:       m.selected,
		Selected:    m.selected,
		Today:       m.today,
		Highlights:  m.highlights,
		MondayFirst: m.cfg.MondayFirst,
	})
	calPane := t.BorderStyle(m.focus == focusCalendar).Render(cal)

	label := "Entry for " + entry.FormatDate(m.selected)
	if m.highlights[entry.FormatDate(m.selected)] {
		label += " •"
	}
	editorPane := t.BorderStyle(m.focus == focusEditor).Render(
		t.HeaderStyle().Render(label) + "\n" + m.editor.View(),
	)

	var body string
	if m.width >= sideBySideWidth {
		body = lipgloss.JoinHorizontal(lipgloss.Top, calPane, " ", editorPane)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, calPane, editorPane)
	}

	return body + "\n" + m.statusLine() + "\n" + m.hintLine()
}

func (m *appModel) statusLine() string {
	t := m.cfg.Theme
	if m.confirm != nil {
		return m.confirm.View()
	}
	if m.statusErr {
		return t.DangerStyle().Render(m.status)
	}
	return t.AccentStyle().Render(m.status)
}

func (m *appModel) hintLine() string {
	if m.focus == focusEditor {
		return m.cfg.Theme.HelpStyle().Render("esc calendar · ctrl+a add · ctrl+u update · ctrl+s save · ctrl+r remove")
	}
	return m.cfg.Theme.HelpStyle().Render("←→↑↓ day/week · [ ] month · t today · tab edit · ? help · q quit")
}

func (m *appModel) helpView() string {
	t := m.cfg.Theme
	rows := [][2]string{
		{"←/h →/l", "previous / next day"},
		{"↑/k ↓/j", "previous / next week"},
		{"[ ]", "previous / next month"},
		{"t", "jump to today"},
		{"tab, enter", "edit the entry text"},
		{"esc", "back to the calendar"},
		{"ctrl+a", "add an entry for the selected day"},
		{"ctrl+u", "update the selected day's entry"},
		{"ctrl+s", "save (add or update)"},
		{"ctrl+r", "remove the selected day's entry"},
		{"q, ctrl+c", "quit"},
	}
	var b strings.Builder
	b.WriteString(t.HeaderStyle().Render("Keys") + "\n\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "  %s  %s\n", t.AccentStyle().Width(12).Render(r[0]), r[1])
	}
	b.WriteString("\n" + t.HelpStyle().Render("? or esc to close"))
	return t.BorderStyle(true).Render(b.String())
}

// RunApp launches the interactive calendar diary.
func RunApp(store storage.Store, cfg AppConfig) error {
	m := newAppModel(store, cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
