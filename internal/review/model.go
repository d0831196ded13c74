// Package review is the terminal UI reviewers use to fill the
// GENERO_VALIDADO column of a review sheet.
package review

import (
	"fmt"
	"path/filepath"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/genero/internal/names"
	"github.com/abhisek/genero/internal/sampling"
	"github.com/abhisek/genero/internal/ui/components"
	"github.com/abhisek/genero/internal/ui/layout"
	"github.com/abhisek/genero/internal/ui/theme"
)

// SaveFunc persists sheet at path.
type SaveFunc func(sheet *sampling.Sheet, path string) error

func saveSheet(sheet *sampling.Sheet, path string) error {
	return sheet.Save(path)
}

// Lines of the content area not used by table rows: progress bar, blank
// line, table header, blank line, status line.
const chromeLines = 5

// Model is the root Bubble Tea model of the review UI.
type Model struct {
	sheet *sampling.Sheet
	path  string
	save  SaveFunc
	keys  keyMap

	search    textinput.Model
	searching bool
	showHelp  bool

	cursor int
	offset int
	width  int
	height int

	dirty       bool
	confirmQuit bool
	status      string
	statusErr   bool
}

// New returns a model editing sheet, saved back to path.
func New(sheet *sampling.Sheet, path string) Model {
	ti := textinput.New()
	ti.Prompt = "find: "
	ti.Placeholder = "name"
	ti.CharLimit = 64

	return Model{
		sheet:  sheet,
		path:   path,
		save:   saveSheet,
		keys:   defaultKeys(),
		search: ti,
	}
}

// WithSaver replaces how the sheet is persisted.
func (m Model) WithSaver(f SaveFunc) Model {
	m.save = f
	return m
}

// Sheet returns the sheet being edited.
func (m Model) Sheet() *sampling.Sheet { return m.sheet }

// Cursor returns the index of the selected entry.
func (m Model) Cursor() int { return m.cursor }

// Dirty reports whether there are unsaved labels.
func (m Model) Dirty() bool { return m.dirty }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scroll()
		return m, nil

	case tea.KeyPressMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		if m.dirty && !m.confirmQuit {
			m.confirmQuit = true
			m.setStatus("Unsaved labels. Press q again to discard them or s to save.", true)
			return m, nil
		}
		return m, tea.Quit
	}
	m.confirmQuit = false

	n := len(m.sheet.Entries)
	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keys.Up):
		m.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.move(1)
	case key.Matches(msg, m.keys.PageUp):
		m.move(-m.pageSize())
	case key.Matches(msg, m.keys.PageDown):
		m.move(m.pageSize())
	case key.Matches(msg, m.keys.Top):
		m.move(-n)
	case key.Matches(msg, m.keys.Bottom):
		m.move(n)
	case key.Matches(msg, m.keys.Masculine):
		m.label(string(names.Masculine))
	case key.Matches(msg, m.keys.Feminine):
		m.label(string(names.Feminine))
	case key.Matches(msg, m.keys.Unknown):
		m.label(string(names.Unknown))
	case key.Matches(msg, m.keys.Accept):
		if e := m.current(); e != nil {
			m.label(e.Predicted)
		}
	case key.Matches(msg, m.keys.Clear):
		if e := m.current(); e != nil && e.Validated != "" {
			e.Validated = ""
			m.dirty = true
		}
	case key.Matches(msg, m.keys.NextOpen):
		m.nextOpen()
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.SetValue("")
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Save):
		m.persist()
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.CancelEdit):
		m.searching = false
		m.search.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		m.searching = false
		m.search.Blur()
		m.find(m.search.Value())
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m *Model) current() *sampling.Entry {
	if m.cursor < 0 || m.cursor >= len(m.sheet.Entries) {
		return nil
	}
	return &m.sheet.Entries[m.cursor]
}

func (m *Model) move(delta int) {
	if len(m.sheet.Entries) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.sheet.Entries)-1)
	m.scroll()
}

// label sets the current entry's label and advances to the next entry.
func (m *Model) label(v string) {
	e := m.current()
	if e == nil {
		return
	}
	if e.Validated != v {
		e.Validated = v
		m.dirty = true
	}
	m.status = ""
	m.move(1)
}

func (m *Model) nextOpen() {
	n := len(m.sheet.Entries)
	for i := 1; i <= n; i++ {
		j := (m.cursor + i) % n
		if strings.TrimSpace(m.sheet.Entries[j].Validated) == "" {
			m.cursor = j
			m.scroll()
			m.status = ""
			return
		}
	}
	m.setStatus("Every entry is labelled.", false)
}

// find moves to the next entry, after the cursor and wrapping, whose name
// contains query once both are normalized.
func (m *Model) find(query string) {
	q := names.Normalize(query)
	if q == "" {
		return
	}
	n := len(m.sheet.Entries)
	for i := 1; i <= n; i++ {
		j := (m.cursor + i) % n
		if strings.Contains(names.Normalize(m.sheet.Entries[j].Original), q) {
			m.cursor = j
			m.scroll()
			m.status = ""
			return
		}
	}
	m.setStatus(fmt.Sprintf("No name matches %q.", query), true)
}

func (m *Model) persist() {
	if err := m.save(m.sheet, m.path); err != nil {
		m.setStatus("Save failed: "+err.Error(), true)
		return
	}
	m.dirty = false
	m.setStatus(fmt.Sprintf("Saved %d/%d labels to %s.",
		m.sheet.Validated(), len(m.sheet.Entries), filepath.Base(m.path)), false)
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

// pageSize returns the number of table rows that fit on screen.
func (m Model) pageSize() int {
	// Header and footer are three lines each.
	return max(m.height-6-chromeLines, 1)
}

// scroll keeps the cursor inside the visible window.
func (m *Model) scroll() {
	page := m.pageSize()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+page {
		m.offset = m.cursor - page + 1
	}
	m.offset = max(m.offset, 0)
}

func (m Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render returns the full frame, or "" until the terminal size is known.
func (m Model) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	header := layout.RenderHeader(
		"Review · "+filepath.Base(m.path),
		fmt.Sprintf("%d/%d labelled", m.sheet.Validated(), len(m.sheet.Entries)),
		m.width,
	)

	var footerHints []layout.KeyHint
	switch {
	case m.searching:
		footerHints = hints(m.keys.Confirm, m.keys.CancelEdit)
	case m.showHelp:
		footerHints = hints(m.keys.Help, m.keys.Quit)
	default:
		footerHints = hints(m.keys.shortHelp()...)
	}
	footer := layout.RenderFooter(footerHints, m.width)

	var content string
	if m.showHelp {
		content = m.renderHelp()
	} else {
		content = m.renderTable()
	}

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m Model) renderTable() string {
	var b strings.Builder

	bar := components.ProgressBar{
		Label: "Labelled",
		Done:  m.sheet.Validated(),
		Total: len(m.sheet.Entries),
		Width: m.width - 2,
	}
	b.WriteString(" " + bar.View() + "\n\n")

	const (
		numW    = 5
		genderW = 11
		methodW = 32
	)
	fixed := 2 + numW + 2 + 2 + genderW + 2 + genderW
	if m.sheet.HasMethod {
		fixed += methodW + 2
	}
	nameW := max(m.width-fixed-1, 10)

	row := func(num, name, predicted, method, validated string) string {
		cols := []string{pad(num, numW), pad(truncate(name, nameW), nameW), predicted}
		if m.sheet.HasMethod {
			cols = append(cols, method)
		}
		cols = append(cols, validated)
		return strings.Join(cols, "  ")
	}

	head := row("#", "nombre_original", pad("GENERO", genderW), pad("metodo", methodW), "GENERO_VALIDADO")
	b.WriteString("  " + theme.Hint.Render(head) + "\n")

	if len(m.sheet.Entries) == 0 {
		b.WriteString("\n  " + theme.Hint.Render("The sheet has no entries."))
	}

	end := min(m.offset+m.pageSize(), len(m.sheet.Entries))
	for i := m.offset; i < end; i++ {
		e := m.sheet.Entries[i]

		validated := theme.Hint.Render(pad("·", genderW))
		if v := strings.TrimSpace(e.Validated); v != "" {
			style := theme.Disagree
			if v == e.Predicted {
				style = theme.Agree
			}
			validated = style.Render(pad(v, genderW))
		}

		line := row(
			fmt.Sprintf("%d", i+1),
			e.Original,
			theme.GenderStyle(e.Predicted).Render(pad(e.Predicted, genderW)),
			theme.Hint.Render(pad(truncate(e.Method, methodW), methodW)),
			validated,
		)
		if i == m.cursor {
			b.WriteString(theme.Selected.Render("▸ ") + line + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	b.WriteString("\n")
	switch {
	case m.searching:
		b.WriteString(" " + m.search.View())
	case m.status != "" && m.statusErr:
		b.WriteString(" " + theme.Warning.Render(m.status))
	case m.status != "":
		b.WriteString(" " + theme.Hint.Render(m.status))
	}
	return b.String()
}

func (m Model) renderHelp() string {
	cols := make([]string, 0, 3)
	for _, group := range m.keys.fullHelp() {
		var b strings.Builder
		for _, k := range group {
			h := k.Help()
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(pad(h.Key, 8)))
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Desc))
			b.WriteString("\n")
		}
		cols = append(cols, lipgloss.NewStyle().PaddingRight(4).Render(b.String()))
	}
	title := theme.Title.Render("Keys")
	return "\n  " + title + "\n\n" + lipgloss.NewStyle().PaddingLeft(2).Render(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
}

func pad(s string, w int) string {
	return s + strings.Repeat(" ", max(w-lipgloss.Width(s), 0))
}

func truncate(s string, w int) string {
	if lipgloss.Width(s) <= w {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > w {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}

// Run starts the review program and returns the final model.
func Run(m Model) (Model, error) {
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return m, err
	}
	return final.(Model), nil
}
