package review

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/genero/internal/ui/layout"
)

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Top        key.Binding
	Bottom     key.Binding
	Masculine  key.Binding
	Feminine   key.Binding
	Unknown    key.Binding
	Accept     key.Binding
	Clear      key.Binding
	NextOpen   key.Binding
	Search     key.Binding
	Save       key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
	Confirm    key.Binding
	CancelEdit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("PgUp", "page up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("PgDn", "page down")),
		Top:        key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
		Bottom:     key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
		Masculine:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "masculino")),
		Feminine:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "femenino")),
		Unknown:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "desconocido")),
		Accept:     key.NewBinding(key.WithKeys("enter", "a"), key.WithHelp("Enter", "accept")),
		Clear:      key.NewBinding(key.WithKeys("x", "backspace"), key.WithHelp("x", "clear")),
		NextOpen:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next unlabelled")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "find")),
		Save:       key.NewBinding(key.WithKeys("s", "ctrl+s"), key.WithHelp("s", "save")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("Ctrl+C", "quit now")),
		Confirm:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "go")),
		CancelEdit: key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "cancel")),
	}
}

// shortHelp lists the bindings shown in the footer.
func (k keyMap) shortHelp() []key.Binding {
	return []key.Binding{k.Masculine, k.Feminine, k.Unknown, k.Accept, k.Clear, k.Save, k.Help, k.Quit}
}

// fullHelp lists every binding for the help overlay, grouped by column.
func (k keyMap) fullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Masculine, k.Feminine, k.Unknown, k.Accept, k.Clear, k.NextOpen},
		{k.Search, k.Save, k.Help, k.Quit, k.ForceQuit},
	}
}

func hints(bindings ...key.Binding) []layout.KeyHint {
	out := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		out = append(out, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return out
}
