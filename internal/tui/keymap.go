package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	MoveUp     key.Binding
	MoveDown   key.Binding
	Collapse   key.Binding
	AddChapter key.Binding
	AddItem    key.Binding
	AddText    key.Binding
	Edit       key.Binding
	Delete     key.Binding
	CopyPaste  key.Binding
	Undo       key.Binding
	Redo       key.Binding
	Renumber   key.Binding
	Save       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "omhoog")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "omlaag")),
		MoveUp:     key.NewBinding(key.WithKeys("shift+up", "K"), key.WithHelp("K", "verplaats omhoog")),
		MoveDown:   key.NewBinding(key.WithKeys("shift+down", "J"), key.WithHelp("J", "verplaats omlaag")),
		Collapse:   key.NewBinding(key.WithKeys(" "), key.WithHelp("spatie", "in/uitklappen")),
		AddChapter: key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hoofdstuk")),
		AddItem:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "post")),
		AddText:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tekstregel")),
		Edit:       key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "bewerken")),
		Delete:     key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "verwijderen")),
		CopyPaste:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "dupliceren")),
		Undo:       key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "ongedaan maken")),
		Redo:       key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "opnieuw")),
		Renumber:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "hernummeren")),
		Save:       key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "opslaan")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "afsluiten")),
	}
}
