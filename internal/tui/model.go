// Package tui implements the interactive budget editor built on
// bubbletea. The schedule tree is flattened into rows with a cursor;
// edits go through the schedule service and every mutation is preceded
// by an undo snapshot.
package tui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/woutmeijer/bouwkost/internal/domain"
	"github.com/woutmeijer/bouwkost/internal/history"
	"github.com/woutmeijer/bouwkost/internal/service"
)

type formMode int

const (
	formNone formMode = iota
	formChapter
	formItem
	formText
	formEdit
)

// Model is the root bubbletea model of the editor.
type Model struct {
	svc     service.ScheduleService
	history *history.Stack
	keys    keyMap

	rows      []*domain.CostItem
	cursor    int
	collapsed map[*domain.CostItem]bool

	form       *huh.Form
	formMode   formMode
	formValues *itemFormValues
	editTarget *domain.CostItem

	status   string
	width    int
	height   int
	quitting bool
}

// New builds an editor model around an already opened session.
func New(svc service.ScheduleService) Model {
	m := Model{
		svc:       svc,
		history:   history.New(history.DefaultLimit),
		keys:      defaultKeyMap(),
		collapsed: make(map[*domain.CostItem]bool),
	}
	m.refresh()
	return m
}

// Run opens the given file (or starts a new schedule when the path does
// not exist yet) and runs the editor until the user quits.
func Run(svc service.ScheduleService, path string) error {
	if _, err := svc.Open(context.Background(), path); err != nil {
		return err
	}
	p := tea.NewProgram(New(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// refresh re-flattens the tree, hiding children of collapsed chapters,
// and clamps the cursor.
func (m *Model) refresh() {
	schedule := m.svc.Schedule()
	if schedule == nil {
		m.rows = nil
		m.cursor = 0
		return
	}

	var rows []*domain.CostItem
	var walk func(items []*domain.CostItem)
	walk = func(items []*domain.CostItem) {
		for _, item := range items {
			rows = append(rows, item)
			if !m.collapsed[item] {
				walk(item.Children)
			}
		}
	}
	walk(schedule.Items)

	m.rows = rows
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) current() *domain.CostItem {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return m.rows[m.cursor]
}

// currentChapter returns the chapter new posts should land under: the
// selected item when it is a chapter, its parent otherwise.
func (m *Model) currentChapter() *domain.CostItem {
	item := m.current()
	if item == nil {
		return nil
	}
	if item.IsChapter() {
		return item
	}
	if item.Parent != nil {
		return item.Parent
	}
	return item
}

func (m *Model) snapshot() {
	m.history.Snapshot(m.svc.Schedule())
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	return m.handleKey(key)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	m.status = ""

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.MoveUp), key.Matches(msg, keys.MoveDown):
		item := m.current()
		if item == nil {
			break
		}
		m.snapshot()
		if m.svc.MoveItem(item, key.Matches(msg, keys.MoveUp)) {
			m.refresh()
			m.cursor = indexOf(m.rows, item)
		} else {
			m.status = "Al op de rand"
		}

	case key.Matches(msg, keys.Collapse):
		item := m.current()
		if item == nil || len(item.Children) == 0 {
			break
		}
		m.collapsed[item] = !m.collapsed[item]
		m.refresh()

	case key.Matches(msg, keys.AddChapter):
		m.formValues = &itemFormValues{}
		m.formMode = formChapter
		m.form = newChapterForm(m.formValues)
		return m, m.form.Init()

	case key.Matches(msg, keys.AddItem):
		if m.currentChapter() == nil {
			m.status = "Maak eerst een hoofdstuk (h)"
			break
		}
		m.formValues = &itemFormValues{Kind: string(domain.QuantityCount)}
		m.formMode = formItem
		m.form = newItemForm("Nieuwe post", m.formValues)
		return m, m.form.Init()

	case key.Matches(msg, keys.AddText):
		if m.currentChapter() == nil {
			m.status = "Maak eerst een hoofdstuk (h)"
			break
		}
		m.formValues = &itemFormValues{}
		m.formMode = formText
		m.form = newTextForm(m.formValues)
		return m, m.form.Init()

	case key.Matches(msg, keys.Edit):
		item := m.current()
		if item == nil || item.IsChapter() {
			break
		}
		m.editTarget = item
		m.formValues = &itemFormValues{
			Name:     item.Name,
			Code:     item.Identification,
			Quantity: strconv.FormatFloat(item.Value.Quantity, 'f', -1, 64),
			Price:    fmt.Sprintf("%.2f", item.Value.UnitPrice),
			Kind:     string(item.Value.Kind),
		}
		m.formMode = formEdit
		m.form = newItemForm("Post bewerken", m.formValues)
		return m, m.form.Init()

	case key.Matches(msg, keys.Delete):
		item := m.current()
		if item == nil {
			break
		}
		m.snapshot()
		if m.svc.RemoveItem(item) {
			m.status = fmt.Sprintf("%q verwijderd", item.Name)
			m.refresh()
		}

	case key.Matches(msg, keys.CopyPaste):
		item := m.current()
		if item == nil {
			break
		}
		m.snapshot()
		if _, err := m.svc.InsertCopy(item.Parent, item); err != nil {
			m.status = err.Error()
		} else {
			m.status = fmt.Sprintf("%q gedupliceerd", item.Name)
			m.refresh()
		}

	case key.Matches(msg, keys.Undo):
		restored, ok := m.history.Undo(m.svc.Schedule())
		if !ok {
			m.status = "Niets om ongedaan te maken"
			break
		}
		m.svc.Replace(restored)
		m.status = "Ongedaan gemaakt"
		m.refresh()

	case key.Matches(msg, keys.Redo):
		restored, ok := m.history.Redo(m.svc.Schedule())
		if !ok {
			m.status = "Niets om opnieuw te doen"
			break
		}
		m.svc.Replace(restored)
		m.status = "Opnieuw gedaan"
		m.refresh()

	case key.Matches(msg, keys.Renumber):
		m.snapshot()
		m.svc.Renumber()
		m.status = "Hoofdstukken hernummerd"
		m.refresh()

	case key.Matches(msg, keys.Save):
		written, err := m.svc.Save(context.Background(), "")
		if err != nil {
			m.status = err.Error()
		} else {
			m.status = "Opgeslagen: " + written
		}
	}

	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.form = nil
		m.formMode = formNone
		m.editTarget = nil
		return m, nil
	}

	updated, cmd := m.form.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.applyForm()
		m.form = nil
		m.formMode = formNone
		m.editTarget = nil
		m.refresh()
	} else if m.form.State == huh.StateAborted {
		m.form = nil
		m.formMode = formNone
		m.editTarget = nil
	}

	return m, cmd
}

func (m *Model) applyForm() {
	v := m.formValues
	switch m.formMode {
	case formChapter:
		m.snapshot()
		chapter, err := m.svc.AddChapter(v.Name, v.Code, "")
		if err != nil {
			m.status = err.Error()
			return
		}
		m.status = fmt.Sprintf("Hoofdstuk %s toegevoegd", chapter.Identification)

	case formItem:
		m.snapshot()
		item, err := m.svc.AddCostItem(m.currentChapter(), v.Name, v.Code)
		if err != nil {
			m.status = err.Error()
			return
		}
		item.Value = domain.CostValue{
			Quantity:  parseNumber(v.Quantity),
			UnitPrice: parseNumber(v.Price),
			Kind:      domain.ParseQuantityKind(v.Kind),
		}
		m.status = fmt.Sprintf("Post %s toegevoegd", item.Identification)

	case formText:
		m.snapshot()
		if _, err := m.svc.AddTextRow(m.currentChapter(), v.Name); err != nil {
			m.status = err.Error()
			return
		}
		m.status = "Tekstregel toegevoegd"

	case formEdit:
		if m.editTarget == nil {
			return
		}
		m.snapshot()
		m.editTarget.Name = v.Name
		m.editTarget.Identification = v.Code
		if !m.editTarget.IsTextOnly {
			m.editTarget.Value = domain.CostValue{
				Quantity:  parseNumber(v.Quantity),
				UnitPrice: parseNumber(v.Price),
				Kind:      domain.ParseQuantityKind(v.Kind),
			}
		}
		// Replace with the same tree flags the document as modified.
		m.svc.Replace(m.svc.Schedule())
		m.status = fmt.Sprintf("Post %s bijgewerkt", m.editTarget.Identification)
	}
}

func indexOf(rows []*domain.CostItem, item *domain.CostItem) int {
	for i, r := range rows {
		if r == item {
			return i
		}
	}
	return 0
}
