package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"treezip/pkg/tree"
	"treezip/pkg/zipper"
)

// keyMap defines the browser key bindings.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Last     key.Binding
	Root     key.Binding
	Leaf     key.Binding
	Edit     key.Binding
	Prune    key.Binding
	AddLeft  key.Binding
	AddRight key.Binding
	AddChild key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous sibling")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next sibling")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "ascend")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "first child")),
		Last:     key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "last child")),
		Root:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "to root")),
		Leaf:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "to leftmost leaf")),
		Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit value")),
		Prune:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "prune subtree")),
		AddLeft:  key.NewBinding(key.WithKeys("O"), key.WithHelp("O", "insert left sibling")),
		AddRight: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "insert right sibling")),
		AddChild: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "insert first child")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Edit, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Last},
		{k.Root, k.Leaf, k.Edit, k.Prune},
		{k.AddLeft, k.AddRight, k.AddChild, k.Help, k.Quit},
	}
}

// editMode says what the pending text input will become.
type editMode int

const (
	editNone editMode = iota
	editValue
	editLeftSibling
	editRightSibling
	editChild
)

// BrowserModel is the bubbletea model for the interactive tree
// browser. All navigation and editing goes through the zipper; the
// model never touches tree internals directly.
type BrowserModel struct {
	zip    *zipper.Zipper[string]
	styles Styles
	keys   keyMap
	help   help.Model
	input  textinput.Model
	mode   editMode
	status string
}

// NewBrowser creates a browser focused on the root of t.
func NewBrowser(t tree.Tree[string]) BrowserModel {
	input := textinput.New()
	input.CharLimit = 120
	return BrowserModel{
		zip:    zipper.FromTree(t),
		styles: DefaultStyles(),
		keys:   defaultKeyMap(),
		help:   help.New(),
		input:  input,
	}
}

// Result returns the fully reconstructed tree, regardless of where
// the cursor ended up.
func (m BrowserModel) Result() tree.Tree[string] {
	return m.zip.Root().Tree()
}

// Init implements tea.Model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.mode != editNone {
			return m.updateEditing(msg)
		}
		return m.updateNavigation(msg)
	}
	return m, nil
}

// updateNavigation handles key presses in navigation mode. Failed
// navigation is not an error condition for the browser: the cursor
// stays put and the reason lands in the status line.
func (m BrowserModel) updateNavigation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, keys.Up):
		m.move(func(z *zipper.Zipper[string]) (*zipper.Zipper[string], error) { return z.PrevSibling() })
	case key.Matches(msg, keys.Down):
		m.move(func(z *zipper.Zipper[string]) (*zipper.Zipper[string], error) { return z.NextSibling() })
	case key.Matches(msg, keys.Left):
		m.move(func(z *zipper.Zipper[string]) (*zipper.Zipper[string], error) { return z.Ascend() })
	case key.Matches(msg, keys.Right):
		m.move(func(z *zipper.Zipper[string]) (*zipper.Zipper[string], error) { return z.FirstChild() })
	case key.Matches(msg, keys.Last):
		m.move(func(z *zipper.Zipper[string]) (*zipper.Zipper[string], error) { return z.LastChild() })
	case key.Matches(msg, keys.Prune):
		m.move(func(z *zipper.Zipper[string]) (*zipper.Zipper[string], error) { return z.Prune() })

	case key.Matches(msg, keys.Root):
		m.zip = m.zip.Root()
		m.status = ""
	case key.Matches(msg, keys.Leaf):
		m.zip = m.zip.ToLeaf()
		m.status = ""

	case key.Matches(msg, keys.Edit):
		return m.startEditing(editValue, m.zip.Tree().Value)
	case key.Matches(msg, keys.AddLeft):
		return m.startEditing(editLeftSibling, "")
	case key.Matches(msg, keys.AddRight):
		return m.startEditing(editRightSibling, "")
	case key.Matches(msg, keys.AddChild):
		return m.startEditing(editChild, "")
	}
	return m, nil
}

// move applies a fallible zipper step, keeping the old position on
// failure.
func (m *BrowserModel) move(step func(*zipper.Zipper[string]) (*zipper.Zipper[string], error)) {
	next, err := step(m.zip)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.zip = next
	m.status = ""
}

func (m BrowserModel) startEditing(mode editMode, initial string) (tea.Model, tea.Cmd) {
	m.mode = mode
	m.input.SetValue(initial)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m BrowserModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = editNone
		m.input.Blur()
		return m, nil

	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		mode := m.mode
		m.mode = editNone
		m.input.Blur()
		if value == "" {
			m.status = "empty value discarded"
			return m, nil
		}
		switch mode {
		case editValue:
			m.zip = m.zip.Modify(func(string) string { return value })
			m.status = ""
		case editLeftSibling:
			m.move(func(z *zipper.Zipper[string]) (*zipper.Zipper[string], error) {
				return z.InsertLeft(tree.New(value))
			})
		case editRightSibling:
			m.move(func(z *zipper.Zipper[string]) (*zipper.Zipper[string], error) {
				return z.InsertRight(tree.New(value))
			})
		case editChild:
			m.zip = m.zip.InsertFirstChild(tree.New(value))
			m.status = ""
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m BrowserModel) View() string {
	var b strings.Builder

	// Ancestry line, root first.
	ancestors := m.zip.Ancestors()
	if len(ancestors) == 0 {
		b.WriteString(m.styles.Muted.Render("(root)"))
	} else {
		b.WriteString(m.styles.Ancestor.Render(strings.Join(ancestors, " → ")))
	}
	b.WriteString("\n\n")

	// Focus panel: focused value plus its direct children.
	focus := m.zip.Tree()
	var panel strings.Builder
	panel.WriteString(m.styles.Focus.Render(focus.Value))
	panel.WriteString(m.styles.Muted.Render(fmt.Sprintf("  (%s)", m.position())))
	panel.WriteString("\n")
	if focus.IsLeaf() {
		panel.WriteString(m.styles.Muted.Render("  (leaf)"))
	} else {
		for _, c := range focus.Children {
			label := c.Value
			if !c.IsLeaf() {
				label += m.styles.Muted.Render(fmt.Sprintf(" +%d", len(c.Children)))
			}
			panel.WriteString("  " + m.styles.Child.Render(label) + "\n")
		}
	}
	b.WriteString(m.styles.Panel.Render(strings.TrimRight(panel.String(), "\n")))
	b.WriteString("\n")

	if m.mode != editNone {
		b.WriteString(m.editPrompt())
		b.WriteString(m.input.View())
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(m.styles.Error.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// position describes where the focus sits among its siblings.
func (m BrowserModel) position() string {
	switch {
	case m.zip.IsRoot():
		return "root"
	case m.zip.IsOnlyChild():
		return "only child"
	case m.zip.IsFirst():
		return "first sibling"
	case m.zip.IsLast():
		return "last sibling"
	default:
		return fmt.Sprintf("depth %d", m.zip.Depth())
	}
}

func (m BrowserModel) editPrompt() string {
	switch m.mode {
	case editValue:
		return "new value: "
	case editLeftSibling:
		return "left sibling: "
	case editRightSibling:
		return "right sibling: "
	case editChild:
		return "first child: "
	default:
		return ""
	}
}
