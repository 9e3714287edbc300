package main

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"go.jacobcolvin.com/jsontree"
)

// runViewer opens the interactive tree viewer over root.
func runViewer(root *jsontree.Value, path string) error {
	p := tea.NewProgram(newViewModel(root, path))

	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("running viewer: %w", err)
	}

	return nil
}

// row is one visible line of the tree.
type row struct {
	val   *jsontree.Value
	depth int
}

// viewModel is the bubbletea model for the tree viewer.
type viewModel struct {
	root     *jsontree.Value
	expanded map[*jsontree.Value]bool
	rows     []row
	path     string
	cursor   int
	offset   int
	width    int
	height   int
}

func newViewModel(root *jsontree.Value, path string) *viewModel {
	m := &viewModel{
		root:     root,
		expanded: map[*jsontree.Value]bool{root: true},
		path:     path,
		width:    80,
		height:   24,
	}
	m.rebuild()

	return m
}

// rebuild recomputes the visible rows from the expansion state.
func (m *viewModel) rebuild() {
	m.rows = m.rows[:0]
	m.appendRows(m.root, 0)

	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *viewModel) appendRows(v *jsontree.Value, depth int) {
	m.rows = append(m.rows, row{val: v, depth: depth})

	if !m.expanded[v] {
		return
	}

	for i := range v.Size() {
		m.appendRows(v.At(i), depth+1)
	}
}

func isContainer(v *jsontree.Value) bool {
	return v.Kind() == jsontree.KindArray || v.Kind() == jsontree.KindObject
}

func (m *viewModel) Init() tea.Cmd {
	return nil
}

func (m *viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}

		case "g":
			m.cursor = 0

		case "G":
			m.cursor = len(m.rows) - 1

		case "right", "l":
			if v := m.rows[m.cursor].val; isContainer(v) && !m.expanded[v] {
				m.expanded[v] = true
				m.rebuild()
			}

		case "left", "h":
			if v := m.rows[m.cursor].val; m.expanded[v] {
				delete(m.expanded, v)
				m.rebuild()
			}

		case "enter", "space":
			if v := m.rows[m.cursor].val; isContainer(v) {
				if m.expanded[v] {
					delete(m.expanded, v)
				} else {
					m.expanded[v] = true
				}
				m.rebuild()
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	m.scroll()

	return m, nil
}

// scroll keeps the cursor inside the visible window.
func (m *viewModel) scroll() {
	visible := m.height - 2
	if visible < 1 {
		visible = 1
	}

	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
}

func (m *viewModel) View() tea.View {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\033[1m%s\033[0m — %d nodes  (arrows move, enter toggles, q quits)\n",
		m.path, len(m.rows))

	visible := m.height - 2
	if visible < 1 {
		visible = 1
	}

	end := m.offset + visible
	if end > len(m.rows) {
		end = len(m.rows)
	}

	for i := m.offset; i < end; i++ {
		line := m.renderRow(m.rows[i])

		if len(line) > m.width && m.width > 1 {
			line = line[:m.width-1] + "…"
		}

		if i == m.cursor {
			line = "\033[7m" + line + "\033[0m"
		}

		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	v := tea.NewView(sb.String())
	v.AltScreen = true

	return v
}

func (m *viewModel) renderRow(r row) string {
	indent := strings.Repeat("  ", r.depth)

	label := ""
	if key := r.val.Key(); key != "" {
		label = key + ": "
	}

	if isContainer(r.val) {
		marker := "▸"
		if m.expanded[r.val] {
			marker = "▾"
		}

		return fmt.Sprintf("%s%s %s%s (%d)",
			indent, marker, label, r.val.Kind(), r.val.Size())
	}

	text := string(r.val.Print(false))
	if len(text) > 120 {
		text = text[:120] + "…"
	}

	return fmt.Sprintf("%s  %s%s", indent, label, text)
}
