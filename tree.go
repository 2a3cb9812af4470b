package tree

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"golang.org/x/exp/constraints"
)

// Model is the Bubble Tea model for this user interface. It renders the
// flattened node list of a TreeModel, styling every currently-selected
// node (not just a single cursor row) per the multi-selection projection
// maintained by the bound TreeModel/SelectionService.
type Model struct {
	nodes Nodes // all nodes, flattened once at construction time

	model *TreeModel

	view viewport.Model

	focus  bool // Update ignores all messages while false
	cursor int  // index into nodes of the current "most recent" node

	KeyMap  KeyMap
	Styles  Styles
	Symbols Symbols
}

// NewModel initializes a new Model over ns, bound to model for selection,
// expansion and navigation. It sets the default keymap, styles, and
// symbols, and selects the first row by default.
func NewModel(ns Nodes, model *TreeModel) Model {
	// TODO: maybe assert that Nodes isn't empty or something
	root := ns[0]

	m := Model{
		nodes: ns.flatten(),
		model: model,

		view: viewport.New(0, 0),

		KeyMap:  DefaultKeyMap(),
		Styles:  DefaultStyles(),
		Symbols: DefaultSymbols(),
	}

	model.SelectNode(root, false) // we're selecting the first row by default

	// rendering every currently visible node as the initial content
	initialContent := m.renderAllNodes()
	m.view.SetContent(
		lipgloss.JoinVertical(lipgloss.Left, initialContent...),
	)

	return m
}

// just to wrap my head around it easier
var noop tea.Cmd = nil

func (m Model) Init() tea.Cmd {
	return noop
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focus {
		// TODO: never actually rendered, but might be useful one day
		return m, noop
	}

	var cmd tea.Cmd = nil
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetWidth(msg.Width)
		m.SetHeight(msg.Height)
		// TODO: what if the screen shrinks and the currently selected node
		// isn't visible anymore?
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.KeyMap.Expand):
			m.model.OpenNode(m.currentNode())
			m.refresh()
			return m, noop
		case key.Matches(msg, m.KeyMap.LineUp):
			cmd = m.MoveUp(1, false)
		case key.Matches(msg, m.KeyMap.LineDown):
			cmd = m.MoveDown(1, false)
		case key.Matches(msg, m.KeyMap.PageUp):
			cmd = m.MoveUp(m.view.Height, false)
		case key.Matches(msg, m.KeyMap.PageDown):
			cmd = m.MoveDown(m.view.Height, false)
		case key.Matches(msg, m.KeyMap.HalfPageUp):
			cmd = m.MoveUp(m.view.Height/2, false)
		case key.Matches(msg, m.KeyMap.HalfPageDown):
			cmd = m.MoveDown(m.view.Height/2, false)
		case key.Matches(msg, m.KeyMap.ExtendUp):
			cmd = m.MoveUp(1, true)
		case key.Matches(msg, m.KeyMap.ExtendDown):
			cmd = m.MoveDown(1, true)
		case key.Matches(msg, m.KeyMap.GotoTop):
			cmd = m.GotoTop()
		case key.Matches(msg, m.KeyMap.GotoBottom):
			cmd = m.GotoBottom()
		case key.Matches(msg, m.KeyMap.Toggle):
			m.model.ToggleSelection(m.currentNode())
			m.refresh()
		case key.Matches(msg, m.KeyMap.RangeSelect):
			m.model.SelectRange(m.currentNode(), nil, true)
			m.syncCursorToSelection()
			m.refresh()
		case key.Matches(msg, m.KeyMap.SelectParent):
			m.model.SelectParent()
			m.syncCursorToSelection()
			m.refresh()
		}
	}

	return m, cmd
}

func (m Model) View() string {
	return m.view.View()
}

// refresh re-renders every row. A point/range gesture or an expansion
// change can flip the selected/hidden state of an arbitrary subset of
// rows, so — like the teacher's own ToggleExpand handling — the whole
// viewport content is recomputed rather than patched line by line.
func (m *Model) refresh() {
	rendered := m.renderAllNodes()
	m.view.SetContent(
		lipgloss.JoinVertical(lipgloss.Left, rendered...),
	)
}

// setCursor moves the scroll-tracking cursor to newCursorPos, adjusting
// the viewport if it falls outside the visible window. It does not
// itself change any node's selected flag — that is owned entirely by
// SelectionService's diff protocol (spec.md §4.3).
func (m *Model) setCursor(newCursorPos int) tea.Cmd {
	newCursorPos = clamp(newCursorPos, 0, len(m.nodes)-1)
	if cursorNotMoved := newCursorPos == m.cursor; cursorNotMoved {
		return noop
	}

	viewTop, viewBottom := m.view.VisibleLineIndices()
	switch {
	case newCursorPos < viewTop:
		m.view.LineUp(m.cursor - newCursorPos)
	case newCursorPos > viewBottom:
		m.view.LineDown(newCursorPos - m.cursor)
	}

	m.cursor = newCursorPos
	return noop
}

// syncCursorToSelection moves the cursor to the index of the
// most-recently-selected node, so paging/scrolling tracks whatever the
// last gesture acted on.
func (m *Model) syncCursorToSelection() tea.Cmd {
	sel := m.model.SelectedNodes()
	if len(sel) == 0 {
		return noop
	}
	target := sel[0]
	for i, n := range m.nodes {
		if n == target {
			return m.setCursor(i)
		}
	}
	return noop
}

// currentNode returns the node the cursor currently tracks.
func (m Model) currentNode() Node {
	if m.cursor < 0 || m.cursor >= len(m.nodes) {
		return nil
	}
	return m.nodes[m.cursor]
}

func (m Model) AllNodes() Nodes {
	return m.nodes
}

// MoveUp moves the cursor up by up to n rows, replaying n
// SelectPrevNode/selectNextNode-style steps so the underlying selection
// stays in sync, stopping early once the top is reached. When
// preserveSelection is true each step extends the selection instead of
// replacing it (spec.md §4.4 selectPrevNode/selectNextNode).
func (m *Model) MoveUp(n int, preserveSelection bool) tea.Cmd {
	for i := 0; i < n; i++ {
		before := m.cursor
		m.model.SelectPrevNode(preserveSelection)
		if cmd := m.syncCursorToSelection(); cmd == nil && m.cursor == before {
			break
		}
	}
	return noop
}

// MoveDown moves the cursor down by up to n rows. See MoveUp.
func (m *Model) MoveDown(n int, preserveSelection bool) tea.Cmd {
	for i := 0; i < n; i++ {
		before := m.cursor
		m.model.SelectNextNode(preserveSelection)
		if cmd := m.syncCursorToSelection(); cmd == nil && m.cursor == before {
			break
		}
	}
	return noop
}

// GotoTop moves the selection to the first visible row.
func (m *Model) GotoTop() tea.Cmd {
	for _, n := range m.nodes {
		if isNodeVisible(n) {
			m.model.SelectNode(n, false)
			break
		}
	}
	return m.syncCursorToSelection()
}

// GotoBottom moves the selection to the last visible row.
func (m *Model) GotoBottom() tea.Cmd {
	for i := len(m.nodes) - 1; i >= 0; i-- {
		if isNodeVisible(m.nodes[i]) {
			m.model.SelectNode(m.nodes[i], false)
			break
		}
	}
	return m.syncCursorToSelection()
}

// SetWidth sets the width of the viewport of the tree.
func (m *Model) SetWidth(w int) {
	m.view.Width = w
}

// SetHeight sets the height of the viewport of the tree.
func (m *Model) SetHeight(h int) {
	// TODO: make sure the currently selected node is still visible
	m.view.Height = h
}

// Height returns the viewport height of the tree.
func (m Model) Height() int {
	return m.view.Height
}

// Width returns the viewport width of the tree.
func (m Model) Width() int {
	return m.view.Width
}

// YOffset returns the viewport vertical scroll position of the tree.
func (m Model) YOffset() int {
	return m.view.YOffset
}

// SetYOffset sets Y offset of the tree's viewport.
func (m *Model) SetYOffset(n int) {
	m.view.SetYOffset(n)
}

// ScrollPercent returns the amount scrolled as a float between 0 and 1.
func (m Model) ScrollPercent() float64 {
	return m.view.ScrollPercent()
}

// Cursor returns the index of the row the cursor currently tracks.
func (m Model) Cursor() int {
	return m.cursor
}

// TODO: put this in some utilities file maybe
// btw it's copied from samber/lo
func clamp[T constraints.Ordered](value T, min T, max T) T {
	if value < min {
		return min
	} else if value > max {
		return max
	}
	return value
}

// Focused returns the focus state of the tree.
func (m Model) Focused() bool {
	return m.focus
}

// Focus focuses the tree, allowing the user to move around the tree nodes
// and interact with it.
func (m *Model) Focus() {
	m.focus = true
}

// Blur blurs the tree, preventing selection or movement.
func (m *Model) Blur() {
	m.focus = false
}

// When we render the tree symbols we consider them as a grid of maxDepth width
// Each pos in the grid corresponds to a space or a tree-depth-indicating symbol
// TODO: good luck
func (m Model) getTreeSymbolForPos(n Node, pos int, maxDepth int) string {
	if n == nil {
		// TODO: find out how can this happen? ( Luka M. 2024-01-21 )
		panic("getting tree symbol for nil node")
	}
	s := m.Styles.Symbol
	if hasPaddingAtPos(n, pos, maxDepth) {
		return Padding(s, m.Symbols, pos)
	}
	if pos < maxDepth {
		return RenderConnector(s, m.Symbols, pos)
	}
	if isLastNode(n) {
		return RenderTerminator(s, m.Symbols, pos)
	}
	return RenderStarter(s, m.Symbols, pos)
}

// hasPaddingAtPos computes if a node of given given depth needs padding in the tree-like view
// TODO: good luck
func hasPaddingAtPos(n Node, depth int, maxDepth int) bool {
	if n == nil {
		return true
	}
	if depth > maxDepth {
		return true
	}
	if depth == maxDepth {
		return false
	}
	parentInPos := maxDepth - depth
	for i := 0; i < parentInPos; i++ {
		if n = n.Parent(); n == nil {
			return true
		}
	}
	return isLastNode(n)
}

// TODO: good luck
func (m Model) renderSymbolsForSingleLineNode(n Node) string {
	nodeDepth := getDepth(n)

	prefix := strings.Builder{}
	for pos := 0; pos <= nodeDepth; pos++ {
		prefix.WriteString(m.getTreeSymbolForPos(n, pos, nodeDepth))
	}
	return prefix.String()
}

// TODO: good luck
func (m Model) renderPrefixForMultiLineNode(t Node, lineCount int) string {
	maxDepth := getDepth(t)

	s := m.Styles.Symbol

	prefix := strings.Builder{}

	connectsBottom := isLastNode(t)
	for line := 0; line < lineCount; line++ {
		for lvl := 0; lvl <= maxDepth-1; lvl++ {
			prefix.WriteString(m.getTreeSymbolForPos(t, lvl, maxDepth))
		}
		if line == 0 {
			prefix.WriteString(RenderStarter(s, m.Symbols, maxDepth))
			if lineCount > 1 {
				prefix.WriteRune('\n')
			}
		} else if line == lineCount-1 {
			if !connectsBottom {
				prefix.WriteString(RenderTerminator(s, m.Symbols, maxDepth))
			} else {
				prefix.WriteString(RenderConnector(s, m.Symbols, maxDepth))
			}
		} else {
			prefix.WriteString(RenderConnector(s, m.Symbols, maxDepth))
			prefix.WriteRune('\n')
		}
	}

	return prefix.String()
}

// TODO: good luck
func (m *Model) render() []string {
	if m.view.Height+m.view.Width == 0 {
		return nil
	}

	return m.renderNodes(m.AllNodes())
}

const Ellipsis = "…"

// SetStyles sets the tree Styles.
func (m *Model) SetStyles(s Styles) {
	m.Styles = s
}

// TODO: good luck
func (m *Model) renderNode(n Node) string {
	if n == nil {
		// TODO: find out how can this happen? ( Luka M. 2024-01-21 )
		panic("trying to render nil node")
		// return ""
	}

	// TODO: multiline content issue will be solved when viewport gets horizontal scrolling (https://github.com/charmbracelet/bubbles/issues/145)
	// the prefix consists of custom Prefix function + tree-like symbols (depth, branching)
	prefix := n.Prefix() + m.renderSymbolsForSingleLineNode(n)

	prefixWidth := lipgloss.Width(prefix)
	nameWidth := m.Width() - prefixWidth
	style := m.Styles.Line
	if isSelectedFlag(n) {
		style = m.Styles.Selected
	}
	render := style.Width(nameWidth).MaxWidth(nameWidth - 1).Render
	name := n.Name()
	if lipgloss.Width(name) > nameWidth {
		name = truncate.StringWithTail(name, uint(nameWidth-1), Ellipsis)
	}
	node := lipgloss.JoinHorizontal(lipgloss.Left, prefix, render(name))
	// TODO: I don't like this approach, renderNode should render only the given node!
	// if isExpanded(n) && hasChildren(n) {
	// renderedChildren := m.renderNodes(n.Children())
	// node = lipgloss.JoinVertical(lipgloss.Top, node, lipgloss.JoinVertical(lipgloss.Left, renderedChildren...))
	// }

	return node
}

// renderAllNodes returns a string representation for each node
// both the prefix, tree-like symbols and name, omitting nodes that
// aren't currently visible (collapse-pruned, per spec.md §3).
// TODO: good luck
func (m Model) renderAllNodes() []string {
	return m.renderNodes(m.AllNodes())
}

// TODO: good luck
func (m Model) renderNodes(ns Nodes) []string {
	rendered := []string{}
	for i, n := range ns {
		if !isNodeVisible(n) {
			continue
		}

		hints := NodeNone
		if i > 0 {
			hints |= NodeHasPreviousSibling
		}
		if hasChildren(n) {
			hints |= NodeCollapsible
		}
		if i == len(ns)-1 {
			hints |= NodeLastChild
		}

		n.SetState(n.State() | hints)
		if out := m.renderNode(n); len(out) > 0 {
			rendered = append(rendered, out)
		}
	}

	return rendered
}
