package tree

import "github.com/charmbracelet/lipgloss"

// Symbols holds the glyphs used to draw the tree's branch lines at each
// depth: the mid-branch connector, the first-row starter, the
// last-child terminator, and the blank padding used once a branch has
// already terminated above.
type Symbols struct {
	Connector  string
	Starter    string
	Terminator string
	Padding    string
}

// DefaultSymbols draws the tree with light box-drawing glyphs.
func DefaultSymbols() Symbols {
	return Symbols{
		Connector:  "│  ",
		Starter:    "├──",
		Terminator: "└──",
		Padding:    "   ",
	}
}

// ThickSymbols uses heavy box-drawing glyphs.
func ThickSymbols() Symbols {
	return Symbols{
		Connector:  "┃  ",
		Starter:    "┣━━",
		Terminator: "┗━━",
		Padding:    "   ",
	}
}

// RoundedSymbols uses box-drawing glyphs with rounded corners.
func RoundedSymbols() Symbols {
	return Symbols{
		Connector:  "│  ",
		Starter:    "├──",
		Terminator: "╰──",
		Padding:    "   ",
	}
}

// DoubleSymbols uses double-line box-drawing glyphs.
func DoubleSymbols() Symbols {
	return Symbols{
		Connector:  "║  ",
		Starter:    "╠══",
		Terminator: "╚══",
		Padding:    "   ",
	}
}

// NormalEdgeSymbols uses a normal connector with a blank edge (no leading
// vertical line once a branch has nothing left above it).
func NormalEdgeSymbols() Symbols {
	s := DefaultSymbols()
	s.Padding = "   "
	return s
}

// ThickEdgeSymbols uses a thick connector with a blank edge.
func ThickEdgeSymbols() Symbols {
	s := ThickSymbols()
	s.Padding = "   "
	return s
}

// Padding renders the blank-column glyph for a tree-symbol position.
func Padding(s lipgloss.Style, sym Symbols, _ int) string {
	return s.Render(sym.Padding)
}

// RenderConnector renders the pass-through vertical glyph for a
// tree-symbol position (an ancestor branch still has siblings below it).
func RenderConnector(s lipgloss.Style, sym Symbols, _ int) string {
	return s.Render(sym.Connector)
}

// RenderStarter renders the first-row branch glyph for a node that has
// following siblings.
func RenderStarter(s lipgloss.Style, sym Symbols, _ int) string {
	return s.Render(sym.Starter)
}

// RenderTerminator renders the first-row branch glyph for a node that is
// the last child of its parent.
func RenderTerminator(s lipgloss.Style, sym Symbols, _ int) string {
	return s.Render(sym.Terminator)
}
