package tree

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used to render a tree Model.
type Styles struct {
	// Line styles an unselected row.
	Line lipgloss.Style
	// Selected styles a row whose node carries NodeSelected.
	Selected lipgloss.Style
	// Symbol styles the tree-branch connector glyphs (Padding/Connector/
	// Starter/Terminator).
	Symbol lipgloss.Style
}

// DefaultStyles returns a reasonable default Styles value.
func DefaultStyles() Styles {
	return Styles{
		Line:     lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("170")),
		Symbol:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
