package prompt

import "github.com/charmbracelet/lipgloss"

// Styles controls the prompt's rendering.
type Styles struct {
	Prompt  lipgloss.Style
	Cursor  lipgloss.Style
	Hint    lipgloss.Style
	Message lipgloss.Style
}

func DefaultStyles() Styles {
	return NewStyles(lipgloss.DefaultRenderer())
}

// NewStyles builds the default styles for a specific renderer, e.g. one
// bound to an SSH session's output.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Prompt:  r.NewStyle().Foreground(lipgloss.Color("246")),
		Cursor:  r.NewStyle().Reverse(true),
		Hint:    r.NewStyle().Foreground(lipgloss.Color("240")),
		Message: r.NewStyle().Foreground(lipgloss.Color("214")),
	}
}
