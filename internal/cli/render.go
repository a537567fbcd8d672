package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#22D3EE")).
			Bold(true)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A78BFA")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF"))

	commandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#34D399"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FBBF24"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F43F5E")).
			Bold(true)
)

// Renderer turns Markdown into terminal output.
type Renderer func(markdown string) string

// NewMarkdownRenderer returns a glamour based renderer. If glamour cannot be
// set up the Markdown is printed as is.
func NewMarkdownRenderer(width int) Renderer {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return PlainRenderer
	}
	return func(markdown string) string {
		out, err := r.Render(markdown)
		if err != nil {
			return markdown
		}
		return out
	}
}

// PlainRenderer prints Markdown unchanged.
func PlainRenderer(markdown string) string {
	return markdown
}

// luaBlock wraps code in a fenced Luau block.
func luaBlock(code string) string {
	return fmt.Sprintf("```lua\n%s\n```\n", strings.TrimRight(code, "\n"))
}

func check(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}
