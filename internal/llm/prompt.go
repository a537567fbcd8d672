package llm

import (
	"fmt"
	"strings"

	"ui-architect/backend/internal/model"
)

// BuildSystemPrompt describes the requested library shape to the model.
func BuildSystemPrompt(settings model.GenerationSettings) string {
	var b strings.Builder
	b.WriteString("You are an expert Roblox developer who writes UI libraries in Luau.\n")
	b.WriteString("Answer with a single complete Luau script and nothing else.\n\n")
	b.WriteString("Library requirements:\n")

	name := settings.LibraryName
	if name == "" {
		name = "UILibrary"
	}
	fmt.Fprintf(&b, "- Library name: %s\n", name)
	fmt.Fprintf(&b, "- Top bar with the library name: %s\n", yesNo(settings.AddTopbar))
	fmt.Fprintf(&b, "- Close/open button toggling visibility: %s\n", yesNo(settings.AddCloseButton))
	fmt.Fprintf(&b, "- Animated top bar transitions (TweenService): %s\n", yesNo(settings.AnimatedTopbar))
	fmt.Fprintf(&b, "- Key system gate before the library loads: %s\n", yesNo(settings.AddKeySystem))
	fmt.Fprintf(&b, "- Keep the script under %d lines.\n", settings.MaxLines)

	if len(settings.SelectedElements) == 0 {
		b.WriteString("- Elements: none requested, provide only the window framework.\n")
	} else {
		b.WriteString("- Elements to implement, each with a Create<Element> API taking a table of options and a Callback:\n")
		for _, k := range settings.SelectedElements {
			fmt.Fprintf(&b, "  - %s (%s)\n", k, k.Label())
		}
	}
	b.WriteString("\nReturn the library table at the end of the script.")
	return b.String()
}

// ExtractCode returns the body of the first fenced code block in reply, or
// the trimmed reply when it has no fences.
func ExtractCode(reply string) string {
	start := strings.Index(reply, "```")
	if start < 0 {
		return strings.TrimSpace(reply)
	}
	rest := reply[start+3:]
	// Skip the language tag.
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[nl+1:]
	} else {
		return ""
	}
	if end := strings.Index(rest, "```"); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
