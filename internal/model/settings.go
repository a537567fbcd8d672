package model

import (
	"fmt"
	"slices"
	"strings"
)

const (
	MinMaxLines = 1
	MaxMaxLines = 7500

	// MaxSelectedElements caps how many element kinds can be selected at once.
	MaxSelectedElements = 12
)

// Option names one of the boolean generation flags.
type Option string

const (
	OptionTopbar         Option = "topbar"
	OptionCloseButton    Option = "close_button"
	OptionAnimatedTopbar Option = "animated_topbar"
	OptionKeySystem      Option = "key_system"
)

// ParseOption resolves an option name.
func ParseOption(s string) (Option, error) {
	switch o := Option(s); o {
	case OptionTopbar, OptionCloseButton, OptionAnimatedTopbar, OptionKeySystem:
		return o, nil
	default:
		return "", fmt.Errorf("unknown option %q", s)
	}
}

// GenerationSettings controls the shape of the generated library. All
// mutators are total: out of range input is clamped or ignored, never
// rejected.
type GenerationSettings struct {
	LibraryName      string        `json:"library_name"`
	AddTopbar        bool          `json:"add_topbar"`
	AddCloseButton   bool          `json:"add_close_button"`
	AnimatedTopbar   bool          `json:"animated_topbar"`
	AddKeySystem     bool          `json:"add_key_system"`
	MaxLines         int           `json:"max_lines"`
	SelectedElements []ElementKind `json:"selected_elements"`
}

// DefaultSettings returns the settings a new session starts with.
func DefaultSettings() GenerationSettings {
	return GenerationSettings{
		LibraryName:      "MyRobloxUI",
		AddTopbar:        true,
		AddCloseButton:   true,
		AnimatedTopbar:   true,
		AddKeySystem:     false,
		MaxLines:         2500,
		SelectedElements: []ElementKind{ElementButton, ElementToggle, ElementSlider},
	}
}

// SetLibraryName stores the trimmed name. An empty name is allowed.
func (s *GenerationSettings) SetLibraryName(name string) {
	s.LibraryName = strings.TrimSpace(name)
}

// SetMaxLines stores n clamped into [MinMaxLines, MaxMaxLines].
func (s *GenerationSettings) SetMaxLines(n int) {
	s.MaxLines = ClampMaxLines(n)
}

// SetMaxLinesText parses the leading integer of text and stores it clamped.
// Text without a leading integer counts as 0.
func (s *GenerationSettings) SetMaxLinesText(text string) {
	s.SetMaxLines(parseLeadingInt(text))
}

// ToggleOption flips a single boolean flag. Unknown options are ignored.
func (s *GenerationSettings) ToggleOption(opt Option) {
	switch opt {
	case OptionTopbar:
		s.AddTopbar = !s.AddTopbar
	case OptionCloseButton:
		s.AddCloseButton = !s.AddCloseButton
	case OptionAnimatedTopbar:
		s.AnimatedTopbar = !s.AnimatedTopbar
	case OptionKeySystem:
		s.AddKeySystem = !s.AddKeySystem
	}
}

// ToggleElement removes kind when selected, otherwise appends it at the end
// unless the selection is already full.
func (s *GenerationSettings) ToggleElement(kind ElementKind) {
	if i := slices.Index(s.SelectedElements, kind); i >= 0 {
		s.SelectedElements = slices.Delete(slices.Clone(s.SelectedElements), i, i+1)
		return
	}
	if len(s.SelectedElements) >= MaxSelectedElements {
		return
	}
	s.SelectedElements = append(slices.Clone(s.SelectedElements), kind)
}

// IsSelected reports whether kind is part of the selection.
func (s GenerationSettings) IsSelected(kind ElementKind) bool {
	return slices.Contains(s.SelectedElements, kind)
}

// Snapshot returns a deep copy that shares no memory with s.
func (s GenerationSettings) Snapshot() GenerationSettings {
	out := s
	out.SelectedElements = slices.Clone(s.SelectedElements)
	if out.SelectedElements == nil {
		out.SelectedElements = []ElementKind{}
	}
	return out
}

// Normalize re-establishes the invariants on a record built from outside
// input: clamped MaxLines, trimmed name, and a selection of at most
// MaxSelectedElements distinct kinds in first-seen order.
func (s *GenerationSettings) Normalize() {
	s.SetLibraryName(s.LibraryName)
	s.SetMaxLines(s.MaxLines)
	selected := make([]ElementKind, 0, len(s.SelectedElements))
	for _, k := range s.SelectedElements {
		if slices.Contains(selected, k) || len(selected) >= MaxSelectedElements {
			continue
		}
		selected = append(selected, k)
	}
	s.SelectedElements = selected
}

// ClampMaxLines clamps n into [MinMaxLines, MaxMaxLines].
func ClampMaxLines(n int) int {
	return min(max(n, MinMaxLines), MaxMaxLines)
}

func parseLeadingInt(text string) int {
	text = strings.TrimSpace(text)
	neg := false
	if text != "" && (text[0] == '-' || text[0] == '+') {
		neg = text[0] == '-'
		text = text[1:]
	}
	n := 0
	for _, r := range text {
		if r < '0' || r > '9' {
			break
		}
		// Anything past the upper clamp bound behaves the same.
		if n <= MaxMaxLines {
			n = n*10 + int(r-'0')
		}
	}
	if neg {
		return -n
	}
	return n
}
