package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"ui-architect/backend/internal/model"
)

func TestBuildSystemPrompt(t *testing.T) {
	settings := model.DefaultSettings()
	settings.ToggleOption(model.OptionKeySystem)
	settings.SetMaxLines(800)

	prompt := BuildSystemPrompt(settings)
	assert.Contains(t, prompt, "Library name: MyRobloxUI")
	assert.Contains(t, prompt, "Key system gate before the library loads: yes")
	assert.Contains(t, prompt, "under 800 lines")

	button := strings.Index(prompt, "Button (Botão Interativo)")
	toggle := strings.Index(prompt, "Toggle (Interruptor (Toggle))")
	slider := strings.Index(prompt, "Slider (Barra de Deslizamento)")
	assert.True(t, button >= 0 && button < toggle && toggle < slider, "elements must keep selection order")

	t.Run("No elements and no name", func(t *testing.T) {
		s := model.DefaultSettings()
		s.SelectedElements = nil
		s.SetLibraryName("")
		p := BuildSystemPrompt(s)
		assert.Contains(t, p, "Elements: none requested")
		assert.Contains(t, p, "Library name: UILibrary")
	})
}

func TestExtractCode(t *testing.T) {
	cases := []struct {
		name  string
		reply string
		want  string
	}{
		{"Plain text", "  local a = 1\n", "local a = 1"},
		{"Lua fence", "```lua\nlocal a = 1\n```", "local a = 1"},
		{"Fence with prose", "Sure!\n```luau\nprint(1)\n```\nBye", "print(1)"},
		{"Unterminated fence", "```lua\nprint(2)\n", "print(2)"},
		{"First block wins", "```\na()\n```\n```\nb()\n```", "a()"},
		{"Fence without newline", "```lua", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractCode(tc.reply))
		})
	}
}
