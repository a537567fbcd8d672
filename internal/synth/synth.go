// Package synth builds a usage example for a generated UI library straight
// from the generation settings, without calling any model.
package synth

import (
	"fmt"
	"strings"
	"unicode"

	"ui-architect/backend/internal/model"
)

// TemplateFunc produces the example snippet for one element kind.
type TemplateFunc func(settings model.GenerationSettings) string

// Registry maps element kinds to their snippet templates.
type Registry struct {
	templates map[model.ElementKind]TemplateFunc
}

// NewRegistry returns a registry preloaded with a template for every known
// element kind.
func NewRegistry() *Registry {
	r := &Registry{templates: make(map[model.ElementKind]TemplateFunc, len(defaultTemplates))}
	for kind, snippet := range defaultTemplates {
		r.Register(kind, fixed(snippet))
	}
	return r
}

// Register adds or replaces the template for kind.
func (r *Registry) Register(kind model.ElementKind, fn TemplateFunc) {
	r.templates[kind] = fn
}

// Snippet renders the template for kind, or a placeholder comment when the
// kind has none.
func (r *Registry) Snippet(kind model.ElementKind, settings model.GenerationSettings) string {
	if fn, ok := r.templates[kind]; ok {
		return fn(settings)
	}
	return fmt.Sprintf("-- Exemplo para %s não disponível nesta pré-visualização.", kind)
}

// Synthesize assembles the full example script. The output depends only on
// settings.
func (r *Registry) Synthesize(settings model.GenerationSettings) string {
	snippets := make([]string, 0, len(settings.SelectedElements))
	for _, kind := range settings.SelectedElements {
		snippets = append(snippets, r.Snippet(kind, settings))
	}

	preamble := standardPreamble(settings.LibraryName)
	if settings.AddKeySystem {
		preamble = keySystemPreamble(settings.LibraryName)
	}

	var b strings.Builder
	b.WriteString(loaderLine)
	b.WriteString("\n")
	b.WriteString(preamble)
	b.WriteString("\n\n")
	b.WriteString(tabBlock)
	b.WriteString("\n\n")
	b.WriteString(strings.Join(snippets, "\n\n"))
	b.WriteString("\n\n")
	b.WriteString(notifyBlock)
	return b.String()
}

var defaultRegistry = NewRegistry()

// Synthesize renders the example with the default template registry.
func Synthesize(settings model.GenerationSettings) string {
	return defaultRegistry.Synthesize(settings)
}

const (
	loaderLine = `local Library = loadstring(game:HttpGet("LINK_GERADO_AQUI"))()`

	// Markers identifying which preamble was chosen.
	KeySystemMarker = "-- Lógica do Sistema de Chaves (Habilitado)"
	StandardMarker  = "-- Lógica Padrão sem Sistema de Chaves"

	tabBlock = `local MainTab = Window:CreateTab({
    Name = "Principal",
    Icon = "rbxassetid://4483345998"
})

local Section = MainTab:CreateSection("Controles Disponíveis")`

	notifyBlock = `Library:Notify({
    Title = "Sucesso",
    Content = "Script carregado com sucesso!",
    Duration = 5
})`
)

func keySystemPreamble(name string) string {
	return fmt.Sprintf(`
%s
local Window = Library:CreateWindow({
    Name = "%s",
    KeySystem = true, -- Ativa o sistema interno
    KeySettings = {
        Title = "Sistema de Verificação",
        Subtitle = "Obtenha sua chave no Discord",
        Note = "A chave expira em 24h",
        FileName = "%sKey",
        SaveKey = true,
        GrabKeyFromSite = false,
        Key = {"SUA_CHAVE_AQUI", "CHAVE_ADMIN"}
    }
})`, KeySystemMarker, luaEscape(name), luaEscape(stripSpaces(name)))
}

func standardPreamble(name string) string {
	return fmt.Sprintf(`
%s
local Window = Library:CreateWindow({
    Name = "%s",
    LoadingTitle = "Iniciando...",
    LoadingSubtitle = "by AI Architect",
    ConfigurationSaving = {
        Enabled = true,
        FolderName = "%sConfig"
    }
})`, StandardMarker, luaEscape(name), luaEscape(stripSpaces(name)))
}

// stripSpaces removes every whitespace rune so the name is usable as a file
// or folder name.
func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

var luaEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// luaEscape makes s safe inside a double quoted Lua string.
func luaEscape(s string) string {
	return luaEscaper.Replace(s)
}

func fixed(snippet string) TemplateFunc {
	return func(model.GenerationSettings) string { return snippet }
}
