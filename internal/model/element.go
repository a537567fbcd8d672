package model

import "fmt"

// ElementKind is one of the widget types a generated UI library may include.
type ElementKind string

const (
	ElementButton         ElementKind = "Button"
	ElementToggle         ElementKind = "Toggle"
	ElementSlider         ElementKind = "Slider"
	ElementDropdown       ElementKind = "Dropdown"
	ElementLabel          ElementKind = "Label"
	ElementTextBox        ElementKind = "TextBox"
	ElementScrollingFrame ElementKind = "ScrollingFrame"
	ElementColorPicker    ElementKind = "ColorPicker"
	ElementKeybind        ElementKind = "Keybind"
	ElementTabs           ElementKind = "Tabs"
	ElementNotification   ElementKind = "Notification"
	ElementSearchBar      ElementKind = "SearchBar"
)

// ElementInfo describes a selectable element for catalogue listings.
type ElementInfo struct {
	Kind  ElementKind `json:"kind"`
	Label string      `json:"label"`
}

// Catalogue order matches the order the elements are offered to the user.
var elementCatalogue = []ElementInfo{
	{Kind: ElementButton, Label: "Botão Interativo"},
	{Kind: ElementToggle, Label: "Interruptor (Toggle)"},
	{Kind: ElementSlider, Label: "Barra de Deslizamento"},
	{Kind: ElementDropdown, Label: "Menu Suspenso"},
	{Kind: ElementLabel, Label: "Rótulo de Texto"},
	{Kind: ElementTextBox, Label: "Campo de Entrada"},
	{Kind: ElementScrollingFrame, Label: "Painel com Scroll"},
	{Kind: ElementColorPicker, Label: "Seletor de Cores"},
	{Kind: ElementKeybind, Label: "Atalho de Teclado"},
	{Kind: ElementTabs, Label: "Sistema de Abas"},
	{Kind: ElementNotification, Label: "Notificações Toast"},
	{Kind: ElementSearchBar, Label: "Barra de Pesquisa"},
}

// Elements returns the full catalogue of element kinds.
func Elements() []ElementInfo {
	out := make([]ElementInfo, len(elementCatalogue))
	copy(out, elementCatalogue)
	return out
}

// Label returns the display label of the kind, or the raw kind name when it
// is not part of the catalogue.
func (k ElementKind) Label() string {
	for _, e := range elementCatalogue {
		if e.Kind == k {
			return e.Label
		}
	}
	return string(k)
}

// Valid reports whether k is one of the known element kinds.
func (k ElementKind) Valid() bool {
	for _, e := range elementCatalogue {
		if e.Kind == k {
			return true
		}
	}
	return false
}

// ParseElementKind resolves a kind name. Matching is exact.
func ParseElementKind(s string) (ElementKind, error) {
	k := ElementKind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown element kind %q", s)
	}
	return k, nil
}
