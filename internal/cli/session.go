// Package cli is the interactive terminal front end. It drives the same
// services as the HTTP API.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"ui-architect/backend/internal/clipboard"
	"ui-architect/backend/internal/model"
	"ui-architect/backend/internal/service"
	"ui-architect/backend/internal/synth"
)

const helpText = `Commands:
  <text>              Describe the UI library you want
  /example            Show a usage example for the current settings
  /copy [example]     Copy the last generated code (or the example)
  /name <text>        Set the library name
  /lines <n>          Set the line limit (1-7500)
  /toggle <Kind>      Add or remove an element, e.g. /toggle ColorPicker
  /option <name>      Flip topbar, close_button, animated_topbar or key_system
  /settings           Show the current settings
  /elements           List the element kinds
  /history            Show the conversation
  /help               Show this help
  /quit               Exit`

// Session handles one line of user input at a time.
type Session struct {
	chat     *service.ChatService
	settings *service.SettingsService
	copier   clipboard.Copier
	out      io.Writer
	render   Renderer
}

func NewSession(chat *service.ChatService, settings *service.SettingsService, copier clipboard.Copier, out io.Writer, render Renderer) *Session {
	if render == nil {
		render = PlainRenderer
	}
	return &Session{chat: chat, settings: settings, copier: copier, out: out, render: render}
}

// Handle processes one input line. It returns false when the session should
// end.
func (s *Session) Handle(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return true
	}
	if !strings.HasPrefix(line, "/") {
		s.submit(ctx, line)
		return true
	}

	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	switch strings.ToLower(cmd) {
	case "/quit", "/q", "/exit":
		return false
	case "/help", "/h":
		s.println(infoStyle.Render(helpText))
	case "/example":
		s.print(s.render(luaBlock(synth.Synthesize(s.settings.Get()))))
	case "/copy":
		s.copy(ctx, arg)
	case "/name":
		got := s.settings.SetLibraryName(ctx, arg)
		s.println(commandStyle.Render(fmt.Sprintf("Library name: %q", got.LibraryName)))
	case "/lines":
		got := s.settings.SetMaxLinesText(ctx, arg)
		s.println(commandStyle.Render(fmt.Sprintf("Line limit: %d", got.MaxLines)))
	case "/toggle":
		s.toggleElement(ctx, arg)
	case "/option":
		s.toggleOption(ctx, arg)
	case "/settings":
		s.printSettings(s.settings.Get())
	case "/elements":
		s.printElements(s.settings.Get())
	case "/history":
		s.printHistory(ctx)
	default:
		s.println(warningStyle.Render(fmt.Sprintf("Unknown command %s. Type /help for the list.", cmd)))
	}
	return true
}

func (s *Session) submit(ctx context.Context, text string) {
	s.println(infoStyle.Render("Gerando..."))
	switch s.chat.Submit(ctx, text, s.settings.Get()) {
	case service.OutcomeReplied:
		reply := s.lastReply(ctx)
		if reply == nil {
			return
		}
		s.println(titleStyle.Render(reply.Content))
		s.print(s.render(luaBlock(*reply.Code)))
	case service.OutcomeFailed:
		s.println(errorStyle.Render("Não foi possível gerar o código. Tente novamente."))
	default:
		s.println(warningStyle.Render("A request is already running."))
	}
}

func (s *Session) copy(ctx context.Context, arg string) {
	var text, what string
	switch strings.ToLower(arg) {
	case "example":
		text, what = synth.Synthesize(s.settings.Get()), "example"
	case "":
		reply := s.lastReply(ctx)
		if reply == nil {
			s.println(warningStyle.Render("Nothing generated yet."))
			return
		}
		text, what = *reply.Code, "code"
	default:
		s.println(warningStyle.Render("Usage: /copy [example]"))
		return
	}

	if err := s.copier.Copy(text); err != nil {
		slog.Warn("Clipboard copy failed", "error", err)
		s.println(warningStyle.Render("Could not copy to the clipboard: " + err.Error()))
		return
	}
	s.println(commandStyle.Render(fmt.Sprintf("Copied %s to the clipboard.", what)))
}

func (s *Session) toggleElement(ctx context.Context, arg string) {
	kind, err := model.ParseElementKind(arg)
	if err != nil {
		s.println(errorStyle.Render(err.Error()))
		return
	}
	before := s.settings.Get()
	after := s.settings.ToggleElement(ctx, kind)
	switch {
	case after.IsSelected(kind) && !before.IsSelected(kind):
		s.println(commandStyle.Render("Added " + kind.Label()))
	case !after.IsSelected(kind) && before.IsSelected(kind):
		s.println(commandStyle.Render("Removed " + kind.Label()))
	default:
		s.println(warningStyle.Render(fmt.Sprintf("At most %d elements can be selected.", model.MaxSelectedElements)))
	}
}

func (s *Session) toggleOption(ctx context.Context, arg string) {
	opt, err := model.ParseOption(strings.ToLower(arg))
	if err != nil {
		s.println(errorStyle.Render(err.Error()))
		return
	}
	s.printSettings(s.settings.ToggleOption(ctx, opt))
}

func (s *Session) printSettings(g model.GenerationSettings) {
	kinds := make([]string, len(g.SelectedElements))
	for i, k := range g.SelectedElements {
		kinds[i] = string(k)
	}
	s.println(titleStyle.Render("Settings"))
	s.println(fmt.Sprintf("  Library name     %s", g.LibraryName))
	s.println(fmt.Sprintf("  Line limit       %d", g.MaxLines))
	s.println(fmt.Sprintf("  %s topbar", check(g.AddTopbar)))
	s.println(fmt.Sprintf("  %s close_button", check(g.AddCloseButton)))
	s.println(fmt.Sprintf("  %s animated_topbar", check(g.AnimatedTopbar)))
	s.println(fmt.Sprintf("  %s key_system", check(g.AddKeySystem)))
	s.println(fmt.Sprintf("  Elements (%d/%d)  %s", len(kinds), model.MaxSelectedElements, strings.Join(kinds, ", ")))
}

func (s *Session) printElements(g model.GenerationSettings) {
	for _, e := range model.Elements() {
		s.println(fmt.Sprintf("  %s %-15s %s", check(g.IsSelected(e.Kind)), e.Kind, infoStyle.Render(e.Label)))
	}
}

func (s *Session) printHistory(ctx context.Context) {
	messages, err := s.chat.Messages(ctx)
	if err != nil {
		s.println(errorStyle.Render(err.Error()))
		return
	}
	if len(messages) == 0 {
		s.println(infoStyle.Render("No messages yet."))
		return
	}
	for _, m := range messages {
		who := promptStyle.Render("You")
		if m.Role == model.RoleAssistant {
			who = titleStyle.Render("Architect")
		}
		s.println(fmt.Sprintf("%s: %s", who, m.Content))
		if m.HasCode() {
			s.println(infoStyle.Render(fmt.Sprintf("  (%d lines of code)", strings.Count(*m.Code, "\n")+1)))
		}
	}
}

// lastReply returns the newest message carrying code, or nil.
func (s *Session) lastReply(ctx context.Context) *model.Message {
	messages, err := s.chat.Messages(ctx)
	if err != nil {
		s.println(errorStyle.Render(err.Error()))
		return nil
	}
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].HasCode() {
			return &messages[i]
		}
	}
	return nil
}

func (s *Session) print(text string) {
	_, _ = io.WriteString(s.out, text)
}

func (s *Session) println(text string) {
	_, _ = io.WriteString(s.out, text+"\n")
}
