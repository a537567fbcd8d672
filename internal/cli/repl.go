package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"ui-architect/backend/internal/model"
)

var commands = []string{
	"/example", "/copy", "/name", "/lines", "/toggle", "/option",
	"/settings", "/elements", "/history", "/help", "/quit",
}

// Run reads lines from the terminal until /quit, Ctrl+C or Ctrl+D. Input
// history is kept in historyFile when it is not empty.
func Run(ctx context.Context, session *Session, historyFile string) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(complete)

	if historyFile != "" {
		if f, err := os.Open(historyFile); err == nil {
			_, _ = line.ReadHistory(f)
			_ = f.Close()
		}
		defer saveHistory(line, historyFile)
	}

	session.println(titleStyle.Render("UI Architect") + " " + infoStyle.Render("type /help for commands"))
	for {
		input, err := line.Prompt("architect> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				session.println("")
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}
		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}
		if !session.Handle(ctx, input) {
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

// complete offers slash commands and, after /toggle, element kinds.
func complete(input string) []string {
	var out []string
	if rest, ok := strings.CutPrefix(input, "/toggle "); ok {
		for _, kind := range elementKinds() {
			if strings.HasPrefix(strings.ToLower(kind), strings.ToLower(rest)) {
				out = append(out, "/toggle "+kind)
			}
		}
		return out
	}
	if rest, ok := strings.CutPrefix(input, "/option "); ok {
		for _, opt := range []string{"topbar", "close_button", "animated_topbar", "key_system"} {
			if strings.HasPrefix(opt, rest) {
				out = append(out, "/option "+opt)
			}
		}
		return out
	}
	for _, c := range commands {
		if strings.HasPrefix(c, input) {
			out = append(out, c)
		}
	}
	return out
}

func saveHistory(line *liner.State, path string) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = line.WriteHistory(f)
}

func elementKinds() []string {
	elements := model.Elements()
	out := make([]string, len(elements))
	for i, e := range elements {
		out[i] = string(e.Kind)
	}
	return out
}
