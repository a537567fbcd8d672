// Package clipboard puts generated code on the user's clipboard.
package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"
)

// Copier writes text to a clipboard.
type Copier interface {
	Copy(text string) error
}

// System uses the operating system clipboard.
type System struct{}

func (System) Copy(text string) error {
	return clipboard.WriteAll(text)
}

// Available reports whether the system clipboard can be used here, e.g. it
// is false on a headless Linux box without xclip or xsel.
func Available() bool {
	return !clipboard.Unsupported
}

// Recorder keeps every copied text in memory. Err, when set, is returned
// from Copy after recording.
type Recorder struct {
	mu     sync.Mutex
	copied []string
	Err    error
}

func (r *Recorder) Copy(text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.copied = append(r.copied, text)
	return r.Err
}

// Copied returns everything copied so far, oldest first.
func (r *Recorder) Copied() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.copied...)
}

// Last returns the most recent copied text, or "".
func (r *Recorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.copied) == 0 {
		return ""
	}
	return r.copied[len(r.copied)-1]
}
