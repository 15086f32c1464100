// Package diag is the diagnostics sink used by the conversion engine and the
// palette generator. Failures never cross a conversion or generation call;
// they are reported here instead, and whether anything is recorded has no
// effect on computed results.
package diag

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Reporter receives a message and an alternating list of key/value context
// pairs.
type Reporter interface {
	Report(msg string, kv ...any)
}

// Discard drops every report.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Report(string, ...any) {}

// OrDiscard returns r, or Discard if r is nil.
func OrDiscard(r Reporter) Reporter {
	if r == nil {
		return Discard
	}
	return r
}

// Logger writes reports through a standard library logger.
type Logger struct {
	*log.Logger
}

// NewLogger returns a Logger writing to w with the given prefix.
func NewLogger(w io.Writer, prefix string) Logger {
	return Logger{log.New(w, prefix, log.Ltime|log.Lmsgprefix)}
}

// Report implements Reporter.
func (l Logger) Report(msg string, kv ...any) {
	l.Print(format(msg, kv))
}

// FromEnv returns a Logger to stderr if SWATCH_DEBUG=1, and Discard
// otherwise.
func FromEnv() Reporter {
	if os.Getenv("SWATCH_DEBUG") == "1" {
		return NewLogger(os.Stderr, "[swatch] ")
	}
	return Discard
}

func format(msg string, kv []any) string {
	if len(kv) == 0 {
		return msg
	}
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i < len(kv); i += 2 {
		if i+1 < len(kv) {
			fmt.Fprintf(&b, " %v=%v", kv[i], kv[i+1])
		} else {
			fmt.Fprintf(&b, " %v", kv[i])
		}
	}
	return b.String()
}

// Entry is a single recorded report.
type Entry struct {
	Msg     string
	Context []any
}

// String renders the entry the way Logger would.
func (e Entry) String() string { return format(e.Msg, e.Context) }

// Recorder keeps every report in memory. It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// Report implements Reporter.
func (r *Recorder) Report(msg string, kv ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Msg: msg, Context: append([]any(nil), kv...)})
}

// Entries returns a copy of everything reported so far.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...)
}
