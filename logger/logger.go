// This file is part of atari800core.
//
// atari800core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// atari800core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with atari800core.  If not, see <https://www.gnu.org/licenses/>.

// Package logger implements a ring-buffered log of tagged entries, queryable
// by tail length or dumped in full. Logging can be gated per-call by a
// Permission, so that noisy subsystems can be silenced without littering the
// call site with conditionals.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Permission is consulted by Log/Logf to decide whether an entry should be
// recorded at all.
type Permission interface {
	AllowLogging() bool
}

// allow is the zero-overhead Permission that always allows logging.
type allow struct{}

func (allow) AllowLogging() bool { return true }

// Allow is a Permission value that always allows logging.
var Allow Permission = allow{}

type entry struct {
	tag    string
	detail string
}

func (e entry) String() string {
	return fmt.Sprintf("%s: %s\n", e.tag, e.detail)
}

// Logger is a fixed-capacity ring of log entries.
type Logger struct {
	mu      sync.Mutex
	entries []entry
	size    int
	next    int
	count   int
}

// NewLogger is the preferred method of initialisation for the Logger type.
// size is the maximum number of entries retained; older entries are
// discarded once size is exceeded.
func NewLogger(size int) *Logger {
	return &Logger{
		entries: make([]entry, size),
		size:    size,
	}
}

func detailString(detail interface{}) string {
	switch d := detail.(type) {
	case error:
		return d.Error()
	case fmt.Stringer:
		return d.String()
	case string:
		return d
	default:
		return fmt.Sprintf("%v", d)
	}
}

// Log records a log entry if perm allows it. detail may be a string, an
// error, a fmt.Stringer, or any other value (formatted with %v).
func (l *Logger) Log(perm Permission, tag string, detail interface{}) {
	if perm != nil && !perm.AllowLogging() {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries[l.next] = entry{tag: tag, detail: detailString(detail)}
	l.next = (l.next + 1) % l.size
	if l.count < l.size {
		l.count++
	}
}

// Logf is like Log but formats detail using the given format string.
func (l *Logger) Logf(perm Permission, tag string, format string, a ...interface{}) {
	l.Log(perm, tag, fmt.Sprintf(format, a...))
}

// Clear empties the log.
func (l *Logger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.next = 0
	l.count = 0
}

// ordered returns the log entries in the order they were recorded, oldest
// first.
func (l *Logger) ordered() []entry {
	out := make([]entry, l.count)
	start := (l.next - l.count + l.size) % l.size
	for i := 0; i < l.count; i++ {
		out[i] = l.entries[(start+i)%l.size]
	}
	return out
}

// Write dumps the entire log to w.
func (l *Logger) Write(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var sb strings.Builder
	for _, e := range l.ordered() {
		sb.WriteString(e.String())
	}
	io.WriteString(w, sb.String())
}

// Tail writes the most recent n entries to w, oldest of the tail first. If n
// is greater than the number of entries recorded, every entry is written.
func (l *Logger) Tail(w io.Writer, n int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ord := l.ordered()
	if n > len(ord) {
		n = len(ord)
	}
	if n < 0 {
		n = 0
	}

	var sb strings.Builder
	for _, e := range ord[len(ord)-n:] {
		sb.WriteString(e.String())
	}
	io.WriteString(w, sb.String())
}
