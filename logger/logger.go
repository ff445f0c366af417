// This file is part of the cortexa9 target driver.
//
// cortexa9 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// cortexa9 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with cortexa9.  If not, see <https://www.gnu.org/licenses/>.

// Package logger provides a minimal, ring-buffered, tag-prefixed log used
// throughout the target driver. There is no external collaborator for this:
// the driver talks to a debug probe, not a terminal, so log entries are
// buffered until something (the GDB frontend, a CLI, a test) asks for them
// with Write or Tail.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Permission is consulted before an entry is appended; when AllowLogging
// returns false the entry is dropped. It is not given the entry's tag, and
// the package-level Log and Logf always pass Allow.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool { return true }

// Allow is a Permission that always allows logging.
var Allow Permission = allow{}

type entry struct {
	tag    string
	detail string
}

func (e entry) String() string {
	return fmt.Sprintf("%s: %s\n", e.tag, e.detail)
}

// Logger is a fixed-capacity ring buffer of log entries.
type Logger struct {
	crit     sync.Mutex
	capacity int
	entries  []entry
}

// NewLogger creates a Logger that retains at most capacity entries. A
// capacity of zero or less places no limit on the number retained.
func NewLogger(capacity int) *Logger {
	return &Logger{capacity: capacity}
}

func detailString(detail any) string {
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

// Log appends a new entry if perm allows it.
func (l *Logger) Log(perm Permission, tag string, detail any) {
	if perm == nil || !perm.AllowLogging() {
		return
	}

	l.crit.Lock()
	defer l.crit.Unlock()

	l.entries = append(l.entries, entry{tag: tag, detail: detailString(detail)})
	if l.capacity > 0 && len(l.entries) > l.capacity {
		l.entries = l.entries[len(l.entries)-l.capacity:]
	}
}

// Logf is like Log but formats detail with fmt.Sprintf first.
func (l *Logger) Logf(perm Permission, tag string, format string, args ...any) {
	l.Log(perm, tag, fmt.Sprintf(format, args...))
}

// Clear empties the log.
func (l *Logger) Clear() {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.entries = l.entries[:0]
}

// Write dumps every retained entry to w, oldest first.
func (l *Logger) Write(w io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()

	var s strings.Builder
	for _, e := range l.entries {
		s.WriteString(e.String())
	}
	io.WriteString(w, s.String())
}

// Tail dumps the most recent n entries to w, oldest first. Asking for more
// entries than are retained is not an error.
func (l *Logger) Tail(w io.Writer, n int) {
	l.crit.Lock()
	defer l.crit.Unlock()

	if n > len(l.entries) {
		n = len(l.entries)
	}

	var s strings.Builder
	for _, e := range l.entries[len(l.entries)-n:] {
		s.WriteString(e.String())
	}
	io.WriteString(w, s.String())
}

// central is the package-level logger used by the target driver's default
// logging calls.
var central = NewLogger(1000)

// Log appends to the central logger.
func Log(tag string, detail any) {
	central.Log(Allow, tag, detail)
}

// Logf appends a formatted entry to the central logger.
func Logf(tag string, format string, args ...any) {
	central.Logf(Allow, tag, format, args...)
}

// Write dumps the central logger to w.
func Write(w io.Writer) {
	central.Write(w)
}

// Tail dumps the most recent n entries of the central logger to w.
func Tail(w io.Writer, n int) {
	central.Tail(w, n)
}

// Clear empties the central logger.
func Clear() {
	central.Clear()
}
