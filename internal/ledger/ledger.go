// Package ledger implements the known-issues list: a persisted set of
// (rule, path data) pairs whose failures are accepted and suppressed.
//
// A Ledger works in one of two modes, chosen when it is created:
//
//   - Loaded: read from disk, read-only; listed failures are suppressed.
//   - Regenerating: starts empty, write-only; every failure is recorded
//     and the result is written back once with Flush.
package ledger

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/gogpu/iconlint"
)

// Mode selects how a Ledger behaves for the whole run.
type Mode int

const (
	// Loaded suppresses failures listed in the persisted ledger.
	Loaded Mode = iota
	// Regenerating rebuilds the ledger from the failures observed.
	Regenerating
)

func (m Mode) String() string {
	switch m {
	case Loaded:
		return "loaded"
	case Regenerating:
		return "regenerating"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

var (
	// ErrAlreadyFlushed is returned by Flush after the first call.
	ErrAlreadyFlushed = errors.New("ledger: already flushed")
	// ErrReadOnly is returned when flushing a Loaded ledger.
	ErrReadOnly = errors.New("ledger: loaded ledger is read-only")
)

// Ledger maps rule name to path data to the icon display name.
// It is safe for concurrent use.
type Ledger struct {
	mode Mode

	mu      sync.Mutex
	entries map[string]map[string]string
	flushed bool
}

// New returns an empty ledger in the given mode.
func New(mode Mode) *Ledger {
	return &Ledger{mode: mode, entries: make(map[string]map[string]string)}
}

// NewLoaded returns a Loaded ledger holding a copy of entries.
func NewLoaded(entries map[string]map[string]string) *Ledger {
	l := New(Loaded)
	for rule, paths := range entries {
		m := make(map[string]string, len(paths))
		for p, icon := range paths {
			m[p] = icon
		}
		l.entries[rule] = m
	}
	return l
}

// Open prepares the ledger for a run. In Regenerating mode the file is
// never read and the ledger starts empty. In Loaded mode the file is read;
// a missing file yields an empty ledger unless required is set, a corrupt
// file is always an error.
func Open(path string, mode Mode, required bool) (*Ledger, error) {
	if mode == Regenerating {
		iconlint.Logger().Debug("ledger: regenerating", "file", path)
		return New(Regenerating), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			iconlint.Logger().Debug("ledger: no file, starting empty", "file", path)
			return New(Loaded), nil
		}
		return nil, fmt.Errorf("ledger: %w", err)
	}

	var entries map[string]map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("ledger: %s: %w", path, err)
	}
	l := NewLoaded(entries)
	iconlint.Logger().Debug("ledger: loaded", "file", path, "entries", l.Len())
	return l, nil
}

// Mode returns the mode the ledger was created with.
func (l *Ledger) Mode() Mode {
	return l.mode
}

// Suppressed reports whether a failure of rule on path is a known issue.
// A Regenerating ledger never suppresses.
func (l *Ledger) Suppressed(rule, path string) bool {
	if l.mode != Loaded {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.entries[rule][path]
	return ok
}

// Record notes a failure of rule on path for the icon named icon.
// It is a no-op on a Loaded ledger. The last record for a key wins.
func (l *Ledger) Record(rule, path, icon string) {
	if l.mode != Regenerating {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.entries[rule]
	if !ok {
		m = make(map[string]string)
		l.entries[rule] = m
	}
	m[path] = icon
}

// Len returns the total number of (rule, path) entries.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, m := range l.entries {
		n += len(m)
	}
	return n
}

// Entries returns a copy of the ledger contents.
func (l *Ledger) Entries() map[string]map[string]string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[string]map[string]string, len(l.entries))
	for rule, paths := range l.entries {
		m := make(map[string]string, len(paths))
		for p, icon := range paths {
			m[p] = icon
		}
		out[rule] = m
	}
	return out
}

// Flush writes a Regenerating ledger to path. It succeeds at most once
// per ledger; later calls return ErrAlreadyFlushed.
func (l *Ledger) Flush(path string) error {
	if l.mode != Regenerating {
		return ErrReadOnly
	}
	l.mu.Lock()
	if l.flushed {
		l.mu.Unlock()
		return ErrAlreadyFlushed
	}
	l.flushed = true
	l.mu.Unlock()

	var buf bytes.Buffer
	if _, err := l.WriteTo(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("ledger: %w", err)
	}
	iconlint.Logger().Info("ledger: flushed", "file", path, "entries", l.Len())
	return nil
}

type entry struct {
	path, icon string
}

// WriteTo writes the ledger as indented JSON: rule names in ascending
// order, and within a rule the paths ordered by icon name using
// locale-aware collation, then by path.
func (l *Ledger) WriteTo(w io.Writer) (int64, error) {
	entries := l.Entries()

	rules := make([]string, 0, len(entries))
	for rule := range entries {
		rules = append(rules, rule)
	}
	sort.Strings(rules)

	col := collate.New(language.Und)
	var buf bytes.Buffer
	if len(rules) == 0 {
		buf.WriteString("{}\n")
	} else {
		buf.WriteString("{\n")
		for i, rule := range rules {
			list := make([]entry, 0, len(entries[rule]))
			for p, icon := range entries[rule] {
				list = append(list, entry{path: p, icon: icon})
			}
			sort.Slice(list, func(a, b int) bool {
				if c := col.CompareString(list[a].icon, list[b].icon); c != 0 {
					return c < 0
				}
				return list[a].path < list[b].path
			})

			buf.WriteString("  ")
			writeString(&buf, rule)
			buf.WriteString(": {\n")
			for j, e := range list {
				buf.WriteString("    ")
				writeString(&buf, e.path)
				buf.WriteString(": ")
				writeString(&buf, e.icon)
				if j < len(list)-1 {
					buf.WriteByte(',')
				}
				buf.WriteByte('\n')
			}
			buf.WriteString("  }")
			if i < len(rules)-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		buf.WriteString("}\n")
	}

	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

// writeString writes s as a JSON string without HTML escaping.
func writeString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s) // strings always encode
	buf.Truncate(buf.Len() - 1)
}
