// Package outcomes persists outcome labels to an append-only text file, one
// label per line. The file is shared by every front-end and playthrough.
package outcomes

import (
	"os"
	"strings"
	"sync"
)

// FileLog appends to and reads back a plain-text outcomes file. Each append
// opens, writes one newline-terminated record in a single call, and closes,
// so concurrent appenders never interleave partial lines.
type FileLog struct {
	mu   sync.Mutex
	path string
}

func NewFileLog(path string) *FileLog {
	return &FileLog{path: path}
}

func (l *FileLog) Append(label string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	_, werr := f.Write([]byte(label + "\n"))
	cerr := f.Close()
	if werr != nil {
		return werr
	}
	return cerr
}

// ReadAll returns the recorded labels in write order. A missing file is an
// empty log, not an error.
func (l *FileLog) ReadAll() ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return splitLines(string(b)), nil
}

func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// MemoryLog is an in-process outcome log for tests and previews.
type MemoryLog struct {
	mu    sync.Mutex
	lines []string
	// Fail, when set, is returned from Append to exercise the best-effort
	// persistence path.
	Fail error
}

func NewMemoryLog() *MemoryLog {
	return &MemoryLog{}
}

func (l *MemoryLog) Append(label string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.Fail != nil {
		return l.Fail
	}
	l.lines = append(l.lines, label)
	return nil
}

func (l *MemoryLog) ReadAll() ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out, nil
}
