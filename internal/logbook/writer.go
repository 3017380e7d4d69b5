// Package logbook persists message reports as per-chat, per-day append-only
// text files and merges them into daily bundles.
package logbook

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"tgrelay/bot/internal/models"
)

// Unicode-aware: Persian and Cyrillic chat titles must keep their letters,
// or distinct chats would collapse onto one file.
var nonWord = regexp.MustCompile(`[^\p{L}\p{N}_]`)

// SanitizeChatName makes a chat name safe for use in a file name by
// replacing every non-word character with an underscore.
func SanitizeChatName(name string) string {
	return nonWord.ReplaceAllString(name, "_")
}

// Writer appends reports to per-chat, per-day log files.
type Writer struct {
	dir string
}

// NewWriter creates the log directory if needed and returns a Writer for it.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}
	return &Writer{dir: dir}, nil
}

// FileName returns the log file name for a chat on a given date.
func FileName(chatName, date string) string {
	return fmt.Sprintf("chat_%s_%s.txt", SanitizeChatName(chatName), date)
}

// Append writes the report followed by a blank line to the chat's file for
// the given date, creating the file on first write. The file handle is
// released immediately after the write.
func (w *Writer) Append(rep models.Report, date string) error {
	path := filepath.Join(w.dir, FileName(rep.ChatName, date))
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	_, werr := f.WriteString(rep.Text + "\n\n")
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("failed to write log file %s: %w", path, werr)
	}
	return cerr
}
