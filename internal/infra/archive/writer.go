// Package archive persists generated summaries as plain text files on
// disk, one directory per user. This mirrors the database record so users
// can grab their summaries without going through the API.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"docbrief/internal/domain/entity"
)

// reUnsafe matches filename characters outside the allowed set. Everything
// else becomes an underscore so document names cannot escape the archive
// directory or break on foreign filesystems.
var reUnsafe = regexp.MustCompile(`[^\w\-_. ]`)

// Writer stores summary text files under a base directory.
type Writer struct {
	baseDir string
}

// NewWriter creates an archive writer rooted at baseDir. The directory is
// created on first write, not here.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// Write saves the summary under <base>/<user>/<doc>_<style>_<timestamp>.txt
// and returns the written path.
func (w *Writer) Write(userID, documentName string, style entity.Style, summary string, at time.Time) (string, error) {
	userDir := filepath.Join(w.baseDir, sanitize(userID))
	if err := os.MkdirAll(userDir, 0o750); err != nil {
		return "", fmt.Errorf("Write: %w", err)
	}

	name := fmt.Sprintf("%s_%s_%s.txt",
		sanitize(documentName), style, at.UTC().Format("20060102T150405"))
	path := filepath.Join(userDir, name)

	if err := os.WriteFile(path, []byte(summary), 0o600); err != nil {
		return "", fmt.Errorf("Write: %w", err)
	}
	return path, nil
}

func sanitize(s string) string {
	safe := reUnsafe.ReplaceAllString(s, "_")
	if safe == "" {
		return "_"
	}
	return safe
}
