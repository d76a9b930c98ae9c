package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AppendLines appends the given lines to the file, one per line, creating the
// file and its parent directories as needed. Nothing is deduplicated: the
// spawn and skill artifacts accumulate across runs.
//
// Postcondition: either all lines are appended or an error is returned.
func AppendLines(path string, lines []string) error {
	if len(lines) == 0 {
		return nil
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening %s for append: %w", path, err)
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(strings.TrimRight(line, "\n"))
		b.WriteByte('\n')
	}

	if _, err := f.WriteString(b.String()); err != nil {
		f.Close()
		return fmt.Errorf("appending to %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// ResetFile truncates the file to empty, creating it and its parent
// directories as needed.
func ResetFile(path string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, nil, 0644); err != nil {
		return fmt.Errorf("truncating %s: %w", path, err)
	}
	return nil
}
