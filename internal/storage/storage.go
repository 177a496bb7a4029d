// Package storage writes extracted sample tests to the filesystem.
//
// Each problem gets its own directory named by the lower-cased problem
// identifier, containing <id>.in.<n> and <id>.out.<n> files numbered from 1
// in extraction order. Existing files are overwritten.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lovrop/codeforces-scraper/internal/problem"
)

// Writer persists examples under a root directory.
type Writer struct {
	rootDir string
}

// New creates a Writer rooted at dir, creating it if absent.
func New(dir string) (*Writer, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &Writer{rootDir: dir}, nil
}

// WriteExamples writes the examples for one problem and returns how many
// were written. Problem directories are independent, so concurrent calls
// for different problems need no coordination.
func (w *Writer) WriteExamples(problemID string, examples []problem.Example) (int, error) {
	name := strings.ToLower(problemID)
	dir := filepath.Join(w.rootDir, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("creating problem directory: %w", err)
	}

	for i, ex := range examples {
		inPath := filepath.Join(dir, fmt.Sprintf("%s.in.%d", name, i+1))
		if err := os.WriteFile(inPath, []byte(ex.Input), 0644); err != nil {
			return i, fmt.Errorf("writing input file: %w", err)
		}
		outPath := filepath.Join(dir, fmt.Sprintf("%s.out.%d", name, i+1))
		if err := os.WriteFile(outPath, []byte(ex.Output), 0644); err != nil {
			return i, fmt.Errorf("writing output file: %w", err)
		}
	}
	return len(examples), nil
}
