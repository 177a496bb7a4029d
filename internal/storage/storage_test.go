package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lovrop/codeforces-scraper/internal/problem"
)

func TestWriteExamples(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)

	examples := []problem.Example{
		{Input: "3\n1 2 3", Output: "6"},
		{Input: "1\n7", Output: "7"},
	}

	n, err := w.WriteExamples("B1", examples)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for i, ex := range examples {
		in, err := os.ReadFile(filepath.Join(dir, "b1", fmt.Sprintf("b1.in.%d", i+1)))
		require.NoError(t, err)
		assert.Equal(t, ex.Input, string(in))

		out, err := os.ReadFile(filepath.Join(dir, "b1", fmt.Sprintf("b1.out.%d", i+1)))
		require.NoError(t, err)
		assert.Equal(t, ex.Output, string(out))
	}
}

func TestWriteExamplesOverwrites(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)

	_, err = w.WriteExamples("A", []problem.Example{{Input: "old in", Output: "old out"}})
	require.NoError(t, err)
	_, err = w.WriteExamples("A", []problem.Example{{Input: "new in", Output: "new out"}})
	require.NoError(t, err)

	in, err := os.ReadFile(filepath.Join(dir, "a", "a.in.1"))
	require.NoError(t, err)
	assert.Equal(t, "new in", string(in))
}

func TestWriteExamplesEmpty(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)

	n, err := w.WriteExamples("C", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	// The problem directory still gets created, matching a problem that
	// simply has no samples.
	info, err := os.Stat(filepath.Join(dir, "c"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewCreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "out")
	_, err := New(root)
	require.NoError(t, err)

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
