package cmd

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteros-labs/maxclique/internal/clerr"
)

func writeGraphFile(t *testing.T, content string) string {
	t.Helper()
	p := path.Join(t.TempDir(), "graph.txt")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestRunDegeneracyMode(t *testing.T) {
	p := writeGraphFile(t, "3 3\n0 1\n1 2\n0 2\n")
	assert.NoError(t, run(nil, []string{"-e", p, "-d"}))
}

func TestRunMaxCliqueMode(t *testing.T) {
	p := writeGraphFile(t, "6 7\n0 1\n0 2\n1 2\n2 3\n3 4\n3 5\n4 5\n")
	assert.NoError(t, run(nil, []string{"-e", p, "-m", "2"}))
}

func TestRunAdjacencyListMode(t *testing.T) {
	// Six-cycle in 1-based adjacency form.
	p := writeGraphFile(t, "6 6\n2 6\n1 3\n2 4\n3 5\n4 6\n5 1\n")
	assert.NoError(t, run(nil, []string{"-a", p, "-m"}))
}

func TestRunRejectsUnknownFileType(t *testing.T) {
	err := run(nil, []string{"-z", "whatever", "-d"})
	require.Error(t, err)
	assert.Equal(t, 64, clerr.ExitCode(err))
}

func TestRunRejectsUnknownMode(t *testing.T) {
	p := writeGraphFile(t, "2 1\n0 1\n")
	err := run(nil, []string{"-e", p, "-x"})
	require.Error(t, err)
	assert.Equal(t, 64, clerr.ExitCode(err))
}

func TestRunMissingInputFile(t *testing.T) {
	err := run(nil, []string{"-e", "/nonexistent/graph.txt", "-d"})
	require.Error(t, err)
	assert.Equal(t, 2, clerr.ExitCode(err))
}
