package graphio

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := t.TempDir() + "/graph.txt"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseFileType(t *testing.T) {
	ft, err := ParseFileType("-e")
	require.NoError(t, err)
	assert.Equal(t, EdgeList, ft)

	ft, err = ParseFileType("-a")
	require.NoError(t, err)
	assert.Equal(t, AdjacencyList, ft)

	_, err = ParseFileType("-x")
	assert.Error(t, err)
}

func TestReadEdgeListTriangle(t *testing.T) {
	path := writeTemp(t, "3 3\n0 1\n1 2\n0 2\n")
	n, adj, alias, err := Read(EdgeList, path)
	require.NoError(t, err)

	assert.Equal(t, 3, n)
	assert.ElementsMatch(t, []int{1, 2}, adj[0])
	assert.ElementsMatch(t, []int{0, 2}, adj[1])
	assert.ElementsMatch(t, []int{0, 1}, adj[2])
	assert.Equal(t, []int{0, 1, 2}, alias)
}

func TestReadEdgeListDropsSelfLoopsAndDuplicates(t *testing.T) {
	path := writeTemp(t, "2 3\n0 0\n0 1\n0 1\n")
	n, adj, _, err := Read(EdgeList, path)
	require.NoError(t, err)

	assert.Equal(t, 2, n)
	assert.Equal(t, []int{1}, adj[0])
	assert.Equal(t, []int{0}, adj[1])
}

func TestReadEdgeListAliasesInEncounterOrder(t *testing.T) {
	// External labels 5 and 9, remapped to internal 0 and 1.
	path := writeTemp(t, "2 1\n5 9\n")
	n, adj, alias, err := Read(EdgeList, path)
	require.NoError(t, err)

	assert.Equal(t, 2, n)
	assert.Equal(t, []int{5, 9}, alias)
	assert.Equal(t, []int{1}, adj[0])
	assert.Equal(t, []int{0}, adj[1])
}

func TestReadEdgeListRejectsBadHeader(t *testing.T) {
	path := writeTemp(t, "0 0\n")
	_, _, _, err := Read(EdgeList, path)
	assert.Error(t, err)
}

func TestReadEdgeListTruncatedBody(t *testing.T) {
	path := writeTemp(t, "3 3\n0 1\n")
	_, _, _, err := Read(EdgeList, path)
	assert.Error(t, err)
}

func TestReadEdgeListRejectsExtraVertices(t *testing.T) {
	// Header declares 2 vertices but the edges reference 3 distinct labels.
	path := writeTemp(t, "2 2\n0 1\n1 2\n")
	_, _, _, err := Read(EdgeList, path)
	assert.Error(t, err)
}

func TestReadAdjacencyListOneBased(t *testing.T) {
	// vertex 1 (internal 0) lists neighbors 2 3; vertex 2 lists 1;
	// vertex 3 lists 1 and a trailing duplicate.
	path := writeTemp(t, "3 3\n2 3\n1\n1 1\n")
	n, adj, alias, err := Read(AdjacencyList, path)
	require.NoError(t, err)

	assert.Equal(t, 3, n)
	assert.Equal(t, []int{1, 2}, adj[0])
	assert.Equal(t, []int{0}, adj[1])
	assert.Equal(t, []int{0}, adj[2])
	assert.Equal(t, []int{1, 2, 3}, alias)
}

func TestReadAdjacencyListTrailingEmptyLineIsNeighborLess(t *testing.T) {
	path := writeTemp(t, "2 1\n2\n\n")
	n, adj, _, err := Read(AdjacencyList, path)
	require.NoError(t, err)

	assert.Equal(t, 2, n)
	assert.Equal(t, []int{1}, adj[0])
	assert.Empty(t, adj[1])
}

func TestReadMissingFile(t *testing.T) {
	_, _, _, err := Read(EdgeList, "/nonexistent/path/graph.txt")
	assert.Error(t, err)
}
