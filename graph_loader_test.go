package contagiongo

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempGraphFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.txt")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf(UnexpectedErrorWhileError, "writing a temporary graph file", err)
	}
	return path
}

func TestLoadAdjacencyGraph_ParsesWeightedEdges(t *testing.T) {
	path := writeTempGraphFile(t, "# comment line\n0 1 1.5\n1 2 2.0\n")
	g, err := LoadAdjacencyGraph(path)
	if err != nil {
		t.Fatalf(UnexpectedErrorWhileError, "loading a well-formed graph file", err)
	}
	if n := g.Order(); n != 3 {
		t.Errorf(UnequalIntParameterError, "graph order", 3, n)
	}
	w, ok := g.EdgeAttr(0, 1, "weight")
	if !ok || w != 1.5 {
		t.Errorf(UnequalFloatParameterError, "parsed edge weight", 1.5, w)
	}
}

func TestLoadAdjacencyGraph_RejectsDuplicateConnection(t *testing.T) {
	path := writeTempGraphFile(t, "0 1 1.0\n0 1 1.0\n")
	_, err := LoadAdjacencyGraph(path)
	if err == nil {
		t.Errorf(ExpectedErrorWhileError, "loading a graph file with a duplicate connection")
	}
}

func TestLoadAdjacencyGraph_MissingFile(t *testing.T) {
	_, err := LoadAdjacencyGraph(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	if err == nil {
		t.Errorf(ExpectedErrorWhileError, "loading a graph file that does not exist")
	}
}

func TestLoadAdjacencyGraph_SkipsCommentsAndBlankLines(t *testing.T) {
	path := writeTempGraphFile(t, "# header\n\n0 1 1.0\n# trailing comment\n")
	g, err := LoadAdjacencyGraph(path)
	if err != nil {
		t.Fatalf(UnexpectedErrorWhileError, "loading a graph file with comments and blank lines", err)
	}
	if n := g.Order(); n != 2 {
		t.Errorf(UnequalIntParameterError, "graph order after skipping comments/blank lines", 2, n)
	}
}
