package contagiongo

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

var edgeLinePattern = regexp.MustCompile(`(\d+)\s+(\d+)\s+(\d*\.?\d+)`)

// LoadAdjacencyGraph creates a new AdjacencyGraph from a text file, following
// the teacher's LoadAdjacencyMatrix format (loader.go):
//
//	from_id<int>    to_id<int>    weight<float64>
//
// Lines starting with # are treated as comments and skipped. Each line adds
// a one-way weighted connection; an undirected edge requires two lines, one
// per direction, as the teacher's format does.
func LoadAdjacencyGraph(path string) (*AdjacencyGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrapf(err, "opening graph file %s", path)
	}
	defer f.Close()

	g := NewAdjacencyGraph()
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		res := edgeLinePattern.FindStringSubmatch(line)
		if len(res) == 0 {
			continue
		}
		u, err := strconv.Atoi(res[1])
		if err != nil {
			return nil, fmt.Errorf("%s in line %d", err, lineNo)
		}
		v, err := strconv.Atoi(res[2])
		if err != nil {
			return nil, fmt.Errorf("%s in line %d", err, lineNo)
		}
		w, err := strconv.ParseFloat(res[3], 64)
		if err != nil {
			return nil, fmt.Errorf("%s in line %d", err, lineNo)
		}
		if g.ConnectionExists(u, v) {
			return nil, fmt.Errorf("duplicate connection (%d,%d) in line %d", u, v, lineNo)
		}
		if err := g.AddWeightedConnection(u, v, w); err != nil {
			return nil, fmt.Errorf("%s in line %d", err, lineNo)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, wrapf(err, "reading graph file %s", path)
	}
	return g, nil
}
