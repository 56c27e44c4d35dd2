// Package graphio parses the two on-disk graph formats the CLI accepts:
// a plain edge list (-e) and a 1-based adjacency list (-a). Both formats
// declare "n m" on the first line; the rest of the file is read into
// per-vertex adjacency sets ready for graphcore.New to canonicalize.
package graphio

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/walteros-labs/maxclique/internal/clerr"
)

// FileType selects the input format.
type FileType int

const (
	EdgeList FileType = iota
	AdjacencyList
)

// ParseFileType maps the CLI's positional FILE_TYPE argument ("-e" / "-a")
// to a FileType.
func ParseFileType(s string) (FileType, error) {
	switch s {
	case "-e":
		return EdgeList, nil
	case "-a":
		return AdjacencyList, nil
	default:
		return 0, clerr.New(clerr.UsageError, `file type must be "-e" or "-a", got `+strconv.Quote(s))
	}
}

// Read opens path and parses it per fileType, returning an adjacency-set
// representation (n vertices, adj[v] the set of v's neighbors, alias[v]
// the external label of internal vertex v) suitable for graphcore.New.
func Read(fileType FileType, path string) (n int, adj [][]int, alias []int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, nil, clerr.Wrapf(clerr.InputIOError, err, "opening %s", path)
	}
	defer f.Close()

	switch fileType {
	case EdgeList:
		n, adj, alias, err = readEdgeList(f)
	case AdjacencyList:
		n, adj, alias, err = readAdjacencyList(f)
	default:
		err = clerr.New(clerr.UsageError, "unrecognized file type")
	}
	if err != nil {
		return 0, nil, nil, err
	}
	return n, adj, alias, nil
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)
	return sc
}

// readEdgeList parses "n m" followed by m whitespace-separated "i j" pairs
// using external vertex labels, aliasing each previously-unseen label to
// the next internal index in encounter order. Self-loops are dropped;
// duplicate edges are absorbed by the adjacency sets.
func readEdgeList(r io.Reader) (n int, adj [][]int, alias []int, err error) {
	sc := newScanner(r)
	sc.Split(bufio.ScanWords)

	next := func(what string) (int, error) {
		if !sc.Scan() {
			if e := sc.Err(); e != nil {
				return 0, clerr.Wrapf(clerr.InputIOError, e, "reading %s", what)
			}
			return 0, clerr.New(clerr.MalformedInput, "unexpected end of file reading "+what)
		}
		v, e := strconv.Atoi(sc.Text())
		if e != nil {
			return 0, clerr.Wrapf(clerr.MalformedInput, e, "parsing %s %q", what, sc.Text())
		}
		return v, nil
	}

	n, err = next("vertex count")
	if err != nil {
		return 0, nil, nil, err
	}
	m, err := next("edge count")
	if err != nil {
		return 0, nil, nil, err
	}
	if n <= 0 || m <= 0 {
		return 0, nil, nil, clerr.New(clerr.MalformedInput, "header declares n<=0 or m<=0")
	}

	nameMap := make(map[int]int, n)
	alias = make([]int, n)
	sets := make([]map[int]struct{}, n)
	for v := range sets {
		sets[v] = make(map[int]struct{})
	}
	counter := 0

	assign := func(label int) (int, error) {
		if idx, ok := nameMap[label]; ok {
			return idx, nil
		}
		if counter >= n {
			return 0, clerr.New(clerr.MalformedInput, "edge list references more distinct vertices than the declared header count")
		}
		idx := counter
		nameMap[label] = idx
		alias[idx] = label
		counter++
		return idx, nil
	}

	for e := 0; e < m; e++ {
		i, err := next("edge endpoint")
		if err != nil {
			return 0, nil, nil, err
		}
		j, err := next("edge endpoint")
		if err != nil {
			return 0, nil, nil, err
		}
		u, err := assign(i)
		if err != nil {
			return 0, nil, nil, err
		}
		v, err := assign(j)
		if err != nil {
			return 0, nil, nil, err
		}
		if u == v {
			continue
		}
		sets[u][v] = struct{}{}
		sets[v][u] = struct{}{}
	}

	adj = make([][]int, n)
	for v := 0; v < n; v++ {
		list := make([]int, 0, len(sets[v]))
		for u := range sets[v] {
			list = append(list, u)
		}
		adj[v] = list
	}
	return n, adj, alias, nil
}

// readAdjacencyList parses "n m" on the first line, then n further lines,
// each holding vertex i's (1-based) neighbor labels. alias[i] = i+1.
func readAdjacencyList(r io.Reader) (n int, adj [][]int, alias []int, err error) {
	sc := newScanner(r)

	if !sc.Scan() {
		return 0, nil, nil, clerr.New(clerr.MalformedInput, "empty input file")
	}
	header := strings.Fields(sc.Text())
	if len(header) < 2 {
		return 0, nil, nil, clerr.New(clerr.MalformedInput, "header line must contain n and m")
	}
	n, e1 := strconv.Atoi(header[0])
	m, e2 := strconv.Atoi(header[1])
	if e1 != nil || e2 != nil {
		return 0, nil, nil, clerr.New(clerr.MalformedInput, "header n/m must be integers")
	}
	if n <= 0 || m <= 0 {
		return 0, nil, nil, clerr.New(clerr.MalformedInput, "header declares n<=0 or m<=0")
	}

	alias = make([]int, n)
	adj = make([][]int, n)
	for i := 0; i < n; i++ {
		if !sc.Scan() {
			if e := sc.Err(); e != nil {
				return 0, nil, nil, clerr.Wrapf(clerr.InputIOError, e, "reading adjacency line %d", i)
			}
			return 0, nil, nil, clerr.Wrapf(clerr.MalformedInput, io.ErrUnexpectedEOF, "reading adjacency line %d", i)
		}
		alias[i] = i + 1

		seen := make(map[int]struct{})
		for _, tok := range strings.Fields(sc.Text()) {
			label, err := strconv.Atoi(tok)
			if err != nil {
				return 0, nil, nil, clerr.Wrapf(clerr.MalformedInput, err, "parsing adjacency line %d", i)
			}
			j := label - 1
			if j == i {
				continue
			}
			if _, ok := seen[j]; ok {
				continue
			}
			seen[j] = struct{}{}
			adj[i] = append(adj[i], j)
		}
	}
	return n, adj, alias, nil
}
