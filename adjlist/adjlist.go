// Package adjlist reads directed weighted graphs written one vertex per line
// as "vertex dest,weight dest,weight ...".
//
// Fields are separated by any run of whitespace (the classic data files use
// tabs). Blank lines and lines whose first field starts with '#' are
// skipped. A line holding only a vertex registers it with no outgoing edges.
//
//	1	2,7	3,9	6,14
//	2	3,10	4,15
//	5
//
// Every malformed line is reported, not just the first one; the returned
// error matches ErrSyntax (or core.ErrNegativeVertex / core.ErrNegativeWeight)
// under errors.Is.
package adjlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cloudeng.io/errors"

	"github.com/katalvlaran/frontier/core"
)

// ErrSyntax indicates a line that does not follow the adjacency-list format.
var ErrSyntax = errors.New("adjlist: syntax error")

// maxLineBytes bounds a single line; high-degree vertices produce long lines.
const maxLineBytes = 16 << 20

// Parse reads a graph from r.
func Parse(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph()
	errs := errors.M{}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for line := 1; sc.Scan(); line++ {
		errs.Append(parseLine(g, line, sc.Text()))
	}
	if err := sc.Err(); err != nil {
		errs.Append(fmt.Errorf("adjlist: read: %w", err))
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	return g, nil
}

// ParseFile opens path and parses its contents.
func ParseFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

func parseLine(g *core.Graph, line int, text string) error {
	fields := strings.Fields(text)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	from, err := strconv.Atoi(fields[0])
	if err != nil {
		return fmt.Errorf("%w: line %d: vertex %q is not an integer", ErrSyntax, line, fields[0])
	}
	if err = g.AddVertex(from); err != nil {
		return fmt.Errorf("line %d: %w", line, err)
	}

	for _, field := range fields[1:] {
		dst, wt, ok := strings.Cut(field, ",")
		if !ok {
			return fmt.Errorf("%w: line %d: edge %q is not dest,weight", ErrSyntax, line, field)
		}
		to, err := strconv.Atoi(dst)
		if err != nil {
			return fmt.Errorf("%w: line %d: destination %q is not an integer", ErrSyntax, line, dst)
		}
		weight, err := strconv.ParseInt(wt, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: line %d: weight %q is not an integer", ErrSyntax, line, wt)
		}
		if err = g.AddEdge(from, to, weight); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}

	return nil
}
