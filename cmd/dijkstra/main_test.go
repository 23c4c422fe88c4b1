package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/frontier/adjlist"
)

const graph = "1\t2,7\t3,9\t6,14\n" +
	"2\t3,10\t4,15\n" +
	"3\t4,11\t6,2\n" +
	"4\t5,6\n" +
	"6\t5,9\n" +
	"7\n"

func writeGraph(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRun_AllVertices(t *testing.T) {
	out, logs, err := runCLI(t, writeGraph(t, graph))
	require.NoError(t, err)
	require.Equal(t, "Vertex: 1 shortest path length: 0\n"+
		"Vertex: 2 shortest path length: 7\n"+
		"Vertex: 3 shortest path length: 9\n"+
		"Vertex: 4 shortest path length: 20\n"+
		"Vertex: 5 shortest path length: 20\n"+
		"Vertex: 6 shortest path length: 11\n"+
		"Vertex: 7 shortest path length: no path\n", out)

	require.Contains(t, logs, `"msg":"graph loaded"`)
	require.Contains(t, logs, `"vertices":7`)
	require.Contains(t, logs, `"reached":6`)
	require.NotContains(t, logs, `"msg":"finalized"`)
}

func TestRun_Targets(t *testing.T) {
	path := writeGraph(t, graph)
	out, _, err := runCLI(t, "-targets", "5,7", path, "99", "4")
	require.NoError(t, err)
	require.Equal(t, "Vertex: 5 shortest path length: 20\n"+
		"Vertex: 7 shortest path length: no path\n"+
		"Vertex: 99 shortest path length: no path\n"+
		"Vertex: 4 shortest path length: 20\n", out)
}

func TestRun_SourceAndMaxDistance(t *testing.T) {
	path := writeGraph(t, graph)
	out, _, err := runCLI(t, "-source", "3", "-max-distance", "10", path, "3", "6", "4", "1")
	require.NoError(t, err)
	require.Equal(t, "Vertex: 3 shortest path length: 0\n"+
		"Vertex: 6 shortest path length: 2\n"+
		"Vertex: 4 shortest path length: no path\n"+
		"Vertex: 1 shortest path length: no path\n", out)
}

func TestRun_Verbose(t *testing.T) {
	_, logs, err := runCLI(t, "-v", writeGraph(t, graph), "5")
	require.NoError(t, err)
	require.Equal(t, 6, strings.Count(logs, `"msg":"finalized"`))
	require.Contains(t, logs, `"level":"DEBUG"`)
}

func TestRun_Errors(t *testing.T) {
	_, _, err := runCLI(t)
	require.ErrorContains(t, err, "missing graph file")

	_, _, err = runCLI(t, "-targets", "1,x", writeGraph(t, graph))
	require.ErrorContains(t, err, `invalid vertex "x"`)

	_, _, err = runCLI(t, writeGraph(t, graph), "-2")
	require.ErrorContains(t, err, `invalid vertex "-2"`)

	_, _, err = runCLI(t, writeGraph(t, "1 2;7\n"))
	require.ErrorIs(t, err, adjlist.ErrSyntax)

	_, _, err = runCLI(t, filepath.Join(t.TempDir(), "none.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = runCLI(t, "-h")
	require.True(t, errors.Is(err, flag.ErrHelp))
}
