package adjlist_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/frontier/adjlist"
	"github.com/katalvlaran/frontier/core"
	"github.com/katalvlaran/frontier/dijkstra"
)

const fixture = "1\t2,7\t3,9\t6,14\n" +
	"2\t3,10\t4,15\n" +
	"3 4,11 3,0 6,2\n" + // spaces work too; 3,0 is a self-loop
	"\n" +
	"# comment line\n" +
	"4\t5,6\n" +
	"6\t5,9\n" +
	"7\n"

func TestParse_Fixture(t *testing.T) {
	g, err := adjlist.Parse(strings.NewReader(fixture))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, g.Vertices())
	require.Equal(t, 10, g.EdgeCount())
	require.Empty(t, g.Edges(7))

	out := g.Edges(1)
	require.Len(t, out, 3)
	require.Equal(t, "1→2(7)", out[0].String())
	require.Equal(t, "1→6(14)", out[2].String())

	dist, err := dijkstra.Dijkstra(g)
	require.NoError(t, err)
	require.Equal(t, map[int]int64{1: 0, 2: 7, 3: 9, 4: 20, 5: 20, 6: 11}, dist)
}

func TestParse_ReportsEveryBadLine(t *testing.T) {
	in := "1 2,7\n" +
		"x 2,1\n" + // bad vertex
		"2 3;4\n" + // bad separator
		"3 4,y\n" + // bad weight
		"4 z,1\n" + // bad destination
		"5 6,-1\n" + // negative weight
		"-6 1,1\n" // negative vertex
	g, err := adjlist.Parse(strings.NewReader(in))
	require.Nil(t, g)
	require.Error(t, err)
	require.True(t, errors.Is(err, adjlist.ErrSyntax))
	require.True(t, errors.Is(err, core.ErrNegativeWeight))
	require.True(t, errors.Is(err, core.ErrNegativeVertex))

	msg := err.Error()
	for _, want := range []string{"line 2", "line 3", "line 4", "line 5", "line 6", "line 7"} {
		require.Contains(t, msg, want)
	}
	require.NotContains(t, msg, "line 1:")
}

func TestParse_Empty(t *testing.T) {
	g, err := adjlist.Parse(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, 0, g.VertexCount())
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.txt")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o600))

	g, err := adjlist.ParseFile(path)
	require.NoError(t, err)
	require.Equal(t, 7, g.VertexCount())

	_, err = adjlist.ParseFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("1 2\n"), 0o600))
	_, err = adjlist.ParseFile(bad)
	require.ErrorIs(t, err, adjlist.ErrSyntax)
	require.Contains(t, err.Error(), "bad.txt")
}
