package snapshot_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/elevroute/core"
	"github.com/katalvlaran/elevroute/internal/testgraph"
	"github.com/katalvlaran/elevroute/route"
	"github.com/katalvlaran/elevroute/search"
	"github.com/katalvlaran/elevroute/snapshot"
)

const hillYAML = `
undirected: true
nodes:
  - {id: a, elevation: 100, lat: 40.01, lon: -105.27}
  - {id: b, elevation: 140}
  - {id: c, elevation: 90}
edges:
  - {from: a, to: b, length: 300}
  - {from: b, to: c, length: 250}
`

func TestDecode_YAML(t *testing.T) {
	s, err := snapshot.Decode(strings.NewReader(hillYAML), snapshot.YAML)
	require.NoError(t, err)
	require.Len(t, s.Nodes, 3)
	require.Len(t, s.Edges, 2)
	assert.True(t, s.Undirected)
	require.NotNil(t, s.Nodes[0].Lat)
	assert.Nil(t, s.Nodes[1].Lat)

	g, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, 4, g.EdgeCount(), "undirected segments are mirrored")

	l, err := g.EdgeLength("c", "b")
	require.NoError(t, err)
	assert.Equal(t, 250.0, l)

	n, err := g.Node("a")
	require.NoError(t, err)
	assert.True(t, n.HasCoords)
	assert.Equal(t, -105.27, n.Lon)
}

func TestDecode_JSON(t *testing.T) {
	doc := `{"nodes":[{"id":"x","elevation":1},{"id":"y","elevation":5}],"edges":[{"from":"x","to":"y","length":2}]}`
	s, err := snapshot.Decode(strings.NewReader(doc), snapshot.JSON)
	require.NoError(t, err)

	g, err := s.Build()
	require.NoError(t, err)
	assert.False(t, g.Undirected())
	assert.True(t, g.HasEdge("x", "y"))
	assert.False(t, g.HasEdge("y", "x"))
}

func TestDecode_Errors(t *testing.T) {
	_, err := snapshot.Decode(strings.NewReader("nodes: [\n"), snapshot.YAML)
	assert.Error(t, err)

	_, err = snapshot.Decode(strings.NewReader("{"), snapshot.JSON)
	assert.Error(t, err)

	_, err = snapshot.Decode(strings.NewReader(""), snapshot.Format(7))
	assert.ErrorIs(t, err, snapshot.ErrUnknownFormat)

	s, err := snapshot.Decode(strings.NewReader(""), snapshot.YAML)
	require.NoError(t, err, "an empty document is an empty graph")
	g, err := s.Build()
	require.NoError(t, err)
	assert.Zero(t, g.VertexCount())
}

func TestBuild_RejectsBadRecords(t *testing.T) {
	cases := map[string]struct {
		snap snapshot.Snapshot
		want error
	}{
		"empty id": {
			snap: snapshot.Snapshot{Nodes: []snapshot.Node{{ID: ""}}},
			want: core.ErrEmptyVertexID,
		},
		"dangling edge": {
			snap: snapshot.Snapshot{
				Nodes: []snapshot.Node{{ID: "a"}},
				Edges: []snapshot.Edge{{From: "a", To: "z", Length: 1}},
			},
			want: core.ErrVertexNotFound,
		},
		"negative length": {
			snap: snapshot.Snapshot{
				Nodes: []snapshot.Node{{ID: "a"}, {ID: "b"}},
				Edges: []snapshot.Edge{{From: "a", To: "b", Length: -3}},
			},
			want: core.ErrNegativeLength,
		},
		"loop without flag": {
			snap: snapshot.Snapshot{
				Nodes: []snapshot.Node{{ID: "a"}},
				Edges: []snapshot.Edge{{From: "a", To: "a"}},
			},
			want: core.ErrLoopNotAllowed,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := tc.snap.Build()
			assert.ErrorIs(t, err, snapshot.ErrInvalidSnapshot)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFromGraph_UndirectedOmitsMirrors(t *testing.T) {
	s, err := snapshot.Decode(strings.NewReader(hillYAML), snapshot.YAML)
	require.NoError(t, err)
	g, err := s.Build()
	require.NoError(t, err)

	back := snapshot.FromGraph(g)
	assert.Equal(t, s.Edges, back.Edges)
	assert.Equal(t, []string{"a", "b", "c"}, []string{back.Nodes[0].ID, back.Nodes[1].ID, back.Nodes[2].ID})
}

func TestSaveLoad_FilesKeepRoutes(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"five.yaml", "nested/five.json"} {
		t.Run(name, func(t *testing.T) {
			file := filepath.Join(dir, name)
			require.NoError(t, snapshot.Save(file, testgraph.FiveNode()))

			g, err := snapshot.Load(file)
			require.NoError(t, err)
			assert.Equal(t, snapshot.FromGraph(testgraph.FiveNode()), snapshot.FromGraph(g))

			res, err := route.FindRoute(g, "1", "4", 50, search.Maximize, route.ConstrainedDijkstra)
			require.NoError(t, err)
			assert.Equal(t, []string{"1", "3", "4"}, []string(res.Path))
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := snapshot.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEncode_JSONShape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, snapshot.Encode(&buf, snapshot.FromGraph(testgraph.Looped()), snapshot.JSON))
	assert.Contains(t, buf.String(), `"loops": true`)
	assert.Contains(t, buf.String(), `"from": "x"`)

	assert.ErrorIs(t, snapshot.Encode(&buf, &snapshot.Snapshot{}, snapshot.Format(9)), snapshot.ErrUnknownFormat)
	assert.Equal(t, snapshot.JSON, snapshot.FormatFor("a/B.JSON"))
	assert.Equal(t, snapshot.YAML, snapshot.FormatFor("a/b.yml"))
}
