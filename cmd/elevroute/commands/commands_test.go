package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/elevroute/internal/testgraph"
	"github.com/katalvlaran/elevroute/snapshot"
)

// resetFlags restores every flag in the tree to its default between runs.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func runCmd(t *testing.T, args ...string) (stdout string, err error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()

	return out.String(), err
}

func writeFixtures(t *testing.T) (five, trap string) {
	t.Helper()
	dir := t.TempDir()
	five = filepath.Join(dir, "five.yaml")
	trap = filepath.Join(dir, "trap.json")
	require.NoError(t, snapshot.Save(five, testgraph.FiveNode()))
	require.NoError(t, snapshot.Save(trap, testgraph.GreedyTrap()))

	return five, trap
}

func TestVersion(t *testing.T) {
	out, err := runCmd(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "elevroute dev")

	out, err = runCmd(t, "version", "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "[astar dijkstra exhaustive]")
}

func TestRoute_Text(t *testing.T) {
	five, _ := writeFixtures(t)

	out, err := runCmd(t, "route", "-g", five, "--from", "1", "--to", "4", "-t", "50", "-O", "max")
	require.NoError(t, err)
	assert.Contains(t, out, "path:      1 -> 3 -> 4\n")
	assert.Contains(t, out, "length:    35\n")
	assert.Contains(t, out, "gain:      20\n")
	assert.Contains(t, out, "budget:    37.5\n")
	assert.Contains(t, out, "algorithm: dijkstra (maximize)\n")
}

func TestRoute_JSON(t *testing.T) {
	five, _ := writeFixtures(t)

	out, err := runCmd(t, "route", "-g", five, "--from", "1", "--to", "4", "-t", "50",
		"-O", "minimize", "-a", "exhaustive", "--format", "json")
	require.NoError(t, err)

	var rep routeReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, []string{"1", "2", "4"}, rep.Path)
	assert.Equal(t, 5.0, rep.Gain)
	assert.Equal(t, "exhaustive", rep.Algorithm)
}

func TestRoute_ConfigDefaults(t *testing.T) {
	five, _ := writeFixtures(t)
	cfgFile := filepath.Join(t.TempDir(), "elevroute.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("graph: "+five+"\ndefaults:\n  algorithm: astar\n  objective: min\n  tolerance: 50\n"), 0o600))

	out, err := runCmd(t, "--config", cfgFile, "route", "--from", "1", "--to", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "path:      1 -> 2 -> 4\n")
	assert.Contains(t, out, "algorithm: astar (minimize)\n")

	// Flags win over the file.
	out, err = runCmd(t, "--config", cfgFile, "route", "--from", "1", "--to", "4", "-O", "none", "-t", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "path:      1 -> 0 -> 4\n")
	assert.Contains(t, out, "budget:    25\n")
}

func TestRoute_BaselineGuard(t *testing.T) {
	_, trap := writeFixtures(t)

	_, err := runCmd(t, "route", "-g", trap, "--from", "S", "--to", "E", "-O", "min")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--baseline-guard")

	out, err := runCmd(t, "route", "-g", trap, "--from", "S", "--to", "E", "-O", "min", "--baseline-guard")
	require.NoError(t, err)
	assert.Contains(t, out, "path:      S -> B -> A -> E\n")
}

func TestRoute_Errors(t *testing.T) {
	five, _ := writeFixtures(t)

	_, err := runCmd(t, "route", "--from", "1", "--to", "4")
	assert.ErrorContains(t, err, "graph snapshot is required")

	_, err = runCmd(t, "route", "-g", five, "--to", "4")
	assert.ErrorContains(t, err, "from")

	_, err = runCmd(t, "route", "-g", five, "--from", "1", "--to", "4", "-a", "bfs")
	assert.ErrorContains(t, err, "unknown algorithm")

	_, err = runCmd(t, "route", "-g", five, "--from", "1", "--to", "4", "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")

	_, err = runCmd(t, "route", "-g", filepath.Join(t.TempDir(), "none.yaml"), "--from", "1", "--to", "4")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGenerate_KOut(t *testing.T) {
	file := filepath.Join(t.TempDir(), "maps", "kout.yaml")

	out, err := runCmd(t, "generate", "kout", "-n", "12", "-k", "3", "--seed", "4", "--truncate", "-o", file)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+file+": 12 nodes")

	g, err := snapshot.Load(file)
	require.NoError(t, err)
	assert.Equal(t, 12, g.VertexCount())
	for _, e := range g.Edges() {
		assert.Equal(t, float64(int(e.Length)), e.Length, "truncated lengths are integers")
	}

	// The same seed reproduces the same file.
	again := filepath.Join(t.TempDir(), "again.yaml")
	_, err = runCmd(t, "generate", "kout", "-n", "12", "-k", "3", "--seed", "4", "--truncate", "-o", again)
	require.NoError(t, err)
	a, _ := os.ReadFile(file)
	b, _ := os.ReadFile(again)
	assert.Equal(t, string(a), string(b))
}

func TestGenerate_Terrain(t *testing.T) {
	file := filepath.Join(t.TempDir(), "grid.json")

	_, err := runCmd(t, "generate", "terrain", "--rows", "3", "--cols", "4", "--ridge", "25", "-o", file)
	require.NoError(t, err)

	g, err := snapshot.Load(file)
	require.NoError(t, err)
	assert.Equal(t, 12, g.VertexCount())
	assert.Equal(t, 34, g.EdgeCount(), "17 two-way streets")
	assert.True(t, g.HasEdge("1,2", "1,1"))
}

func TestGenerate_Errors(t *testing.T) {
	_, err := runCmd(t, "generate", "kout", "-n", "5")
	assert.ErrorContains(t, err, "output")

	file := filepath.Join(t.TempDir(), "x.yaml")
	_, err = runCmd(t, "generate", "kout", "-o", file, "--min-elevation", "50", "--max-elevation", "10")
	assert.ErrorContains(t, err, "below")

	_, err = runCmd(t, "generate", "kout", "-o", file, "--ids", "roman")
	assert.ErrorContains(t, err, "unknown --ids")

	_, err = runCmd(t, "generate", "kout", "-o", file, "--ids", "symbol")
	assert.ErrorContains(t, err, "at most 26")

	_, err = runCmd(t, "generate", "kout", "-o", file, "-n", "0")
	assert.Error(t, err)
}
