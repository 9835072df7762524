// SPDX-License-Identifier: MIT

// Package snapshot stores road graphs on disk and loads them back into a
// core.Graph.
//
// A snapshot is a flat document with two lists:
//
//	undirected: false
//	loops: false
//	nodes:
//	  - {id: "0", elevation: 120, lat: 40.01, lon: -105.27}
//	edges:
//	  - {from: "0", to: "1", length: 25}
//
// The same document may be written as JSON. Files ending in .json are
// read and written as JSON; everything else is YAML.
//
// Undirected snapshots list each segment once. Build lets the graph mirror it.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/elevroute/core"
)

// Format selects the on-disk encoding.
type Format int

const (
	// YAML is the default encoding.
	YAML Format = iota
	// JSON is used for files ending in .json.
	JSON
)

var (
	// ErrUnknownFormat is returned for a Format value outside YAML/JSON.
	ErrUnknownFormat = errors.New("snapshot: unknown format")

	// ErrInvalidSnapshot wraps any node or edge the graph refused.
	ErrInvalidSnapshot = errors.New("snapshot: invalid snapshot")
)

// Node is one intersection record.
type Node struct {
	ID        string   `yaml:"id" json:"id"`
	Elevation float64  `yaml:"elevation" json:"elevation"`
	Lat       *float64 `yaml:"lat,omitempty" json:"lat,omitempty"`
	Lon       *float64 `yaml:"lon,omitempty" json:"lon,omitempty"`
}

// Edge is one road segment record.
type Edge struct {
	From   string  `yaml:"from" json:"from"`
	To     string  `yaml:"to" json:"to"`
	Length float64 `yaml:"length" json:"length"`
}

// Snapshot is the serialisable form of a core.Graph.
type Snapshot struct {
	Undirected bool   `yaml:"undirected" json:"undirected"`
	Loops      bool   `yaml:"loops" json:"loops"`
	Nodes      []Node `yaml:"nodes" json:"nodes"`
	Edges      []Edge `yaml:"edges" json:"edges"`
}

// FormatFor picks the encoding from a file name.
func FormatFor(name string) Format {
	if strings.EqualFold(filepath.Ext(name), ".json") {
		return JSON
	}

	return YAML
}

// FromGraph captures g. Nodes come out sorted by ID and edges in insertion
// order; on undirected graphs the stored mirror of each segment is omitted.
func FromGraph(g *core.Graph) *Snapshot {
	s := &Snapshot{
		Undirected: g.Undirected(),
		Loops:      g.Looped(),
	}

	for _, id := range g.Vertices() {
		n, err := g.Node(id)
		if err != nil {
			continue
		}
		rec := Node{ID: n.ID, Elevation: n.Elevation}
		if n.HasCoords {
			lat, lon := n.Lat, n.Lon
			rec.Lat, rec.Lon = &lat, &lon
		}
		s.Nodes = append(s.Nodes, rec)
	}

	seen := make(map[[2]string]struct{})
	for _, e := range g.Edges() {
		if s.Undirected {
			if _, ok := seen[[2]string{e.To, e.From}]; ok {
				continue
			}
			seen[[2]string{e.From, e.To}] = struct{}{}
		}
		s.Edges = append(s.Edges, Edge{From: e.From, To: e.To, Length: e.Length})
	}

	return s
}

// Build creates a new graph from the snapshot. Node and edge errors from
// core are wrapped with ErrInvalidSnapshot and the offending record index.
func (s *Snapshot) Build() (*core.Graph, error) {
	var opts []core.GraphOption
	if s.Undirected {
		opts = append(opts, core.WithUndirected())
	}
	if s.Loops {
		opts = append(opts, core.WithLoops())
	}
	g := core.NewGraph(opts...)

	for i, n := range s.Nodes {
		var nopts []core.NodeOption
		if n.Lat != nil && n.Lon != nil {
			nopts = append(nopts, core.WithCoordinates(*n.Lat, *n.Lon))
		}
		if err := g.AddVertex(n.ID, n.Elevation, nopts...); err != nil {
			return nil, fmt.Errorf("%w: node %d (%q): %w", ErrInvalidSnapshot, i, n.ID, err)
		}
	}
	for i, e := range s.Edges {
		if _, err := g.AddEdge(e.From, e.To, e.Length); err != nil {
			return nil, fmt.Errorf("%w: edge %d (%s->%s): %w", ErrInvalidSnapshot, i, e.From, e.To, err)
		}
	}

	return g, nil
}

// Decode reads a snapshot from r.
func Decode(r io.Reader, f Format) (*Snapshot, error) {
	var s Snapshot
	switch f {
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("snapshot: parse YAML: %w", err)
		}
	case JSON:
		if err := json.NewDecoder(r).Decode(&s); err != nil {
			return nil, fmt.Errorf("snapshot: parse JSON: %w", err)
		}
	default:
		return nil, ErrUnknownFormat
	}

	return &s, nil
}

// Encode writes s to w.
func Encode(w io.Writer, s *Snapshot, f Format) error {
	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("snapshot: write YAML: %w", err)
		}

		return enc.Close()
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("snapshot: write JSON: %w", err)
		}

		return nil
	default:
		return ErrUnknownFormat
	}
}

// Load reads the snapshot at path and builds its graph.
func Load(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: open %s: %w", path, err)
	}
	defer f.Close()

	s, err := Decode(f, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s.Build()
}

// Save writes g to path, creating parent directories as needed.
func Save(path string, g *core.Graph) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("snapshot: create directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: create %s: %w", path, err)
	}
	if err := Encode(f, FromGraph(g), FormatFor(path)); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
