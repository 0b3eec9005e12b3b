// Package tilemap loads the text level format into a read-only tile grid.
//
// Each line of the level is one row of tiles; every glyph is one cell:
//
//	.  floor (a space is floor too)
//	1  wall
//	2  wall, second variant
//	P  player spawn
//	M  mob spawn
package tilemap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"tilechase/geom"
)

var (
	// ErrEmptyMap is returned when a level has no rows.
	ErrEmptyMap = errors.New("tilemap: empty map")
	// ErrRaggedRows is returned when rows differ in length.
	ErrRaggedRows = errors.New("tilemap: ragged rows")
	// ErrUnknownTile is returned for a glyph outside the legend.
	ErrUnknownTile = errors.New("tilemap: unknown tile")
)

// Tile is the meaning of a single grid cell
type Tile int

const (
	TileFloor Tile = iota
	TileWall
	TileWall2
	TilePlayerSpawn
	TileMobSpawn
)

func (t Tile) String() string {
	switch t {
	case TileFloor:
		return "floor"
	case TileWall:
		return "wall"
	case TileWall2:
		return "wall2"
	case TilePlayerSpawn:
		return "player"
	case TileMobSpawn:
		return "mob"
	}
	return fmt.Sprintf("Tile(%d)", int(t))
}

// IsObstacle reports whether the tile blocks movement
func (t Tile) IsObstacle() bool {
	return t == TileWall || t == TileWall2
}

func tileFor(r rune) (Tile, bool) {
	switch r {
	case '.', ' ':
		return TileFloor, true
	case '1':
		return TileWall, true
	case '2':
		return TileWall2, true
	case 'P':
		return TilePlayerSpawn, true
	case 'M':
		return TileMobSpawn, true
	}
	return TileFloor, false
}

// Cell is a grid coordinate
type Cell struct {
	Col, Row int
}

// Obstacle is a static blocking tile. It never changes once the map is loaded.
type Obstacle struct {
	Cell
	Kind Tile
	Rect geom.Rect
}

// Map is a parsed level
type Map struct {
	rows  [][]Tile
	cols  int
	size  float64
	spawn map[Tile][]Cell
}

// Parse reads a level from r. tileSize is the world size of one cell.
func Parse(r io.Reader, tileSize float64) (*Map, error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("tilemap: invalid tile size %v", tileSize)
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("tilemap: read: %w", err)
	}

	// Empty lines at the end of the file are not rows. A line of spaces is a
	// row of floor.
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyMap
	}

	m := &Map{
		size:  tileSize,
		spawn: make(map[Tile][]Cell),
	}
	for y, line := range lines {
		glyphs := []rune(line)
		if y == 0 {
			m.cols = len(glyphs)
		} else if len(glyphs) != m.cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedRows, y, len(glyphs), m.cols)
		}

		row := make([]Tile, len(glyphs))
		for x, g := range glyphs {
			tile, ok := tileFor(g)
			if !ok {
				return nil, fmt.Errorf("%w: %q at row %d column %d", ErrUnknownTile, g, y, x)
			}
			row[x] = tile
			if tile == TilePlayerSpawn || tile == TileMobSpawn {
				m.spawn[tile] = append(m.spawn[tile], Cell{Col: x, Row: y})
			}
		}
		m.rows = append(m.rows, row)
	}
	if m.cols == 0 {
		return nil, ErrEmptyMap
	}

	return m, nil
}

// Load reads a level file from disk
func Load(path string, tileSize float64) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file %s: %w", path, err)
	}
	defer f.Close()

	m, err := Parse(f, tileSize)
	if err != nil {
		return nil, fmt.Errorf("failed to parse map file %s: %w", path, err)
	}
	return m, nil
}

// TileWidth returns the number of columns
func (m *Map) TileWidth() int { return m.cols }

// TileHeight returns the number of rows
func (m *Map) TileHeight() int { return len(m.rows) }

// TileSize returns the world size of one cell
func (m *Map) TileSize() float64 { return m.size }

// Width returns the map width in world units
func (m *Map) Width() float64 { return float64(m.cols) * m.size }

// Height returns the map height in world units
func (m *Map) Height() float64 { return float64(len(m.rows)) * m.size }

// At returns the tile at the given cell. Out of range cells read as floor.
func (m *Map) At(col, row int) Tile {
	if row < 0 || row >= len(m.rows) || col < 0 || col >= m.cols {
		return TileFloor
	}
	return m.rows[row][col]
}

// CellRect returns the world rectangle covered by a cell
func (m *Map) CellRect(c Cell) geom.Rect {
	return geom.R(float64(c.Col)*m.size, float64(c.Row)*m.size, m.size, m.size)
}

// CellCenter returns the world position at the middle of a cell
func (m *Map) CellCenter(c Cell) geom.Vec2 {
	return m.CellRect(c).Center()
}

// Obstacles returns every blocking tile in row-major order. The order is
// stable across calls; collision resolution depends on it.
func (m *Map) Obstacles() []Obstacle {
	var out []Obstacle
	for y, row := range m.rows {
		for x, tile := range row {
			if !tile.IsObstacle() {
				continue
			}
			c := Cell{Col: x, Row: y}
			out = append(out, Obstacle{Cell: c, Kind: tile, Rect: m.CellRect(c)})
		}
	}
	return out
}

// Spawns returns the cells marked with the given spawn tile, in row-major order
func (m *Map) Spawns(kind Tile) []Cell {
	cells := m.spawn[kind]
	out := make([]Cell, len(cells))
	copy(out, cells)
	return out
}
