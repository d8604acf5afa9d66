// Package levels holds the scene layouts: a tile grid whose physics layers
// become ground and hazards, plus the entities placed on top of it.
package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/milk9111/bunker/common"
	"github.com/milk9111/bunker/prefabs"
)

//go:embed *.json
var LevelsFS embed.FS

var overlay = prefabs.Overlay{Dir: "levels", FS: LevelsFS}

// DefaultTileSize is used when a level does not set tile_size.
const DefaultTileSize = 16

// Tile values on a physics layer.
const (
	TileEmpty  = 0
	TileSolid  = 1
	TileHazard = 2
)

// Scene names shipped with the game, in level-select order.
var Scenes = []string{"MainMenu", "Level0", "Level1", "Level2", "Memories", "CleanLevel"}

type Level struct {
	Name     string `json:"name"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	TileSize int    `json:"tile_size,omitempty"`
	// Layers is a list of flat row-major arrays of length Width*Height.
	Layers    [][]int     `json:"layers,omitempty"`
	LayerMeta []LayerMeta `json:"layer_meta,omitempty"`
	Entities  []Entity    `json:"entities,omitempty"`
}

type LayerMeta struct {
	HasPhysics bool   `json:"has_physics"`
	Color      string `json:"color"`
}

// Entity is a placed object. X and Y are world pixels.
type Entity struct {
	Type  string         `json:"type"`
	X     float64        `json:"x"`
	Y     float64        `json:"y"`
	Props map[string]any `json:"props,omitempty"`
}

// Load reads a scene by name, preferring levels/<name>.json on disk.
func Load(name string) (*Level, error) {
	file := name
	if !strings.HasSuffix(file, ".json") {
		file += ".json"
	}
	data, err := overlay.Read(file)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", name, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(file, ".json")
	}
	return lvl, nil
}

func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if lvl.Width <= 0 || lvl.Height <= 0 {
		return nil, fmt.Errorf("invalid level dimensions: %dx%d", lvl.Width, lvl.Height)
	}
	for i, layer := range lvl.Layers {
		if len(layer) != lvl.Width*lvl.Height {
			return nil, fmt.Errorf("layer %d has %d tiles, want %d", i, len(layer), lvl.Width*lvl.Height)
		}
	}
	if lvl.TileSize <= 0 {
		lvl.TileSize = DefaultTileSize
	}
	return &lvl, nil
}

// Bounds is the level's extent in world pixels.
func (l *Level) Bounds() common.Rect {
	ts := float64(l.TileSize)
	return common.Rect{Width: float64(l.Width) * ts, Height: float64(l.Height) * ts}
}

// Meta returns the metadata for layer i, defaulting to a decorative layer.
func (l *Level) Meta(i int) LayerMeta {
	if i >= 0 && i < len(l.LayerMeta) {
		return l.LayerMeta[i]
	}
	return LayerMeta{Color: "#3c78ff"}
}

// Runs merges each row of a layer's tiles of the given value into
// horizontal rectangles, top to bottom and left to right.
func (l *Level) Runs(layer, value int) []common.Rect {
	if layer < 0 || layer >= len(l.Layers) {
		return nil
	}
	tiles := l.Layers[layer]
	ts := float64(l.TileSize)
	var out []common.Rect
	for y := 0; y < l.Height; y++ {
		start := -1
		for x := 0; x <= l.Width; x++ {
			match := x < l.Width && tiles[y*l.Width+x] == value
			switch {
			case match && start < 0:
				start = x
			case !match && start >= 0:
				out = append(out, common.Rect{
					X:      float64(start) * ts,
					Y:      float64(y) * ts,
					Width:  float64(x-start) * ts,
					Height: ts,
				})
				start = -1
			}
		}
	}
	return out
}

// Float reads a numeric prop, returning def when absent or not a number.
func (e Entity) Float(key string, def float64) float64 {
	if v, ok := e.Props[key].(float64); ok {
		return v
	}
	return def
}

func (e Entity) Int(key string, def int) int {
	if v, ok := e.Props[key].(float64); ok {
		return int(v)
	}
	return def
}

func (e Entity) String(key string) string {
	if v, ok := e.Props[key].(string); ok {
		return v
	}
	return ""
}

// Points reads a prop holding [[x, y], ...].
func (e Entity) Points(key string) []common.Vec2 {
	raw, ok := e.Props[key].([]any)
	if !ok {
		return nil
	}
	out := make([]common.Vec2, 0, len(raw))
	for _, item := range raw {
		pair, ok := item.([]any)
		if !ok || len(pair) != 2 {
			continue
		}
		x, okX := pair[0].(float64)
		y, okY := pair[1].(float64)
		if okX && okY {
			out = append(out, common.V(x, y))
		}
	}
	return out
}

// Area is the rect of the given prop size centred on the entity.
func (e Entity) Area(defW, defH float64) common.Rect {
	return common.Centered(common.V(e.X, e.Y), e.Float("width", defW), e.Float("height", defH))
}
