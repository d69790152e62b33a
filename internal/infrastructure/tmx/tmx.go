// Package tmx imports Tiled maps into tile stages.
package tmx

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/younwookim/tilekit/internal/domain/tile"
)

// GroupProperty is the tileset tile property naming the tile group
const GroupProperty = "group"

// ErrNoTileLayer is returned when a map has no matching tile layer
var ErrNoTileLayer = errors.New("no tile layer")

// Load reads the first tile layer of a TMX file.
// The sheet of a tile is the index of its tileset in the map, the number its local id.
func Load(fsys fs.FS, tmxPath string, groups *tile.Groups) (*tile.Stage, error) {
	return LoadLayer(fsys, tmxPath, "", groups)
}

// LoadLayer reads the tile layer called layerName, or the first one when empty
func LoadLayer(fsys fs.FS, tmxPath, layerName string, groups *tile.Groups) (*tile.Stage, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layer := findLayer(levelMap, layerName)
	if layer == nil {
		return nil, fmt.Errorf("load TMX %s: %w %q", tmxPath, ErrNoTileLayer, layerName)
	}

	sheets := make(map[*tiled.Tileset]int, len(levelMap.Tilesets))
	for i, ts := range levelMap.Tilesets {
		sheets[ts] = i
	}

	stage := tile.NewStage(levelMap.Width, levelMap.Height, levelMap.TileWidth, levelMap.TileHeight)
	stage.Name = strings.TrimSuffix(path.Base(tmxPath), ".tmx")

	for y := 0; y < levelMap.Height; y++ {
		for x := 0; x < levelMap.Width; x++ {
			lt := layer.Tiles[y*levelMap.Width+x]
			if lt == nil || lt.IsNil() {
				continue
			}
			ref := tile.Ref{Sheet: sheets[lt.Tileset], Number: int(lt.ID)}
			stage.Set(x, y, ref.Sheet, ref.Number, groupOf(lt, ref, groups))
		}
	}

	return stage, nil
}

func findLayer(m *tiled.Map, name string) *tiled.Layer {
	for _, layer := range m.Layers {
		if name == "" || layer.Name == name {
			return layer
		}
	}
	return nil
}

// groupOf prefers the tileset property over the registry
func groupOf(lt *tiled.LayerTile, ref tile.Ref, groups *tile.Groups) string {
	if lt.Tileset != nil {
		if tt, err := lt.Tileset.GetTilesetTile(lt.ID); err == nil {
			if g := tt.Properties.GetString(GroupProperty); g != "" {
				return g
			}
		}
	}
	return groups.GroupOf(ref)
}

// Discover lists the stem names of the .tmx files in dir, sorted
func Discover(fsys fs.FS, dir string) ([]string, error) {
	pattern := path.Join(dir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), ".tmx"))
	}
	sort.Strings(names)
	return names, nil
}
