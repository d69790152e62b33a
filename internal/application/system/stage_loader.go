package system

import (
	"github.com/younwookim/tilekit/internal/domain/tile"
	"github.com/younwookim/tilekit/internal/infrastructure/config"
)

// LoadStage converts a StageConfig into a tile stage.
// Characters without a mapping are left empty; groups come from the registry.
func LoadStage(cfg *config.StageConfig, groups *tile.Groups) *tile.Stage {
	tileSize := cfg.Size.TileSize
	width := 0
	if tileSize > 0 {
		width = cfg.Size.Width / tileSize
	}
	height := len(cfg.Layers.Tiles)

	stage := tile.NewStage(width, height, tileSize, tileSize)
	stage.Name = cfg.ID

	for y, row := range cfg.Layers.Tiles {
		x := 0
		for _, char := range row {
			if x >= width {
				break
			}
			if mapping, ok := cfg.TileMapping[string(char)]; ok {
				ref := tile.Ref{Sheet: mapping.Sheet, Number: mapping.Number}
				stage.Set(x, y, ref.Sheet, ref.Number, groups.GroupOf(ref))
			}
			x++
		}
	}

	return stage
}
