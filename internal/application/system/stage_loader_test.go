package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tilekit/internal/domain/tile"
	"github.com/younwookim/tilekit/internal/infrastructure/config"
)

func testGroups(t *testing.T) *tile.Groups {
	t.Helper()
	groups, err := tile.NewGroups(
		tile.TileGroup{Name: "block", Refs: []tile.Ref{{Sheet: 0, Number: 1}}},
		tile.TileGroup{Name: "slope", Refs: []tile.Ref{{Sheet: 0, Number: 2}}},
	)
	require.NoError(t, err)
	return groups
}

func TestLoadStage(t *testing.T) {
	t.Run("loads basic stage", func(t *testing.T) {
		cfg := &config.StageConfig{
			ID: "box",
			Size: config.StageSizeConfig{
				Width:    48,
				Height:   48,
				TileSize: 16,
			},
			Layers: config.LayersConfig{
				Tiles: []string{
					"###",
					"#.#",
					"###",
				},
			},
			TileMapping: map[string]config.TileMappingConfig{
				"#": {Sheet: 0, Number: 1},
			},
		}

		stage := LoadStage(cfg, testGroups(t))

		require.NotNil(t, stage)
		assert.Equal(t, "box", stage.Name)
		assert.Equal(t, 3, stage.WidthInTile())
		assert.Equal(t, 3, stage.HeightInTile())
		assert.Equal(t, 16, stage.TileWidth())
		assert.Equal(t, 16, stage.TileHeight())
	})

	t.Run("maps tiles and groups", func(t *testing.T) {
		cfg := &config.StageConfig{
			Size: config.StageSizeConfig{Width: 32, Height: 32, TileSize: 16},
			Layers: config.LayersConfig{
				Tiles: []string{
					"#/",
					"#x",
				},
			},
			TileMapping: map[string]config.TileMappingConfig{
				"#": {Sheet: 0, Number: 1},
				"/": {Sheet: 0, Number: 2},
				"x": {Sheet: 3, Number: 9},
			},
		}

		stage := LoadStage(cfg, testGroups(t))

		block := stage.Tile(0, 1)
		require.NotNil(t, block)
		assert.Equal(t, "block", block.Group)
		assert.Equal(t, 16, block.Y)

		slope := stage.Tile(1, 0)
		require.NotNil(t, slope)
		assert.Equal(t, "slope", slope.Group)

		unknown := stage.Tile(1, 1)
		require.NotNil(t, unknown)
		assert.Equal(t, tile.GroupNone, unknown.Group)
		assert.Equal(t, tile.Ref{Sheet: 3, Number: 9}, unknown.Ref())
	})

	t.Run("unmapped characters stay empty", func(t *testing.T) {
		cfg := &config.StageConfig{
			Size:   config.StageSizeConfig{Width: 32, Height: 16, TileSize: 16},
			Layers: config.LayersConfig{Tiles: []string{".#"}},
			TileMapping: map[string]config.TileMappingConfig{
				"#": {Sheet: 0, Number: 1},
			},
		}

		stage := LoadStage(cfg, nil)

		assert.Nil(t, stage.Tile(0, 0))
		require.NotNil(t, stage.Tile(1, 0))
		assert.Equal(t, tile.GroupNone, stage.Tile(1, 0).Group, "no registry means no groups")
	})

	t.Run("truncates rows wider than the stage", func(t *testing.T) {
		cfg := &config.StageConfig{
			Size:   config.StageSizeConfig{Width: 32, Height: 16, TileSize: 16},
			Layers: config.LayersConfig{Tiles: []string{"####"}},
			TileMapping: map[string]config.TileMappingConfig{
				"#": {Sheet: 0, Number: 1},
			},
		}

		stage := LoadStage(cfg, nil)

		assert.Equal(t, 2, stage.WidthInTile())
		assert.NotNil(t, stage.Tile(1, 0))
		assert.Nil(t, stage.Tile(2, 0))
	})
}
