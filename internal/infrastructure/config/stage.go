package config

// StageConfig is the root config for stage JSON files
type StageConfig struct {
	ID          string                       `json:"id"`
	Name        string                       `json:"name"`
	Size        StageSizeConfig              `json:"size"`
	Layers      LayersConfig                 `json:"layers"`
	TileMapping map[string]TileMappingConfig `json:"tileMapping"`
}

// StageSizeConfig is in pixels; the tile grid is Width/TileSize by the row count
type StageSizeConfig struct {
	Width    int `json:"width"`
	Height   int `json:"height"`
	TileSize int `json:"tileSize"`
}

type LayersConfig struct {
	Tiles []string `json:"tiles"`
}

// TileMappingConfig maps a layer character to a sheet tile
type TileMappingConfig struct {
	Sheet  int `json:"sheet"`
	Number int `json:"number"`
}
