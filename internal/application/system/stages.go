package system

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/younwookim/tilekit/internal/domain/tile"
	"github.com/younwookim/tilekit/internal/infrastructure/config"
	"github.com/younwookim/tilekit/internal/infrastructure/logger"
	"github.com/younwookim/tilekit/internal/infrastructure/tmx"
)

const stagesDir = "stages"

// StageRepository loads stages from the stages directory of a data loader.
// A name resolves to stages/<name>.tmx when it exists, else stages/<name>.json.
type StageRepository struct {
	loader *config.Loader
	groups *tile.Groups
	log    *zap.Logger
}

// NewStageRepository creates a repository applying groups to every loaded stage
func NewStageRepository(loader *config.Loader, groups *tile.Groups) *StageRepository {
	return &StageRepository{
		loader: loader,
		groups: groups,
		log:    logger.Named("stages"),
	}
}

// Load loads one stage by name. Names ending in .tmx are paths inside the data directory.
func (r *StageRepository) Load(name string) (*tile.Stage, error) {
	fsys := r.loader.FS()

	if strings.HasSuffix(name, ".tmx") {
		return r.loadTMX(fsys, name)
	}

	tmxPath := path.Join(stagesDir, name+".tmx")
	if _, err := fs.Stat(fsys, tmxPath); err == nil {
		return r.loadTMX(fsys, tmxPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat stage %s: %w", name, err)
	}

	cfg, err := r.loader.LoadStage(name)
	if err != nil {
		return nil, err
	}
	stage := LoadStage(cfg, r.groups)
	if stage.Name == "" {
		stage.Name = name
	}
	r.log.Debug("loaded stage", zap.String("stage", stage.Name), zap.String("format", "json"),
		zap.Int("width", stage.WidthInTile()), zap.Int("height", stage.HeightInTile()))
	return stage, nil
}

func (r *StageRepository) loadTMX(fsys fs.FS, tmxPath string) (*tile.Stage, error) {
	stage, err := tmx.Load(fsys, tmxPath, r.groups)
	if err != nil {
		return nil, err
	}
	r.log.Debug("loaded stage", zap.String("stage", stage.Name), zap.String("format", "tmx"),
		zap.Int("width", stage.WidthInTile()), zap.Int("height", stage.HeightInTile()))
	return stage, nil
}

// LoadAll loads every named stage, stopping at the first error
func (r *StageRepository) LoadAll(names ...string) ([]*tile.Stage, error) {
	stages := make([]*tile.Stage, 0, len(names))
	for _, name := range names {
		stage, err := r.Load(name)
		if err != nil {
			return nil, err
		}
		stages = append(stages, stage)
	}
	return stages, nil
}

// Names lists the stage names found in the stages directory, sorted
func (r *StageRepository) Names() ([]string, error) {
	fsys := r.loader.FS()

	tmxNames, err := tmx.Discover(fsys, stagesDir)
	if err != nil {
		return nil, err
	}
	jsonFiles, err := fs.Glob(fsys, path.Join(stagesDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("glob stages: %w", err)
	}

	seen := make(map[string]struct{}, len(tmxNames)+len(jsonFiles))
	names := make([]string, 0, len(tmxNames)+len(jsonFiles))
	for _, name := range tmxNames {
		seen[name] = struct{}{}
		names = append(names, name)
	}
	for _, file := range jsonFiles {
		name := strings.TrimSuffix(path.Base(file), ".json")
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
