package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/younwookim/tilekit/internal/domain/collision"
	"github.com/younwookim/tilekit/internal/domain/tile"
)

// Config holds the loaded data directory configuration
type Config struct {
	Physics    *PhysicsConfig
	Collisions *collision.Registry
	Groups     *tile.Groups
}

// Loader loads configuration files from an fs.FS
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a loader rooted at a directory
func NewLoader(dir string) *Loader {
	return &Loader{fsys: os.DirFS(dir)}
}

// NewFSLoader creates a loader over fsys
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// FS returns the underlying filesystem
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// LoadPhysics loads physics.json
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "physics.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read physics.json: %w", err)
	}

	var cfg PhysicsConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse physics.json: %w", err)
	}

	return &cfg, nil
}

// LoadCollisionConfig loads collisions.yaml without validating it
func (l *Loader) LoadCollisionConfig() (*CollisionConfig, error) {
	data, err := fs.ReadFile(l.fsys, "collisions.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read collisions.yaml: %w", err)
	}

	cfg, err := ParseCollisions(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse collisions.yaml: %w", err)
	}

	return cfg, nil
}

// LoadCollisions loads collisions.yaml and builds the registry
func (l *Loader) LoadCollisions() (*collision.Registry, error) {
	cfg, err := l.LoadCollisionConfig()
	if err != nil {
		return nil, err
	}

	registry, err := cfg.Registry()
	if err != nil {
		return nil, fmt.Errorf("invalid collisions.yaml: %w", err)
	}

	return registry, nil
}

// LoadGroups loads groups.yaml. A missing file yields an empty registry.
func (l *Loader) LoadGroups() (*tile.Groups, error) {
	data, err := fs.ReadFile(l.fsys, "groups.yaml")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return tile.NewGroups()
		}
		return nil, fmt.Errorf("failed to read groups.yaml: %w", err)
	}

	cfg, err := ParseGroups(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse groups.yaml: %w", err)
	}

	groups, err := cfg.Registry()
	if err != nil {
		return nil, fmt.Errorf("invalid groups.yaml: %w", err)
	}

	return groups, nil
}

// LoadStage loads a stage JSON file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	path := "stages/" + name + ".json"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
	}

	var cfg StageConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadAll loads physics, collisions and groups
func (l *Loader) LoadAll() (*Config, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	collisions, err := l.LoadCollisions()
	if err != nil {
		return nil, err
	}

	groups, err := l.LoadGroups()
	if err != nil {
		return nil, err
	}

	return &Config{
		Physics:    physics,
		Collisions: collisions,
		Groups:     groups,
	}, nil
}
