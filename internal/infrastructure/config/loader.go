package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/younwookim/tubejump/internal/infrastructure/tmxlevel"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics  *PhysicsConfig
	Entities *EntitiesConfig
}

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadPhysics loads physics.json
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	var cfg PhysicsConfig
	if err := l.readJSON("physics.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEntities loads entities.json
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	var cfg EntitiesConfig
	if err := l.readJSON("entities.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadLevels loads levels.json and imports any level that points at a TMX map.
func (l *Loader) LoadLevels() ([]LevelConfig, error) {
	var cfg LevelsConfig
	if err := l.readJSON("levels.json", &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Levels) == 0 {
		return nil, fmt.Errorf("levels.json has no levels")
	}

	for i := range cfg.Levels {
		lvl := &cfg.Levels[i]
		if lvl.TMX == "" {
			continue
		}
		imported, err := tmxlevel.Load(l.fsys, lvl.TMX)
		if err != nil {
			return nil, fmt.Errorf("failed to import level %q: %w", lvl.Name, err)
		}
		lvl.Grid = imported.Grid
		if lvl.Tubes == nil {
			lvl.Tubes = make(map[string]int, len(imported.Tubes))
		}
		for symbol, target := range imported.Tubes {
			if _, ok := lvl.Tubes[symbol]; !ok {
				lvl.Tubes[symbol] = target
			}
		}
	}

	return cfg.Levels, nil
}

// LoadAll loads all base configurations (physics, entities)
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Physics:  physics,
		Entities: entities,
	}, nil
}

func (l *Loader) readJSON(name string, v any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}
