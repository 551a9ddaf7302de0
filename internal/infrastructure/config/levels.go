package config

// LevelsConfig is the root config for levels.json
type LevelsConfig struct {
	Levels []LevelConfig `json:"levels"`
}

// LevelConfig describes one level of the catalogue.
// Exactly one of Grid or TMX is expected; TMX is resolved at load time.
type LevelConfig struct {
	Name   string         `json:"name"`
	Secret bool           `json:"secret"`
	Tubes  map[string]int `json:"tubes,omitempty"`
	Grid   []string       `json:"grid,omitempty"`
	TMX    string         `json:"tmx,omitempty"`
}

// TubeTargets returns the tube mapping keyed by grid symbol.
// Keys that are not a single character are ignored.
func (l LevelConfig) TubeTargets() map[rune]int {
	targets := make(map[rune]int, len(l.Tubes))
	for key, target := range l.Tubes {
		r := []rune(key)
		if len(r) != 1 {
			continue
		}
		targets[r[0]] = target
	}
	return targets
}
