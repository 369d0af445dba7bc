// Package config handles loading unlockpath.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/amonks/unlockpath/internal/paths"
	"github.com/amonks/unlockpath/plan"
)

// ProjectFile is the name of the per-directory configuration file.
const ProjectFile = "unlockpath.toml"

// Config represents the unlockpath.toml configuration file.
type Config struct {
	Plan  Plan  `toml:"plan"`
	Graph Graph `toml:"graph"`
}

// Plan contains scheduler defaults. Nil fields are unset.
type Plan struct {
	// IterationLimit caps scheduler iterations; negative means unbounded.
	IterationLimit *int `toml:"iteration-limit"`
	// CandidateCap is how many top-ranked prerequisites are searched.
	CandidateCap *int `toml:"candidate-cap"`
	// BatchSize is how many prerequisites are learned per batch.
	BatchSize *int `toml:"batch-size"`
	// ClosureRounds bounds the known-set closure expansion.
	ClosureRounds *int `toml:"closure-rounds"`
}

// Graph contains graph file defaults.
type Graph struct {
	// Path is the graph file. Relative project paths resolve against the
	// directory holding unlockpath.toml.
	Path string `toml:"path"`
	// Split is the default item list split mode.
	Split string `toml:"split"`
}

// Load loads configuration from the project directory and the global config file.
// Returns an empty config if no config files exist.
func Load(projectPath string) (*Config, error) {
	globalPath, err := globalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(projectPath, ProjectFile))
	if err != nil {
		return nil, err
	}
	projectCfg.Graph.Path = paths.ResolveRelative(projectPath, strings.TrimSpace(projectCfg.Graph.Path))

	merged := mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta)
	return merged, nil
}

// Apply overlays the configured plan values onto opts.
func (p Plan) Apply(opts plan.Options) plan.Options {
	if p.IterationLimit != nil {
		opts.IterationLimit = *p.IterationLimit
	}
	if p.CandidateCap != nil {
		opts.CandidateCap = *p.CandidateCap
	}
	if p.BatchSize != nil {
		opts.BatchSize = *p.BatchSize
	}
	if p.ClosureRounds != nil {
		opts.ClosureRounds = *p.ClosureRounds
	}
	return opts
}

func globalConfigPath() (string, error) {
	configDir, err := paths.DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: unknown key %s", path, undecoded[0])
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Config{}
	merged.Plan.IterationLimit = mergeInt(projectMeta.IsDefined("plan", "iteration-limit"), projectCfg.Plan.IterationLimit, globalCfg.Plan.IterationLimit)
	merged.Plan.CandidateCap = mergeInt(projectMeta.IsDefined("plan", "candidate-cap"), projectCfg.Plan.CandidateCap, globalCfg.Plan.CandidateCap)
	merged.Plan.BatchSize = mergeInt(projectMeta.IsDefined("plan", "batch-size"), projectCfg.Plan.BatchSize, globalCfg.Plan.BatchSize)
	merged.Plan.ClosureRounds = mergeInt(projectMeta.IsDefined("plan", "closure-rounds"), projectCfg.Plan.ClosureRounds, globalCfg.Plan.ClosureRounds)
	merged.Graph.Path = mergeString(projectMeta.IsDefined("graph", "path"), projectCfg.Graph.Path, globalCfg.Graph.Path)
	merged.Graph.Split = mergeString(projectMeta.IsDefined("graph", "split"), projectCfg.Graph.Split, globalCfg.Graph.Split)

	return &merged
}

func mergeInt(projectDefined bool, projectValue, globalValue *int) *int {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}
