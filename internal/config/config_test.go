package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amonks/unlockpath/internal/config"
	"github.com/amonks/unlockpath/internal/testsupport"
	"github.com/amonks/unlockpath/plan"
)

func writeGlobalConfig(t *testing.T, homeDir, content string) {
	t.Helper()

	configDir := filepath.Join(homeDir, ".config", "unlockpath")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write global config: %v", err)
	}
}

func writeProjectConfig(t *testing.T, dir, content string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, config.ProjectFile), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write project config: %v", err)
	}
}

func TestLoad_NotFound(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg == nil {
		t.Fatal("expected non-nil config")
	}
	if cfg.Plan.BatchSize != nil {
		t.Error("expected unset BatchSize")
	}
	if cfg.Graph.Path != "" {
		t.Error("expected empty graph path")
	}

	opts := cfg.Plan.Apply(plan.DefaultOptions())
	if opts != plan.DefaultOptions() {
		t.Fatalf("expected defaults to survive an empty config, got %+v", opts)
	}
}

func TestLoad_Full(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	writeProjectConfig(t, tmpDir, `
[plan]
iteration-limit = 0
candidate-cap = 8
batch-size = 3
closure-rounds = 10

[graph]
path = "data/kanji.json"
split = "runes"
`)

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	opts := cfg.Plan.Apply(plan.DefaultOptions())
	if opts.IterationLimit != 0 || opts.CandidateCap != 8 || opts.BatchSize != 3 || opts.ClosureRounds != 10 {
		t.Fatalf("unexpected options %+v", opts)
	}

	expected := filepath.Join(tmpDir, "data", "kanji.json")
	if cfg.Graph.Path != expected {
		t.Errorf("Graph.Path = %q, expected %q", cfg.Graph.Path, expected)
	}
	if cfg.Graph.Split != "runes" {
		t.Errorf("Graph.Split = %q, expected %q", cfg.Graph.Split, "runes")
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	writeProjectConfig(t, tmpDir, `this is not valid toml [`)

	_, err := config.Load(tmpDir)
	if err == nil {
		t.Error("expected error for invalid TOML")
	}
}

func TestLoad_UnknownKey(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	writeProjectConfig(t, tmpDir, `
[plan]
batch = 3
`)

	_, err := config.Load(tmpDir)
	if err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestLoad_UsesGlobalWhenProjectMissing(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)
	writeGlobalConfig(t, homeDir, `
[plan]
batch-size = 4

[graph]
path = "/data/global.json"
`)

	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Plan.BatchSize == nil || *cfg.Plan.BatchSize != 4 {
		t.Fatalf("expected global batch size to load, got %v", cfg.Plan.BatchSize)
	}
	if cfg.Graph.Path != "/data/global.json" {
		t.Errorf("Graph.Path = %q, expected %q", cfg.Graph.Path, "/data/global.json")
	}
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)
	writeGlobalConfig(t, homeDir, `
[plan]
batch-size = 4
candidate-cap = 12

[graph]
split = "fields"
`)

	repoDir := t.TempDir()
	writeProjectConfig(t, repoDir, `
[plan]
batch-size = 1

[graph]
split = "lines"
`)

	cfg, err := config.Load(repoDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	opts := cfg.Plan.Apply(plan.DefaultOptions())
	if opts.BatchSize != 1 {
		t.Errorf("BatchSize = %d, expected 1", opts.BatchSize)
	}
	if opts.CandidateCap != 12 {
		t.Errorf("CandidateCap = %d, expected 12", opts.CandidateCap)
	}
	if cfg.Graph.Split != "lines" {
		t.Errorf("Graph.Split = %q, expected %q", cfg.Graph.Split, "lines")
	}
}

func TestLoad_ProjectEmptyOverridesGlobal(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)
	writeGlobalConfig(t, homeDir, `
[graph]
path = "/data/global.json"
split = "runes"
`)

	repoDir := t.TempDir()
	writeProjectConfig(t, repoDir, `
[graph]
path = ""
split = ""
`)

	cfg, err := config.Load(repoDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graph.Path != "" {
		t.Errorf("Graph.Path = %q, expected empty string", cfg.Graph.Path)
	}
	if cfg.Graph.Split != "" {
		t.Errorf("Graph.Split = %q, expected empty string", cfg.Graph.Split)
	}
}
