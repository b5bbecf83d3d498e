package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/bostanberkay/TREN/pipeline"
)

func testCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	modelFlags(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags(%q): %v", args, err)
	}
	return cmd
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tren.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestResolveConfigDefaults(t *testing.T) {
	cmd := testCommand(t)
	cfg, err := resolveConfig(cmd)
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if cfg != pipeline.Default() {
		t.Errorf("resolveConfig = %+v, want defaults %+v", cfg, pipeline.Default())
	}
}

func TestResolveConfigFileOverlay(t *testing.T) {
	path := writeConfig(t, `
[features]
per_item = false

[lid]
en_min = 0.9

[mixed]
emit_suffix = true
`)
	cmd := testCommand(t, "--config", path)
	cfg, err := resolveConfig(cmd)
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if cfg.PerItem {
		t.Errorf("PerItem = true, want false from file")
	}
	if cfg.ENMin != 0.9 {
		t.Errorf("ENMin = %v, want 0.9 from file", cfg.ENMin)
	}
	if !cfg.EmitMixedSuffix {
		t.Errorf("EmitMixedSuffix = false, want true from file")
	}
	// Keys absent from the file keep their defaults.
	if !cfg.Matrix || !cfg.NER || cfg.TRMin != 0.80 || cfg.MixedTRWeight != 0.6 {
		t.Errorf("unset keys changed: %+v", cfg)
	}
}

func TestResolveConfigFlagBeatsFile(t *testing.T) {
	path := writeConfig(t, `
[lid]
en_min = 0.9

[features]
sentence_id = false
`)
	cmd := testCommand(t, "--config", path, "--en-min", "0.7", "--sentence-id=true")
	cfg, err := resolveConfig(cmd)
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if cfg.ENMin != 0.7 {
		t.Errorf("ENMin = %v, want flag value 0.7", cfg.ENMin)
	}
	if !cfg.SentenceID {
		t.Errorf("SentenceID = false, want flag value true")
	}
}

func TestResolveConfigExplicitMissingFile(t *testing.T) {
	cmd := testCommand(t, "--config", filepath.Join(t.TempDir(), "absent.toml"))
	if _, err := resolveConfig(cmd); err == nil {
		t.Fatalf("resolveConfig succeeded with a missing --config file")
	}
}

func TestResolveConfigImplicitPickup(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, defaultConfigName), []byte("[ner]\nenabled = false\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})

	cfg, err := resolveConfig(testCommand(t))
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if cfg.NER {
		t.Errorf("NER = true, want false from implicit %s", defaultConfigName)
	}
}

func TestResolveConfigRejectsBadThreshold(t *testing.T) {
	path := writeConfig(t, "[lid]\nen_min = 1.5\n")
	if _, err := resolveConfig(testCommand(t, "--config", path)); err == nil {
		t.Fatalf("resolveConfig accepted en_min = 1.5")
	}
}

func TestResolveConfigParseError(t *testing.T) {
	path := writeConfig(t, "[lid\nen_min = ")
	_, err := resolveConfig(testCommand(t, "--config", path))
	if err == nil {
		t.Fatalf("resolveConfig accepted malformed TOML")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Errorf("error = %v, want a parse config error", err)
	}
}

func TestBuildModelRejectsLoneDictFlag(t *testing.T) {
	cmd := testCommand(t, "--dict-tr", "only.txt")
	if _, err := buildModel(cmd); err == nil {
		t.Fatalf("buildModel accepted --dict-tr without --dict-en")
	}
}

func TestBuildModelRejectsUnknownLID(t *testing.T) {
	cmd := testCommand(t, "--lid", "fasttext")
	if _, err := buildModel(cmd); err == nil {
		t.Fatalf("buildModel accepted unknown --lid backend")
	}
}
