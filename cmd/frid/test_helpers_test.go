package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"frid/internal/catalog"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	cachePath  string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	cacheDir := filepath.Join(base, "cache")
	logDir := filepath.Join(base, "logs")

	configPath := filepath.Join(base, "config.toml")
	content := fmt.Sprintf(`[paths]
cache_dir = %q
log_dir = %q

[omdb]
api_key = "test-key"
series_id = "tt0108778"
series_name = "Friends"
season_count = 10

[matching]
min_score = 50
top_n = 3

[logging]
format = "console"
level = "error"
`, cacheDir, logDir)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write test config: %v", err)
	}

	return &cliTestEnv{
		baseDir:    base,
		configPath: configPath,
		cachePath:  filepath.Join(cacheDir, "episodes.json"),
	}
}

// seedCatalog writes a fresh catalog cache so commands serve from disk
// instead of reaching for the network.
func (env *cliTestEnv) seedCatalog(t *testing.T, episodes []catalog.Episode) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(env.cachePath), 0o755); err != nil {
		t.Fatalf("create cache dir: %v", err)
	}
	payload, err := json.MarshalIndent(episodes, "", "  ")
	if err != nil {
		t.Fatalf("marshal catalog: %v", err)
	}
	if err := os.WriteFile(env.cachePath, payload, 0o644); err != nil {
		t.Fatalf("write catalog cache: %v", err)
	}
}

func (env *cliTestEnv) writeTranscripts(t *testing.T, payload string) string {
	t.Helper()
	path := filepath.Join(env.baseDir, "transcripts.json")
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write transcripts: %v", err)
	}
	return path
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{}
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
