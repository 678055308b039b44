package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"postrec/internal/config"
	"postrec/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	baseDir    string
	configPath string
	destDir    string
	sourceDir  string
	argsLog    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Setenv("POSTREC_FFMPEG", "")
	t.Setenv("POSTREC_ATOMICPARSLEY", "")

	cfg := testsupport.NewConfig(t, testsupport.WithStubbedTools())
	base := testsupport.BaseDir(cfg)
	env := &cliTestEnv{
		cfg:        cfg,
		baseDir:    base,
		configPath: filepath.Join(base, "config.toml"),
		destDir:    cfg.Paths.DestinationDir,
		sourceDir:  filepath.Join(base, "incoming"),
		argsLog:    testsupport.TagArgsLog(cfg),
	}
	testsupport.WriteConfigFile(t, env.configPath, cfg)
	return env
}

func (e *cliTestEnv) writeSource(t *testing.T, name string) string {
	t.Helper()
	return testsupport.WriteRecording(t, e.sourceDir, name)
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
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
