package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/judgeflow/config"
)

// isolate keeps the search paths away from any real judgeflow.yaml.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	return dir
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, &config.Config{Input: "-", Output: "-", LogLevel: "info", LogFormat: "console"}, cfg)
	assert.True(t, cfg.UsesStdin())
	assert.True(t, cfg.UsesStdout())
}

func TestLoadSearchPath(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, "judgeflow.yaml", "log_level: debug\ninput: cases.txt\n")

	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "cases.txt", cfg.Input)
	assert.False(t, cfg.UsesStdin())
}

func TestLoadExplicitFile(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "custom.yaml", "log_format: json\noutput: answers.txt\n")

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "answers.txt", cfg.Output)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := isolate(t)

	_, err := config.Load(filepath.Join(dir, "absent.yaml"), nil)
	require.Error(t, err)
}

func TestPrecedence(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "judgeflow.yaml", "log_level: debug\nlog_format: json\n")
	t.Setenv("JUDGEFLOW_LOG_LEVEL", "warn")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", "info", "")
	flags.String("log-format", "console", "")
	flags.StringP("input", "i", "-", "")

	// env beats file; unset flags do not override
	cfg, err := config.Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "-", cfg.Input)

	// a set flag beats env and file
	require.NoError(t, flags.Parse([]string{"--log-level=error", "-i", "in.txt"}))
	cfg, err = config.Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "in.txt", cfg.Input)
}

func TestValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"Level", "log_level: loud\n", "LogLevel"},
		{"Format", "log_format: xml\n", "LogFormat"},
		{"EmptyInput", "input: \"\"\n", "Input"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := isolate(t)
			path := writeFile(t, dir, "judgeflow.yaml", tc.body)

			_, err := config.Load(path, nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, config.ErrInvalidConfig))
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
