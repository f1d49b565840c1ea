package solve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_EmptyPath(t *testing.T) {
	t.Parallel()

	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfig_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), DefaultConfigPath)
	want := DefaultConfig()
	want.Output = OutputJSON
	want.MaxNodes = 99
	want.Extensions = []string{".in", ".txt"}

	require.NoError(t, WriteConfig(path, want))

	got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, Options{MaxNodes: 99}, got.Options())
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: json\n"), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, OutputJSON, config.Output)
	assert.True(t, config.Progress)
	assert.Equal(t, []string{".in"}, config.Extensions)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "unknown output", content: "output: xml\n", wantErr: ErrInvalidConfig},
		{name: "negative limit", content: "max_nodes: -3\n", wantErr: ErrInvalidConfig},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := LoadConfig(path)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfig_BadYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: [unclosed\n"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
