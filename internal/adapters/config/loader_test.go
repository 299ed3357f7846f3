package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mum/internal/adapters/config"
	"go.trai.ch/mum/internal/core/domain"
	"go.trai.ch/mum/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return config.NewLoader(mockLogger)
}

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func TestLoader_Load_Defaults(t *testing.T) {
	t.Parallel()
	cwd := t.TempDir()

	settings, err := newLoader(t).Load(cwd, "")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(cwd, ".mum", "tasks.json"), settings.TasksPath)
	assert.Equal(t, "info", settings.LogLevel)
	assert.False(t, settings.LogJSON)
	assert.Equal(t, domain.UIModeAuto, settings.UIMode)
	assert.Equal(t, domain.DefaultPrompt, settings.Prompt)
}

func TestLoader_Load_FullFile(t *testing.T) {
	t.Parallel()
	cwd := t.TempDir()
	createFile(t, cwd, domain.ConfigFileName, `
version: "1"
storage:
  path: data/tasks.json
log:
  json: true
  level: debug
ui:
  mode: line
  prompt: "> "
`)

	settings, err := newLoader(t).Load(cwd, "")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(cwd, "data", "tasks.json"), settings.TasksPath)
	assert.True(t, settings.LogJSON)
	assert.Equal(t, "debug", settings.LogLevel)
	assert.Equal(t, domain.UIModeLine, settings.UIMode)
	assert.Equal(t, "> ", settings.Prompt)
}

func TestLoader_Load_DiscoversParent(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	createFile(t, root, domain.ConfigFileName, "storage:\n  path: tasks.json\n")

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))

	settings, err := newLoader(t).Load(nested, "")
	require.NoError(t, err)

	// Relative storage paths resolve against the config file, not cwd.
	assert.Equal(t, filepath.Join(root, "tasks.json"), settings.TasksPath)
}

func TestLoader_Load_ExplicitPath(t *testing.T) {
	t.Parallel()
	cwd := t.TempDir()
	other := t.TempDir()
	createFile(t, other, "custom.yaml", "ui:\n  mode: tui\n")

	settings, err := newLoader(t).Load(cwd, filepath.Join(other, "custom.yaml"))
	require.NoError(t, err)

	assert.Equal(t, domain.UIModeTUI, settings.UIMode)
	assert.Equal(t, filepath.Join(other, ".mum", "tasks.json"), settings.TasksPath)
}

func TestLoader_Load_ExplicitRelativePath(t *testing.T) {
	t.Parallel()
	cwd := t.TempDir()
	createFile(t, cwd, "alt.yaml", "storage:\n  path: /var/tmp/mum.json\n")

	settings, err := newLoader(t).Load(cwd, "alt.yaml")
	require.NoError(t, err)

	assert.Equal(t, "/var/tmp/mum.json", settings.TasksPath)
}

func TestLoader_Load_EmptyPromptIsKept(t *testing.T) {
	t.Parallel()
	cwd := t.TempDir()
	createFile(t, cwd, domain.ConfigFileName, "ui:\n  prompt: \"\"\n")

	settings, err := newLoader(t).Load(cwd, "")
	require.NoError(t, err)

	assert.Empty(t, settings.Prompt)
}

func TestLoader_Load_UnknownVersionWarns(t *testing.T) {
	t.Parallel()
	cwd := t.TempDir()
	createFile(t, cwd, domain.ConfigFileName, "version: \"2\"\n")

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	_, err := config.NewLoader(mockLogger).Load(cwd, "")
	require.NoError(t, err)
}

func TestLoader_Load_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantIs  error
		wantMsg string
	}{
		{
			name:    "invalid yaml",
			content: "storage: [unterminated\n",
			wantMsg: domain.ErrConfigParseFailed.Error(),
		},
		{
			name:    "invalid ui mode",
			content: "ui:\n  mode: gui\n",
			wantIs:  domain.ErrInvalidUIMode,
		},
		{
			name:    "invalid log level",
			content: "log:\n  level: loud\n",
			wantIs:  domain.ErrInvalidLogLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cwd := t.TempDir()
			createFile(t, cwd, domain.ConfigFileName, tt.content)

			_, err := newLoader(t).Load(cwd, "")
			require.Error(t, err)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
			if tt.wantMsg != "" {
				assert.ErrorContains(t, err, tt.wantMsg)
			}
		})
	}
}

func TestLoader_Load_MissingExplicitFile(t *testing.T) {
	t.Parallel()
	cwd := t.TempDir()

	_, err := newLoader(t).Load(cwd, "nope.yaml")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}
