package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DragBoard/internal/drag"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, FrontendDesktop, cfg.Frontend)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, float32(1024), cfg.Window.Width)
	assert.Equal(t, drag.Pt(10, 10), cfg.Rect.Seed())
	assert.Equal(t, 64, cfg.Drag.Buffer)

	style, err := cfg.Drag.ParsedStyle()
	require.NoError(t, err)
	assert.Equal(t, drag.StyleSync, style)

	policy, err := cfg.Drag.Policy()
	require.NoError(t, err)
	assert.Equal(t, drag.ReentryReset, policy)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dragboard.yaml")
	data := []byte(`
frontend: terminal
rect:
  x: 3.5
  y: 7
drag:
  style: imperative
  reentry: ignore
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FrontendTerminal, cfg.Frontend)
	assert.Equal(t, drag.Pt(3.5, 7), cfg.Rect.Seed())
	assert.Equal(t, "imperative", cfg.Drag.Style)
	assert.Equal(t, "ignore", cfg.Drag.Reentry)
	assert.Equal(t, float32(120), cfg.Rect.Width)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("DRAGBOARD_DRAG_STYLE", "observable")
	t.Setenv("DRAGBOARD_RECT_X", "42")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "observable", cfg.Drag.Style)
	assert.Equal(t, 42.0, cfg.Rect.X)
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name   string
		env    map[string]string
		target error
	}{
		{name: "frontend", env: map[string]string{"DRAGBOARD_FRONTEND": "web"}, target: ErrUnknownFrontend},
		{name: "style", env: map[string]string{"DRAGBOARD_DRAG_STYLE": "callbacks"}, target: drag.ErrUnknownStyle},
		{name: "reentry", env: map[string]string{"DRAGBOARD_DRAG_REENTRY": "queue"}, target: drag.ErrUnknownPolicy},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			require.ErrorIs(t, err, tc.target)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
