package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"orderdeck/internal/config"
)

func TestDefaultRoundTrips(t *testing.T) {
	svc := config.NewService()
	path := filepath.Join(t.TempDir(), "config.toml")

	original := config.Default()
	require.NoError(t, svc.SaveToPath(original, path))

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, original, loaded)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[api]\nbase_url = \"http://orders.internal:9000\"\n"), 0644))

	loaded, err := config.NewService().LoadFromPath(path)
	require.NoError(t, err)

	require.Equal(t, "http://orders.internal:9000", loaded.API.BaseURL)
	require.Equal(t, 10, loaded.API.TimeoutSeconds)
	require.Equal(t, 20, loaded.UI.PageSize)
	require.Equal(t, "info", loaded.Log.Level)
}

func TestInvalidPageSizeRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[api]\nbase_url = \"http://localhost:8484\"\n[ui]\npage_size = 33\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	_, err := config.NewService().LoadFromPath(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "PageSize")
}

func TestMissingBaseURLRejected(t *testing.T) {
	cfg := config.Default()
	cfg.API.BaseURL = ""

	err := config.NewService().SaveToPath(cfg, filepath.Join(t.TempDir(), "config.toml"))
	require.Error(t, err)
}

func TestMalformedFileRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("api = {"), 0644))

	_, err := config.NewService().LoadFromPath(path)
	require.Error(t, err)
}
