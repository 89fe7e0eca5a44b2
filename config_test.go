package pubindex

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "Blog", cfg.Name)
	assert.Equal(t, "http://localhost:3000", cfg.URL)
	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, "http://localhost:8080/index.json", cfg.IndexURL)
	assert.Equal(t, 15*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 120, cfg.LoadLimit)
	assert.Equal(t, time.Minute, cfg.LoadWindow)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pubindex.toml")
	body := `name = "Tech Blog"
url = "https://blog.example.com/"
index_url = "https://blog.example.com/index.json"
fetch_timeout = "5s"
load_limit = 0
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "Tech Blog", cfg.Name)
	assert.Equal(t, "https://blog.example.com", cfg.URL, "trailing slash trimmed")
	assert.Equal(t, "https://blog.example.com/index.json", cfg.IndexURL)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.Zero(t, cfg.LoadLimit)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pubindex.toml")
	require.NoError(t, os.WriteFile(path, []byte(`index_url = "http://file.example/index.json"`), 0o644))
	t.Setenv("PUBINDEX_INDEX_URL", "http://env.example/index.json")
	t.Setenv("PUBINDEX_ADDR", ":9000")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://env.example/index.json", cfg.IndexURL)
	assert.Equal(t, ":9000", cfg.Addr)
}

func TestLoadConfigMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pubindex.toml")
	require.NoError(t, os.WriteFile(path, []byte("name = "), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestSetDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := SiteConfig{Name: "Mine", Addr: ":8081", LoadWindow: time.Hour}
	cfg.setDefaults()

	assert.Equal(t, "Mine", cfg.Name)
	assert.Equal(t, ":8081", cfg.Addr)
	assert.Equal(t, time.Hour, cfg.LoadWindow)
	assert.Equal(t, 15*time.Second, cfg.FetchTimeout)
}
