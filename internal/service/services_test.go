package service

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xolan/tog/internal/catalog"
	"github.com/xolan/tog/internal/config"
	"github.com/xolan/tog/internal/osutil"
)

func testConfig(baseURL string) config.Config {
	cfg := config.DefaultConfig()
	cfg.APIToken = "secret"
	cfg.BaseURL = baseURL
	cfg.Timezone = "UTC"
	cfg.Projects = catalog.Catalog{{ID: 5, Name: "Internal", WorkspaceID: 10, Activities: []string{"Coding"}}}
	return cfg
}

func TestNewServicesWithConfig_WiresClient(t *testing.T) {
	var userAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, _, _ := r.BasicAuth()
		assert.Equal(t, "secret", user)
		userAgent = r.Header.Get("User-Agent")
		_, _ = io.WriteString(w, `{"id":1,"workspace_id":10,"project_id":5,"description":"Coding","start":"2024-03-04T09:00:00Z","duration":-1}`)
	}))
	t.Cleanup(srv.Close)

	svcs, err := NewServicesWithConfig(testConfig(srv.URL), "/tmp/tog/config.toml", "1.0.0", nil)
	require.NoError(t, err)
	require.NotNil(t, svcs.Timer)
	require.NotNil(t, svcs.Config)
	assert.Len(t, svcs.Catalog, 1)
	assert.Equal(t, "/tmp/tog/config.toml", svcs.Config.GetPath())

	status, err := svcs.Timer.Status(context.Background())
	require.NoError(t, err)
	assert.True(t, status.Running)
	assert.Equal(t, "Internal", status.ProjectName)
	assert.Equal(t, "tog/1.0.0", userAgent)
	assert.Equal(t, time.UTC, svcs.Timer.Now().Location())
}

func TestNewServicesWithConfig_BadTimezone(t *testing.T) {
	cfg := testConfig("https://example.test/api")
	cfg.Timezone = "Not/AZone"

	_, err := NewServicesWithConfig(cfg, "", "", nil)
	assert.Error(t, err)
}

func TestNewServices_ReadsConfigDir(t *testing.T) {
	dir := t.TempDir()
	osutil.SetProvider(dirProvider{dir: dir})
	t.Cleanup(osutil.ResetProvider)

	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFile), []byte(config.GenerateSampleConfig()), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.CredentialsFile), []byte(`{"toggl_api_token": "abc"}`), 0600))

	svcs, err := NewServices("", nil)
	require.NoError(t, err)
	assert.Equal(t, "abc", svcs.Config.Get().APIToken)
	assert.Len(t, svcs.Catalog.Items(), 2)
}

func TestNewServices_MissingConfig(t *testing.T) {
	osutil.SetProvider(dirProvider{dir: t.TempDir()})
	t.Cleanup(osutil.ResetProvider)

	_, err := NewServices("", nil)
	assert.ErrorIs(t, err, config.ErrNotFound)
}

// dirProvider points the config directory at dir and hides the real environment.
type dirProvider struct {
	osutil.DefaultPathProvider
	dir string
}

func (p dirProvider) Getenv(key string) string {
	if key == config.EnvConfigDir {
		return p.dir
	}
	return ""
}
