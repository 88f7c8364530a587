package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/qyinm/emojitui/browser"
	"github.com/qyinm/emojitui/emojihub"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	chdirForTest(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, emojihub.DefaultURL, cfg.APIURL)
	assert.Equal(t, 10, cfg.Pagination.PageSize)
	assert.Equal(t, "unfiltered", cfg.Pagination.WindowSource)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Log.Console)
	assert.Equal(t, browser.WindowUnfiltered, cfg.BrowserOptions().WindowSource)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
api_url: http://localhost:9999/api/all
request_timeout: 3s
pagination:
  page_size: 5
  window_source: filtered
proxy:
  url: socks5://127.0.0.1:1080
log:
  level: debug
`)

	cfg, err := LoadConfig(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/api/all", cfg.APIURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5, cfg.BrowserOptions().PageSize)
	assert.Equal(t, browser.WindowFiltered, cfg.BrowserOptions().WindowSource)
	assert.Equal(t, "socks5://127.0.0.1:1080", cfg.Proxy.URL)
	assert.Equal(t, "debug", cfg.Log.Level)

	src, err := cfg.NewSource()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999/api/all", src.URL())
}

func TestLoadConfig_Env(t *testing.T) {
	path := writeConfig(t, "pagination:\n  page_size: 5\n")
	t.Setenv("EMOJITUI_PAGINATION_PAGE_SIZE", "20")
	t.Setenv("EMOJITUI_API_URL", "http://env.example/api/all")

	cfg, err := LoadConfig(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Pagination.PageSize)
	assert.Equal(t, "http://env.example/api/all", cfg.APIURL)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() AppConfig {
		return AppConfig{
			APIURL:     emojihub.DefaultURL,
			Pagination: PaginationConfig{PageSize: 10, WindowSource: "unfiltered"},
		}
	}

	tests := []struct {
		name   string
		mutate func(*AppConfig)
	}{
		{"empty url", func(c *AppConfig) { c.APIURL = " " }},
		{"zero page size", func(c *AppConfig) { c.Pagination.PageSize = 0 }},
		{"bad window source", func(c *AppConfig) { c.Pagination.WindowSource = "sideways" }},
		{"bad proxy", func(c *AppConfig) { c.Proxy.URL = "ftp://127.0.0.1" }},
	}

	ok := base()
	require.NoError(t, ok.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
