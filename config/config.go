package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/qyinm/emojitui/browser"
	"github.com/qyinm/emojitui/emojihub"
	"github.com/qyinm/emojitui/logging"
	"github.com/qyinm/emojitui/pager"
	"github.com/qyinm/emojitui/transport"
	"github.com/spf13/viper"
)

// AppConfig holds the application configuration.
type AppConfig struct {
	APIURL         string           `mapstructure:"api_url"`
	UserAgent      string           `mapstructure:"user_agent"`
	RequestTimeout time.Duration    `mapstructure:"request_timeout"`
	Proxy          ProxyConfig      `mapstructure:"proxy"`
	Pagination     PaginationConfig `mapstructure:"pagination"`
	Log            logging.Config   `mapstructure:"log"`
}

// ProxyConfig configures the outgoing proxy
type ProxyConfig struct {
	URL string `mapstructure:"url"`
}

// PaginationConfig configures paging
type PaginationConfig struct {
	PageSize     int    `mapstructure:"page_size"`
	WindowSource string `mapstructure:"window_source"`
}

// SetDefaults registers the default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("api_url", emojihub.DefaultURL)
	v.SetDefault("user_agent", emojihub.DefaultUserAgent)
	v.SetDefault("request_timeout", 10*time.Second)
	v.SetDefault("proxy.url", "")
	v.SetDefault("pagination.page_size", pager.DefaultPageSize)
	v.SetDefault("pagination.window_source", browser.WindowUnfiltered.String())
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.console", true)
	v.SetDefault("log.time_format", time.RFC3339)
}

// LoadConfig loads configuration from file and environment variables into v.
// An explicit configPath must exist; the default search locations are optional.
func LoadConfig(v *viper.Viper, configPath string) (*AppConfig, error) {
	var cfg AppConfig

	SetDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configPath, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.emojitui")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	// Environment variables
	v.SetEnvPrefix("EMOJITUI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail later at runtime.
func (c *AppConfig) Validate() error {
	if strings.TrimSpace(c.APIURL) == "" {
		return fmt.Errorf("api_url is not configured")
	}
	if c.Pagination.PageSize < 1 {
		return fmt.Errorf("pagination.page_size must be positive, got %d", c.Pagination.PageSize)
	}
	if _, err := browser.ParseWindowSource(c.Pagination.WindowSource); err != nil {
		return fmt.Errorf("pagination.window_source: %w", err)
	}
	if c.Proxy.URL != "" {
		if _, err := transport.ParseProxyURL(c.Proxy.URL); err != nil {
			return fmt.Errorf("proxy.url: %w", err)
		}
	}
	return nil
}

// BrowserOptions returns the view state options for this config.
func (c *AppConfig) BrowserOptions() browser.Options {
	// Validate has already rejected unknown values
	ws, _ := browser.ParseWindowSource(c.Pagination.WindowSource)
	return browser.Options{
		PageSize:     c.Pagination.PageSize,
		WindowSource: ws,
	}
}

// NewSource builds the catalog client described by the config.
func (c *AppConfig) NewSource() (*emojihub.Client, error) {
	hc, err := transport.NewHTTPClient(transport.Config{
		Timeout:  c.RequestTimeout,
		ProxyURL: c.Proxy.URL,
	})
	if err != nil {
		return nil, err
	}
	return emojihub.New(c.APIURL,
		emojihub.WithHTTPClient(hc),
		emojihub.WithUserAgent(c.UserAgent),
	), nil
}
