// Package transport builds the HTTP client used to reach the catalog API.
package transport

import (
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/proxy"
)

// Config controls the outgoing HTTP client
type Config struct {
	Timeout  time.Duration
	ProxyURL string
}

// NewHTTPClient returns an HTTP client with the given timeout. When ProxyURL
// is set, requests go through it; http, https and socks5 schemes are
// supported. Without a proxy the environment's HTTP_PROXY settings apply.
func NewHTTPClient(cfg Config) (*http.Client, error) {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	if raw := strings.TrimSpace(cfg.ProxyURL); raw != "" {
		proxyURL, err := ParseProxyURL(raw)
		if err != nil {
			return nil, err
		}

		switch proxyURL.Scheme {
		case "http", "https":
			transport.Proxy = http.ProxyURL(proxyURL)
		case "socks5", "socks5h":
			dialer, err := proxy.FromURL(proxyURL, proxy.Direct)
			if err != nil {
				return nil, fmt.Errorf("create SOCKS5 dialer from %s: %w", proxyURL.Redacted(), err)
			}
			contextDialer, ok := dialer.(proxy.ContextDialer)
			if !ok {
				return nil, fmt.Errorf("SOCKS5 dialer does not implement proxy.ContextDialer")
			}
			transport.DialContext = contextDialer.DialContext
			// SOCKS5 is handled by the dialer
			transport.Proxy = nil
		}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}, nil
}

// ParseProxyURL parses and validates a proxy URL.
func ParseProxyURL(raw string) (*url.URL, error) {
	proxyURL, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("parse proxy URL: %w", err)
	}
	switch proxyURL.Scheme {
	case "http", "https", "socks5", "socks5h":
	default:
		return nil, fmt.Errorf("unsupported proxy type: %q", proxyURL.Scheme)
	}
	if proxyURL.Host == "" {
		return nil, fmt.Errorf("proxy URL %q has no host", raw)
	}
	return proxyURL, nil
}
