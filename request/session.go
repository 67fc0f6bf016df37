/*
Copyright 2026 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package request

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

const (
	// DefaultMaxConnections is the connection pool size of a session.
	DefaultMaxConnections = 100
	// DefaultMaxConnectionsPerHost is the per-host pool size of a session.
	DefaultMaxConnectionsPerHost = 30
)

// proxyContextKey carries a per-request proxy override through the
// request context so one pooled transport can serve requests with
// different proxy configurations.
type proxyContextKey struct{}

// Session is a shared HTTP client with a pooled transport. All
// requests taking the session path of a batch go through one session,
// either supplied by the caller or created for the duration of the
// batch. A session is safe for concurrent use.
type Session struct {
	client *http.Client
}

// NewSession returns a session with the default pool limits. The
// proxy is taken from the environment unless a request carries its
// own proxy configuration.
func NewSession() *Session {
	transport := &http.Transport{
		MaxIdleConns:        DefaultMaxConnections,
		MaxIdleConnsPerHost: DefaultMaxConnectionsPerHost,
		Proxy:               sessionProxy,
	}

	return &Session{
		client: &http.Client{Transport: transport},
	}
}

// Do executes the request on the shared client. The request timeout
// is governed by the request context, not by the session.
func (s *Session) Do(req *http.Request) (*http.Response, error) {
	return s.client.Do(req)
}

// Close releases the idle connections held by the session pool. It is
// called by the dispatcher only for sessions it created itself,
// caller-supplied sessions stay open.
func (s *Session) Close() {
	s.client.CloseIdleConnections()
}

// sessionProxy resolves the proxy for one request: a per-request
// override from the context wins, otherwise the environment decides.
func sessionProxy(req *http.Request) (*url.URL, error) {
	if proxyURL, ok := req.Context().Value(proxyContextKey{}).(*url.URL); ok {
		return proxyURL, nil
	}
	return http.ProxyFromEnvironment(req)
}

// withProxyOverride stores the proxy matching the target scheme in the
// context so sessionProxy can pick it up. No-op when the proxy config
// has no entry for the scheme.
func withProxyOverride(ctx context.Context, targetURL string, proxyConfig map[string]string) (context.Context, error) {
	proxyURL, err := proxyForURL(targetURL, proxyConfig)
	if err != nil || proxyURL == nil {
		return ctx, err
	}
	return context.WithValue(ctx, proxyContextKey{}, proxyURL), nil
}

// proxyForURL returns the configured proxy for a target URL or nil
// when the configuration has none for its scheme.
func proxyForURL(targetURL string, proxyConfig map[string]string) (*url.URL, error) {
	if len(proxyConfig) == 0 {
		return nil, nil
	}

	parsed, err := url.Parse(targetURL)
	if err != nil {
		return nil, fmt.Errorf("parsing target URL: %w", err)
	}

	rawProxy, ok := proxyConfig[parsed.Scheme]
	if !ok || rawProxy == "" {
		return nil, nil
	}

	proxyURL, err := url.Parse(rawProxy)
	if err != nil {
		return nil, fmt.Errorf("parsing proxy URL for scheme %s: %w", parsed.Scheme, err)
	}

	return proxyURL, nil
}
