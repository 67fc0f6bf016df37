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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	retry "github.com/avast/retry-go/v4"
	"github.com/nozzle/throttler"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Agent dispatches batches of HTTP requests.
type Agent struct {
	options *agentOptions
	FetcherImplementation
}

// FetcherImplementation executes the prepared requests on one of the
// two transport paths.
//
//counterfeiter:generate . FetcherImplementation
type FetcherImplementation interface {
	SendSessionRequest(*Session, *http.Request) (*http.Response, error)
	SendDedicatedRequest(*http.Client, *http.Request) (*http.Response, error)
}

type defaultFetcherImplementation struct{}

// agentOptions has the configurable bits of the agent.
type agentOptions struct {
	FailOnHTTPError bool          // Set to true to fail default-text fetches on HTTP status > 299
	Retries         uint          // Number of attempts when transport errors happen
	Timeout         time.Duration // Default timeout for entries that do not set their own
	MaxWaitTime     time.Duration // Max waiting time when backing off between retries
	MaxParallel     uint          // Maximum number of simultaneous requests in a batch
}

// String returns a string representation of the options.
func (ao *agentOptions) String() string {
	return fmt.Sprintf(
		"Request.Agent options: Timeout: %d - Retries: %d - FailOnHTTPError: %+v",
		ao.Timeout, ao.Retries, ao.FailOnHTTPError,
	)
}

var defaultAgentOptions = agentOptions{
	FailOnHTTPError: true,
	Retries:         3,
	Timeout:         0,
	MaxWaitTime:     60 * time.Second,
	MaxParallel:     5,
}

// NewAgent returns a new agent with default options.
func NewAgent() *Agent {
	opts := defaultAgentOptions
	return &Agent{
		FetcherImplementation: &defaultFetcherImplementation{},
		options:               &opts,
	}
}

// SetImplementation sets the agent implementation.
func (a *Agent) SetImplementation(impl FetcherImplementation) {
	a.FetcherImplementation = impl
}

// WithTimeout sets the default timeout applied to entries that do not
// carry their own. Zero means requests are not bounded.
func (a *Agent) WithTimeout(timeout time.Duration) *Agent {
	a.options.Timeout = timeout
	return a
}

// WithRetries sets the number of times we'll attempt each request on
// transport errors.
func (a *Agent) WithRetries(retries uint) *Agent {
	a.options.Retries = retries
	return a
}

// WithMaxWaitTime caps the backoff delay between retries.
func (a *Agent) WithMaxWaitTime(d time.Duration) *Agent {
	a.options.MaxWaitTime = d
	return a
}

// WithFailOnHTTPError determines if default-text fetches fail on HTTP
// errors (HTTP status not in 200s). Responses handed to callbacks are
// always delivered raw, whatever their status.
func (a *Agent) WithFailOnHTTPError(flag bool) *Agent {
	a.options.FailOnHTTPError = flag
	return a
}

// WithMaxParallel controls how many requests of a batch run at once.
func (a *Agent) WithMaxParallel(workers uint) *Agent {
	a.options.MaxParallel = workers
	return a
}

// RequestAll issues all entries concurrently, each with the common
// options overlaid by its own, and returns the results in the same
// order as the entries regardless of completion order.
//
// The result at index i is the entry's callback return value when it
// has a callback, otherwise the response text. The error slice is
// parallel to the results: one failing request never cancels or fails
// its siblings. Use errors.Join(errs...) to check the batch in one
// shot. The only batch-level failure is malformed input, reported at
// every index before any request is sent.
//
// Entries allowed to use the shared session (no callback, session use
// not disabled) go through the session in the common options. When
// none is supplied, a session scoped to this call is created on entry
// and released on exit. Caller-supplied sessions are never closed.
func (a *Agent) RequestAll(entries []Entry, common *Options) ([]any, []error) {
	results := make([]any, len(entries))
	errs := make([]error, len(entries))
	if len(entries) == 0 {
		return results, errs
	}

	resolved := make([]*Options, len(entries))
	for i := range entries {
		if err := ValidateURL(entries[i].URL); err != nil {
			// Malformed input fails the batch before any I/O happens.
			batchErr := fmt.Errorf("invalid entry #%d: %w", i, err)
			for j := range errs {
				errs[j] = batchErr
			}
			return results, errs
		}
		resolved[i] = ResolveOptions(common, entries[i].Options)
	}

	session, ownSession := a.batchSession(common, resolved)
	if ownSession {
		defer session.Close()
	}

	t := throttler.New(int(a.options.MaxParallel), len(entries))
	m := sync.Mutex{}
	for i := range entries {
		go func(i int, url string, opts *Options) {
			value, err := a.fetch(url, opts, session)

			m.Lock()
			results[i] = value
			errs[i] = err
			m.Unlock()

			t.Done(err)
		}(i, entries[i].URL, resolved[i])
		t.Throttle()
	}

	return results, errs
}

// Request issues a single request using the same option resolution and
// mode selection as RequestAll.
func (a *Agent) Request(url string, opts *Options) (any, error) {
	if err := ValidateURL(url); err != nil {
		return nil, err
	}

	resolved := ResolveOptions(opts, nil)

	var session *Session
	if resolved.sessionAllowed() {
		session = resolved.Session
		if session == nil {
			session = NewSession()
			defer session.Close()
		}
	}

	return a.fetch(url, resolved, session)
}

// batchSession returns the session serving the batch and whether the
// agent owns it. No session is created when every entry takes the
// dedicated path.
func (a *Agent) batchSession(common *Options, resolved []*Options) (*Session, bool) {
	needed := false
	for _, opts := range resolved {
		if opts.sessionAllowed() {
			needed = true
			break
		}
	}
	if !needed {
		return nil, false
	}

	if common != nil && common.Session != nil {
		return common.Session, false
	}

	return NewSession(), true
}

// fetch runs one request on the path selected by its effective
// options and produces its result list value.
func (a *Agent) fetch(url string, opts *Options, session *Session) (any, error) {
	logger := opts.logger()

	if opts.sessionAllowed() {
		logger.Debugf("Fetching %s through the shared session", url)
		resp, err := a.sessionFetch(url, opts, session)
		if err != nil {
			return nil, err
		}
		if !resp.Success() && a.options.FailOnHTTPError {
			return nil, fmt.Errorf("HTTP error %s for %s", resp.Status, url)
		}
		return resp.Text(), nil
	}

	logger.Debugf("Fetching %s with a dedicated client", url)
	resp, err := a.dedicatedFetch(url, opts)
	if err != nil {
		return nil, err
	}

	if opts.Callback != nil {
		value, err := opts.Callback(resp)
		if err != nil {
			return nil, fmt.Errorf("running callback for %s: %w", url, err)
		}
		return value, nil
	}

	if !resp.Success() && a.options.FailOnHTTPError {
		return nil, fmt.Errorf("HTTP error %s for %s", resp.Status, url)
	}
	return resp.Text(), nil
}

func (a *Agent) sessionFetch(url string, opts *Options, session *Session) (*Response, error) {
	return a.doFetch(url, opts, true, func(req *http.Request) (*http.Response, error) {
		return a.FetcherImplementation.SendSessionRequest(session, req)
	})
}

func (a *Agent) dedicatedFetch(url string, opts *Options) (*Response, error) {
	client, err := newDedicatedClient(url, opts)
	if err != nil {
		return nil, err
	}
	defer client.CloseIdleConnections()

	return a.doFetch(url, opts, false, func(req *http.Request) (*http.Response, error) {
		return a.FetcherImplementation.SendDedicatedRequest(client, req)
	})
}

// doFetch builds and sends one request, retrying transport errors with
// exponential backoff. The request is rebuilt on every attempt so body
// readers start fresh.
func (a *Agent) doFetch(
	url string, opts *Options, sessionPath bool,
	send func(*http.Request) (*http.Response, error),
) (*Response, error) {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = a.options.Timeout
	}

	attempts := a.options.Retries
	if attempts == 0 {
		attempts = 1
	}

	var resp *Response
	err := retry.Do(
		func() error {
			ctx := context.Background()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			if sessionPath {
				var err error
				ctx, err = withProxyOverride(ctx, url, opts.ProxyConfig)
				if err != nil {
					return retry.Unrecoverable(err)
				}
			}

			req, err := buildRequest(ctx, url, opts)
			if err != nil {
				return retry.Unrecoverable(err)
			}

			start := time.Now()
			httpResp, err := send(req)
			if err != nil {
				return err
			}

			resp, err = newResponse(httpResp, time.Since(start))
			return err
		},
		retry.Attempts(attempts),
		retry.MaxDelay(a.options.MaxWaitTime),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			opts.logger().Warnf(
				"Error fetching %s (will retry %d more times): %v",
				url, attempts-n-1, err,
			)
		}),
	)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// newDedicatedClient returns a one-shot client for a single request.
// Keep-alives are disabled, the dispatcher closes it after the fetch.
func newDedicatedClient(url string, opts *Options) (*http.Client, error) {
	transport := &http.Transport{
		DisableKeepAlives: true,
		Proxy:             http.ProxyFromEnvironment,
	}

	proxyURL, err := proxyForURL(url, opts.ProxyConfig)
	if err != nil {
		return nil, err
	}
	if proxyURL != nil {
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	return &http.Client{Transport: transport}, nil
}

// buildRequest assembles the http.Request for one entry. Query params
// are attached only on GET, the body (Data winning over JSON) only on
// other methods.
func buildRequest(ctx context.Context, url string, opts *Options) (*http.Request, error) {
	method := strings.ToUpper(opts.method())

	var body io.Reader
	jsonBody := false
	if method != http.MethodGet {
		switch {
		case len(opts.Data) > 0:
			body = bytes.NewReader(opts.Data)
		case opts.JSON != nil:
			encoded, err := json.Marshal(opts.JSON)
			if err != nil {
				return nil, fmt.Errorf("encoding JSON body: %w", err)
			}
			body = bytes.NewReader(encoded)
			jsonBody = true
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if method == http.MethodGet && len(opts.Params) > 0 {
		query := req.URL.Query()
		for k, v := range opts.Params {
			query.Set(k, v)
		}
		req.URL.RawQuery = query.Encode()
	}

	for k, v := range defaultHeaders {
		req.Header.Set(k, v)
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}
	if jsonBody && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// SendSessionRequest performs the actual request on the shared session.
func (impl *defaultFetcherImplementation) SendSessionRequest(
	session *Session, req *http.Request,
) (*http.Response, error) {
	resp, err := session.Do(req)
	if err != nil {
		return resp, fmt.Errorf("sending session request to %s: %w", req.URL, err)
	}
	return resp, nil
}

// SendDedicatedRequest performs the actual request on a one-shot client.
func (impl *defaultFetcherImplementation) SendDedicatedRequest(
	client *http.Client, req *http.Request,
) (*http.Response, error) {
	resp, err := client.Do(req)
	if err != nil {
		return resp, fmt.Errorf("sending request to %s: %w", req.URL, err)
	}
	return resp, nil
}
