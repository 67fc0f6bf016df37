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
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"k8s.io/utils/ptr"
)

const defaultMethod = "get"

// Some sites block bots by User-Agent, so requests carry a browser
// User-Agent unless the caller sets their own.
var defaultHeaders = map[string]string{
	"User-Agent": "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/101.0.4951.64 Safari/537.36",
}

// Callback transforms a raw response into the value stored in the
// result list. Supplying a callback forces the dedicated client path.
type Callback func(*Response) (any, error)

// Options are the per-request options. A zero value is usable, every
// field has a documented default.
type Options struct {
	// Method is the HTTP verb, case insensitive. Defaults to "get".
	Method string

	// Data is the raw request body. Only attached when the method is
	// not "get". Takes precedence over JSON when both are set.
	Data []byte

	// Params are query parameters. Only attached when the method is
	// "get".
	Params map[string]string

	// JSON is an arbitrary JSON-serializable body. Only attached when
	// the method is not "get" and Data is empty.
	JSON any

	// ProxyConfig maps a target URL scheme ("http", "https") to a
	// proxy URL. The proxy URL may embed credentials. When unset, the
	// proxy is taken from the environment.
	ProxyConfig map[string]string

	// Headers are merged over the package default headers.
	Headers map[string]string

	// AllowSession controls whether the request may use the shared
	// session path. Defaults to true. Requests with a Callback always
	// use a dedicated client regardless of this setting.
	AllowSession *bool

	// Session is a caller-supplied shared session. It is the only
	// option that is global to the whole batch: per-URL values are
	// ignored. The dispatcher borrows it and never closes it.
	Session *Session

	// Timeout bounds this single request. Zero means the agent
	// default applies.
	Timeout time.Duration

	// Logger receives per-request log output. Defaults to the
	// standard logrus logger.
	Logger *logrus.Logger

	// Callback receives the raw response and returns the value placed
	// in the result list instead of the response text.
	Callback Callback
}

// Entry is one element of a batch: a URL plus its specific options.
type Entry struct {
	URL     string
	Options *Options
}

// URL returns an entry without specific options.
func URL(u string) Entry {
	return Entry{URL: u}
}

// URLWithOptions returns an entry carrying its own options, overlaid
// over the batch common options when dispatched.
func URLWithOptions(u string, opts *Options) Entry {
	return Entry{URL: u, Options: opts}
}

// URLs builds a list of entries from plain URL strings.
func URLs(urls ...string) []Entry {
	entries := make([]Entry, len(urls))
	for i, u := range urls {
		entries[i] = Entry{URL: u}
	}
	return entries
}

// ResolveOptions overlays the per-URL options over the common ones.
// The merge is shallow, a per-URL field wins as a whole. The session
// is taken from the common options only; a per-URL session is dropped
// with a warning since it must not vary inside one batch.
func ResolveOptions(common, perURL *Options) *Options {
	resolved := Options{}
	if common != nil {
		resolved = *common
	}

	if perURL != nil {
		if perURL.Method != "" {
			resolved.Method = perURL.Method
		}
		if perURL.Data != nil {
			resolved.Data = perURL.Data
		}
		if perURL.Params != nil {
			resolved.Params = perURL.Params
		}
		if perURL.JSON != nil {
			resolved.JSON = perURL.JSON
		}
		if perURL.ProxyConfig != nil {
			resolved.ProxyConfig = perURL.ProxyConfig
		}
		if perURL.Headers != nil {
			resolved.Headers = perURL.Headers
		}
		if perURL.AllowSession != nil {
			resolved.AllowSession = perURL.AllowSession
		}
		if perURL.Timeout != 0 {
			resolved.Timeout = perURL.Timeout
		}
		if perURL.Logger != nil {
			resolved.Logger = perURL.Logger
		}
		if perURL.Callback != nil {
			resolved.Callback = perURL.Callback
		}
		if perURL.Session != nil {
			resolved.logger().Warnf("Ignoring per-URL session, the session is global to the batch")
		}
	}

	return &resolved
}

// method returns the effective lower-cased method.
func (o *Options) method() string {
	if o.Method == "" {
		return defaultMethod
	}
	return strings.ToLower(o.Method)
}

// sessionAllowed applies the mode selection rule: the shared session
// path is taken only when session use is allowed and no callback is
// present.
func (o *Options) sessionAllowed() bool {
	return ptr.Deref(o.AllowSession, true) && o.Callback == nil
}

func (o *Options) logger() *logrus.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logrus.StandardLogger()
}

// ValidateURL checks that a URL is well formed, has an http or https
// scheme and a host.
func ValidateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parsing URL: %w", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("URL %q does not have a valid scheme (must be http or https)", rawURL)
	}

	if parsed.Host == "" {
		return fmt.Errorf("URL %q does not have a host", rawURL)
	}

	return nil
}
