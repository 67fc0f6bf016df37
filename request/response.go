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
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"
)

// Response is the raw response view handed to callbacks. The body is
// fully read before the callback runs, so callbacks never deal with
// streams or connection lifetimes.
type Response struct {
	URL            string
	Status         string
	StatusCode     int
	Headers        http.Header
	RequestHeaders http.Header
	Body           []byte
	Duration       time.Duration
}

// newResponse drains an http.Response into a Response and closes the
// body.
func newResponse(httpResp *http.Response, duration time.Duration) (*Response, error) {
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		Status:     httpResp.Status,
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
		Duration:   duration,
	}

	if httpResp.Request != nil {
		resp.RequestHeaders = httpResp.Request.Header
		if httpResp.Request.URL != nil {
			resp.URL = httpResp.Request.URL.String()
		}
	}

	return resp, nil
}

// Text returns the response body as a string, replacing invalid
// UTF-8 sequences instead of failing.
func (r *Response) Text() string {
	if utf8.Valid(r.Body) {
		return string(r.Body)
	}
	return strings.ToValidUTF8(string(r.Body), string(utf8.RuneError))
}

// Header returns a response header by its canonical name.
func (r *Response) Header(key string) string {
	return r.Headers.Get(key)
}

// Success is true when the status code is in the 200s.
func (r *Response) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
