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
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestNewResponse(t *testing.T) {
	t.Parallel()

	target, err := url.Parse("http://example.com/x")
	require.NoError(t, err)

	httpResp := &http.Response{
		Status:     "200 OK",
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"text/plain"}},
		Body:       io.NopCloser(strings.NewReader("hello")),
		Request: &http.Request{
			URL:    target,
			Header: http.Header{"User-Agent": []string{"test"}},
		},
	}

	resp, err := newResponse(httpResp, 5*time.Millisecond)
	require.NoError(t, err)
	require.Equal(t, "http://example.com/x", resp.URL)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "hello", resp.Text())
	require.Equal(t, "text/plain", resp.Header("Content-Type"))
	require.Equal(t, "test", resp.RequestHeaders.Get("User-Agent"))
	require.True(t, resp.Success())
}

func TestResponseTextInvalidUTF8(t *testing.T) {
	t.Parallel()

	resp := &Response{Body: []byte{'o', 'k', 0xff, 0xfe}}
	text := resp.Text()
	require.True(t, utf8.ValidString(text))
	require.True(t, strings.HasPrefix(text, "ok"))
}

func TestResponseSuccess(t *testing.T) {
	t.Parallel()

	require.True(t, (&Response{StatusCode: 204}).Success())
	require.False(t, (&Response{StatusCode: 301}).Success())
	require.False(t, (&Response{StatusCode: 404}).Success())
	require.False(t, (&Response{StatusCode: 500}).Success())
}
