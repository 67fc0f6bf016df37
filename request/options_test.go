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
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"
)

func TestResolveOptions(t *testing.T) {
	t.Parallel()

	t.Run("per-URL value wins per field", func(t *testing.T) {
		t.Parallel()
		common := &Options{
			Method:  "get",
			Timeout: 10 * time.Second,
			Headers: map[string]string{"X-Common": "yes"},
		}
		perURL := &Options{Timeout: 12 * time.Second}

		resolved := ResolveOptions(common, perURL)
		require.Equal(t, 12*time.Second, resolved.Timeout)
		require.Equal(t, "get", resolved.Method)
		require.Equal(t, "yes", resolved.Headers["X-Common"])
	})

	t.Run("nil inputs", func(t *testing.T) {
		t.Parallel()
		resolved := ResolveOptions(nil, nil)
		require.NotNil(t, resolved)
		require.Equal(t, defaultMethod, resolved.method())
	})

	t.Run("per-URL session is dropped", func(t *testing.T) {
		t.Parallel()
		session := NewSession()
		defer session.Close()
		ignored := NewSession()
		defer ignored.Close()

		resolved := ResolveOptions(
			&Options{Session: session},
			&Options{Session: ignored},
		)
		require.Same(t, session, resolved.Session)
	})

	t.Run("inputs are not mutated", func(t *testing.T) {
		t.Parallel()
		common := &Options{Method: "get"}
		_ = ResolveOptions(common, &Options{Method: "post"})
		require.Equal(t, "get", common.Method)
	})
}

func TestOptionsMethod(t *testing.T) {
	t.Parallel()

	require.Equal(t, "get", (&Options{}).method())
	require.Equal(t, "post", (&Options{Method: "POST"}).method())
	require.Equal(t, "head", (&Options{Method: "Head"}).method())
}

func TestOptionsSessionAllowed(t *testing.T) {
	t.Parallel()

	cb := func(*Response) (any, error) { return nil, nil }

	for _, tc := range []struct {
		name     string
		options  *Options
		expected bool
	}{
		{"default", &Options{}, true},
		{"explicitly allowed", &Options{AllowSession: ptr.To(true)}, true},
		{"disabled", &Options{AllowSession: ptr.To(false)}, false},
		{"callback", &Options{Callback: cb}, false},
		{"allowed but callback", &Options{AllowSession: ptr.To(true), Callback: cb}, false},
	} {
		require.Equal(t, tc.expected, tc.options.sessionAllowed(), tc.name)
	}
}

func TestValidateURL(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		url     string
		mustErr bool
	}{
		{"http://example.com", false},
		{"https://example.com/path?q=1", false},
		{"ftp://example.com", true},
		{"example.com", true},
		{"http://", true},
		{"://bad", true},
	} {
		err := ValidateURL(tc.url)
		if tc.mustErr {
			require.Error(t, err, tc.url)
		} else {
			require.NoError(t, err, tc.url)
		}
	}
}
