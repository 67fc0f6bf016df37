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

package request_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"sigs.k8s.io/fetch-utils/request"
)

func TestWriteReport(t *testing.T) {
	t.Parallel()

	entries := request.URLs("http://example.com/a", "http://example.com/b")
	results := []any{"body a", nil}
	errs := []error{nil, errors.New("connection refused")}

	var buf bytes.Buffer
	require.NoError(t, request.WriteReport(&buf, entries, results, errs))

	out := buf.String()
	require.Contains(t, out, "http://example.com/a")
	require.Contains(t, out, "http://example.com/b")
	require.Contains(t, out, "success")
	require.Contains(t, out, "connection refused")
}

func TestWriteReportLengthMismatch(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := request.WriteReport(
		&buf, request.URLs("http://example.com/a"), []any{}, []error{},
	)
	require.Error(t, err)
}
