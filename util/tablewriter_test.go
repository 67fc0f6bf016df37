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

package util

import (
	"bytes"
	"testing"

	"github.com/olekukonko/tablewriter"
	"github.com/stretchr/testify/require"
)

func TestNewTableWriter(t *testing.T) {
	t.Parallel()

	t.Run("NoOptions", func(t *testing.T) {
		t.Parallel()

		var output bytes.Buffer

		table := NewTableWriter(&output)

		require.NotNil(t, table)
		require.IsType(t, &tablewriter.Table{}, table)

		table.Header("Name", "Age")
		_ = table.Append([]string{"John", "30"})
		_ = table.Render()

		require.Contains(t, output.String(), "John")
		require.Contains(t, output.String(), "30")
	})

	t.Run("WithHeaderOption", func(t *testing.T) {
		t.Parallel()

		var output bytes.Buffer

		table := NewTableWriter(&output, tablewriter.WithHeader([]string{"Name", "Age"}))

		require.NotNil(t, table)

		_ = table.Append([]string{"Jane", "25"})
		_ = table.Render()

		require.Contains(t, output.String(), "NAME")
		require.Contains(t, output.String(), "Jane")
	})

	t.Run("MultipleRows", func(t *testing.T) {
		t.Parallel()

		var output bytes.Buffer

		table := NewTableWriter(&output)

		table.Header("Name", "Age", "City")
		_ = table.Append([]string{"John", "30", "New York"})
		_ = table.Append([]string{"Jane", "25", "Boston"})
		_ = table.Append([]string{"Bob", "35", "Chicago"})
		_ = table.Render()

		require.Contains(t, output.String(), "Boston")
		require.Contains(t, output.String(), "Chicago")
	})
}
