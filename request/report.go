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
	"errors"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"sigs.k8s.io/fetch-utils/util"
)

// WriteReport renders a per-entry outcome table for a finished batch.
// The results and errors slices are the return values of RequestAll
// for the same entries.
func WriteReport(w io.Writer, entries []Entry, results []any, errs []error) error {
	if len(results) != len(entries) || len(errs) != len(entries) {
		return errors.New("results and errors must have one element per entry")
	}

	table := util.NewTableWriter(w, tablewriter.WithHeader([]string{"#", "URL", "OUTCOME"}))
	for i := range entries {
		outcome := "success"
		if errs[i] != nil {
			outcome = errs[i].Error()
		} else if results[i] == nil {
			outcome = "no result"
		}

		if err := table.Append([]string{fmt.Sprintf("%d", i), entries[i].URL, outcome}); err != nil {
			return fmt.Errorf("appending report row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}

	return nil
}
