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

package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version returns a cobra command to be added to a CLI embedding this
// module so it can report its own build version.
func Version() *cobra.Command {
	var outputJSON bool
	cmd := &cobra.Command{
		Use:           "version",
		Short:         "Prints the version",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := GetVersionInfo()
			v.Name = cmd.Root().Name()
			v.FontName = "banner"

			out := v.String()
			if outputJSON {
				var err error
				out, err = v.JSONString()
				if err != nil {
					return fmt.Errorf("generating JSON version output: %w", err)
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&outputJSON, "json", false, "print the version in JSON format")
	return cmd
}
