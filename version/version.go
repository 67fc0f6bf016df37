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

// Package version holds the build version information of the module.
package version

import (
	"bytes"
	"encoding/json"
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"text/tabwriter"

	"github.com/blang/semver/v4"
	"github.com/common-nighthawk/go-figure"
)

const unknown = "unknown"

// Base version information.
//
// This is the fallback data used when version information from git is
// not provided via go ldflags.
var (
	gitVersion   = "devel"
	gitCommit    = unknown
	gitTreeState = unknown
	buildDate    = unknown
)

// Info holds the version information of a build.
type Info struct {
	GitVersion   string `json:"gitVersion"`
	GitCommit    string `json:"gitCommit"`
	GitTreeState string `json:"gitTreeState"`
	BuildDate    string `json:"buildDate"`
	GoVersion    string `json:"goVersion"`
	Compiler     string `json:"compiler"`
	Platform     string `json:"platform"`

	ASCIIName string `json:"-"`
	Name      string `json:"-"`
	FontName  string `json:"-"`
}

// GetVersionInfo returns the version information of the current build.
// When the binary carries no ldflags version, the module information
// recorded by the Go toolchain is used instead.
func GetVersionInfo() Info {
	version := gitVersion
	commit := gitCommit
	state := gitTreeState

	if version == "devel" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if v := moduleVersion(info); v != "" {
				version = v
			}
			for _, setting := range info.Settings {
				switch setting.Key {
				case "vcs.revision":
					commit = setting.Value
				case "vcs.modified":
					if setting.Value == "true" {
						state = "dirty"
					} else {
						state = "clean"
					}
				}
			}
		}
	}

	return Info{
		GitVersion:   version,
		GitCommit:    commit,
		GitTreeState: state,
		BuildDate:    buildDate,
		GoVersion:    runtime.Version(),
		Compiler:     runtime.Compiler,
		Platform:     fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// moduleVersion returns the semver-compliant main module version, or
// an empty string when there is none.
func moduleVersion(info *debug.BuildInfo) string {
	raw := strings.TrimPrefix(info.Main.Version, "v")
	if _, err := semver.ParseTolerant(raw); err != nil {
		return ""
	}
	return info.Main.Version
}

// String returns the version information in a human readable layout,
// with an ASCII art banner when a name is set.
func (i *Info) String() string {
	b := strings.Builder{}
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)

	if i.Name != "" {
		if i.ASCIIName == "" {
			f := figure.NewFigure(strings.ToUpper(i.Name), i.FontName, true)
			i.ASCIIName = f.String()
		}
		fmt.Fprint(w, i.ASCIIName)
		fmt.Fprint(w, i.Name+": ")
	}

	fmt.Fprintf(w, "%s\n", i.GitVersion)
	fmt.Fprintf(w, "GitCommit:\t%s\n", i.GitCommit)
	fmt.Fprintf(w, "GitTreeState:\t%s\n", i.GitTreeState)
	fmt.Fprintf(w, "BuildDate:\t%s\n", i.BuildDate)
	fmt.Fprintf(w, "GoVersion:\t%s\n", i.GoVersion)
	fmt.Fprintf(w, "Compiler:\t%s\n", i.Compiler)
	fmt.Fprintf(w, "Platform:\t%s\n", i.Platform)

	w.Flush()
	return b.String()
}

// JSONString returns the version information as a JSON document.
func (i *Info) JSONString() (string, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetIndent("", "  ")
	if err := enc.Encode(i); err != nil {
		return "", fmt.Errorf("encoding version info: %w", err)
	}
	return b.String(), nil
}
