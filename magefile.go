//go:build mage

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

package main

import (
	"github.com/uwu-tools/magex/pkg"

	"sigs.k8s.io/release-utils/mage"
)

var Default = Test

// All runs all targets for this repository.
func All() error {
	if err := Lint(); err != nil {
		return err
	}
	return Test()
}

// Test runs the unit tests.
func Test() error {
	return mage.TestGo(true)
}

// Lint runs the golangci-lint linters.
func Lint() error {
	return mage.RunGolangCILint("", false)
}

// EnsureMage installs mage if it is not available.
func EnsureMage() error {
	return pkg.EnsureMage("")
}
