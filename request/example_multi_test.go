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
	"errors"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"sigs.k8s.io/fetch-utils/request"
)

// This example fetches a mixed batch: two plain text fetches through
// the shared session and one status probe through a callback.
//
//nolint:testableexamples // performs real network requests
func ExampleAgent_RequestAll() {
	agent := request.NewAgent().WithMaxParallel(2)

	entries := []request.Entry{
		request.URL("http://www.golang.org/"),
		request.URLWithOptions("https://www.kubernetes.io/", &request.Options{
			Timeout: 12 * time.Second,
		}),
		request.URLWithOptions("https://httpbin.org/status/404", &request.Options{
			Callback: func(resp *request.Response) (any, error) {
				return resp.StatusCode, nil
			},
		}),
	}

	results, errs := agent.RequestAll(entries, &request.Options{
		Method:  "get",
		Timeout: 10 * time.Second,
	})
	if errors.Join(errs...) != nil {
		logrus.Fatalf("fetching URLs: %v", errors.Join(errs...))
	}

	if err := request.WriteReport(os.Stdout, entries, results, errs); err != nil {
		logrus.Fatalf("writing report: %v", err)
	}
}
