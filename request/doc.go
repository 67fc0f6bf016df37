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

/*
Package request provides a configurable agent to issue batches of HTTP
requests with per-URL or shared options.

# Batch Requests

The entry point is Agent.RequestAll. It takes a list of entries (a URL
plus optional per-URL options) and the options common to the whole
batch. For each entry, the effective options are the common ones with
the per-URL fields overlaid, the per-URL value winning per field:

	agent := request.NewAgent()
	results, errs := agent.RequestAll([]request.Entry{
		request.URL("http://example.com/a"),
		request.URLWithOptions("http://example.com/b", &request.Options{
			Timeout: 12 * time.Second,
		}),
	}, &request.Options{Method: "get", Timeout: 10 * time.Second})

All requests run concurrently (up to the agent's MaxParallel) and both
returned slices are guaranteed to be of the same length and order as
the entries, no matter in which order the requests complete. To check
the returned error slice for success in a single shot the
errors.Join() function comes in handy:

	if errors.Join(errs...) != nil {
		// Handle errors here
	}

# Execution Paths

Each entry takes exactly one of two paths:

  - Session path: taken when the entry has no callback and session use
    is not disabled. The request goes through a shared pooled session
    and the result is the response text. The caller may pass their own
    Session in the common options; otherwise one is created for the
    duration of the call.
  - Dedicated path: taken when the entry carries a Callback or sets
    AllowSession to false. The request runs on a one-shot client and,
    when a callback is present, the raw response is handed to it and
    its return value becomes the result.

# Failure Policy

Failures are reported per entry: a request timing out or erroring does
not cancel or fail its siblings. The single exception is malformed
input (an entry whose URL is not a valid http or https URL), which
fails the whole batch before any request is sent.
*/
package request
