/*
Copyright 2026 the Foody API Tests Authors.

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

// Package api provides end-to-end test utilities for the Foody API.
//
// # Separate Client Implementation
//
// The service publishes no client library, so this package carries its own
// HTTP client (APIClient).  Having the client live next to the tests keeps
// every path, method and body the suites depend on in one reviewable place:
// a change to the service contract shows up as a change here.
//
// The client includes features tailored for end-to-end testing:
//   - W3C trace context propagation for request correlation
//   - Request and response logging through logr
//   - Optional response validation against openapi/foody.yaml
//   - Direct access to HTTP status codes and response bodies
//
// # Ordered Cases
//
// The food revue lifecycle is expressed as a catalogue of Case values (see
// FoodCases).  Each case declares the step it provides and the steps it
// requires, and all cases share one FoodSession holding the identifier of
// the food created by the first case.  The Ginkgo suites in ./suites and
// the foody-smoke command both run the same catalogue.
package api
