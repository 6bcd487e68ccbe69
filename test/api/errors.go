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

package api

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingToken is returned when authentication succeeds but no
	// usable access token is present in the response.
	ErrMissingToken = errors.New("the JWT token is null or empty")

	// ErrInvalidPointer is returned when a patch path is not a JSON pointer.
	ErrInvalidPointer = errors.New("path is not a JSON pointer")
)

// StatusError is returned when the service answers with a status the
// caller did not expect.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
	TraceID    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status code %d, body: %s (trace ID: %s)", e.Method, e.Path, e.StatusCode, e.Body, e.TraceID)
}
