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

package api_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foodyexprep/foody-api-tests/test/api"
	"github.com/foodyexprep/foody-api-tests/test/api/foodytest"
)

func lookup(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func newConfig(t *testing.T, values map[string]string) *api.TestConfig {
	t.Helper()

	config, err := api.NewTestConfig(lookup(values))
	require.NoError(t, err)

	return config
}

// newStub starts an in-memory service and returns a configuration that
// points at it with contract validation enabled.
func newStub(t *testing.T, options ...foodytest.Option) (*foodytest.Server, *api.TestConfig) {
	t.Helper()

	server := foodytest.NewServer(api.DefaultUsername, api.DefaultPassword, options...)
	t.Cleanup(server.Close)

	config := newConfig(t, map[string]string{
		"API_BASE_URL":      server.URL,
		"VALIDATE_CONTRACT": "true",
	})

	return server, config
}
