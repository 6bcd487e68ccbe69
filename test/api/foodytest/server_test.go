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

package foodytest_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/foodyexprep/foody-api-tests/test/api/foodytest"
)

const (
	username = "andarz"
	password = "test123"
)

type response struct {
	status int
	body   map[string]any
	raw    []byte
}

func do(t *testing.T, server *foodytest.Server, method, path, token string, body any) response {
	t.Helper()

	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)

		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(t.Context(), method, server.URL+path, reader)
	require.NoError(t, err)

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := response{
		status: resp.StatusCode,
		raw:    raw,
	}

	// Lists are arrays, everything else is an object.
	_ = json.Unmarshal(raw, &out.body)

	return out
}

func login(t *testing.T, server *foodytest.Server) string {
	t.Helper()

	resp := do(t, server, http.MethodPost, "/api/User/Authentication", "", map[string]string{
		"userName": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, resp.status)

	token, ok := resp.body["accessToken"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	return token
}

func newServer(t *testing.T, options ...foodytest.Option) *foodytest.Server {
	t.Helper()

	server := foodytest.NewServer(username, password, options...)
	t.Cleanup(server.Close)

	return server
}

func TestAuthentication(t *testing.T) {
	t.Parallel()

	server := newServer(t, foodytest.WithUser("other", "secret"))

	login(t, server)

	resp := do(t, server, http.MethodPost, "/api/User/Authentication", "", map[string]string{
		"userName": "other",
		"password": "secret",
	})
	require.Equal(t, http.StatusOK, resp.status)

	resp = do(t, server, http.MethodPost, "/api/User/Authentication", "", map[string]string{
		"userName": username,
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, resp.status)
	require.Equal(t, foodytest.MessageUnauthorized, resp.body["msg"])

	resp = do(t, server, http.MethodPost, "/api/User/Authentication", "", map[string]string{})
	require.Equal(t, http.StatusBadRequest, resp.status)
}

func TestBearerTokenRequired(t *testing.T) {
	t.Parallel()

	server := newServer(t)

	require.Equal(t, http.StatusUnauthorized, do(t, server, http.MethodGet, "/api/Food/All", "", nil).status)
	require.Equal(t, http.StatusUnauthorized, do(t, server, http.MethodGet, "/api/Food/All", "forged", nil).status)

	// Tokens from another instance are signed with a different key.
	other := newServer(t)
	require.Equal(t, http.StatusUnauthorized, do(t, server, http.MethodGet, "/api/Food/All", login(t, other), nil).status)
}

func TestExpiredTokenRejected(t *testing.T) {
	t.Parallel()

	server := newServer(t, foodytest.WithTokenTTL(-time.Minute))

	require.Equal(t, http.StatusUnauthorized, do(t, server, http.MethodGet, "/api/Food/All", login(t, server), nil).status)
}

func TestFoodLifecycle(t *testing.T) {
	t.Parallel()

	server := newServer(t)
	token := login(t, server)

	resp := do(t, server, http.MethodPost, "/api/Food/Create", token, map[string]string{
		"name":        "Soup",
		"description": "Hot",
	})
	require.Equal(t, http.StatusCreated, resp.status)
	require.Equal(t, foodytest.MessageCreated, resp.body["msg"])

	id, ok := resp.body["foodId"].(string)
	require.True(t, ok)

	resp = do(t, server, http.MethodPatch, "/api/Food/Edit/"+id, token, []map[string]string{
		{"path": "/name", "op": "replace", "value": "Stew"},
	})
	require.Equal(t, http.StatusOK, resp.status)
	require.Equal(t, foodytest.MessageEdited, resp.body["msg"])

	food, ok := server.Food(id)
	require.True(t, ok)
	require.Equal(t, foodytest.Food{ID: id, Name: "Stew", Description: "Hot"}, food)

	resp = do(t, server, http.MethodGet, "/api/Food/All", token, nil)
	require.Equal(t, http.StatusOK, resp.status)

	var foods []foodytest.Food
	require.NoError(t, json.Unmarshal(resp.raw, &foods))
	require.Equal(t, []foodytest.Food{food}, foods)

	resp = do(t, server, http.MethodDelete, "/api/Food/Delete/"+id, token, nil)
	require.Equal(t, http.StatusOK, resp.status)
	require.Equal(t, foodytest.MessageDeleted, resp.body["msg"])

	resp = do(t, server, http.MethodDelete, "/api/Food/Delete/"+id, token, nil)
	require.Equal(t, http.StatusBadRequest, resp.status)
	require.Equal(t, foodytest.MessageDeleteFailed, resp.body["msg"])

	require.Zero(t, server.Len())
}

func TestCreateValidation(t *testing.T) {
	t.Parallel()

	server := newServer(t)
	token := login(t, server)

	resp := do(t, server, http.MethodPost, "/api/Food/Create", token, map[string]string{})
	require.Equal(t, http.StatusBadRequest, resp.status)
	require.Equal(t, foodytest.MessageInvalidFood, resp.body["title"])
	require.Contains(t, resp.body["errors"], "Name")
	require.Contains(t, resp.body["errors"], "Description")

	resp = do(t, server, http.MethodPost, "/api/Food/Create", token, map[string]string{
		"name": "Soup",
	})
	require.Equal(t, http.StatusBadRequest, resp.status)

	require.Zero(t, server.Len())
}

func TestEditErrors(t *testing.T) {
	t.Parallel()

	server := newServer(t)
	token := login(t, server)

	resp := do(t, server, http.MethodPatch, "/api/Food/Edit/77777", token, []map[string]string{
		{"path": "/name", "op": "replace", "value": "Stew"},
	})
	require.Equal(t, http.StatusNotFound, resp.status)
	require.Equal(t, foodytest.MessageFoodNotFound, resp.body["msg"])

	resp = do(t, server, http.MethodPost, "/api/Food/Create", token, map[string]string{
		"name":        "Soup",
		"description": "Hot",
	})
	require.Equal(t, http.StatusCreated, resp.status)

	id, ok := resp.body["foodId"].(string)
	require.True(t, ok)

	tests := []struct {
		name  string
		patch any
	}{
		{
			name:  "not a patch",
			patch: map[string]string{"name": "Stew"},
		},
		{
			name: "missing member",
			patch: []map[string]string{
				{"path": "/rating", "op": "replace", "value": "5"},
			},
		},
		{
			name: "required field removed",
			patch: []map[string]string{
				{"path": "/name", "op": "remove"},
			},
		},
	}

	for _, test := range tests {
		resp := do(t, server, http.MethodPatch, "/api/Food/Edit/"+id, token, test.patch)
		require.Equal(t, http.StatusBadRequest, resp.status, test.name)
	}

	food, ok := server.Food(id)
	require.True(t, ok)
	require.Equal(t, "Soup", food.Name)
}
