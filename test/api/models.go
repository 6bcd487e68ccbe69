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
	"encoding/json"

	"k8s.io/utils/ptr"
)

// AuthenticationRequest is the login body.
type AuthenticationRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

// AuthenticationResponse is the login reply; only the token is consumed.
type AuthenticationResponse struct {
	AccessToken string `json:"accessToken"`
}

// FoodDto is the body used to create a food revue.
type FoodDto struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PatchOperation is a single JSON-Patch style edit.
type PatchOperation struct {
	Path  string `json:"path"`
	Op    string `json:"op"`
	Value any    `json:"value"`
}

// Patch is the array body accepted by the edit endpoint.
type Patch []PatchOperation

// ApiResponse is the envelope returned by create, edit, delete and list.
//
//nolint:revive // matches the service's DTO name
type ApiResponse struct {
	FoodID  *string `json:"foodId,omitempty"`
	Message string  `json:"msg,omitempty"`
}

// ID returns the food identifier, or the empty string when absent.
func (r ApiResponse) ID() string {
	return ptr.Deref(r.FoodID, "")
}

// UnmarshalJSON accepts the message under either "msg" or "message".
func (r *ApiResponse) UnmarshalJSON(data []byte) error {
	var raw struct {
		FoodID  *string `json:"foodId"`
		Msg     *string `json:"msg"`
		Message *string `json:"message"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.FoodID = raw.FoodID
	r.Message = ptr.Deref(raw.Msg, ptr.Deref(raw.Message, ""))

	return nil
}
