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
	"fmt"
	"strings"

	jsonpatch "github.com/evanphx/json-patch/v5"
)

const (
	DefaultFoodName        = "New Test Food"
	DefaultFoodDescription = "New Test Food Description"
	EditedFoodName         = "Edited Test Food Title"
)

// FoodPayloadBuilder builds food payloads for testing.
type FoodPayloadBuilder struct {
	payload FoodDto
}

// NewFoodPayload creates a new food payload builder with the default name and description.
func NewFoodPayload() *FoodPayloadBuilder {
	return &FoodPayloadBuilder{
		payload: FoodDto{
			Name:        DefaultFoodName,
			Description: DefaultFoodDescription,
		},
	}
}

// WithName sets the food name.
func (b *FoodPayloadBuilder) WithName(name string) *FoodPayloadBuilder {
	b.payload.Name = name
	return b
}

// WithDescription sets the food description.
func (b *FoodPayloadBuilder) WithDescription(description string) *FoodPayloadBuilder {
	b.payload.Description = description
	return b
}

// Build returns the completed food payload.
func (b *FoodPayloadBuilder) Build() FoodDto {
	return b.payload
}

// PatchBuilder builds JSON-Patch style edit bodies.
type PatchBuilder struct {
	operations Patch
}

func NewPatch() *PatchBuilder {
	return &PatchBuilder{}
}

// Replace adds a replace operation.
func (b *PatchBuilder) Replace(path string, value any) *PatchBuilder {
	b.operations = append(b.operations, PatchOperation{
		Path:  path,
		Op:    "replace",
		Value: value,
	})

	return b
}

// Build returns the patch, checking it is well formed RFC 6902.
func (b *PatchBuilder) Build() (Patch, error) {
	data, err := json.Marshal(b.operations)
	if err != nil {
		return nil, fmt.Errorf("marshaling patch: %w", err)
	}

	decoded, err := jsonpatch.DecodePatch(data)
	if err != nil {
		return nil, fmt.Errorf("decoding patch: %w", err)
	}

	for i, operation := range decoded {
		if operation.Kind() == "unknown" {
			return nil, fmt.Errorf("patch operation %d: missing op", i)
		}

		path, err := operation.Path()
		if err != nil {
			return nil, fmt.Errorf("patch operation %d: %w", i, err)
		}

		if path != "" && !strings.HasPrefix(path, "/") {
			return nil, fmt.Errorf("patch operation %d: %w: %q", i, ErrInvalidPointer, path)
		}
	}

	return b.operations, nil
}

// RenamePatch is the edit used by the lifecycle cases.
func RenamePatch(name string) Patch {
	patch, err := NewPatch().Replace("/name", name).Build()
	if err != nil {
		// Only reachable if the static path above is malformed.
		panic(err)
	}

	return patch
}
