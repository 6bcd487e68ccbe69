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

//go:generate go tool mockgen -source=interfaces.go -destination=mock/interfaces.go -package=mock

package api

import (
	"context"
)

// FoodAPI is the set of Foody operations exercised by the test cases.
type FoodAPI interface {
	// Authenticate exchanges credentials for a bearer token.
	Authenticate(ctx context.Context, request AuthenticationRequest) (string, error)
	// CreateFood posts any JSON payload to the create endpoint.
	CreateFood(ctx context.Context, payload any) (*Result[ApiResponse], error)
	// EditFood patches the given food revue.
	EditFood(ctx context.Context, foodID string, patch Patch) (*Result[ApiResponse], error)
	// ListFoods returns every food revue.
	ListFoods(ctx context.Context) (*Result[[]ApiResponse], error)
	// DeleteFood removes the given food revue.
	DeleteFood(ctx context.Context, foodID string) (*Result[ApiResponse], error)
}
