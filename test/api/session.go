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
	"fmt"
	"slices"
	"strings"

	"github.com/spjmurray/go-util/pkg/set"
)

// Step names something a case leaves behind for later cases.
type Step string

const (
	StepCreateFood Step = "create-food"
	StepEditFood   Step = "edit-food"
	StepListFoods  Step = "list-foods"
	StepDeleteFood Step = "delete-food"
)

// FoodFixture holds the inputs the cases send.
type FoodFixture struct {
	Food          FoodDto
	EditedName    string
	MissingFoodID string
}

// NewFoodFixture returns the default fixture for the given configuration.
func NewFoodFixture(config *TestConfig) FoodFixture {
	return FoodFixture{
		Food:          NewFoodPayload().Build(),
		EditedName:    EditedFoodName,
		MissingFoodID: config.MissingFoodID,
	}
}

// FoodSession is the state shared by one run of the ordered cases.  It
// is created per run and handed to every case rather than kept globally.
type FoodSession struct {
	Fixture   FoodFixture
	foodID    string
	completed []Step
}

func NewFoodSession(fixture FoodFixture) *FoodSession {
	return &FoodSession{
		Fixture: fixture,
	}
}

// FoodID is the identifier captured by the create case.
func (s *FoodSession) FoodID() string {
	return s.foodID
}

// SetFoodID records the identifier returned by the service.
func (s *FoodSession) SetFoodID(id string) {
	s.foodID = id
}

// Complete marks a step as done.  The empty step is ignored.
func (s *FoodSession) Complete(step Step) {
	if step == "" || slices.Contains(s.completed, step) {
		return
	}

	s.completed = append(s.completed, step)
}

// Missing returns the required steps that have not completed, sorted.
func (s *FoodSession) Missing(required ...Step) []Step {
	missing := set.New[Step](required...).Difference(set.New[Step](s.completed...))

	var out []Step

	for step := range missing.All() {
		out = append(out, step)
	}

	slices.Sort(out)

	return out
}

// Ready returns an error naming any unmet requirements.
func (s *FoodSession) Ready(required ...Step) error {
	missing := s.Missing(required...)
	if len(missing) == 0 {
		return nil
	}

	names := make([]string, len(missing))
	for i, step := range missing {
		names[i] = string(step)
	}

	return fmt.Errorf("requires %s, which did not complete", strings.Join(names, ", "))
}
