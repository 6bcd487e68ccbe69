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

//nolint:revive,staticcheck // dot imports are standard for Gomega test code
package api

import (
	"context"
	"net/http"

	. "github.com/onsi/gomega"
)

// Messages the service answers with.
const (
	MessageEdited       = "Successfully edited"
	MessageDeleted      = "Deleted successfully!"
	MessageFoodNotFound = "No food revues..."
	MessageDeleteFailed = "Unable to delete this food revue!"
)

// Case is one step of the food revue lifecycle.  Provides and Requires
// declare the ordering between cases, a case whose requirements did not
// complete must be skipped rather than run.  Assertions are made through
// the Gomega passed to Run, which under Ginkgo is Default.
type Case struct {
	Name     string
	Provides Step
	Requires []Step
	Run      func(ctx context.Context, g Gomega, client FoodAPI, session *FoodSession)
}

// FoodCases returns the lifecycle cases in execution order.
func FoodCases() []Case {
	return []Case{
		{
			Name:     "should create a food with the required fields",
			Provides: StepCreateFood,
			Run:      createFood,
		},
		{
			Name:     "should edit the food title",
			Provides: StepEditFood,
			Requires: []Step{StepCreateFood},
			Run:      editFood,
		},
		{
			Name:     "should return a non-empty list of foods",
			Provides: StepListFoods,
			Requires: []Step{StepCreateFood},
			Run:      listFoods,
		},
		{
			Name:     "should delete the food",
			Provides: StepDeleteFood,
			Requires: []Step{StepCreateFood},
			Run:      deleteFood,
		},
		{
			Name: "should reject a food without the required fields",
			Run:  createFoodWithoutRequiredFields,
		},
		{
			Name: "should not find a non-existent food to edit",
			Run:  editMissingFood,
		},
		{
			Name: "should fail to delete a non-existent food",
			Run:  deleteMissingFood,
		},
	}
}

func createFood(ctx context.Context, g Gomega, client FoodAPI, session *FoodSession) {
	result, err := client.CreateFood(ctx, session.Fixture.Food)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(result.StatusCode).To(Equal(http.StatusCreated), "body: %s", result.Body)
	g.Expect(result.Data.ID()).NotTo(BeEmpty(), "create should return the food ID")

	session.SetFoodID(result.Data.ID())
}

func editFood(ctx context.Context, g Gomega, client FoodAPI, session *FoodSession) {
	result, err := client.EditFood(ctx, session.FoodID(), RenamePatch(session.Fixture.EditedName))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(result.StatusCode).To(Equal(http.StatusOK), "body: %s", result.Body)
	g.Expect(result.Data.Message).To(Equal(MessageEdited))
}

func listFoods(ctx context.Context, g Gomega, client FoodAPI, _ *FoodSession) {
	result, err := client.ListFoods(ctx)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(result.StatusCode).To(Equal(http.StatusOK), "body: %s", result.Body)
	g.Expect(result.Data).NotTo(BeEmpty())
}

func deleteFood(ctx context.Context, g Gomega, client FoodAPI, session *FoodSession) {
	result, err := client.DeleteFood(ctx, session.FoodID())
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(result.StatusCode).To(Equal(http.StatusOK), "body: %s", result.Body)
	g.Expect(result.Data.Message).To(Equal(MessageDeleted))
}

func createFoodWithoutRequiredFields(ctx context.Context, g Gomega, client FoodAPI, _ *FoodSession) {
	result, err := client.CreateFood(ctx, struct{}{})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(result.StatusCode).To(Equal(http.StatusBadRequest), "body: %s", result.Body)
}

func editMissingFood(ctx context.Context, g Gomega, client FoodAPI, session *FoodSession) {
	result, err := client.EditFood(ctx, session.Fixture.MissingFoodID, RenamePatch(session.Fixture.EditedName))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(result.StatusCode).To(Equal(http.StatusNotFound), "body: %s", result.Body)
	g.Expect(result.Data.Message).To(Equal(MessageFoodNotFound))
}

func deleteMissingFood(ctx context.Context, g Gomega, client FoodAPI, session *FoodSession) {
	result, err := client.DeleteFood(ctx, session.Fixture.MissingFoodID)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(result.StatusCode).To(Equal(http.StatusBadRequest), "body: %s", result.Body)
	g.Expect(result.Data.Message).To(Equal(MessageDeleteFailed))
}
