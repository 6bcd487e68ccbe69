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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/foodyexprep/foody-api-tests/test/api"
)

var _ = Describe("Food Revue Lifecycle", Ordered, ContinueOnFailure, func() {
	var session *api.FoodSession

	BeforeAll(func() {
		session = api.NewFoodSession(api.NewFoodFixture(config))
	})

	Context("When managing a food revue from creation to deletion", func() {
		for _, c := range api.FoodCases() {
			It(c.Name, func() {
				if err := session.Ready(c.Requires...); err != nil {
					Skip(err.Error())
				}

				c.Run(ctx, Default, client, session)

				session.Complete(c.Provides)
			})
		}
	})
})

var _ = Describe("Food Revue Deletion", Ordered, func() {
	var foodID string

	Context("When a food revue has already been deleted", func() {
		BeforeAll(func() {
			result, err := client.CreateFood(ctx, api.UniqueFoodPayload())
			Expect(err).NotTo(HaveOccurred())
			Expect(result.StatusCode).To(Equal(http.StatusCreated), "body: %s", result.Body)

			foodID = result.Data.ID()
			Expect(foodID).NotTo(BeEmpty())

			result, err = client.DeleteFood(ctx, foodID)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.StatusCode).To(Equal(http.StatusOK), "body: %s", result.Body)
		})

		Describe("Given a second delete request", func() {
			It("should fail to delete it again", func() {
				result, err := client.DeleteFood(ctx, foodID)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.StatusCode).To(Equal(http.StatusBadRequest), "body: %s", result.Body)
				Expect(result.Data.Message).To(Equal(api.MessageDeleteFailed))
			})
		})

		Describe("Given an edit request", func() {
			It("should not find the deleted food", func() {
				result, err := client.EditFood(ctx, foodID, api.RenamePatch(api.EditedFoodName))
				Expect(err).NotTo(HaveOccurred())
				Expect(result.StatusCode).To(Equal(http.StatusNotFound), "body: %s", result.Body)
				Expect(result.Data.Message).To(Equal(api.MessageFoodNotFound))
			})
		})
	})
})
