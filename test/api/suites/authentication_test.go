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
	"errors"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/foodyexprep/foody-api-tests/test/api"
)

var _ = Describe("Authentication", func() {
	var anonymous *api.APIClient

	BeforeEach(func() {
		var err error

		anonymous, err = api.NewAPIClientWithConfig(config, api.WithLogger(GinkgoLogr))
		Expect(err).NotTo(HaveOccurred())
	})

	Context("When logging in", func() {
		Describe("Given valid credentials", func() {
			It("should return an access token", func() {
				token, err := anonymous.Authenticate(ctx, api.AuthenticationRequest{
					UserName: config.Username,
					Password: config.Password,
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(token).NotTo(BeEmpty())
			})
		})

		Describe("Given an incorrect password", func() {
			It("should be refused", func() {
				_, err := anonymous.Authenticate(ctx, api.AuthenticationRequest{
					UserName: config.Username,
					Password: config.Password + "-wrong",
				})
				Expect(err).To(HaveOccurred())

				var statusErr *api.StatusError
				Expect(errors.As(err, &statusErr)).To(BeTrue())
				Expect(statusErr.StatusCode).NotTo(Equal(http.StatusOK))
			})
		})
	})

	Context("When calling the food API without a token", func() {
		It("should be rejected as unauthorized", func() {
			result, err := anonymous.ListFoods(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.StatusCode).To(Equal(http.StatusUnauthorized), "body: %s", result.Body)
		})
	})
})
