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
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/onsi/gomega"
)

type Outcome string

const (
	OutcomePassed  Outcome = "passed"
	OutcomeFailed  Outcome = "failed"
	OutcomeSkipped Outcome = "skipped"
)

type CaseResult struct {
	Name     string
	Outcome  Outcome
	Reason   string
	Duration time.Duration
}

// Report collects the outcome of every case in a run.
type Report struct {
	Results []CaseResult
}

func (r *Report) Count(outcome Outcome) int {
	var n int

	for _, result := range r.Results {
		if result.Outcome == outcome {
			n++
		}
	}

	return n
}

// Passed is true when no case failed.  Skipped cases do not count as
// failures on their own, they only happen after something upstream failed.
func (r *Report) Passed() bool {
	return r.Count(OutcomeFailed) == 0
}

// RunCases executes the cases in order against the client outside of a
// Ginkgo suite.  Each case gets its own Gomega instance, the first failed
// assertion stops the case and its message becomes the recorded reason.
func RunCases(ctx context.Context, client FoodAPI, session *FoodSession, cases []Case, log logr.Logger) *Report {
	report := &Report{}

	for _, c := range cases {
		if err := session.Ready(c.Requires...); err != nil {
			log.Info("skipping case", "case", c.Name, "reason", err.Error())

			report.Results = append(report.Results, CaseResult{
				Name:    c.Name,
				Outcome: OutcomeSkipped,
				Reason:  err.Error(),
			})

			continue
		}

		start := time.Now()
		err := runCase(ctx, client, session, c)
		duration := time.Since(start)

		if err != nil {
			log.Info("case failed", "case", c.Name, "duration", duration, "reason", err.Error())

			report.Results = append(report.Results, CaseResult{
				Name:     c.Name,
				Outcome:  OutcomeFailed,
				Reason:   err.Error(),
				Duration: duration,
			})

			continue
		}

		session.Complete(c.Provides)

		log.V(1).Info("case passed", "case", c.Name, "duration", duration)

		report.Results = append(report.Results, CaseResult{
			Name:     c.Name,
			Outcome:  OutcomePassed,
			Duration: duration,
		})
	}

	return report
}

// caseFailure carries the first failed assertion out of a case.
type caseFailure struct {
	message string
}

func runCase(ctx context.Context, client FoodAPI, session *FoodSession, c Case) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		if failure, ok := r.(caseFailure); ok {
			err = errors.New(failure.message)
			return
		}

		err = fmt.Errorf("panic: %v", r)
	}()

	g := gomega.NewGomega(func(message string, _ ...int) {
		panic(caseFailure{message: message})
	})

	c.Run(ctx, g, client, session)

	return nil
}
