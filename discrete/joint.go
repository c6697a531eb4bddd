/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package discrete

import (
	"github.com/fentec-project/goprob/data"
	"github.com/pkg/errors"
)

// Joint returns the joint distribution of independent random variables
// distributed as dists. Outcomes are tuples holding one outcome of every
// distribution, and the probability of a tuple is the product of the
// probabilities of its components.
//
// Outcome tuples and probability tuples are both enumerated with
// data.CartesianProduct, so the i-th outcome and the i-th probability
// describe the same combination. The first distribution varies fastest.
// Tuples are copied whenever they cross the API, so the joint
// distribution cannot be modified through them.
func Joint[T any](dists ...*Distribution[T]) (*Distribution[[]T], error) {
	if len(dists) == 0 {
		return nil, errors.Wrap(ErrDegenerateParameter, "joint distribution of nothing")
	}

	outcomeSeqs := make([][]T, len(dists))
	probSeqs := make([][]float64, len(dists))
	for i, d := range dists {
		outcomeSeqs[i] = d.outcomes
		probSeqs[i] = d.probabilities
	}

	outcomes := data.CartesianProduct(outcomeSeqs...)
	probTuples := data.CartesianProduct(probSeqs...)
	probs := make([]float64, len(probTuples))
	for i, t := range probTuples {
		probs[i] = data.Vector(t).Prod()
	}

	equal := func(a, b []T) bool {
		if len(a) != len(dists) || len(b) != len(dists) {
			return false
		}
		for j, d := range dists {
			if !d.equal(a[j], b[j]) {
				return false
			}
		}
		return true
	}

	clone := func(t []T) []T {
		c := make([]T, len(t))
		for j := range t {
			if j < len(dists) && dists[j].clone != nil {
				c[j] = dists[j].clone(t[j])
			} else {
				c[j] = t[j]
			}
		}
		return c
	}

	joint, err := newDistribution(outcomes, probs, equal, clone)
	if err != nil {
		return nil, errors.Wrap(err, "joint distribution")
	}

	return joint, nil
}
