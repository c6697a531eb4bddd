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
	"math"
	"slices"

	"github.com/fentec-project/goprob/data"
	"github.com/fentec-project/goprob/sample"
	"github.com/pkg/errors"
)

// Tolerance bounds the numerical noise accepted by the constructors:
// probabilities may be as low as -Tolerance and their sum may differ
// from 1 by less than Tolerance.
const Tolerance = 1e-10

// Distribution is a discrete probability distribution over outcomes
// of type T.
type Distribution[T any] struct {
	outcomes      []T
	probabilities data.Vector
	equal         func(a, b T) bool
	// clone copies outcomes that share memory, such as tuples.
	// Nil means outcomes are plain values.
	clone func(T) T
}

// New returns a distribution assigning probabilities[i] to outcomes[i].
// Outcomes need not be distinct; PMF reports the probability of the
// first matching outcome.
//
// It returns ErrDimensionMismatch if the slices differ in length and
// ErrInvalidProbability if a probability is negative or the
// probabilities do not sum to 1, both up to Tolerance.
func New[T comparable](outcomes []T, probabilities []float64) (*Distribution[T], error) {
	return NewFunc(outcomes, probabilities, func(a, b T) bool { return a == b })
}

// NewFunc is like New, but outcomes are compared with equal. It allows
// outcomes that are not comparable with ==, such as tuples.
func NewFunc[T any](outcomes []T, probabilities []float64, equal func(a, b T) bool) (*Distribution[T], error) {
	return newDistribution(outcomes, probabilities, equal, nil)
}

// NewSlices is like NewFunc for tuple outcomes: tuples are compared
// element by element and deep-copied on the way in and out, so the
// distribution never shares a tuple with its caller.
func NewSlices[T comparable](outcomes [][]T, probabilities []float64) (*Distribution[[]T], error) {
	return newDistribution(outcomes, probabilities, slices.Equal[[]T, T], slices.Clone[[]T, T])
}

func newDistribution[T any](outcomes []T, probabilities []float64, equal func(a, b T) bool, clone func(T) T) (*Distribution[T], error) {
	if len(outcomes) != len(probabilities) {
		return nil, errors.Wrapf(ErrDimensionMismatch,
			"got %d outcomes and %d probabilities", len(outcomes), len(probabilities))
	}
	for i, p := range probabilities {
		if !(p >= -Tolerance) {
			return nil, errors.Wrapf(ErrInvalidProbability,
				"probability %v at index %d is negative", p, i)
		}
	}
	probs := data.NewVector(probabilities).Copy()
	if sum := probs.Sum(); math.Abs(sum-1) >= Tolerance {
		return nil, errors.Wrapf(ErrInvalidProbability, "probabilities sum to %v", sum)
	}

	d := &Distribution[T]{
		outcomes:      outcomes,
		probabilities: probs,
		equal:         equal,
		clone:         clone,
	}
	d.outcomes = d.Outcomes()

	return d, nil
}

// Len returns the number of outcomes.
func (d *Distribution[T]) Len() int {
	return len(d.outcomes)
}

// Outcomes returns a copy of the outcomes.
func (d *Distribution[T]) Outcomes() []T {
	o := make([]T, len(d.outcomes))
	for i := range o {
		o[i] = d.outcome(i)
	}

	return o
}

func (d *Distribution[T]) outcome(i int) T {
	if d.clone != nil {
		return d.clone(d.outcomes[i])
	}

	return d.outcomes[i]
}

// Probabilities returns a copy of the probabilities, aligned with Outcomes.
func (d *Distribution[T]) Probabilities() data.Vector {
	return d.probabilities.Copy()
}

// Equal reports whether two outcomes are equal under the equality
// the distribution was built with.
func (d *Distribution[T]) Equal(a, b T) bool {
	return d.equal(a, b)
}

// PMF returns the probability of the first outcome equal to x,
// or 0 if x is not an outcome. Mass adds up all equal outcomes.
func (d *Distribution[T]) PMF(x T) float64 {
	if i := d.index(x); i >= 0 {
		return d.probabilities[i]
	}

	return 0
}

// Mass returns the total probability of the outcomes equal to x.
// It equals PMF(x) unless x is repeated.
func (d *Distribution[T]) Mass(x T) float64 {
	m := 0.0
	for i, o := range d.outcomes {
		if d.equal(o, x) {
			m += d.probabilities[i]
		}
	}

	return m
}

// Collapse returns d with every repeated outcome merged into its first
// occurrence, carrying the total mass. Information measures and mixtures
// work on collapsed distributions, so repeating an outcome never changes
// them. A distribution without repeats is returned as is.
func (d *Distribution[T]) Collapse() *Distribution[T] {
	outcomes := Union(d)
	if len(outcomes) == len(d.outcomes) {
		return d
	}

	probs := make(data.Vector, len(outcomes))
	for i, x := range outcomes {
		probs[i] = d.Mass(x)
	}

	return &Distribution[T]{
		outcomes:      outcomes,
		probabilities: probs,
		equal:         d.equal,
		clone:         d.clone,
	}
}

func (d *Distribution[T]) index(x T) int {
	for i, o := range d.outcomes {
		if d.equal(o, x) {
			return i
		}
	}

	return -1
}

// Sample draws an outcome with probability given by its PMF.
//
// A uniform u in [0, 1) selects the first outcome whose cumulative
// probability exceeds u, so outcomes with zero probability are never
// drawn. If rounding leaves u above the total mass, the last outcome
// with positive probability is returned.
func (d *Distribution[T]) Sample(src sample.Source) T {
	u := src.Float64()
	cum := 0.0
	last := len(d.outcomes) - 1
	for i, p := range d.probabilities {
		if p <= 0 {
			continue
		}
		cum += p
		last = i
		if u < cum {
			return d.outcome(i)
		}
	}

	return d.outcome(last)
}

// Measure returns the total probability of the given outcomes.
// Outcomes missing from the distribution contribute 0. It returns
// ErrDuplicateOutcome if subset contains an outcome twice.
func (d *Distribution[T]) Measure(subset []T) (float64, error) {
	for i := range subset {
		for j := i + 1; j < len(subset); j++ {
			if d.equal(subset[i], subset[j]) {
				return 0, errors.Wrapf(ErrDuplicateOutcome,
					"positions %d and %d of the subset", i, j)
			}
		}
	}

	m := 0.0
	for _, x := range subset {
		m += d.PMF(x)
	}

	return m, nil
}

// Union returns the outcomes of all given distributions without
// repetitions, in order of first appearance. Outcomes are compared
// with the equality of the first distribution.
func Union[T any](dists ...*Distribution[T]) []T {
	if len(dists) == 0 {
		return nil
	}

	equal := dists[0].equal
	var union []T
	for _, d := range dists {
	outcomes:
		for i, x := range d.outcomes {
			for _, y := range union {
				if equal(x, y) {
					continue outcomes
				}
			}
			union = append(union, d.outcome(i))
		}
	}

	return union
}

// Average returns the equally weighted mixture of the given
// distributions over the union of their outcomes, adding up the mass
// of repeated outcomes. The result is a valid distribution since every
// input sums to 1.
func Average[T any](dists ...*Distribution[T]) (*Distribution[T], error) {
	if len(dists) == 0 {
		return nil, errors.Wrap(ErrDegenerateParameter, "nothing to average")
	}

	outcomes := Union(dists...)
	probs := make([]float64, len(outcomes))
	for i, x := range outcomes {
		for _, d := range dists {
			probs[i] += d.Mass(x)
		}
		probs[i] /= float64(len(dists))
	}

	return newDistribution(outcomes, probs, dists[0].equal, dists[0].clone)
}
