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
	"slices"

	"github.com/pkg/errors"
)

// Convolution returns the distribution of X + Y for independent integer
// valued random variables X and Y distributed as x and y.
//
// Every integer between min(X)+min(Y) and max(X)+max(Y) is considered,
// which suits dense supports. Sums with zero probability are dropped
// from the result.
func Convolution(x, y *Distribution[int]) (*Distribution[int], error) {
	lo := slices.Min(x.outcomes) + slices.Min(y.outcomes)
	hi := slices.Max(x.outcomes) + slices.Max(y.outcomes)

	// repeated outcomes of y add up
	yMass := make(map[int]float64, y.Len())
	for i, k := range y.outcomes {
		yMass[k] += y.probabilities[i]
	}

	var outcomes []int
	var probs []float64
	for z := lo; z <= hi; z++ {
		p := 0.0
		for i, k := range x.outcomes {
			p += x.probabilities[i] * yMass[z-k]
		}
		if p > 0 {
			outcomes = append(outcomes, z)
			probs = append(probs, p)
		}
	}

	conv, err := New(outcomes, probs)
	if err != nil {
		return nil, errors.Wrap(err, "convolution")
	}

	return conv, nil
}

// Convoluted returns the distribution of the sum of n independent
// random variables distributed as base, obtained by convolving base
// with itself n-1 times. It returns ErrDegenerateParameter if n < 1.
func Convoluted(n int, base *Distribution[int]) (*Distribution[int], error) {
	if n < 1 {
		return nil, errors.Wrapf(ErrDegenerateParameter, "cannot convolve %d distributions", n)
	}

	res := base
	var err error
	for i := 1; i < n; i++ {
		res, err = Convolution(res, base)
		if err != nil {
			return nil, err
		}
	}

	return res, nil
}

// ConvolutedBernoulli returns the binomial distribution of the number
// of successes in n trials with success probability p. Unlike Binomial
// it accepts any positive n, since no binomial coefficients are computed.
func ConvolutedBernoulli(n int, p float64) (*Distribution[int], error) {
	base, err := Bernoulli(p)
	if err != nil {
		return nil, err
	}

	return Convoluted(n, base)
}

// ConvolutedMultinomial returns the distribution of the sum of n
// independent draws from Multinomial(probabilities).
func ConvolutedMultinomial(n int, probabilities []float64) (*Distribution[int], error) {
	base, err := Multinomial(probabilities)
	if err != nil {
		return nil, err
	}

	return Convoluted(n, base)
}
