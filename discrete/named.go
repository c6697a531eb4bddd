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
	"cmp"
	"math"
	"slices"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/combin"
)

// MaxBinomialTrials is the largest number of trials accepted by Binomial.
// ConvolutedBernoulli builds binomial distributions with more trials.
const MaxBinomialTrials = 12

// Multinomial returns the distribution assigning probabilities[i]
// to the integer outcome i.
func Multinomial(probabilities []float64) (*Distribution[int], error) {
	outcomes := make([]int, len(probabilities))
	for i := range outcomes {
		outcomes[i] = i
	}

	return New(outcomes, probabilities)
}

// Bernoulli returns the distribution of a single trial succeeding with
// probability p: outcome 1 has probability p and outcome 0 has 1-p.
func Bernoulli(p float64) (*Distribution[int], error) {
	if err := checkProbability(p); err != nil {
		return nil, err
	}

	return Multinomial([]float64{1 - p, p})
}

// Binomial returns the distribution of the number of successes in
// n independent trials each succeeding with probability p. The outcomes
// are 0, ..., n, so zero trials give the point mass at 0.
//
// It returns ErrDegenerateParameter unless 0 <= n <= MaxBinomialTrials
// and p lies in [0, 1].
func Binomial(n int, p float64) (*Distribution[int], error) {
	if err := checkProbability(p); err != nil {
		return nil, err
	}
	if n < 0 || n > MaxBinomialTrials {
		return nil, errors.Wrapf(ErrDegenerateParameter,
			"number of trials %d is not in [0, %d]", n, MaxBinomialTrials)
	}

	probs := make([]float64, n+1)
	for k := range probs {
		probs[k] = float64(combin.Binomial(n, k)) * math.Pow(p, float64(k)) * math.Pow(1-p, float64(n-k))
	}

	return Multinomial(probs)
}

func checkProbability(p float64) error {
	if !(p >= 0 && p <= 1) {
		return errors.Wrapf(ErrDegenerateParameter, "success probability %v is not in [0, 1]", p)
	}

	return nil
}

// FromSamples returns the empirical distribution of the samples: the
// distinct sample values in increasing order, each with its relative
// frequency. This is the maximum likelihood estimate of a distribution
// over the observed values.
func FromSamples[T cmp.Ordered](samples []T) (*Distribution[T], error) {
	if len(samples) == 0 {
		return nil, ErrEmptySample
	}

	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	var outcomes []T
	var counts []float64
	for i, x := range sorted {
		if i == 0 || x != sorted[i-1] {
			outcomes = append(outcomes, x)
			counts = append(counts, 0)
		}
		counts[len(counts)-1]++
	}

	n := float64(len(samples))
	for i := range counts {
		counts[i] /= n
	}

	return New(outcomes, counts)
}

// EstimateBernoulli fits a Bernoulli distribution to samples of
// 0 (failure) and 1 (success) outcomes. The success probability is the
// relative frequency of successes.
func EstimateBernoulli(samples []int) (*Distribution[int], error) {
	if len(samples) == 0 {
		return nil, ErrEmptySample
	}

	sum := 0
	for _, s := range samples {
		sum += s
	}

	return Bernoulli(float64(sum) / float64(len(samples)))
}
