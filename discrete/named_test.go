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

package discrete_test

import (
	"math"
	"testing"

	"github.com/fentec-project/goprob/discrete"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBernoulli(t *testing.T) {
	d, err := discrete.Bernoulli(0.3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, d.Outcomes())
	assert.InDelta(t, 0.7, d.PMF(0), 1e-15)
	assert.InDelta(t, 0.3, d.PMF(1), 1e-15)

	for _, p := range []float64{-0.1, 1.1, math.NaN()} {
		_, err := discrete.Bernoulli(p)
		assert.True(t, errors.Is(err, discrete.ErrDegenerateParameter), "p = %v", p)
	}
}

func TestBinomial(t *testing.T) {
	var tests = []struct {
		name   string
		n      int
		p      float64
		expect []float64
		err    error
	}{
		{
			name:   "fair coin",
			n:      2,
			p:      0.5,
			expect: []float64{0.25, 0.5, 0.25},
		},
		{
			name:   "three trials",
			n:      3,
			p:      0.2,
			expect: []float64{0.512, 0.384, 0.096, 0.008},
		},
		{
			name:   "single trial",
			n:      1,
			p:      0.9,
			expect: []float64{0.1, 0.9},
		},
		{
			name: "too many trials",
			n:    discrete.MaxBinomialTrials + 1,
			p:    0.5,
			err:  discrete.ErrDegenerateParameter,
		},
		{
			name:   "no trials",
			n:      0,
			p:      0.3,
			expect: []float64{1},
		},
		{
			name: "negative trials",
			n:    -1,
			p:    0.5,
			err:  discrete.ErrDegenerateParameter,
		},
		{
			name: "invalid probability",
			n:    3,
			p:    2,
			err:  discrete.ErrDegenerateParameter,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d, err := discrete.Binomial(test.n, test.p)
			if test.err != nil {
				assert.True(t, errors.Is(err, test.err), "unexpected error %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.n+1, d.Len())
			assert.InDeltaSlice(t, test.expect, d.Probabilities(), 1e-12)
		})
	}
}

func TestBinomial_MatchesConvolution(t *testing.T) {
	b, err := discrete.Binomial(discrete.MaxBinomialTrials, 0.35)
	require.NoError(t, err)
	c, err := discrete.ConvolutedBernoulli(discrete.MaxBinomialTrials, 0.35)
	require.NoError(t, err)

	assert.Equal(t, b.Outcomes(), c.Outcomes())
	assert.InDeltaSlice(t, b.Probabilities(), c.Probabilities(), 1e-12)
}

func TestMultinomial(t *testing.T) {
	d, err := discrete.Multinomial([]float64{0.1, 0.6, 0.3})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, d.Outcomes())

	_, err = discrete.Multinomial([]float64{0.1, 0.6})
	assert.True(t, errors.Is(err, discrete.ErrInvalidProbability))
}

func TestFromSamples(t *testing.T) {
	d, err := discrete.FromSamples([]string{"b", "a", "b", "c", "b", "a", "b", "b"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, d.Outcomes())
	assert.InDeltaSlice(t, []float64{0.25, 0.625, 0.125}, d.Probabilities(), 1e-15)

	_, err = discrete.FromSamples([]int{})
	assert.True(t, errors.Is(err, discrete.ErrEmptySample))
}

func TestEstimateBernoulli(t *testing.T) {
	d, err := discrete.EstimateBernoulli([]int{1, 0, 1, 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.75, d.PMF(1), 1e-15)

	_, err = discrete.EstimateBernoulli(nil)
	assert.True(t, errors.Is(err, discrete.ErrEmptySample))
}
