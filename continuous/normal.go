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

package continuous

import (
	"math"
	"slices"

	"github.com/fentec-project/goprob/internal"
	"github.com/fentec-project/goprob/sample"
	"github.com/pkg/errors"
)

// TailCut is the number of standard deviations from the mean beyond
// which the normal density is treated as zero by CDF and Measure.
// The neglected mass is 2*Phi(-TailCut), about 1.2e-15.
const TailCut = 8

// StepsPerSigma is the number of Simpson steps per standard deviation
// used by the numerical integration of the normal density.
const StepsPerSigma = 400

// Normal is the normal (Gaussian) distribution.
//
// CDF and Measure integrate the density with Simpson's rule over the
// part of the interval within TailCut standard deviations of the mean,
// after substituting g = (x - lo) / L where lo is the left end and L the
// length of that part. The step size h is at most sigma / StepsPerSigma,
// so the composite Simpson bound L * h^4 / 180 * max|f''''|, with
// max|f''''| = 3 / (sigma^5 * sqrt(2*pi)) and L at most 2*TailCut*sigma,
// keeps the error of every result below
// 16 * 3 / (180 * sqrt(2*pi) * StepsPerSigma^4), about 4.2e-12, whatever
// the mean and variance. The error is proportional to L, so the bound
// also holds for CDFs, which adds up adjacent intervals.
type Normal struct {
	mean     float64
	variance float64
	sigma    float64
}

// NewNormal returns a normal distribution with the given mean and
// variance. It returns ErrDegenerateParameter unless the variance is
// positive and both parameters are finite.
func NewNormal(mean, variance float64) (*Normal, error) {
	if !(variance > 0) || math.IsInf(variance, 1) {
		return nil, errors.Wrapf(ErrDegenerateParameter, "variance %v is not positive and finite", variance)
	}
	if math.IsNaN(mean) || math.IsInf(mean, 0) {
		return nil, errors.Wrapf(ErrDegenerateParameter, "mean %v is not finite", mean)
	}

	return &Normal{
		mean:     mean,
		variance: variance,
		sigma:    math.Sqrt(variance),
	}, nil
}

// EstimateNormal fits a normal distribution to the samples by the
// method of moments: the sample mean and the biased sample variance.
func EstimateNormal(samples []float64) (*Normal, error) {
	if len(samples) == 0 {
		return nil, ErrEmptySample
	}

	mean := internal.EmpiricalMoment(1, samples)
	variance := internal.EmpiricalCentralMoment(2, samples)
	n, err := NewNormal(mean, variance)
	if err != nil {
		return nil, errors.Wrap(err, "cannot estimate normal distribution")
	}

	return n, nil
}

// Mean returns the mean of the distribution.
func (n *Normal) Mean() float64 {
	return n.mean
}

// Variance returns the variance of the distribution.
func (n *Normal) Variance() float64 {
	return n.variance
}

// Domain returns (-Inf, +Inf).
func (n *Normal) Domain() (float64, float64) {
	return math.Inf(-1), math.Inf(1)
}

// Range returns (0, PDF(mean)).
func (n *Normal) Range() (float64, float64) {
	return 0, n.PDF(n.mean)
}

// PDF returns the normal density at x.
func (n *Normal) PDF(x float64) float64 {
	d := x - n.mean
	return math.Exp(-d*d/(2*n.variance)) / math.Sqrt(2*math.Pi*n.variance)
}

// CDF returns the probability of outcomes not larger than x.
func (n *Normal) CDF(x float64) float64 {
	lo := n.mean - TailCut*n.sigma
	if x <= lo {
		return 0
	}

	return n.integrate(lo, x)
}

// CDFs returns CDF(x) for every x of xs. For increasing xs each value
// extends the previous one by the measure between neighbours, so the
// whole slice costs about as much as a single CDF call.
func (n *Normal) CDFs(xs []float64) []float64 {
	cdfs := make([]float64, len(xs))
	if !slices.IsSorted(xs) {
		for i, x := range xs {
			cdfs[i] = n.CDF(x)
		}
		return cdfs
	}

	acc, prev := 0.0, n.mean-TailCut*n.sigma
	for i, x := range xs {
		if x > prev {
			acc += n.integrate(prev, x)
			prev = x
		}
		cdfs[i] = acc
	}

	return cdfs
}

// Measure returns the probability of the interval [a, b].
func (n *Normal) Measure(a, b float64) (float64, error) {
	if err := checkInterval(a, b); err != nil {
		return 0, err
	}

	return n.integrate(a, b), nil
}

// integrate returns the mass of [a, b] within the tail cut.
func (n *Normal) integrate(a, b float64) float64 {
	lo := math.Max(a, n.mean-TailCut*n.sigma)
	hi := math.Min(b, n.mean+TailCut*n.sigma)
	if !(lo < hi) {
		return 0
	}

	length := hi - lo
	steps := max(2*int(math.Ceil(length/n.sigma*StepsPerSigma/2)), 2)
	offset := lo - n.mean
	m := simpsonSteps(func(g float64) float64 {
		d := offset + g*length
		return math.Exp(-d * d / (2 * n.variance))
	}, 0, 1, steps)

	return m * length / math.Sqrt(2*math.Pi*n.variance)
}

// Sample draws a normal variate by scaling and shifting a
// standard normal variate of src.
func (n *Normal) Sample(src sample.Source) float64 {
	return n.mean + n.sigma*src.NormFloat64()
}

// NormalMetric returns the L2 distance between the densities of a and b
// over the union of the intervals within 5 standard deviations of
// their means.
func NormalMetric(a, b *Normal) float64 {
	lo := math.Min(a.mean-5*a.sigma, b.mean-5*b.sigma)
	hi := math.Max(a.mean+5*a.sigma, b.mean+5*b.sigma)
	m, _ := Metric(a, b, lo, hi)

	return m
}
