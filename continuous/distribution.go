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

	"github.com/fentec-project/goprob/data"
	"github.com/fentec-project/goprob/sample"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/integrate"
)

// IntegrationSteps is the number of Simpson steps used by Metric.
const IntegrationSteps = 10000

// Distribution is a continuous probability distribution over the reals.
type Distribution interface {
	// Domain returns the bounds of the support of the density.
	Domain() (float64, float64)
	// Range returns the bounds of the values taken by the density.
	Range() (float64, float64)
	// PDF returns the probability density at x.
	PDF(x float64) float64
	// CDF returns the probability of outcomes not larger than x.
	CDF(x float64) float64
	// Measure returns the probability of the interval [a, b].
	// It returns ErrDegenerateParameter unless a < b.
	Measure(a, b float64) (float64, error)
	// Sample draws a value using the randomness of src.
	Sample(src sample.Source) float64
}

func checkInterval(a, b float64) error {
	if !(a < b) {
		return errors.Wrapf(ErrDegenerateParameter, "interval [%v, %v] is empty", a, b)
	}

	return nil
}

// BatchCDF is implemented by distributions that evaluate their CDF at
// many increasing points faster than one point at a time.
type BatchCDF interface {
	CDFs(xs []float64) []float64
}

// CDFs returns d.CDF(x) for every x of xs, using BatchCDF when d
// implements it. Sorting xs in increasing order lets BatchCDF
// implementations share work between neighbouring points.
func CDFs(d Distribution, xs []float64) []float64 {
	if b, ok := d.(BatchCDF); ok {
		return b.CDFs(xs)
	}

	cdfs := make([]float64, len(xs))
	for i, x := range xs {
		cdfs[i] = d.CDF(x)
	}

	return cdfs
}

// simpson integrates f over [a, b] with IntegrationSteps steps.
func simpson(f func(float64) float64, a, b float64) float64 {
	return simpsonSteps(f, a, b, IntegrationSteps)
}

func simpsonSteps(f func(float64) float64, a, b float64, steps int) float64 {
	xs, _ := data.NewSpanVector(steps+1, a, b)
	return integrate.Simpsons(xs, xs.Apply(f))
}

// Metric returns the L2 distance between the densities of p and q
// over [lo, hi], integrated numerically.
func Metric(p, q Distribution, lo, hi float64) (float64, error) {
	if err := checkInterval(lo, hi); err != nil {
		return 0, err
	}

	sq := simpson(func(x float64) float64 {
		d := p.PDF(x) - q.PDF(x)
		return d * d
	}, lo, hi)

	return math.Sqrt(sq), nil
}
