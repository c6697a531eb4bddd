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

package inference

import (
	"math"
	"slices"
	"sort"

	"github.com/fentec-project/goprob/continuous"
	"github.com/fentec-project/goprob/data"
	"github.com/fentec-project/goprob/internal"
)

const (
	// KSGridSteps is the number of intervals of the grid on which
	// KSDistance compares cumulative distributions.
	KSGridSteps = 1000
	// KSThreshold is the largest KS distance KSValidate accepts.
	KSThreshold = 0.05
)

// ErrEmptySample is returned when there are no samples to test.
var ErrEmptySample = internal.ErrEmptySample

// EmpiricalCDF returns the control points of the empirical cumulative
// distribution of the samples: for every distinct sample value x, in
// increasing order, the point (x, fraction of samples <= x).
func EmpiricalCDF(samples []float64) data.Curve {
	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	n := float64(len(sorted))
	var cdf data.Curve
	for i, x := range sorted {
		if i+1 < len(sorted) && sorted[i+1] == x {
			continue
		}
		cdf = append(cdf, data.Point{X: x, Y: float64(i+1) / n})
	}

	return cdf
}

// EvaluateEmpiricalCDF evaluates the step function with the given
// control points at x. It is 0 left of the first point.
func EvaluateEmpiricalCDF(cdf data.Curve, x float64) float64 {
	// number of control points with X <= x
	i := sort.Search(len(cdf), func(i int) bool { return cdf[i].X > x })
	if i == 0 {
		return 0
	}

	return cdf[i-1].Y
}

// KSDistance approximates the Kolmogorov-Smirnov statistic of the
// samples with respect to dist: the largest absolute difference between
// dist.CDF and the empirical CDF, evaluated on KSGridSteps+1 evenly
// spaced points spanning the observed samples. The result can miss the
// exact supremum by the variation of the CDFs within one grid step.
func KSDistance(dist continuous.Distribution, samples []float64) (float64, error) {
	if len(samples) == 0 {
		return 0, ErrEmptySample
	}

	cdf := EmpiricalCDF(samples)
	lo, hi := cdf[0].X, cdf[len(cdf)-1].X
	if lo == hi {
		return math.Abs(dist.CDF(lo) - 1), nil
	}

	grid, err := data.NewSpanVector(KSGridSteps+1, lo, hi)
	if err != nil {
		return 0, err
	}

	maxDiff := 0.0
	for i, c := range continuous.CDFs(dist, grid) {
		maxDiff = math.Max(maxDiff, math.Abs(c-EvaluateEmpiricalCDF(cdf, grid[i])))
	}

	return maxDiff, nil
}

// KSValidate reports whether dist fits the samples, that is whether
// their KSDistance is below KSThreshold.
func KSValidate(dist continuous.Distribution, samples []float64) (bool, error) {
	d, err := KSDistance(dist, samples)
	if err != nil {
		return false, err
	}

	return d < KSThreshold, nil
}
