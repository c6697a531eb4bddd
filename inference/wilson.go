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

	"github.com/fentec-project/goprob/discrete"
)

// WilsonZ is the standard normal quantile of the two-sided 95%
// confidence level used by BinomialDistinction.
const WilsonZ = 1.96

// WilsonInterval returns the Wilson score interval for a binomial
// proportion observed as the relative frequency h in n trials,
// at the confidence level given by the normal quantile z.
func WilsonInterval(h float64, n int, z float64) (float64, float64) {
	nf := float64(n)
	z2 := z * z
	center := 2*h*nf + z2
	spread := math.Sqrt(z2*z2 + 4*h*nf*z2 - 4*h*h*nf*z2)
	denom := 2 * (nf + z2)

	return (center - spread) / denom, (center + spread) / denom
}

// BinomialDistinction reports whether the success probability of
// testDist, PMF(1), lies within the 95% Wilson score interval of the
// observed samples of 0 (failure) and 1 (success) outcomes. False means
// the samples distinguish their source from testDist.
func BinomialDistinction(testDist *discrete.Distribution[int], samples []int) (bool, error) {
	est, err := discrete.EstimateBernoulli(samples)
	if err != nil {
		return false, err
	}

	lo, hi := WilsonInterval(est.PMF(1), len(samples), WilsonZ)
	p := testDist.PMF(1)

	return lo <= p && p <= hi, nil
}
