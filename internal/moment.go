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

package internal

import "gonum.org/v1/gonum/stat"

// EmpiricalMoment returns the n-th raw moment of the samples,
// that is the mean of x^n.
func EmpiricalMoment(n int, samples []float64) float64 {
	return stat.MomentAbout(float64(n), samples, 0, nil)
}

// EmpiricalCentralMoment returns the n-th moment of the samples
// about their mean, normalized by the number of samples.
func EmpiricalCentralMoment(n int, samples []float64) float64 {
	return stat.Moment(float64(n), samples, nil)
}
