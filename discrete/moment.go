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

	"github.com/fentec-project/goprob/data"
)

// Real is satisfied by the numeric types whose outcomes have moments.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Moment returns the n-th raw moment E[X^n] of d.
func Moment[T Real](n int, d *Distribution[T]) float64 {
	return momentAbout(n, 0, d)
}

// CentralMoment returns the n-th moment of d about its mean.
func CentralMoment[T Real](n int, d *Distribution[T]) float64 {
	return momentAbout(n, Moment(1, d), d)
}

func momentAbout[T Real](n int, about float64, d *Distribution[T]) float64 {
	powers := make(data.Vector, len(d.outcomes))
	for i, x := range d.outcomes {
		powers[i] = math.Pow(float64(x)-about, float64(n))
	}
	m, _ := powers.Dot(d.probabilities)

	return m
}

// Metric returns the Euclidean distance between the probability mass
// functions of p and q over the union of their outcomes. Repeated
// outcomes contribute their total mass.
func Metric[T any](p, q *Distribution[T]) float64 {
	sum := 0.0
	for _, x := range Union(p, q) {
		diff := p.Mass(x) - q.Mass(x)
		sum += diff * diff
	}

	return math.Sqrt(sum)
}
