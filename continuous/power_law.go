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

	"github.com/fentec-project/goprob/sample"
	"github.com/pkg/errors"
)

// PowerLaw is a shifted Pareto distribution supported on [minX, +Inf)
// with density factor * (x - shift)^(-exponent), where
// factor = (exponent - 1) * (minX - shift)^(exponent - 1) normalizes it.
// Its CDF and measures are evaluated in closed form.
type PowerLaw struct {
	factor   float64
	shift    float64
	exponent float64
	minX     float64
}

// NewPowerLaw returns a power law distribution. It returns
// ErrDegenerateParameter unless exponent > 1 and shift < minX.
func NewPowerLaw(shift, exponent, minX float64) (*PowerLaw, error) {
	if !(exponent > 1) || math.IsInf(exponent, 1) {
		return nil, errors.Wrapf(ErrDegenerateParameter, "exponent %v is not finite and larger than 1", exponent)
	}
	if !(shift < minX) || math.IsInf(minX, 1) || math.IsInf(shift, -1) {
		return nil, errors.Wrapf(ErrDegenerateParameter, "shift %v is not below minimum %v", shift, minX)
	}

	return &PowerLaw{
		factor:   (exponent - 1) * math.Pow(minX-shift, exponent-1),
		shift:    shift,
		exponent: exponent,
		minX:     minX,
	}, nil
}

// EstimatePowerLaw fits a power law to positive samples with the Hill
// estimator: minX is the smallest sample, shift is minX - 1 and
// exponent = 1 + n / sum(ln(x_i / minX)).
func EstimatePowerLaw(samples []float64) (*PowerLaw, error) {
	if len(samples) == 0 {
		return nil, ErrEmptySample
	}

	minX := samples[0]
	for _, x := range samples {
		minX = math.Min(minX, x)
	}
	if !(minX > 0) {
		return nil, errors.Wrapf(ErrDegenerateParameter, "smallest sample %v is not positive", minX)
	}

	logSum := 0.0
	for _, x := range samples {
		logSum += math.Log(x / minX)
	}
	if logSum == 0 {
		return nil, errors.Wrap(ErrDegenerateParameter, "all samples are equal")
	}

	p, err := NewPowerLaw(minX-1, 1+float64(len(samples))/logSum, minX)
	if err != nil {
		return nil, errors.Wrap(err, "cannot estimate power law")
	}

	return p, nil
}

// Shift returns the shift of the distribution.
func (p *PowerLaw) Shift() float64 {
	return p.shift
}

// Exponent returns the exponent of the distribution.
func (p *PowerLaw) Exponent() float64 {
	return p.exponent
}

// MinX returns the smallest value of the support.
func (p *PowerLaw) MinX() float64 {
	return p.minX
}

// Domain returns (minX, +Inf).
func (p *PowerLaw) Domain() (float64, float64) {
	return p.minX, math.Inf(1)
}

// Range returns (0, PDF(minX)).
func (p *PowerLaw) Range() (float64, float64) {
	return 0, p.PDF(p.minX)
}

// PDF returns the density at x, which is 0 below minX.
func (p *PowerLaw) PDF(x float64) float64 {
	if x < p.minX {
		return 0
	}

	return p.factor * math.Pow(x-p.shift, -p.exponent)
}

// CDF returns 1 - ((x - shift) / (minX - shift))^(1 - exponent)
// for x above minX and 0 otherwise.
func (p *PowerLaw) CDF(x float64) float64 {
	if x <= p.minX {
		return 0
	}

	return 1 - math.Pow((x-p.shift)/(p.minX-p.shift), 1-p.exponent)
}

// Measure returns the probability of the interval [a, b] from the
// antiderivative of the density.
func (p *PowerLaw) Measure(a, b float64) (float64, error) {
	if err := checkInterval(a, b); err != nil {
		return 0, err
	}

	a = math.Max(a, p.minX)
	if b <= a {
		return 0, nil
	}

	e := 1 - p.exponent
	return p.factor / (p.exponent - 1) * (math.Pow(a-p.shift, e) - math.Pow(b-p.shift, e)), nil
}

// Sample draws a value by inverse transform sampling:
// (minX - shift) * (1 - u)^(1 / (1 - exponent)) + shift for uniform u.
func (p *PowerLaw) Sample(src sample.Source) float64 {
	u := src.Float64()
	return (p.minX-p.shift)*math.Pow(1-u, 1/(1-p.exponent)) + p.shift
}
