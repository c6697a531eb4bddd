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

package study

import (
	"context"
	"math"

	"github.com/fentec-project/goprob/continuous"
	"github.com/fentec-project/goprob/data"
	"github.com/fentec-project/goprob/inference"
	"github.com/fentec-project/goprob/internal"
	"github.com/fentec-project/goprob/sample"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// DistinctionResult holds the averaged curves of a Distinction study.
// All curves map the number of samples to the averaged quantity.
type DistinctionResult struct {
	// NormalKS is the KS distance of the fitted normal distribution.
	NormalKS data.Curve
	// PowerLawKS is the KS distance of the fitted power law.
	PowerLawKS data.Curve
	// StdDev is the standard deviation of the samples.
	StdDev data.Curve
	// DecisionEntropy is the entropy of the choice between both models.
	DecisionEntropy data.Curve
	// Correlation is the Pearson correlation between the standard
	// deviation and the decision entropy over all trials and sample counts.
	Correlation float64
}

type distinctionTrial struct {
	normalKS, powerLawKS, stdDev, entropy data.Curve
}

// Distinction studies how reliably samples of dist tell a normal
// distribution from a power law. Every trial starts with start samples
// and adds one at a time until it holds end samples. After each added
// sample both models are fitted (EstimateNormal, EstimatePowerLaw),
// their KS distances are computed and turned into a DecisionEntropy.
//
// A model that cannot be fitted to the samples, such as a power law to
// non-positive values, is assigned the largest possible KS distance 1.
func Distinction(ctx context.Context, cfg Config, dist continuous.Distribution, start, end int) (*DistinctionResult, error) {
	if start < 2 || end <= start {
		return nil, errors.Errorf("sample counts must satisfy 2 <= start < end, got %d and %d", start, end)
	}

	trials, err := run(ctx, cfg, "distinction", func(ctx context.Context, src sample.Source) (distinctionTrial, error) {
		var t distinctionTrial
		samples := sample.Draw[float64](start, dist, src)
		for n := start; n < end; n++ {
			if err := ctx.Err(); err != nil {
				return t, err
			}
			samples = append(samples, dist.Sample(src))
			x := float64(len(samples))

			ksNormal, err := fitDistance(samples, func(s []float64) (continuous.Distribution, error) {
				return continuous.EstimateNormal(s)
			})
			if err != nil {
				return t, err
			}
			ksPowerLaw, err := fitDistance(samples, func(s []float64) (continuous.Distribution, error) {
				return continuous.EstimatePowerLaw(s)
			})
			if err != nil {
				return t, err
			}
			h, err := inference.DecisionEntropy([]float64{ksNormal, ksPowerLaw})
			if err != nil {
				return t, err
			}

			t.normalKS = append(t.normalKS, data.Point{X: x, Y: ksNormal})
			t.powerLawKS = append(t.powerLawKS, data.Point{X: x, Y: ksPowerLaw})
			t.stdDev = append(t.stdDev, data.Point{X: x, Y: math.Sqrt(internal.EmpiricalCentralMoment(2, samples))})
			t.entropy = append(t.entropy, data.Point{X: x, Y: h.ToBits().Float64()})
		}
		return t, nil
	})
	if err != nil {
		return nil, err
	}

	res := &DistinctionResult{}
	var normal, powerLaw, stdDev, entropy []data.Curve
	var allStdDev, allEntropy data.Vector
	for _, t := range trials {
		normal = append(normal, t.normalKS)
		powerLaw = append(powerLaw, t.powerLawKS)
		stdDev = append(stdDev, t.stdDev)
		entropy = append(entropy, t.entropy)
		allStdDev = append(allStdDev, t.stdDev.Ys()...)
		allEntropy = append(allEntropy, t.entropy.Ys()...)
	}
	if res.NormalKS, err = data.AverageCurves(normal); err != nil {
		return nil, err
	}
	if res.PowerLawKS, err = data.AverageCurves(powerLaw); err != nil {
		return nil, err
	}
	if res.StdDev, err = data.AverageCurves(stdDev); err != nil {
		return nil, err
	}
	if res.DecisionEntropy, err = data.AverageCurves(entropy); err != nil {
		return nil, err
	}
	res.Correlation = stat.Correlation(allStdDev, allEntropy, nil)

	return res, nil
}

// fitDistance fits a model to the samples and returns its KS distance,
// or 1 if the model cannot describe the samples.
func fitDistance(samples []float64, fit func([]float64) (continuous.Distribution, error)) (float64, error) {
	model, err := fit(samples)
	if errors.Is(err, continuous.ErrDegenerateParameter) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}

	return inference.KSDistance(model, samples)
}
