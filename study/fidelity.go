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

	"github.com/fentec-project/goprob/continuous"
	"github.com/fentec-project/goprob/data"
	"github.com/fentec-project/goprob/discrete"
	"github.com/fentec-project/goprob/inference"
	"github.com/fentec-project/goprob/sample"
	"github.com/pkg/errors"
)

// BernoulliEstimationFidelity measures how well EstimateBernoulli
// recovers a Bernoulli distribution. Every trial draws a success
// probability uniformly from [0, 1) and, for every sample count in
// sizes, estimates the distribution from that many samples and records
// the discrete.Metric between the true and the estimated distribution.
// The returned curve maps sample counts to the metric averaged over
// all trials.
func BernoulliEstimationFidelity(ctx context.Context, cfg Config, sizes []int) (data.Curve, error) {
	if err := checkSizes(sizes); err != nil {
		return nil, err
	}

	curves, err := run(ctx, cfg, "bernoulli-estimation", func(ctx context.Context, src sample.Source) (data.Curve, error) {
		dist, err := discrete.Bernoulli(src.Float64())
		if err != nil {
			return nil, err
		}

		curve := make(data.Curve, len(sizes))
		for i, n := range sizes {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			est, err := discrete.EstimateBernoulli(sample.Draw[int](n, dist, src))
			if err != nil {
				return nil, err
			}
			curve[i] = data.Point{X: float64(n), Y: discrete.Metric(dist, est)}
		}
		return curve, nil
	})
	if err != nil {
		return nil, err
	}

	return data.AverageCurves(curves)
}

// KSFidelity measures how fast the KS distance between dist and its own
// samples shrinks. Every trial grows a sample set by step samples at a
// time, rounds times, recording the KS distance after each round. The
// returned curve maps sample counts to the distance averaged over all
// trials.
func KSFidelity(ctx context.Context, cfg Config, dist continuous.Distribution, step, rounds int) (data.Curve, error) {
	if step < 1 || rounds < 1 {
		return nil, errors.Errorf("step %d and rounds %d must be positive", step, rounds)
	}

	curves, err := run(ctx, cfg, "ks-fidelity", func(ctx context.Context, src sample.Source) (data.Curve, error) {
		var samples []float64
		curve := make(data.Curve, rounds)
		for i := range curve {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			samples = append(samples, sample.Draw[float64](step, dist, src)...)
			d, err := inference.KSDistance(dist, samples)
			if err != nil {
				return nil, err
			}
			curve[i] = data.Point{X: float64(len(samples)), Y: d}
		}
		return curve, nil
	})
	if err != nil {
		return nil, err
	}

	return data.AverageCurves(curves)
}

func checkSizes(sizes []int) error {
	if len(sizes) == 0 {
		return errors.New("no sample sizes given")
	}
	for _, n := range sizes {
		if n < 1 {
			return errors.Errorf("sample size %d is not positive", n)
		}
	}

	return nil
}
