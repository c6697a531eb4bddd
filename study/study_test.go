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

package study_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fentec-project/goprob/continuous"
	"github.com/fentec-project/goprob/study"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(trials, workers int) study.Config {
	return study.Config{
		Trials:  trials,
		Workers: workers,
		Seed:    42,
	}
}

func TestBernoulliEstimationFidelity(t *testing.T) {
	curve, err := study.BernoulliEstimationFidelity(context.Background(), testConfig(50, 4), []int{10, 10000})
	require.NoError(t, err)

	require.Len(t, curve, 2)
	assert.Equal(t, []float64{10, 10000}, []float64(curve.Xs()))
	assert.True(t, curve[1].Y < curve[0].Y, "estimates should improve with more samples")
	assert.True(t, curve[1].Y < 0.05)
}

func TestBernoulliEstimationFidelity_Reproducible(t *testing.T) {
	sizes := []int{5, 50, 500}
	a, err := study.BernoulliEstimationFidelity(context.Background(), testConfig(20, 1), sizes)
	require.NoError(t, err)
	b, err := study.BernoulliEstimationFidelity(context.Background(), testConfig(20, 8), sizes)
	require.NoError(t, err)

	assert.Equal(t, a, b, "results should not depend on the number of workers")
}

func TestBernoulliEstimationFidelity_Invalid(t *testing.T) {
	ctx := context.Background()

	_, err := study.BernoulliEstimationFidelity(ctx, testConfig(5, 1), nil)
	assert.Error(t, err)
	_, err = study.BernoulliEstimationFidelity(ctx, testConfig(5, 1), []int{10, 0})
	assert.Error(t, err)
	_, err = study.BernoulliEstimationFidelity(ctx, testConfig(0, 1), []int{10})
	assert.Error(t, err)
}

func TestKSFidelity(t *testing.T) {
	p, err := continuous.NewPowerLaw(0, 2.5, 1)
	require.NoError(t, err)

	curve, err := study.KSFidelity(context.Background(), testConfig(8, 0), p, 200, 10)
	require.NoError(t, err)

	require.Len(t, curve, 10)
	for i, pt := range curve {
		assert.Equal(t, float64(200*(i+1)), pt.X)
	}
	assert.True(t, curve[9].Y < curve[0].Y, "distance should shrink with more samples")

	_, err = study.KSFidelity(context.Background(), testConfig(8, 0), p, 0, 10)
	assert.Error(t, err)
}

func TestDistinction(t *testing.T) {
	n, err := continuous.NewNormal(0, 1)
	require.NoError(t, err)

	res, err := study.Distinction(context.Background(), testConfig(2, 2), n, 5, 8)
	require.NoError(t, err)

	for _, c := range [][]float64{res.NormalKS.Xs(), res.PowerLawKS.Xs(), res.StdDev.Xs(), res.DecisionEntropy.Xs()} {
		assert.Equal(t, []float64{6, 7, 8}, c)
	}
	for i := range res.NormalKS {
		// a power law cannot be fitted to negative samples
		assert.Equal(t, 1.0, res.PowerLawKS[i].Y)
		assert.True(t, res.NormalKS[i].Y < 1)
		assert.True(t, res.StdDev[i].Y > 0)
		assert.True(t, res.DecisionEntropy[i].Y >= 0 && res.DecisionEntropy[i].Y <= 1)
	}

	_, err = study.Distinction(context.Background(), testConfig(2, 2), n, 1, 8)
	assert.Error(t, err)
	_, err = study.Distinction(context.Background(), testConfig(2, 2), n, 5, 5)
	assert.Error(t, err)
}

func TestDistinction_PowerLaw(t *testing.T) {
	p, err := continuous.NewPowerLaw(0, 2.5, 1)
	require.NoError(t, err)

	res, err := study.Distinction(context.Background(), testConfig(8, 4), p, 100, 110)
	require.NoError(t, err)

	require.Len(t, res.PowerLawKS, 10)
	for i := range res.PowerLawKS {
		assert.True(t, res.PowerLawKS[i].Y < 1, "power law should be fitted to positive samples")
		assert.True(t, res.NormalKS[i].Y < 1)
	}
	last := len(res.PowerLawKS) - 1
	assert.True(t, res.PowerLawKS[last].Y < res.NormalKS[last].Y,
		"the power law should fit its own samples better than a normal distribution")
}

func TestDistinction_Window(t *testing.T) {
	n, err := continuous.NewNormal(0, 1)
	require.NoError(t, err)

	res, err := study.Distinction(context.Background(), testConfig(2, 2), n, 20, 60)
	require.NoError(t, err)

	require.Len(t, res.NormalKS, 40)
	assert.Equal(t, 60.0, res.NormalKS[39].X)
	assert.True(t, res.NormalKS[39].Y < 0.5)
}

func TestStudy_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := study.BernoulliEstimationFidelity(ctx, testConfig(10, 2), []int{10})
	assert.True(t, errors.Is(err, context.Canceled), "unexpected error %v", err)
}

func TestStudy_Logger(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig(3, 1)
	cfg.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := study.BernoulliEstimationFidelity(context.Background(), cfg, []int{10})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "study=bernoulli-estimation")
	assert.Contains(t, buf.String(), "trial finished")
	assert.Contains(t, buf.String(), "study finished")
}

func TestDefaultConfig(t *testing.T) {
	cfg := study.DefaultConfig()

	assert.Equal(t, 100, cfg.Trials)
	assert.True(t, cfg.Workers >= 1)
	assert.Nil(t, cfg.Logger)
}
