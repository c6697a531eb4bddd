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

package inference_test

import (
	"testing"

	"github.com/fentec-project/goprob/continuous"
	"github.com/fentec-project/goprob/data"
	"github.com/fentec-project/goprob/inference"
	"github.com/fentec-project/goprob/sample"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmpiricalCDF(t *testing.T) {
	cdf := inference.EmpiricalCDF([]float64{3, 1, 2, 2})
	assert.Equal(t, data.Curve{{X: 1, Y: 0.25}, {X: 2, Y: 0.75}, {X: 3, Y: 1}}, cdf)

	var tests = []struct {
		x      float64
		expect float64
	}{
		{x: 0, expect: 0},
		{x: 1, expect: 0.25},
		{x: 1.5, expect: 0.25},
		{x: 2, expect: 0.75},
		{x: 2.9, expect: 0.75},
		{x: 3, expect: 1},
		{x: 10, expect: 1},
	}
	for _, test := range tests {
		assert.Equal(t, test.expect, inference.EvaluateEmpiricalCDF(cdf, test.x), "at %v", test.x)
	}

	assert.Empty(t, inference.EmpiricalCDF(nil))
}

func TestKSDistance(t *testing.T) {
	std, err := continuous.NewNormal(0, 1)
	require.NoError(t, err)
	shifted, err := continuous.NewNormal(5, 1)
	require.NoError(t, err)
	samples := sample.Draw[float64](100000, std, sample.NewSeeded(21))

	d, err := inference.KSDistance(std, samples)
	require.NoError(t, err)
	assert.True(t, d < inference.KSThreshold, "distance %v of the true model is too large", d)

	d, err = inference.KSDistance(shifted, samples)
	require.NoError(t, err)
	assert.True(t, d > 0.9, "distance %v of a wrong model is too small", d)

	ok, err := inference.KSValidate(std, samples)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = inference.KSValidate(shifted, samples)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKSDistance_PowerLaw(t *testing.T) {
	p, err := continuous.NewPowerLaw(0, 2.5, 1)
	require.NoError(t, err)
	n, err := continuous.NewNormal(0, 1)
	require.NoError(t, err)
	samples := sample.Draw[float64](10000, p, sample.NewSeeded(22))

	ok, err := inference.KSValidate(p, samples)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = inference.KSValidate(n, samples)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKSDistance_Degenerate(t *testing.T) {
	std, _ := continuous.NewNormal(0, 1)

	d, err := inference.KSDistance(std, []float64{0, 0, 0})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, d, 1e-9)

	_, err = inference.KSDistance(std, nil)
	assert.True(t, errors.Is(err, inference.ErrEmptySample))
	_, err = inference.KSValidate(std, nil)
	assert.True(t, errors.Is(err, inference.ErrEmptySample))
}
