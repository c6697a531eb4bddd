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
	"math"
	"testing"

	"github.com/fentec-project/goprob/inference"
	"github.com/fentec-project/goprob/information"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSoftmax(t *testing.T) {
	assert.InDeltaSlice(t, []float64{0.25, 0.75}, inference.Softmax([]float64{0, math.Log(3)}), 1e-15)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, inference.Softmax([]float64{1000, 1000}), 1e-15)
	assert.InDeltaSlice(t, []float64{1, 0}, inference.Softmax([]float64{1e10, 1}), 1e-15)
	assert.Empty(t, inference.Softmax(nil))
}

func TestDecisionEntropy(t *testing.T) {
	h, err := inference.DecisionEntropy([]float64{0.1, 0.1, 0.1, 0.1})
	require.NoError(t, err)
	assert.Equal(t, information.Bit, h.Unit())
	assert.InDelta(t, 2, h.Float64(), 1e-12)

	h, err = inference.DecisionEntropy([]float64{0.001, 0.5})
	require.NoError(t, err)
	assert.InDelta(t, 0, h.Float64(), 1e-9)

	h, err = inference.DecisionEntropy([]float64{0, 0.3})
	require.NoError(t, err)
	assert.InDelta(t, 0, h.Float64(), 1e-9)

	_, err = inference.DecisionEntropy(nil)
	assert.True(t, errors.Is(err, inference.ErrEmptySample))
}
