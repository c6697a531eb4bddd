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

package discrete_test

import (
	"testing"

	"github.com/fentec-project/goprob/discrete"
	"github.com/fentec-project/goprob/sample"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoint(t *testing.T) {
	x, _ := discrete.Bernoulli(0.25)
	y, _ := discrete.Multinomial([]float64{0.5, 0.3, 0.2})

	j, err := discrete.Joint(x, y)
	require.NoError(t, err)

	assert.Equal(t, 6, j.Len())
	assert.Equal(t, []int{0, 0}, j.Outcomes()[0])
	assert.Equal(t, []int{1, 0}, j.Outcomes()[1])
	assert.InDelta(t, 0.25*0.3, j.PMF([]int{1, 1}), 1e-15)
	assert.InDelta(t, 0.75*0.2, j.PMF([]int{0, 2}), 1e-15)
	assert.Equal(t, 0.0, j.PMF([]int{0, 3}))
	assert.Equal(t, 0.0, j.PMF([]int{0}))

	m, err := j.Measure(j.Outcomes())
	require.NoError(t, err)
	assert.InDelta(t, 1, m, 1e-12)
}

func TestJoint_Three(t *testing.T) {
	b, _ := discrete.Bernoulli(0.5)

	j, err := discrete.Joint(b, b, b)
	require.NoError(t, err)
	assert.Equal(t, 8, j.Len())
	for _, p := range j.Probabilities() {
		assert.InDelta(t, 0.125, p, 1e-15)
	}
}

func TestJoint_Empty(t *testing.T) {
	_, err := discrete.Joint[int]()
	assert.True(t, errors.Is(err, discrete.ErrDegenerateParameter))
}

func TestJoint_Immutable(t *testing.T) {
	b, _ := discrete.Bernoulli(0.25)
	j, err := discrete.Joint(b, b)
	require.NoError(t, err)
	before := j.PMF([]int{0, 0})

	j.Outcomes()[0][0] = 7
	j.Sample(sample.NewSeeded(1))[0] = 7
	discrete.Union(j)[0][1] = 7

	assert.Equal(t, before, j.PMF([]int{0, 0}))
	assert.InDelta(t, 0.5625, j.PMF([]int{0, 0}), 1e-15)
	assert.Equal(t, 0.0, j.PMF([]int{7, 0}))

	m, err := discrete.Average(j, j)
	require.NoError(t, err)
	m.Outcomes()[0][0] = 7
	assert.InDelta(t, 0.5625, m.PMF([]int{0, 0}), 1e-15)
}
