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

package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatrix(t *testing.T) {
	_, err := NewMatrix([]Vector{{1, 2}, {3}})
	assert.Error(t, err)
}

func TestMatrix_Rows(t *testing.T) {
	m, _ := NewMatrix([]Vector{{1, 2, 3}, {4, 5, 6}})
	assert.Equal(t, 2, m.Rows())
}

func TestMatrix_Cols(t *testing.T) {
	m, _ := NewMatrix([]Vector{{1, 2, 3}, {4, 5, 6}})
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 0, Matrix{}.Cols())
}

func TestMatrix_GetCol(t *testing.T) {
	m, _ := NewMatrix([]Vector{{1, 2, 3}, {4, 5, 6}})

	col, err := m.GetCol(1)
	require.NoError(t, err)
	assert.Equal(t, Vector{2, 5}, col)

	_, err = m.GetCol(3)
	assert.Error(t, err)
}

func TestMatrix_ColumnMeans(t *testing.T) {
	m, _ := NewMatrix([]Vector{{1, 2, 3}, {3, 6, 0}})

	means, err := m.ColumnMeans()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 4, 1.5}, means, 1e-15)

	_, err = Matrix{}.ColumnMeans()
	assert.Error(t, err)
}
