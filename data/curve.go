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

import "fmt"

// Point is a single (x, y) pair, as consumed by plotting tools.
type Point struct {
	X float64
	Y float64
}

// Curve is an ordered sequence of points.
type Curve []Point

// NewCurve zips xs and ys into a Curve.
// It returns error if they differ in length.
func NewCurve(xs, ys Vector) (Curve, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("coordinates should be of same length")
	}

	c := make(Curve, len(xs))
	for i := range xs {
		c[i] = Point{X: xs[i], Y: ys[i]}
	}

	return c, nil
}

// Xs returns the x coordinates of the curve.
func (c Curve) Xs() Vector {
	xs := make(Vector, len(c))
	for i, p := range c {
		xs[i] = p.X
	}

	return xs
}

// Ys returns the y coordinates of the curve.
func (c Curve) Ys() Vector {
	ys := make(Vector, len(c))
	for i, p := range c {
		ys[i] = p.Y
	}

	return ys
}

// AverageCurves averages the y coordinates of equally shaped curves.
// The x coordinates are taken from the first curve.
func AverageCurves(curves []Curve) (Curve, error) {
	if len(curves) == 0 {
		return nil, fmt.Errorf("no curves to average")
	}

	rows := make([]Vector, len(curves))
	for i, c := range curves {
		rows[i] = c.Ys()
	}
	m, err := NewMatrix(rows)
	if err != nil {
		return nil, err
	}
	means, err := m.ColumnMeans()
	if err != nil {
		return nil, err
	}

	return NewCurve(curves[0].Xs(), means)
}
