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

// CartesianProduct returns the cartesian product of the given
// sequences as a slice of tuples, one element taken from every
// sequence.
//
// Tuples are ordered by a mixed-radix enumeration in which the first
// sequence varies fastest: with floors f_0 = 1, f_j = f_{j-1} * n_{j-1},
// the i-th tuple holds seqs[j][(i / f_j) % n_j] at position j. Two
// products over sequences of equal lengths are therefore aligned index
// by index, which joint distributions rely on.
//
// An empty list of sequences, or any empty sequence, yields an empty
// product.
func CartesianProduct[T any](seqs ...[]T) [][]T {
	if len(seqs) == 0 {
		return [][]T{}
	}

	floors := make([]int, len(seqs))
	total := 1
	for j, s := range seqs {
		floors[j] = total
		total *= len(s)
	}

	product := make([][]T, total)
	for i := range product {
		tuple := make([]T, len(seqs))
		for j, s := range seqs {
			tuple[j] = s[(i/floors[j])%len(s)]
		}
		product[i] = tuple
	}

	return product
}
