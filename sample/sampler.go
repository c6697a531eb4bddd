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

package sample

// Sampler is implemented by anything that draws values of type T
// using a randomness Source.
type Sampler[T any] interface {
	Sample(src Source) T
}

// Draw calls s.Sample n times and returns the drawn values in order.
// The returned slice belongs to the caller.
func Draw[T any](n int, s Sampler[T], src Source) []T {
	samples := make([]T, n)
	for i := range samples {
		samples[i] = s.Sample(src)
	}

	return samples
}
