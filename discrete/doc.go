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

// Package discrete implements discrete probability distributions over
// finite sets of outcomes.
//
// A Distribution pairs outcomes with probabilities index by index. The
// constraints (equal lengths, non-negative probabilities summing to 1)
// are checked once, by the constructors, and a Distribution is never
// modified afterwards: convolutions, joint distributions and averages
// are returned as new values.
//
// Integer valued distributions additionally support convolution, the
// distribution of the sum of independent random variables. Joint builds
// the distribution of a tuple of independent random variables.
package discrete
