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

// Package information provides information theoretic measures of
// discrete probability distributions.
//
// Results are Information values, which carry an amount together with
// its Unit: bits (base 2 logarithms) or nats (natural logarithms).
// Entropy and the divergences are computed in bits, treating terms with
// zero probability as their limit 0 rather than smoothing them.
package information
