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

// Package inference implements empirical validation of probability
// distributions against samples.
//
// KSDistance and KSValidate compare a continuous distribution with the
// empirical distribution of samples (Kolmogorov-Smirnov).
// BinomialDistinction checks whether a success probability is
// consistent with observed trials using the Wilson score interval.
// DecisionEntropy scores how ambiguous the choice between several
// fitted models is, given their fitting errors.
//
// A failed test is reported as false, never as an error.
package inference
