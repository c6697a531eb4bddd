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

// Package continuous implements continuous probability distributions.
//
// Every distribution implements the Distribution interface, exposing
// its density, cumulative distribution, the measure of intervals and
// sampling. Normal integrates its density numerically with a fixed
// number of Simpson steps, which gives a deterministic error bound,
// while PowerLaw evaluates all measures in closed form.
//
// EstimateNormal and EstimatePowerLaw fit distributions to samples.
package continuous
