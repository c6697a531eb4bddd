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

// Package study runs repeated-trial experiments on the estimators and
// tests of this module and reduces the trials to averaged curves.
//
// Trials are independent: each owns its distributions, its samples and
// its own randomness stream, derived from Config.Seed and the trial
// index with sample.NewKeyed. Trials are spread over a pool of workers
// and their results are averaged once all of them finished, so a study
// gives the same result for a fixed seed whatever the number of workers.
//
// The curves are ordered (x, y) sequences ready to be handed to a
// plotting tool.
package study
