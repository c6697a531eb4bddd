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

// Package sample includes randomness sources and helpers for
// drawing repeated samples from probability distributions.
//
// Package sample provides the Source interface along with
// different implementations of this interface. Distributions never
// own randomness: every Sample call receives a Source, so a test can
// replay exactly the same draws by recreating the Source from its seed.
//
// NewSeeded and NewSource return general purpose generators, while
// NewKeyed derives independent deterministic streams from a single
// 32 byte key, which is how repeated-trial studies give every trial
// its own randomness.
package sample
