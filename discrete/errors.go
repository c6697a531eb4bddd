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

package discrete

import "github.com/fentec-project/goprob/internal"

// Errors returned by the constructors and methods of this package.
// They can be matched with errors.Is.
var (
	ErrDimensionMismatch   = internal.ErrDimensionMismatch
	ErrInvalidProbability  = internal.ErrInvalidProbability
	ErrDegenerateParameter = internal.ErrDegenerateParameter
	ErrDuplicateOutcome    = internal.ErrDuplicateOutcome
	ErrEmptySample         = internal.ErrEmptySample
)
