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

package internal

import (
	"errors"
	"fmt"
)

var invalidStr = "violates the distribution constraints"

var ErrDimensionMismatch = errors.New(fmt.Sprintf("number of outcomes and probabilities %s", invalidStr))
var ErrInvalidProbability = errors.New(fmt.Sprintf("probability vector %s", invalidStr))
var ErrDegenerateParameter = errors.New(fmt.Sprintf("distribution parameter %s", invalidStr))
var ErrDuplicateOutcome = errors.New(fmt.Sprintf("repeated outcome %s", invalidStr))
var ErrEmptySample = errors.New(fmt.Sprintf("empty sample %s", invalidStr))
var ErrUnboundedDivergence = errors.New("divergence is infinite: reference assigns zero probability to a supported outcome")
