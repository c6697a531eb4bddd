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

package inference

import (
	"math"

	"github.com/fentec-project/goprob/data"
	"github.com/fentec-project/goprob/discrete"
	"github.com/fentec-project/goprob/information"
	"github.com/pkg/errors"
)

// DecisionEpsilon keeps the pseudo-likelihood 1/(e + DecisionEpsilon)
// of a model with fitting error e finite.
const DecisionEpsilon = 1e-10

// Softmax returns exp(x_i) / sum_j exp(x_j) for every element of x.
// The largest element is subtracted before exponentiating, so large
// inputs do not overflow.
func Softmax(x []float64) data.Vector {
	if len(x) == 0 {
		return data.Vector{}
	}

	shift := data.Vector(x).Max()
	exp := data.Vector(x).Apply(func(v float64) float64 {
		return math.Exp(v - shift)
	})

	return exp.MulScalar(1 / exp.Sum())
}

// DecisionEntropy measures how ambiguous the choice between candidate
// models is, given their fitting errors (for instance KS distances).
// Each error e is turned into the pseudo-likelihood 1/(e + DecisionEpsilon),
// the likelihoods are normalized with Softmax and the entropy of the
// resulting belief distribution is returned. It is close to 0 for a clear winner
// and log2(len(errors)) bits when all models fit equally well.
func DecisionEntropy(errs []float64) (information.Information, error) {
	if len(errs) == 0 {
		return information.Information{}, ErrEmptySample
	}

	likelihoods := data.Vector(errs).Apply(func(e float64) float64 {
		return 1 / (e + DecisionEpsilon)
	})
	beliefs, err := discrete.Multinomial(Softmax(likelihoods))
	if err != nil {
		return information.Information{}, errors.Wrap(err, "invalid decision distribution")
	}

	return information.Entropy(beliefs), nil
}
