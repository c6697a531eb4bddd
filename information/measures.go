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

package information

import (
	"math"

	"github.com/fentec-project/goprob/discrete"
	"github.com/fentec-project/goprob/internal"
	"github.com/pkg/errors"
)

// ErrUnboundedDivergence is returned by KullbackLeibler when the
// reference distribution assigns zero probability to an outcome of
// positive probability.
var ErrUnboundedDivergence = internal.ErrUnboundedDivergence

// plog2p returns p*log2(p), using its limit 0 at p = 0.
func plog2p(p float64) float64 {
	if p <= 0 {
		return 0
	}

	return p * math.Log2(p)
}

// Entropy returns the Shannon entropy of d in bits. Repeated outcomes
// count as one outcome carrying their total mass.
func Entropy[T any](d *discrete.Distribution[T]) Information {
	h := 0.0
	for _, p := range d.Collapse().Probabilities() {
		h -= plog2p(p)
	}

	return Bits(h)
}

// JointEntropy returns the entropy of the joint distribution of
// independent random variables distributed as dists.
func JointEntropy[T any](dists ...*discrete.Distribution[T]) (Information, error) {
	joint, err := discrete.Joint(dists...)
	if err != nil {
		return Information{}, err
	}

	return Entropy(joint), nil
}

// KullbackLeibler returns the Kullback-Leibler divergence of p from q
// in bits, summing p(x) * log2(p(x) / q(x)) over the outcomes of both,
// where p(x) and q(x) are the total masses of x.
//
// If q(x) = 0 for an outcome with p(x) > 0 the divergence is infinite:
// the returned value is +Inf bits together with ErrUnboundedDivergence.
func KullbackLeibler[T any](p, q *discrete.Distribution[T]) (Information, error) {
	kl := 0.0
	for _, x := range discrete.Union(p, q) {
		px := p.Mass(x)
		if px <= 0 {
			continue
		}
		qx := q.Mass(x)
		if qx <= 0 {
			return Bits(math.Inf(1)), errors.Wrapf(ErrUnboundedDivergence, "outcome %v", x)
		}
		kl += px * math.Log2(px/qx)
	}

	return Bits(kl), nil
}

// JensenShannon returns the Jensen-Shannon divergence of p and q in
// bits: the mean of the Kullback-Leibler divergences of p and q from
// their average distribution m. It is symmetric and always finite.
func JensenShannon[T any](p, q *discrete.Distribution[T]) (Information, error) {
	m, err := discrete.Average(p, q)
	if err != nil {
		return Information{}, errors.Wrap(err, "cannot average distributions")
	}

	klP, err := KullbackLeibler(p, m)
	if err != nil {
		return Information{}, err
	}
	klQ, err := KullbackLeibler(q, m)
	if err != nil {
		return Information{}, err
	}

	return klP.Add(klQ).Apply(func(x float64) float64 { return x / 2 }), nil
}

// MutualInformation returns H(X) + H(Y) - H(joint). For a joint built
// by discrete.Joint, which assumes independence, the result is 0 up
// to rounding.
func MutualInformation[X, Y, J any](x *discrete.Distribution[X], y *discrete.Distribution[Y], joint *discrete.Distribution[J]) Information {
	return Entropy(x).Add(Entropy(y)).Sub(Entropy(joint))
}
