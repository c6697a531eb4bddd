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

package sample

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"

	"github.com/pkg/errors"
)

// Source supplies uniform and standard normal variates.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// Float64 returns a uniform variate in [0, 1).
	Float64() float64
	// NormFloat64 returns a standard normal variate.
	NormFloat64() float64
}

// NewSeeded returns a deterministic Source determined by seed.
func NewSeeded(seed uint64) *mrand.Rand {
	return mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewSource returns a Source seeded from the operating system's
// cryptographically secure randomness.
func NewSource() (*mrand.Rand, error) {
	var seed [32]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return nil, errors.Wrap(err, "cannot seed randomness source")
	}

	return mrand.New(mrand.NewChaCha8(seed)), nil
}

// NewKey returns a random 32 byte key usable with NewKeyed.
func NewKey() (*[32]byte, error) {
	var key [32]byte
	if _, err := rand.Read(key[:]); err != nil {
		return nil, errors.Wrap(err, "cannot generate key")
	}

	return &key, nil
}

// KeyFromSeed expands a 64 bit seed into a 32 byte key usable with
// NewKeyed. Different seeds give different keys.
func KeyFromSeed(seed uint64) *[32]byte {
	var key [32]byte
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint64(key[8*i:], seed+uint64(i)*0x9e3779b97f4a7c15)
	}

	return &key
}
