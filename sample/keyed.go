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
	"encoding/binary"
	mrand "math/rand/v2"

	"golang.org/x/crypto/salsa20/salsa"
)

// keystream produces the Salsa20 keystream determined by a key and a
// stream number, 8 bytes at a time.
type keystream struct {
	key     *[32]byte
	counter [16]byte
	block   uint64
	buf     [64]byte
	pos     int
}

// NewKeyed returns a deterministic Source reading the Salsa20 keystream
// for key. The stream number is used as the nonce, so sources created
// from the same key with different stream numbers are independent,
// while equal (key, stream) pairs always replay the same variates.
func NewKeyed(key *[32]byte, stream uint64) *mrand.Rand {
	k := &keystream{
		key: key,
		pos: 64,
	}
	binary.LittleEndian.PutUint64(k.counter[0:8], stream)

	return mrand.New(k)
}

// Uint64 implements rand.Source.
func (k *keystream) Uint64() uint64 {
	if k.pos == len(k.buf) {
		k.refill()
	}
	r := binary.LittleEndian.Uint64(k.buf[k.pos:])
	k.pos += 8

	return r
}

func (k *keystream) refill() {
	var in [64]byte // input is initialized to zeros
	binary.LittleEndian.PutUint64(k.counter[8:16], k.block)
	salsa.XORKeyStream(k.buf[:], in[:], &k.counter, k.key)
	k.block++
	k.pos = 0
}
