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
	"fmt"
	"math"
)

// Unit identifies the logarithm base of an Information value.
type Unit int

const (
	// Bit measures information with base 2 logarithms.
	Bit Unit = iota
	// Nat measures information with natural logarithms.
	Nat
)

func (u Unit) String() string {
	switch u {
	case Bit:
		return "bit"
	case Nat:
		return "nat"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// bitsPerNat is log2(e).
var bitsPerNat = math.Log2E

// Information is an amount of information tagged with its unit.
// The zero value is 0 bits.
type Information struct {
	value float64
	unit  Unit
}

// Bits returns x bits.
func Bits(x float64) Information {
	return Information{value: x, unit: Bit}
}

// Nats returns x nats.
func Nats(x float64) Information {
	return Information{value: x, unit: Nat}
}

// Unit returns the unit of i.
func (i Information) Unit() Unit {
	return i.unit
}

// Float64 returns the amount of i in its own unit.
func (i Information) Float64() float64 {
	return i.value
}

// ToBits returns i expressed in bits.
func (i Information) ToBits() Information {
	if i.unit == Nat {
		return Bits(i.value * bitsPerNat)
	}

	return i
}

// ToNats returns i expressed in nats.
func (i Information) ToNats() Information {
	if i.unit == Bit {
		return Nats(i.value / bitsPerNat)
	}

	return i
}

// Apply returns f applied to the amount of i, keeping the unit.
func (i Information) Apply(f func(float64) float64) Information {
	return Information{value: f(i.value), unit: i.unit}
}

// Add returns i + other. Values of equal units keep their unit;
// if the units differ, both operands are converted to bits first,
// whatever their order.
func (i Information) Add(other Information) Information {
	a, b := normalize(i, other)
	return Information{value: a.value + b.value, unit: a.unit}
}

// Sub returns i - other, normalizing units like Add.
func (i Information) Sub(other Information) Information {
	a, b := normalize(i, other)
	return Information{value: a.value - b.value, unit: a.unit}
}

func normalize(a, b Information) (Information, Information) {
	if a.unit == b.unit {
		return a, b
	}

	return a.ToBits(), b.ToBits()
}

func (i Information) String() string {
	return fmt.Sprintf("%g %s", i.value, i.unit)
}
