// Package keldysh provides a reference diagram universe indexed the way
// vertex components are stored in Keldysh functional-RG codes: diagrammatic
// class, channel, spin component, four Keldysh indices and the sign of the
// transfer frequency.
//
// Primitive actions are permutations of those indices:
//
//	T1  swaps the outgoing legs; channels a and t exchange; V and Vhat exchange
//	T2  swaps the incoming legs; channels a and t exchange; V and Vhat exchange
//	T3  swaps both leg pairs
//	TC  exchanges outgoing and incoming legs; classes K2 and K2b exchange
//	TS  exchanges V and Vhat
//	TP  flips the transfer-frequency sign
//	TR  TC followed by a frequency sign flip
package keldysh

import (
	"fmt"

	"github.com/aretw0/orbitsieve/pkg/domain"
)

// Class is a diagrammatic class.
type Class uint8

const (
	K1 Class = iota
	K2
	K2b
	K3
)

// Classes lists every diagrammatic class in storage order.
var Classes = []Class{K1, K2, K2b, K3}

func (c Class) String() string {
	switch c {
	case K1:
		return "K1"
	case K2:
		return "K2"
	case K2b:
		return "K2b"
	case K3:
		return "K3"
	}
	return fmt.Sprintf("K?%d", uint8(c))
}

// Channel is a two-particle channel: 'a', 'p' or 't'.
type Channel byte

// Channels lists the channels in storage order.
var Channels = []Channel{'a', 'p', 't'}

// Spin components. V carries spins (up, down) on its legs, Vhat the
// exchanged combination.
const (
	SpinV    domain.SpinIndices = "ud"
	SpinVhat domain.SpinIndices = "du"
)

// Keldysh index values.
const (
	One uint8 = 1
	Two uint8 = 2
)

// Diagram is one vertex component.
type Diagram struct {
	Class   Class
	Channel Channel
	Spin    domain.SpinIndices
	Alphas  [4]uint8
	Sign    int8

	particleHole bool
}

// FromIndex builds a V-component diagram from a Keldysh index iK in 0..15,
// where the first leg is the most significant bit and bit value 1 is index 2.
func FromIndex(c Class, ch Channel, iK int, sign int8) Diagram {
	var a [4]uint8
	for i := 0; i < 4; i++ {
		a[i] = One + uint8((iK>>(3-i))&1)
	}
	return Diagram{Class: c, Channel: ch, Spin: SpinV, Alphas: a, Sign: sign}
}

// Index returns the Keldysh index iK of the diagram.
func (d Diagram) Index() int {
	iK := 0
	for i := 0; i < 4; i++ {
		iK = iK<<1 | int(d.Alphas[i]-One)
	}
	return iK
}

// Key renders e.g. "K2a:ud:1212:+".
func (d Diagram) Key() domain.Key {
	sign := '+'
	if d.Sign < 0 {
		sign = '-'
	}
	return domain.Key(fmt.Sprintf("%s%c:%s:%d%d%d%d:%c",
		d.Class, d.Channel, d.Spin, d.Alphas[0], d.Alphas[1], d.Alphas[2], d.Alphas[3], sign))
}

// SpinIndices returns the spin component.
func (d Diagram) SpinIndices() domain.SpinIndices { return d.Spin }

// ParityGroup holds the frequency inversion when particle-hole symmetry is on.
func (d Diagram) ParityGroup() []domain.Transformation {
	if !d.particleHole {
		return nil
	}
	return []domain.Transformation{domain.NewParity(domain.ParticleHoleT)}
}

// Uniform reports whether every Keldysh index equals alpha.
func (d Diagram) Uniform(alpha uint8) bool {
	return d.Alphas == [4]uint8{alpha, alpha, alpha, alpha}
}

// Transform applies a primitive operation.
func (d Diagram) Transform(k domain.Kind) domain.Diagram {
	a := d.Alphas
	switch k {
	case domain.SwapOutgoing:
		d.Alphas = [4]uint8{a[1], a[0], a[2], a[3]}
		d.Channel = swapAT(d.Channel)
		d.Spin = flip(d.Spin)
	case domain.SwapIncoming:
		d.Alphas = [4]uint8{a[0], a[1], a[3], a[2]}
		d.Channel = swapAT(d.Channel)
		d.Spin = flip(d.Spin)
	case domain.SwapBoth:
		d.Alphas = [4]uint8{a[1], a[0], a[3], a[2]}
	case domain.Conjugate:
		d.Alphas = [4]uint8{a[2], a[3], a[0], a[1]}
		d.Class = swapK2(d.Class)
	case domain.SpinFlip:
		d.Spin = flip(d.Spin)
	case domain.ParticleHole:
		d.Sign = -d.Sign
	case domain.RealityConstraint:
		d.Alphas = [4]uint8{a[2], a[3], a[0], a[1]}
		d.Class = swapK2(d.Class)
		d.Sign = -d.Sign
	}
	return d
}

func swapAT(ch Channel) Channel {
	switch ch {
	case 'a':
		return 't'
	case 't':
		return 'a'
	}
	return ch
}

func swapK2(c Class) Class {
	switch c {
	case K2:
		return K2b
	case K2b:
		return K2
	}
	return c
}

func flip(s domain.SpinIndices) domain.SpinIndices {
	switch s {
	case SpinV:
		return SpinVhat
	case SpinVhat:
		return SpinV
	}
	return s
}
