package keldysh

import (
	"errors"
	"fmt"
)

// ErrUnknownClass and ErrUnknownChannel report names outside the index space.
var (
	ErrUnknownClass   = errors.New("keldysh: unknown diagrammatic class")
	ErrUnknownChannel = errors.New("keldysh: unknown channel")
)

// ErrOpenSelection is returned when a class or channel selection is not
// closed under the leg swaps and conjugation: T1 and T2 exchange channels a
// and t, TC exchanges K2 and K2b.
var ErrOpenSelection = errors.New("keldysh: selection not closed under symmetry")

// ParseClass resolves "K1", "K2", "K2b" or "K3".
func ParseClass(s string) (Class, error) {
	for _, c := range Classes {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownClass, s)
}

// ParseChannel resolves "a", "p" or "t".
func ParseChannel(s string) (Channel, error) {
	if len(s) == 1 {
		for _, ch := range Channels {
			if byte(ch) == s[0] {
				return ch, nil
			}
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownChannel, s)
}

// Validate checks that the selection names known classes and channels and
// contains the symmetry partner of each. Empty lists select everything.
func (o Options) Validate() error {
	classes := make(map[Class]bool, len(o.Classes))
	for _, c := range o.Classes {
		if c > K3 {
			return fmt.Errorf("%w %s", ErrUnknownClass, c)
		}
		classes[c] = true
	}
	channels := make(map[Channel]bool, len(o.Channels))
	for _, ch := range o.Channels {
		if _, err := ParseChannel(string(ch)); err != nil {
			return err
		}
		channels[ch] = true
	}

	if len(classes) > 0 && classes[K2] != classes[K2b] {
		return fmt.Errorf("%w: K2 and K2b must be selected together", ErrOpenSelection)
	}
	if len(channels) > 0 && channels['a'] != channels['t'] {
		return fmt.Errorf("%w: channels a and t must be selected together", ErrOpenSelection)
	}
	return nil
}
