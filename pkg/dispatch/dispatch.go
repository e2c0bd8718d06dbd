// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package dispatch routes a cipher name and mode to the matching transform.
package dispatch

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/cipha/pkg/cipher"
	"gitlab.com/tozd/go/errors"
)

// UnsupportedCipher is returned in place of a result when the cipher name is
// unknown and the dispatcher is not strict.
const UnsupportedCipher = "Unsupported cipher"

var (
	ErrUnknownCipher = errors.Base("unknown cipher")
	ErrUnknownMode   = errors.Base("unknown mode")
)

// Mode selects the direction of a transform.
type Mode string

const (
	ModeEncode Mode = "encode"
	ModeDecode Mode = "decode"
)

// ParseMode validates s as a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeEncode, ModeDecode:
		return m, nil
	}
	return "", errors.Errorf("%w: %q", ErrUnknownMode, s)
}

// Params carries the optional cipher parameters. Ciphers ignore the ones they
// do not use.
type Params struct {
	Shift int
	Key   string
	Rails int
}

// DefaultParams returns the values used when a parameter is not given.
func DefaultParams() Params {
	return Params{
		Shift: 3,
		Key:   "",
		Rails: 3,
	}
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithStrict makes unknown cipher names an error instead of the
// UnsupportedCipher result.
func WithStrict(strict bool) Option {
	return func(d *Dispatcher) {
		d.strict = strict
	}
}

// 🎯 Dispatcher resolves cipher names against the registry
type Dispatcher struct {
	strict bool
}

// 🏭 New creates a dispatcher
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Strict reports whether unknown names are errors.
func (d *Dispatcher) Strict() bool {
	return d.strict
}

// Cipher builds the named cipher with p. Unknown names always return
// ErrUnknownCipher, whatever the strict setting.
func (d *Dispatcher) Cipher(name string, p Params) (cipher.Cipher, error) {
	e, ok := Lookup(name)
	if !ok {
		return nil, errors.Errorf("%w: %q", ErrUnknownCipher, name)
	}
	return e.New(p), nil
}

// Names returns the registered cipher names in registration order.
func (d *Dispatcher) Names() []string {
	all := Entries()
	names := make([]string, 0, len(all))
	for _, e := range all {
		names = append(names, e.Name)
	}
	return names
}

// 🏃 Run transforms message with the named cipher in the given mode
func (d *Dispatcher) Run(ctx context.Context, name string, mode Mode, message string, p Params) (string, error) {
	logger := zerolog.Ctx(ctx)

	if _, err := ParseMode(string(mode)); err != nil {
		return "", err
	}

	c, err := d.Cipher(name, p)
	if err != nil {
		if errors.Is(err, ErrUnknownCipher) && !d.strict {
			logger.Warn().Str("cipher", name).Msg("unsupported cipher")
			return UnsupportedCipher, nil
		}
		return "", err
	}

	logger.Debug().
		Str("cipher", name).
		Str("mode", string(mode)).
		Int("length", len(message)).
		Msg("dispatching")

	if mode == ModeDecode {
		return c.Decipher(message), nil
	}
	return c.Encipher(message), nil
}
